// Package depgraph provides a small directed dependency graph with
// deterministic topological ordering.
//
// Nodes are any comparable key (page numbers, wire names). Iteration order is
// insertion order, so every traversal is reproducible run to run without
// requiring the key to be ordered.
//
// Two orderings are offered:
//
//	TopologicalSort  DFS with White/Gray/Black coloring; reverse post-order.
//	Kahn             in-degree queue; emits ready nodes in insertion order.
//
// Both report ErrCycleDetected when no ordering exists.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package depgraph
