package depgraph

import (
	"fmt"
	"slices"
)

// sorter holds DFS state for TopologicalSort.
type sorter[K comparable] struct {
	g     *Graph[K] // the graph being sorted
	opts  Options   // cancellation
	state []int     // per node: White, Gray or Black
	order []int     // post-order of node indices
}

// TopologicalSort returns the nodes of g such that every edge u→v places u
// before v. A cycle yields ErrCycleDetected naming the node where the back
// edge closed.
//
// Complexity:
//
//   - Time:   O(V + E) (each node and edge visited once)
//   - Memory: O(V)     (recursion stack and state slice)
func TopologicalSort[K comparable](g *Graph[K], options ...Option) ([]K, error) {
	// 1. Apply optional settings
	opts := DefaultOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 2. Initialize sorter state; every node starts White
	s := &sorter[K]{
		g:     g,
		opts:  opts,
		state: make([]int, g.Len()),
		order: make([]int, 0, g.Len()),
	}
	// 3. Drive DFS from every unvisited node in insertion order
	for v := range g.nodes {
		if s.state[v] == White {
			if err := s.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// 4. Reverse post-order to produce topological order
	slices.Reverse(s.order)

	// 5. Map indices back to keys
	out := make([]K, len(s.order))
	for i, v := range s.order {
		out[i] = g.nodes[v]
	}

	return out, nil
}

// visit performs a DFS from v, marking states and detecting cycles.
func (s *sorter[K]) visit(v int) error {
	// 1. Cancellation check at entry
	select {
	case <-s.opts.Ctx.Done():
		return s.opts.Ctx.Err()
	default:
	}
	// 2. Gray means a back edge; Black means already emitted
	switch s.state[v] {
	case Gray:
		return fmt.Errorf("%w: at %v", ErrCycleDetected, s.g.nodes[v])
	case Black:
		return nil
	}
	// 3. Mark in progress and recurse into successors
	s.state[v] = Gray
	for _, w := range s.g.succ[v] {
		if err := s.visit(w); err != nil {
			return err
		}
	}
	// 4. Mark fully explored and record in post-order
	s.state[v] = Black
	s.order = append(s.order, v)

	return nil
}

// Kahn returns a topological ordering built by repeatedly removing nodes with
// no remaining predecessors. Ready nodes leave the queue in the order they
// became ready, seeded in insertion order.
//
// Loop termination conditions:
//
//   - The queue is drained (every node emitted, or the rest sit on a cycle).
//   - The context is cancelled.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) (in-degree slice and queue)
func Kahn[K comparable](g *Graph[K], options ...Option) ([]K, error) {
	// 1. Apply optional settings
	opts := DefaultOptions()
	for _, opt := range options {
		opt(&opts)
	}

	// 2. Count in-degrees
	indeg := make([]int, g.Len())
	for _, succ := range g.succ {
		for _, w := range succ {
			indeg[w]++
		}
	}

	// 3. Seed the queue with sources in insertion order
	queue := make([]int, 0, g.Len())
	for v, d := range indeg {
		if d == 0 {
			queue = append(queue, v)
		}
	}

	// 4. Emit the head, release its successors; queue only grows at the tail
	out := make([]K, 0, g.Len())
	for head := 0; head < len(queue); head++ {
		if err := opts.Ctx.Err(); err != nil {
			return nil, err
		}
		v := queue[head]
		out = append(out, g.nodes[v])
		for _, w := range g.succ[v] {
			indeg[w]--
			if indeg[w] == 0 {
				queue = append(queue, w)
			}
		}
	}

	// 5. Any node left with a predecessor is on or behind a cycle
	if len(out) != g.Len() {
		for v, d := range indeg {
			if d > 0 {
				return nil, fmt.Errorf("%w: %v is unresolved", ErrCycleDetected, g.nodes[v])
			}
		}
	}

	return out, nil
}

// HasCycle reports whether g contains a directed cycle.
func HasCycle[K comparable](g *Graph[K]) bool {
	_, err := Kahn(g)

	return err != nil
}
