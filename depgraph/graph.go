package depgraph

import "fmt"

// New returns an empty graph.
func New[K comparable]() *Graph[K] {
	return &Graph[K]{
		index: make(map[K]int),
		edges: make(map[[2]int]struct{}),
	}
}

// AddNode inserts k if absent. Re-adding is a no-op.
func (g *Graph[K]) AddNode(k K) {
	g.id(k)
}

// AddEdge records that from must come before to, inserting both nodes as
// needed. Duplicate edges are ignored.
func (g *Graph[K]) AddEdge(from, to K) {
	f, t := g.id(from), g.id(to)
	key := [2]int{f, t}
	if _, dup := g.edges[key]; dup {
		return
	}
	g.edges[key] = struct{}{}
	g.succ[f] = append(g.succ[f], t)
}

// HasNode reports whether k was added.
func (g *Graph[K]) HasNode(k K) bool {
	_, ok := g.index[k]
	return ok
}

// HasEdge reports whether the edge from→to exists.
func (g *Graph[K]) HasEdge(from, to K) bool {
	f, ok1 := g.index[from]
	t, ok2 := g.index[to]
	if !ok1 || !ok2 {
		return false
	}
	_, ok := g.edges[[2]int{f, t}]

	return ok
}

// Nodes returns all nodes in insertion order.
func (g *Graph[K]) Nodes() []K {
	out := make([]K, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Successors returns the direct successors of k in edge insertion order.
func (g *Graph[K]) Successors(k K) ([]K, error) {
	i, ok := g.index[k]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownNode, k)
	}
	out := make([]K, len(g.succ[i]))
	for j, s := range g.succ[i] {
		out[j] = g.nodes[s]
	}

	return out, nil
}

// Len returns the number of nodes.
func (g *Graph[K]) Len() int { return len(g.nodes) }

func (g *Graph[K]) id(k K) int {
	if i, ok := g.index[k]; ok {
		return i
	}
	i := len(g.nodes)
	g.index[k] = i
	g.nodes = append(g.nodes, k)
	g.succ = append(g.succ, nil)

	return i
}
