package depgraph

import (
	"context"
	"errors"
)

// Visitation states used by TopologicalSort.
const (
	White = iota // not yet visited
	Gray         // on the current DFS stack
	Black        // fully explored
)

var (
	// ErrCycleDetected indicates the graph has no topological ordering.
	ErrCycleDetected = errors.New("depgraph: cycle detected")
	// ErrUnknownNode indicates an edge or lookup named a node never added.
	ErrUnknownNode = errors.New("depgraph: unknown node")
)

// Graph is a directed graph over keys of type K.
// The zero value is not usable; call New.
type Graph[K comparable] struct {
	index map[K]int // node -> insertion index
	nodes []K
	succ  [][]int // adjacency by insertion index, deduplicated
	edges map[[2]int]struct{}
}

// Option configures TopologicalSort and Kahn.
type Option func(*Options)

// Options holds traversal settings.
type Options struct {
	// Ctx allows cancellation of long traversals; defaults to Background.
	Ctx context.Context
}

// DefaultOptions returns Options with a Background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context. A nil ctx has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
