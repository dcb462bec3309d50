package pathfind

import (
	"errors"
	"math"
)

// Sentinel errors returned by Search.
var (
	// ErrNegativeWeight indicates a successor edge with a negative cost.
	ErrNegativeWeight = errors.New("pathfind: negative edge cost encountered")

	// ErrBadMaxDistance indicates WithMaxDistance was given a negative value.
	ErrBadMaxDistance = errors.New("pathfind: MaxDistance must be non-negative")
)

// Unreachable is the distance reported for states Search never reached.
const Unreachable int64 = math.MaxInt64

// Edge is one outgoing transition of a state.
type Edge[S comparable] struct {
	To   S
	Cost int64
}

// Options configures Search.
//
// MaxDistance – states whose distance would exceed this value are skipped.
// Must be ≥ 0. Default is math.MaxInt64 (no cap).
type Options struct {
	MaxDistance int64
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithMaxDistance caps the explored distance. Panics on a negative value.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options with no distance cap.
func DefaultOptions() Options {
	return Options{MaxDistance: math.MaxInt64}
}

// Result holds the outcome of one Search. It is read-only after Search returns.
type Result[S comparable] struct {
	start   S
	dist    map[S]int64
	prev    map[S][]S
	settled []S
}
