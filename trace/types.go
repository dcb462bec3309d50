package trace

import "errors"

// ErrFrozen is the panic value used when a Recorder is written to after
// Trace has been called on it.
var ErrFrozen = errors.New("trace: recorder is frozen")

// Event is one immutable step of a solver run.
//
// Kind returns a short, stable, kebab-case tag ("visit", "move-to", "total")
// that identifies the variant. Concrete event types are plain structs with
// exported, JSON-tagged fields.
type Event interface {
	Kind() string
}

// Trace is an immutable, ordered sequence of events.
// The zero value is an empty trace.
type Trace[E Event] struct {
	events []E
}

// Recorder collects events in execution order. It is not safe for concurrent use;
// each solver call owns its recorder.
type Recorder[E Event] struct {
	events []E
	frozen bool
}
