package trace

import (
	"iter"
	"slices"
)

// NewRecorder returns an empty recorder with room for sizeHint events.
func NewRecorder[E Event](sizeHint int) *Recorder[E] {
	if sizeHint < 0 {
		sizeHint = 0
	}

	return &Recorder[E]{events: make([]E, 0, sizeHint)}
}

// Emit appends e to the recording. It panics with ErrFrozen once Trace was taken.
func (r *Recorder[E]) Emit(e E) {
	if r.frozen {
		panic(ErrFrozen.Error())
	}
	r.events = append(r.events, e)
}

// Len reports the number of events emitted so far.
func (r *Recorder[E]) Len() int { return len(r.events) }

// Trace freezes the recorder and hands its events to an immutable Trace.
// Calling Trace again returns the same events.
func (r *Recorder[E]) Trace() Trace[E] {
	r.frozen = true

	return Trace[E]{events: r.events}
}

// Of builds a trace from a literal list of events. The slice is copied.
func Of[E Event](events ...E) Trace[E] {
	return Trace[E]{events: slices.Clone(events)}
}

// Len returns the number of events in t.
func (t Trace[E]) Len() int { return len(t.events) }

// At returns the i-th event. It panics if i is out of range.
func (t Trace[E]) At(i int) E { return t.events[i] }

// Events returns a copy of the events in replay order.
func (t Trace[E]) Events() []E { return slices.Clone(t.events) }

// All iterates over (index, event) pairs in replay order.
func (t Trace[E]) All() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i, e := range t.events {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Last returns the final event, if any.
func (t Trace[E]) Last() (E, bool) {
	var zero E
	if len(t.events) == 0 {
		return zero, false
	}

	return t.events[len(t.events)-1], true
}

// Kinds returns the kind tag of every event, in order.
func (t Trace[E]) Kinds() []string {
	kinds := make([]string, len(t.events))
	for i, e := range t.events {
		kinds[i] = e.Kind()
	}

	return kinds
}

// Count returns how many events carry the given kind.
func (t Trace[E]) Count(kind string) int {
	n := 0
	for _, e := range t.events {
		if e.Kind() == kind {
			n++
		}
	}

	return n
}

// Filter returns, in order, the events whose kind matches.
func (t Trace[E]) Filter(kind string) []E {
	var out []E
	for _, e := range t.events {
		if e.Kind() == kind {
			out = append(out, e)
		}
	}

	return out
}

// Erase converts a typed trace into a trace of plain Events, so traces from
// different solvers can travel through one interface.
func Erase[E Event](t Trace[E]) Trace[Event] {
	out := make([]Event, len(t.events))
	for i, e := range t.events {
		out[i] = e
	}

	return Trace[Event]{events: out}
}
