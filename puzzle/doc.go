// Package puzzle is the single entry point that runs any solver in this
// module by day and part.
//
// A Registry maps a Key (day, part) to a Solver. Every Solver turns raw puzzle
// text into an Output: the answer rendered as decimal text and the solver's
// event trace, type-erased to trace.Trace[trace.Event] so one renderer can
// replay any day. Builtin returns a Registry with every solver in this module
// registered.
//
// Run validates a Request, looks up its solver and calls it inside an
// OpenTelemetry span, logging the outcome with log/slog. Without an installed
// SDK the global tracer is a no-op. RunBatch solves independent requests
// concurrently with a bounded errgroup and returns outputs in request order;
// each solver call owns its caches, so concurrent runs share no state.
//
// The package also embeds the sample input of every day together with the
// expected answers (examples.yaml). Example returns a ready Request for a day
// and part along with the answer it must produce.
package puzzle
