// Package trace is the contract between a puzzle solver and whatever replays it.
//
// What:
//
//   - Event: a tagged record describing one observable step of a solver. Every
//     variant reports its tag through Kind(); the concrete type carries only the
//     data needed to reproduce that step (a position, an index, a running total).
//   - Recorder: the append-only sink a solver writes to while it runs.
//   - Trace: the frozen, ordered result. Insertion order is execution order and is
//     also the only valid replay order.
//
// Why:
//
//   - A solver never knows how it is drawn. A renderer never inspects solver
//     internals; it only walks the trace.
//   - Traces are values: two runs over the same input must produce identical
//     traces, which Diff makes cheap to check.
//
// Encoding:
//
//   - Encode writes one JSON object per line: {"seq":N,"kind":"...","data":{...}}.
//     The data object is the JSON encoding of the concrete event.
//   - Diff renders a unified diff of two encoded traces (empty when equal).
//
// Complexity:
//
//   - Emit: amortized O(1). Trace(): O(1) (ownership moves to the Trace).
//   - Encode / Diff: O(n) in the number of events (Diff is O(n²) worst case).
//
// Errors:
//
//   - ErrFrozen: Emit was called after the recorder produced its Trace.
package trace
