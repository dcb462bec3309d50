// Package puzzletrace solves grid, graph and search puzzles and records every
// solver's work as an ordered, replayable trace of semantic events.
//
// 🚀 What is puzzletrace?
//
//	A set of small, pure solvers that each return an answer together with a
//	trace.Trace of typed events:
//		• Sequences: report validation, precedence-rule ordering
//		• Grid walks: patrol simulation, trailhead counting, headed mazes
//		• Search: operator assignment, towel decomposition, nested keypads
//		• Arithmetic: claw machines (2x2 integer systems), disk checksums
//		• Networks: boolean gate evaluation in dependency order
//
// ✨ Why traces?
//
//   - Renderer-agnostic: a trace is the whole contract; no solver internals leak
//   - Deterministic: solving the same input twice yields identical traces
//   - Replayable: trace.Encode writes JSON lines, trace.Diff compares runs
//
// Packages:
//
//	trace/       generic event log, recorder, JSON-lines encoding and diff
//	grid/        Vec2, Heading and rectangular Grid[T]
//	pathfind/    Dijkstra with tie-preserving predecessors
//	depgraph/    insertion-ordered digraph, DFS and Kahn topological sort
//	report/      level reports (day 2)
//	ordering/    page ordering rules (day 5)
//	patrol/      guard patrol and loop hunting (day 6)
//	calibrate/   operator search (day 7)
//	diskmap/     disk compaction (day 9)
//	trailhead/   ascending trails (day 10)
//	clawmachine/ two-button machines (day 13)
//	maze/        turn-weighted maze (day 16)
//	towels/      stripe decomposition (day 19)
//	racetrack/   shortcut scan (day 20)
//	keypad/      robot keypad chain (day 21)
//	circuit/     gate network (day 24)
//	puzzle/      registry, batch runner and sample catalogue
//
// Quick example:
//
//	r := puzzle.Builtin()
//	req, _, _ := puzzle.Example(16, 1)
//	out, _ := r.Run(ctx, req)
//	fmt.Println(out.Answer) // 7036
package puzzletrace
