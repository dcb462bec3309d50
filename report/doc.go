// Package report validates sequences of readings ("reports") for safe, gradual
// monotonic change.
//
// A report is safe when every adjacent difference has an absolute value in
// [MinStep, MaxStep] and all differences share one sign. Reports with at most
// one level are trivially safe.
//
// Two modes are offered:
//
//   - Strict:   the report must be safe as written.
//   - Tolerant: the report is accepted if removing exactly one level makes it
//     safe. Every index is tried in order; the first success wins.
//
// Solve walks all reports and records a trace of every comparison, so a renderer
// can show which pair of levels broke a report and which level was dropped.
//
// Complexity: Strict O(n) per report; Tolerant O(n²) per report.
package report
