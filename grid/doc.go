// Package grid holds the small geometric vocabulary shared by the grid puzzles:
// integer coordinates, the four compass headings, and a rectangular Grid[T].
//
// What:
//
//   - Vec2 is a value type {Row, Col}. It is compared with == and used directly as a
//     map key; path history stores copies, never pointers.
//   - Heading is one of North, East, South, West (clockwise order), with turning,
//     reversal and a unit step delta.
//   - Grid[T] is an immutable-by-convention rectangle of cells with bounds checks,
//     lookups and row-major iteration.
//   - Parse turns puzzle text into a Grid[T] through a per-cell decoder.
//
// Bounds are [0,Height) x [0,Width). Ragged rows are rejected.
//
// Errors:
//
//   - ErrEmptyGrid: the input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCell: the cell decoder rejected a character.
package grid
