// Package calibrate searches operator assignments that make an equation true.
//
// An equation is a test value and an ordered operand list. Operators are placed
// between adjacent operands and evaluated strictly left to right, with no
// precedence. Basic offers add and multiply; Extended adds decimal
// concatenation (12 || 345 = 12345).
//
// The search is exhaustive: every branch is explored even after a satisfying
// assignment is found, so the trace shows the full tree. The first satisfying
// assignment in operator order (add, multiply, concatenate) is the witness.
//
// Intermediate results that do not fit in int64 are tracked as overflowed.
// They can never equal a test value, and multiplying by zero brings them back
// to zero exactly.
//
// Complexity: O(k^(n-1)) per equation for k operators and n operands.
package calibrate
