// Package towels decomposes patterns into concatenations of towel stripes.
//
// An Inventory holds a fixed set of towels (short stripe strings) and a list
// of target patterns. Two questions are asked of each pattern:
//
//   - Arrange: can the pattern be built at all, and if so which arrangement
//     uses the fewest towels? Ties go to the arrangement found first while
//     trying towels in inventory order.
//   - Count: how many distinct towel sequences spell the pattern exactly?
//
// Both recursions walk the remaining suffix and memoize on it. The memo is
// allocated per pattern, so the towel set is fixed for its lifetime and no
// state is shared between calls.
//
// Complexity: O(n·t·m) per pattern, where n is the pattern length, t the
// number of towels and m the longest towel.
package towels
