// Package ordering checks page updates against pairwise precedence rules.
//
// A rule "a|b" states that page a must be printed before page b whenever both
// appear in the same update. An update is valid when no pair (i<j) of its
// pages is covered by a rule requiring the later page first. Rules are looked
// up by linear scan; duplicates are harmless.
//
// Check mode totals the middle page of every valid update. Reorder mode fixes
// every invalid update with a topological sort of the rules restricted to its
// pages and totals the middle pages of the fixed updates.
package ordering
