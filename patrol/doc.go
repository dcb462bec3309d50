// Package patrol simulates a guard walking a lab floor.
//
// The guard steps forward in its heading. When the next cell is a wall it turns
// 90° clockwise instead of moving (one action per tick). When the next cell is
// off the map the guard leaves and the walk ends.
//
// Visited mode counts the distinct cells the guard stands on before leaving.
//
// Loops mode places one extra wall on every floor cell in turn, re-runs the
// walk, and counts placements that trap the guard. A walk is trapped when a
// (position, heading) state repeats. This is a brute force over
// O(cells × path length); WithQuietWalks keeps its trace small by recording
// only placements and verdicts.
package patrol
