// Package trailhead counts hiking trails on a topographic map.
//
// A trail starts at height 0, ends at height 9, and every step moves to an
// orthogonal neighbour exactly one higher. Cells marked '.' are impassable.
//
// Score mode counts, per trailhead, the distinct height-9 cells reachable from
// it. Rating mode counts every distinct trail, so two trails sharing an
// endpoint both count. Trails are enumerated depth first in North, East,
// South, West order; depth never exceeds ten.
package trailhead
