// Package racetrack counts cheats on a single-lane racetrack.
//
// Distances from S are computed with pathfind.Search over plain positions
// (every step costs 1, no heading). A cheat lets the racer pass through walls
// for up to JumpBudget steps: it jumps from a reached cell In to another
// reached cell Out at Manhattan distance ≤ JumpBudget, saving
//
//	dist(Out) − dist(In) − manhattan(In, Out)
//
// picoseconds. Every ordered pair whose saving meets SaveThreshold counts as
// one cheat. The scan is O(V²) over reached cells, which is fine at puzzle
// scale only.
//
// Config is validated with go-playground/validator; DefaultConfig picks the
// customary threshold for the map size.
package racetrack
