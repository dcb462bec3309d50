// Package maze finds the cheapest routes through a reindeer maze.
//
// A reindeer starts on S facing East and must reach E. Stepping forward costs
// MoveCost; turning 90° in place costs TurnCost. Turning around in one action
// is not allowed, so a reversal costs two turns.
//
// The search runs pathfind.Search over (position, heading) states, since the
// same tile reached with different headings has different onward costs. The
// answer is the cheapest distance to E over all four headings.
//
// Cheapest mode replays one optimal route with running costs. Tiles mode
// counts the distinct tiles that lie on at least one optimal route.
package maze
