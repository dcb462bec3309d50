package trailhead

import (
	"github.com/katalvlaran/puzzletrace/grid"
	"github.com/katalvlaran/puzzletrace/trace"
)

// Height bounds of a trail.
const (
	Base = 0
	Peak = 9
	// Impassable is the height of a '.' cell.
	Impassable = -1
)

// Topo is a height map.
type Topo = grid.Grid[int]

// Trail is the ordered list of cells from a trailhead to a peak.
type Trail []grid.Vec2

// Mode selects what Solve counts.
type Mode int

const (
	// Score counts distinct reachable peaks per trailhead.
	Score Mode = iota
	// Rating counts distinct trails.
	Rating
)

// Result is the outcome of Solve.
type Result struct {
	Total int
	Trace trace.Trace[Event]
}

// Event is implemented by every trailhead trace record.
type Event interface {
	trace.Event
	trailheadEvent()
}

// Input carries the map rows.
type Input struct {
	Map []string `json:"map"`
}

// SelectStart highlights a cell on the current trail.
type SelectStart struct {
	Start grid.Vec2 `json:"start"`
}

// SelectStartOut clears the trailhead highlight.
type SelectStartOut struct {
	Start grid.Vec2 `json:"start"`
}

// SelectTrailOut clears a counted trail (without its trailhead).
type SelectTrailOut struct {
	Trail Trail `json:"trail"`
}

// Total is the running count.
type Total struct {
	Total int `json:"total"`
}

func (Input) Kind() string          { return "input" }
func (SelectStart) Kind() string    { return "select-start" }
func (SelectStartOut) Kind() string { return "select-start-out" }
func (SelectTrailOut) Kind() string { return "select-trail-out" }
func (Total) Kind() string          { return "total" }

func (Input) trailheadEvent()          {}
func (SelectStart) trailheadEvent()    {}
func (SelectStartOut) trailheadEvent() {}
func (SelectTrailOut) trailheadEvent() {}
func (Total) trailheadEvent()          {}
