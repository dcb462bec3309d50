package maze

import (
	"errors"

	"github.com/katalvlaran/puzzletrace/grid"
	"github.com/katalvlaran/puzzletrace/trace"
)

// Action costs.
const (
	MoveCost int64 = 1
	TurnCost int64 = 1000
)

var (
	// ErrStartNotFound indicates the map has no S.
	ErrStartNotFound = errors.New("maze: start not found")
	// ErrEndNotFound indicates the map has no E.
	ErrEndNotFound = errors.New("maze: end not found")
	// ErrDuplicateMarker indicates a second S or E.
	ErrDuplicateMarker = errors.New("maze: duplicate start or end")
)

// State is a search node. Equal positions with different headings are
// distinct states.
type State struct {
	Pos    grid.Vec2    `json:"point"`
	Facing grid.Heading `json:"dir"`
}

// Maze is a parsed map. Open cells are true.
type Maze struct {
	Open  grid.Grid[bool]
	Start grid.Vec2
	End   grid.Vec2
}

// Mode selects what Solve reports.
type Mode int

const (
	// Cheapest reports the lowest score and replays one optimal route.
	Cheapest Mode = iota
	// Tiles counts tiles on any optimal route.
	Tiles
)

// Result is the outcome of Solve.
type Result struct {
	// Answer is the lowest score (Cheapest) or the tile count (Tiles).
	Answer int64
	// Found is false when E cannot be reached.
	Found bool
	Trace trace.Trace[Event]
}

// Event is implemented by every maze trace record.
type Event interface {
	trace.Event
	mazeEvent()
}

// Input describes the maze.
type Input struct {
	FreeSpaces []grid.Vec2 `json:"freeSpaces"`
	Start      grid.Vec2   `json:"start"`
	End        grid.Vec2   `json:"end"`
	Width      int         `json:"width"`
	Height     int         `json:"height"`
}

// Select is one step of the replayed route with its cost so far.
type Select struct {
	Point       grid.Vec2    `json:"point"`
	Dir         grid.Heading `json:"dir"`
	RunningCost int64        `json:"runningCost"`
}

// SelectTile marks one tile on an optimal route.
type SelectTile struct {
	Point        grid.Vec2 `json:"point"`
	RunningCount int       `json:"runningCount"`
}

// SelectOut closes the replayed route.
type SelectOut struct {
	Path  []State   `json:"path"`
	Start grid.Vec2 `json:"start"`
	End   grid.Vec2 `json:"end"`
}

// SelectTilesOut closes the tile listing.
type SelectTilesOut struct {
	Path  []grid.Vec2 `json:"path"`
	Start grid.Vec2   `json:"start"`
	End   grid.Vec2   `json:"end"`
}

// Total is the answer.
type Total struct {
	Result int64 `json:"result"`
	Found  bool  `json:"found"`
}

func (Input) Kind() string          { return "input" }
func (Select) Kind() string         { return "select" }
func (SelectTile) Kind() string     { return "select" }
func (SelectOut) Kind() string      { return "select-out" }
func (SelectTilesOut) Kind() string { return "select-out" }
func (Total) Kind() string          { return "total" }

func (Input) mazeEvent()          {}
func (Select) mazeEvent()         {}
func (SelectTile) mazeEvent()     {}
func (SelectOut) mazeEvent()      {}
func (SelectTilesOut) mazeEvent() {}
func (Total) mazeEvent()          {}
