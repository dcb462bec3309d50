package racetrack

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/puzzletrace/grid"
	"github.com/katalvlaran/puzzletrace/maze"
	"github.com/katalvlaran/puzzletrace/trace"
)

// Customary settings.
const (
	// ShortJump and LongJump are the two cheat budgets of the puzzle.
	ShortJump = 2
	LongJump  = 20

	// SmallMapWidth is the widest map that uses SmallMapThreshold.
	SmallMapWidth     = 15
	SmallMapThreshold = 10
	LargeMapThreshold = 100
)

var (
	// ErrInvalidConfig wraps validation failures of Config.
	ErrInvalidConfig = errors.New("racetrack: invalid config")

	// Marker errors are shared with the maze parser.
	ErrStartNotFound = maze.ErrStartNotFound
	ErrEndNotFound   = maze.ErrEndNotFound
)

var validate = validator.New()

// Config parameterises the cheat scan.
type Config struct {
	JumpBudget    int `json:"jumpBudget" yaml:"jump_budget" validate:"required,min=1"`
	SaveThreshold int `json:"saveThreshold" yaml:"save_threshold" validate:"required,min=1"`
}

// Track is a parsed racetrack. Open cells are true.
type Track struct {
	Open  grid.Grid[bool]
	Start grid.Vec2
	End   grid.Vec2
}

// Shortcut is one counted cheat.
type Shortcut struct {
	In    grid.Vec2 `json:"jumpIn"`
	Out   grid.Vec2 `json:"jumpOut"`
	Steps int       `json:"steps"`
	Saved int64     `json:"saved"`
}

// Result is the outcome of Solve.
type Result struct {
	Cheats int
	// Found is false when E cannot be reached.
	Found bool
	Trace trace.Trace[Event]
}

// Event is implemented by every racetrack trace record.
type Event interface {
	trace.Event
	racetrackEvent()
}

// Input describes the track.
type Input struct {
	FreeSpaces []grid.Vec2 `json:"freeSpaces"`
	Start      grid.Vec2   `json:"start"`
	End        grid.Vec2   `json:"end"`
	Width      int         `json:"width"`
	Height     int         `json:"height"`
}

// Select shows the honest route.
type Select struct {
	Path  []grid.Vec2 `json:"path"`
	Start grid.Vec2   `json:"start"`
	End   grid.Vec2   `json:"end"`
}

// SelectJump highlights one counted cheat.
type SelectJump struct {
	Shortcut
}

// SelectJumpOut clears a cheat highlight.
type SelectJumpOut struct {
	In  grid.Vec2 `json:"jumpIn"`
	Out grid.Vec2 `json:"jumpOut"`
}

// SelectOut clears the honest route.
type SelectOut struct {
	Path  []grid.Vec2 `json:"path"`
	Start grid.Vec2   `json:"start"`
	End   grid.Vec2   `json:"end"`
}

// Total is the running cheat count.
type Total struct {
	Result int `json:"result"`
}

func (Input) Kind() string         { return "input" }
func (Select) Kind() string        { return "select" }
func (SelectJump) Kind() string    { return "select-jump" }
func (SelectJumpOut) Kind() string { return "select-jump-out" }
func (SelectOut) Kind() string     { return "select-out" }
func (Total) Kind() string         { return "total" }

func (Input) racetrackEvent()         {}
func (Select) racetrackEvent()        {}
func (SelectJump) racetrackEvent()    {}
func (SelectJumpOut) racetrackEvent() {}
func (SelectOut) racetrackEvent()     {}
func (Total) racetrackEvent()         {}
