package patrol

import (
	"errors"

	"github.com/katalvlaran/puzzletrace/grid"
	"github.com/katalvlaran/puzzletrace/trace"
)

var (
	// ErrGuardNotFound indicates the map has no ^ > v < marker.
	ErrGuardNotFound = errors.New("patrol: guard not found")
	// ErrMultipleGuards indicates more than one guard marker.
	ErrMultipleGuards = errors.New("patrol: more than one guard")
)

// Tile is one lab cell.
type Tile byte

const (
	Floor Tile = '.'
	Wall  Tile = '#'
)

// Guard is the walker's state. Two guards are equal when both position and
// heading match.
type Guard struct {
	Pos    grid.Vec2    `json:"pos"`
	Facing grid.Heading `json:"facing"`
}

// Lab is a parsed map with the guard removed from its cell.
type Lab struct {
	Map   grid.Grid[Tile]
	Guard Guard
}

// Outcome is how a walk ended.
type Outcome int

const (
	// Exited means the guard stepped off the map.
	Exited Outcome = iota
	// Looping means a (position, heading) state repeated.
	Looping
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	if o == Looping {
		return "looping"
	}

	return "exited"
}

// Mode selects what Solve counts.
type Mode int

const (
	// Visited counts distinct cells on the walk.
	Visited Mode = iota
	// Loops counts single-wall placements that trap the guard.
	Loops
)

// Option configures Solve.
type Option func(*Options)

// Options holds Solve settings.
type Options struct {
	// SkipStart excludes the guard's starting cell from Loops placements.
	SkipStart bool
	// QuietWalks suppresses per-step events of Loops walks.
	QuietWalks bool
}

// DefaultOptions tries every floor cell and records every step.
func DefaultOptions() Options {
	return Options{}
}

// WithSkipStart excludes the guard's own cell from wall placement.
func WithSkipStart() Option {
	return func(o *Options) { o.SkipStart = true }
}

// WithQuietWalks records only placements and loop verdicts in Loops mode.
func WithQuietWalks() Option {
	return func(o *Options) { o.QuietWalks = true }
}

// Result is the outcome of Solve.
type Result struct {
	Answer int
	Trace  trace.Trace[Event]
}

// Event is implemented by every patrol trace record.
type Event interface {
	trace.Event
	patrolEvent()
}

// Input carries the map rows and the guard.
type Input struct {
	Map   []string `json:"map"`
	Guard Guard    `json:"guard"`
}

// Obstruct places the extra wall for one Loops walk.
type Obstruct struct {
	Pos grid.Vec2 `json:"pos"`
}

// Visit marks the guard standing on Pos.
type Visit struct {
	Pos grid.Vec2 `json:"pos"`
}

// Check looks at the cell ahead.
type Check struct {
	Pos grid.Vec2 `json:"pos"`
}

// CheckResult reports whether the cell ahead is open.
type CheckResult struct {
	Pos  grid.Vec2 `json:"pos"`
	Open bool      `json:"result"`
}

// CheckOut ends the look-ahead.
type CheckOut struct {
	Pos grid.Vec2 `json:"pos"`
}

// MoveTo steps the guard forward.
type MoveTo struct {
	From   grid.Vec2    `json:"from"`
	To     grid.Vec2    `json:"to"`
	Facing grid.Heading `json:"facing"`
}

// Turn rotates the guard in place.
type Turn struct {
	Pos    grid.Vec2    `json:"pos"`
	Facing grid.Heading `json:"facing"`
}

// Total is the running answer.
type Total struct {
	Steps int `json:"steps"`
}

// WalkDone closes one walk.
type WalkDone struct {
	Outcome string `json:"outcome"`
}

func (Input) Kind() string       { return "input" }
func (Obstruct) Kind() string    { return "obstruct" }
func (Visit) Kind() string       { return "visit" }
func (Check) Kind() string       { return "check" }
func (CheckResult) Kind() string { return "check-result" }
func (CheckOut) Kind() string    { return "check-out" }
func (MoveTo) Kind() string      { return "move-to" }
func (Turn) Kind() string        { return "turn" }
func (Total) Kind() string       { return "total" }
func (WalkDone) Kind() string    { return "walk-done" }

func (Input) patrolEvent()       {}
func (Obstruct) patrolEvent()    {}
func (Visit) patrolEvent()       {}
func (Check) patrolEvent()       {}
func (CheckResult) patrolEvent() {}
func (CheckOut) patrolEvent()    {}
func (MoveTo) patrolEvent()      {}
func (Turn) patrolEvent()        {}
func (Total) patrolEvent()       {}
func (WalkDone) patrolEvent()    {}
