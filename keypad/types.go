package keypad

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/puzzletrace/grid"
	"github.com/katalvlaran/puzzletrace/trace"
)

// Confirm keys on the two pads.
const (
	NumericConfirm     = 'A'
	DirectionalConfirm = 'a'
)

// Robot counts of the puzzle.
const (
	FewRobots  = 2
	ManyRobots = 25
	// MaxRobots keeps sequence lengths inside int.
	MaxRobots = 30
)

var (
	// ErrEmptyInput indicates no codes were found.
	ErrEmptyInput = errors.New("keypad: no codes in input")
	// ErrBadCode indicates a code with a key missing from the numeric pad.
	ErrBadCode = errors.New("keypad: bad code")
	// ErrInvalidConfig wraps validation failures of Config.
	ErrInvalidConfig = errors.New("keypad: invalid config")
)

var validate = validator.New()

// Config sets the number of robot-operated directional pads between the
// operator and the door.
type Config struct {
	Robots int `json:"robots" yaml:"robots" validate:"min=0,max=30"`
}

// pad is a keypad layout.
type pad struct {
	keys    map[rune]grid.Vec2
	gap     grid.Vec2
	confirm rune
}

var (
	numericPad = pad{
		keys: map[rune]grid.Vec2{
			'7': {Row: 0, Col: 0}, '8': {Row: 0, Col: 1}, '9': {Row: 0, Col: 2},
			'4': {Row: 1, Col: 0}, '5': {Row: 1, Col: 1}, '6': {Row: 1, Col: 2},
			'1': {Row: 2, Col: 0}, '2': {Row: 2, Col: 1}, '3': {Row: 2, Col: 2},
			'0': {Row: 3, Col: 1}, 'A': {Row: 3, Col: 2},
		},
		gap:     grid.Vec2{Row: 3, Col: 0},
		confirm: NumericConfirm,
	}
	directionalPad = pad{
		keys: map[rune]grid.Vec2{
			'^': {Row: 0, Col: 1}, 'a': {Row: 0, Col: 2},
			'<': {Row: 1, Col: 0}, 'v': {Row: 1, Col: 1}, '>': {Row: 1, Col: 2},
		},
		gap:     grid.Vec2{Row: 0, Col: 0},
		confirm: DirectionalConfirm,
	}
)

// Result is the outcome of Solve.
type Result struct {
	// Complexity is the sum of sequence length times numeric part per code.
	Complexity int
	Trace      trace.Trace[Event]
}

// Event is implemented by every keypad trace record.
type Event interface {
	trace.Event
	keypadEvent()
}

// Input carries the door codes.
type Input struct {
	Codes []string `json:"codes"`
}

// Select marks code Index as being typed.
type Select struct {
	Index int `json:"index"`
}

// Total is the running complexity.
type Total struct {
	Total int `json:"total"`
}

func (Input) Kind() string  { return "input" }
func (Select) Kind() string { return "select" }
func (Total) Kind() string  { return "total" }

func (Input) keypadEvent()  {}
func (Select) keypadEvent() {}
func (Total) keypadEvent()  {}
