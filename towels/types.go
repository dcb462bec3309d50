package towels

import (
	"errors"

	"github.com/katalvlaran/puzzletrace/trace"
)

var (
	// ErrEmptyInput indicates the towel line is missing.
	ErrEmptyInput = errors.New("towels: empty input")
	// ErrMissingPatterns indicates no patterns follow the towel line.
	ErrMissingPatterns = errors.New("towels: no patterns after towel list")
	// ErrMissingSeparator indicates the towel line is not followed by a blank line.
	ErrMissingSeparator = errors.New("towels: no blank line after towel list")
	// ErrEmptyTowel indicates an empty entry in the towel list.
	ErrEmptyTowel = errors.New("towels: empty towel")
)

// Mode selects what Solve totals.
type Mode int

const (
	// Possible counts patterns with at least one arrangement.
	Possible Mode = iota
	// Ways sums the number of arrangements of every pattern.
	Ways
)

// Inventory is the parsed puzzle input.
type Inventory struct {
	Towels   []string `json:"towels"`
	Patterns []string `json:"patterns"`
}

// Result is the outcome of Solve.
type Result struct {
	Answer int
	Trace  trace.Trace[Event]
}

// Event is implemented by every towels trace record.
type Event interface {
	trace.Event
	towelsEvent()
}

// Input carries the inventory.
type Input struct {
	Towels   []string `json:"towels"`
	Patterns []string `json:"patterns"`
}

// Arranged reports the towel lengths of the fewest-towel arrangement of
// pattern Index.
type Arranged struct {
	Index   int   `json:"index"`
	Lengths []int `json:"lengths"`
}

// Counted reports how many arrangements pattern Index has.
type Counted struct {
	Index int `json:"index"`
	Count int `json:"count"`
}

// Impossible reports a pattern with no arrangement.
type Impossible struct {
	Index int `json:"index"`
}

// Output is the final answer.
type Output struct {
	Answer int `json:"answer"`
}

func (Input) Kind() string      { return "input" }
func (Arranged) Kind() string   { return "possible" }
func (Counted) Kind() string    { return "possible" }
func (Impossible) Kind() string { return "impossible" }
func (Output) Kind() string     { return "output" }

func (Input) towelsEvent()      {}
func (Arranged) towelsEvent()   {}
func (Counted) towelsEvent()    {}
func (Impossible) towelsEvent() {}
func (Output) towelsEvent()     {}
