package report

import (
	"errors"

	"github.com/katalvlaran/puzzletrace/trace"
)

// Bounds on the absolute difference between adjacent levels.
const (
	MinStep = 1
	MaxStep = 3
)

var (
	// ErrEmptyInput indicates the input holds no reports.
	ErrEmptyInput = errors.New("report: no reports in input")
	// ErrBadLevel indicates a token that is not an integer.
	ErrBadLevel = errors.New("report: level is not an integer")
)

// Report is one line of levels.
type Report []int

// Mode selects strict or single-removal validation.
type Mode int

const (
	// Strict requires the report to be safe as written.
	Strict Mode = iota
	// Tolerant accepts reports that become safe after dropping one level.
	Tolerant
)

// Result is the outcome of Solve.
type Result struct {
	// Safe is the number of accepted reports.
	Safe  int
	Trace trace.Trace[Event]
}

// Event is implemented by every report trace record.
type Event interface {
	trace.Event
	reportEvent()
}

// Input carries the parsed reports.
type Input struct {
	Reports []Report `json:"reports"`
}

// CheckReport marks the start of report Index.
type CheckReport struct {
	Index int `json:"index"`
}

// RemoveLevel marks a tolerant-mode attempt with level Level dropped.
type RemoveLevel struct {
	Index int `json:"index"`
	Level int `json:"level"`
}

// RemoveLevelDone closes a RemoveLevel attempt.
type RemoveLevelDone struct {
	Index int  `json:"index"`
	Level int  `json:"level"`
	Safe  bool `json:"safe"`
}

// CheckLevels compares levels Lhs and Rhs (indices into the original report).
type CheckLevels struct {
	Index int `json:"index"`
	Lhs   int `json:"lhs"`
	Rhs   int `json:"rhs"`
}

// AbsDiff reports the absolute difference of the current pair.
type AbsDiff struct {
	AbsDiff int  `json:"absDiff"`
	Valid   bool `json:"valid"`
}

// CheckAscending reports the direction of the current pair against the report's.
type CheckAscending struct {
	Ascending bool `json:"ascending"`
	Same      bool `json:"same"`
}

// Verdict closes report Index.
type Verdict struct {
	Index int  `json:"index"`
	Safe  bool `json:"safe"`
}

// Total is the running count of safe reports.
type Total struct {
	Total int `json:"total"`
}

func (Input) Kind() string           { return "input" }
func (CheckReport) Kind() string     { return "check-report" }
func (RemoveLevel) Kind() string     { return "remove-level" }
func (RemoveLevelDone) Kind() string { return "remove-level-done" }
func (CheckLevels) Kind() string     { return "check-levels" }
func (AbsDiff) Kind() string         { return "abs-diff" }
func (CheckAscending) Kind() string  { return "check-ascending" }
func (Verdict) Kind() string         { return "verdict" }
func (Total) Kind() string           { return "total" }

func (Input) reportEvent()           {}
func (CheckReport) reportEvent()     {}
func (RemoveLevel) reportEvent()     {}
func (RemoveLevelDone) reportEvent() {}
func (CheckLevels) reportEvent()     {}
func (AbsDiff) reportEvent()         {}
func (CheckAscending) reportEvent()  {}
func (Verdict) reportEvent()         {}
func (Total) reportEvent()           {}
