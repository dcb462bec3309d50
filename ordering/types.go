package ordering

import (
	"errors"

	"github.com/katalvlaran/puzzletrace/trace"
)

var (
	// ErrEmptyInput indicates there is nothing to parse.
	ErrEmptyInput = errors.New("ordering: empty input")
	// ErrMissingUpdates indicates the blank line and update section are absent.
	ErrMissingUpdates = errors.New("ordering: missing update section")
	// ErrBadRule indicates a rule line that is not "a|b".
	ErrBadRule = errors.New("ordering: malformed rule")
	// ErrBadPage indicates an update entry that is not an integer.
	ErrBadPage = errors.New("ordering: malformed page")
	// ErrUnorderable indicates the rules restricted to an update are cyclic.
	ErrUnorderable = errors.New("ordering: update pages cannot be ordered")
)

// Rule requires Before to precede After.
type Rule struct {
	Before int `json:"before"`
	After  int `json:"after"`
}

// Rules is the full rule list in input order.
type Rules []Rule

// Update is one candidate page sequence.
type Update []int

// Manual is a parsed puzzle input.
type Manual struct {
	Rules   Rules
	Updates []Update
}

// Mode selects which updates contribute to the total.
type Mode int

const (
	// Check totals middle pages of updates that already satisfy the rules.
	Check Mode = iota
	// Reorder fixes invalid updates and totals their middle pages.
	Reorder
)

// Result is the outcome of Solve.
type Result struct {
	Total int
	Trace trace.Trace[Event]
}

// Event is implemented by every ordering trace record.
type Event interface {
	trace.Event
	orderingEvent()
}

// Input carries the parsed manual.
type Input struct {
	Rules   Rules    `json:"rules"`
	Updates []Update `json:"updates"`
}

// Select starts checking update Index.
type Select struct {
	Index int `json:"index"`
}

// SelectPage picks the earlier page at position I.
type SelectPage struct {
	I int `json:"i"`
}

// SelectAgainst compares page I with the later page J.
type SelectAgainst struct {
	I int `json:"i"`
	J int `json:"j"`
}

// RuleBad reports that rule RuleIndex forbids the current pair.
type RuleBad struct {
	RuleIndex int `json:"ruleIndex"`
}

// RuleGood reports that no rule forbids the current pair.
type RuleGood struct{}

// Verdict closes update Index.
type Verdict struct {
	Index int  `json:"index"`
	Valid bool `json:"valid"`
}

// Reordered carries the fixed page order of update Index.
type Reordered struct {
	Index int    `json:"index"`
	Pages Update `json:"pages"`
}

// Total is the running sum of middle pages.
type Total struct {
	Middle int `json:"middle"`
	Total  int `json:"total"`
}

func (Input) Kind() string         { return "input" }
func (Select) Kind() string        { return "select" }
func (SelectPage) Kind() string    { return "check-select" }
func (SelectAgainst) Kind() string { return "check-select-against" }
func (RuleBad) Kind() string       { return "check-select-rule-bad" }
func (RuleGood) Kind() string      { return "check-select-rule-good" }
func (Verdict) Kind() string       { return "verdict" }
func (Reordered) Kind() string     { return "reordered" }
func (Total) Kind() string         { return "total" }

func (Input) orderingEvent()         {}
func (Select) orderingEvent()        {}
func (SelectPage) orderingEvent()    {}
func (SelectAgainst) orderingEvent() {}
func (RuleBad) orderingEvent()       {}
func (RuleGood) orderingEvent()      {}
func (Verdict) orderingEvent()       {}
func (Reordered) orderingEvent()     {}
func (Total) orderingEvent()         {}
