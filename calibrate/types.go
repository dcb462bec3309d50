package calibrate

import (
	"errors"

	"github.com/katalvlaran/puzzletrace/trace"
)

var (
	// ErrEmptyInput indicates no equations were found.
	ErrEmptyInput = errors.New("calibrate: no equations in input")
	// ErrBadEquation indicates a line not shaped "test: a b c".
	ErrBadEquation = errors.New("calibrate: malformed equation")
	// ErrBadOperand indicates a negative or non-numeric operand.
	ErrBadOperand = errors.New("calibrate: operand must be a non-negative integer")
)

// Operator joins two operands.
type Operator int

const (
	Add Operator = iota
	Multiply
	Concat
)

// String returns the operator symbol.
func (o Operator) String() string {
	switch o {
	case Add:
		return "+"
	case Multiply:
		return "*"
	case Concat:
		return "||"
	}

	return "?"
}

// MarshalText implements encoding.TextMarshaler.
func (o Operator) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// OperatorSet is the ordered list of operators a search may place.
type OperatorSet []Operator

// Built-in operator sets.
var (
	Basic    = OperatorSet{Add, Multiply}
	Extended = OperatorSet{Add, Multiply, Concat}
)

// Equation is a target and its operands in evaluation order.
type Equation struct {
	Test     int64   `json:"test"`
	Operands []int64 `json:"operands"`
}

// Result is the outcome of Solve.
type Result struct {
	// Total sums the test values of satisfiable equations.
	Total int64
	Trace trace.Trace[Event]
}

// Event is implemented by every calibrate trace record.
type Event interface {
	trace.Event
	calibrateEvent()
}

// Input carries the parsed equations.
type Input struct {
	Equations []Equation `json:"equations"`
}

// Select starts equation Index.
type Select struct {
	Index int `json:"equationIndex"`
}

// SelectOut ends equation Index.
type SelectOut struct {
	Index int `json:"equationIndex"`
}

// SelectOperator places Operator in slot Slot (between operands Slot and Slot+1).
type SelectOperator struct {
	Index    int      `json:"equationIndex"`
	Slot     int      `json:"operatorIndex"`
	Operator Operator `json:"operator"`
}

// SelectOperatorOut clears slot Slot.
type SelectOperatorOut struct {
	Index int `json:"equationIndex"`
	Slot  int `json:"operatorIndex"`
}

// OperatorResult is the running left-to-right value.
type OperatorResult struct {
	Index    int   `json:"equationIndex"`
	Result   int64 `json:"result"`
	Overflow bool  `json:"overflow,omitempty"`
}

// SelectOperatorOk reports whether a complete assignment hit the test value.
type SelectOperatorOk struct {
	Index int  `json:"equationIndex"`
	OK    bool `json:"ok"`
}

// OverallOk reports whether any assignment worked.
type OverallOk struct {
	Index int  `json:"equationIndex"`
	OK    bool `json:"ok"`
}

// Solution carries the witness assignment.
type Solution struct {
	Index     int        `json:"equationIndex"`
	Operators []Operator `json:"solution"`
}

// Total is the running sum of satisfiable test values.
type Total struct {
	Total int64 `json:"total"`
}

func (Input) Kind() string             { return "input" }
func (Select) Kind() string            { return "select" }
func (SelectOut) Kind() string         { return "select-out" }
func (SelectOperator) Kind() string    { return "select-operator" }
func (SelectOperatorOut) Kind() string { return "select-operator-out" }
func (OperatorResult) Kind() string    { return "select-operator-result" }
func (SelectOperatorOk) Kind() string  { return "select-operator-ok" }
func (OverallOk) Kind() string         { return "overall-ok" }
func (Solution) Kind() string          { return "solution" }
func (Total) Kind() string             { return "total" }

func (Input) calibrateEvent()             {}
func (Select) calibrateEvent()            {}
func (SelectOut) calibrateEvent()         {}
func (SelectOperator) calibrateEvent()    {}
func (SelectOperatorOut) calibrateEvent() {}
func (OperatorResult) calibrateEvent()    {}
func (SelectOperatorOk) calibrateEvent()  {}
func (OverallOk) calibrateEvent()         {}
func (Solution) calibrateEvent()          {}
func (Total) calibrateEvent()             {}
