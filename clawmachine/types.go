package clawmachine

import (
	"errors"

	"github.com/katalvlaran/puzzletrace/trace"
)

// Token costs per press.
const (
	CostA = 3
	CostB = 1
)

// PrizeOffset is added to both prize coordinates by the corrected unit
// conversion.
const PrizeOffset int64 = 10000000000000

var (
	// ErrEmptyInput indicates no machine blocks were found.
	ErrEmptyInput = errors.New("clawmachine: no machines in input")
	// ErrBadMachine indicates a block that is not three well-formed lines.
	ErrBadMachine = errors.New("clawmachine: malformed machine")
)

// Machine holds one claw machine's button vectors and prize location.
type Machine struct {
	XA int64 `json:"xA"`
	YA int64 `json:"yA"`
	XB int64 `json:"xB"`
	YB int64 `json:"yB"`
	X  int64 `json:"xPrize"`
	Y  int64 `json:"yPrize"`
}

// Presses is a winning button combination.
type Presses struct {
	A int64 `json:"aPresses"`
	B int64 `json:"bPresses"`
}

// Cost returns the tokens spent on p.
func (p Presses) Cost() int64 { return CostA*p.A + CostB*p.B }

// Result is the outcome of Solve.
type Result struct {
	// Tokens is the cheapest total cost to win every winnable machine.
	Tokens int64
	Trace  trace.Trace[Event]
}

// Event is implemented by every clawmachine trace record.
type Event interface {
	trace.Event
	clawmachineEvent()
}

// Input carries the parsed machines.
type Input struct {
	Machines []Machine `json:"machines"`
}

// Solution reports machine Index; Presses is nil when it cannot be won.
type Solution struct {
	Index   int      `json:"index"`
	Presses *Presses `json:"presses"`
}

// Total is the running token count.
type Total struct {
	Total int64 `json:"total"`
}

func (Input) Kind() string    { return "input" }
func (Solution) Kind() string { return "solution" }
func (Total) Kind() string    { return "total" }

func (Input) clawmachineEvent()    {}
func (Solution) clawmachineEvent() {}
func (Total) clawmachineEvent()    {}
