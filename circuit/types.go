package circuit

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/puzzletrace/trace"
)

// OutputPrefix marks wires that carry bits of the network's answer.
const OutputPrefix = 'z'

var (
	// ErrEmptyInput indicates the input has no wire assignments.
	ErrEmptyInput = errors.New("circuit: empty input")
	// ErrMissingGates indicates no gate section follows the assignments.
	ErrMissingGates = errors.New("circuit: no gates after wire assignments")
	// ErrBadWire indicates a malformed "name: bit" line.
	ErrBadWire = errors.New("circuit: malformed wire assignment")
	// ErrBadGate indicates a malformed "a OP b -> c" line.
	ErrBadGate = errors.New("circuit: malformed gate")
	// ErrDuplicateWire indicates a wire assigned or driven more than once.
	ErrDuplicateWire = errors.New("circuit: wire defined twice")
	// ErrUndefinedWire indicates a gate operand nothing drives.
	ErrUndefinedWire = errors.New("circuit: undefined wire")
	// ErrCyclicNetwork indicates gates that depend on their own output.
	ErrCyclicNetwork = errors.New("circuit: cyclic network")
	// ErrDuplicateBit indicates two output wires naming the same bit index.
	ErrDuplicateBit = errors.New("circuit: output bit named twice")
	// ErrTooWide indicates more output bits than fit in a uint64.
	ErrTooWide = errors.New("circuit: output wider than 64 bits")
)

// Op is a gate's boolean operator.
type Op int

const (
	And Op = iota
	Or
	Xor
)

// String returns the operator's keyword.
func (o Op) String() string {
	switch o {
	case And:
		return "AND"
	case Or:
		return "OR"
	case Xor:
		return "XOR"
	}

	return fmt.Sprintf("Op(%d)", int(o))
}

// MarshalText encodes o as its keyword.
func (o Op) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// ParseOp decodes an operator keyword.
func ParseOp(s string) (Op, bool) {
	switch s {
	case "AND":
		return And, true
	case "OR":
		return Or, true
	case "XOR":
		return Xor, true
	}

	return And, false
}

// Apply evaluates o over two bits.
func (o Op) Apply(a, b uint8) uint8 {
	switch o {
	case And:
		return a & b
	case Or:
		return a | b
	default:
		return a ^ b
	}
}

// Wire is a primary input and its bit.
type Wire struct {
	Name  string `json:"name"`
	Value uint8  `json:"value"`
}

// Gate drives Out with Op applied to LHS and RHS.
type Gate struct {
	LHS string `json:"lhs"`
	Op  Op     `json:"op"`
	RHS string `json:"rhs"`
	Out string `json:"output"`
}

// Network is a parsed gate network.
type Network struct {
	Inputs []Wire
	Gates  []Gate
}

// Values maps every wire name to its bit.
type Values map[string]uint8

// Result is the outcome of Solve.
type Result struct {
	Output uint64
	Values Values
	Trace  trace.Trace[Event]
}

// Event is implemented by every circuit trace record.
type Event interface {
	trace.Event
	circuitEvent()
}

// Input carries the network.
type Input struct {
	Inputs []Wire `json:"inputs"`
	Gates  []Gate `json:"gates"`
}

// Evaluated reports one gate firing.
type Evaluated struct {
	Gate  Gate  `json:"gate"`
	Value uint8 `json:"value"`
}

// Output is the number read from the output wires.
type Output struct {
	Value uint64 `json:"value"`
}

func (Input) Kind() string     { return "input" }
func (Evaluated) Kind() string { return "evaluate" }
func (Output) Kind() string    { return "output" }

func (Input) circuitEvent()     {}
func (Evaluated) circuitEvent() {}
func (Output) circuitEvent()    {}
