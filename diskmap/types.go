package diskmap

import (
	"errors"

	"github.com/katalvlaran/puzzletrace/trace"
)

// Free marks an unoccupied unit.
const Free = -1

var (
	// ErrEmptyInput indicates the disk map has no digits.
	ErrEmptyInput = errors.New("diskmap: empty disk map")
	// ErrBadDigit indicates a character other than 0-9.
	ErrBadDigit = errors.New("diskmap: disk map must contain only digits")
)

// Block is one run: a file (File >= 0) or free space (File == Free).
type Block struct {
	File int `json:"file"`
	Size int `json:"size"`
}

// Disk is the parsed run list in disk order.
type Disk struct {
	Blocks []Block
}

// Move relocates one unit.
type Move struct {
	From int `json:"fromIndex"`
	To   int `json:"toIndex"`
}

// Strategy selects a compaction policy.
type Strategy int

const (
	// Units moves single units.
	Units Strategy = iota
	// Files moves whole files.
	Files
)

// Result is the outcome of Solve.
type Result struct {
	Checksum int
	Trace    trace.Trace[Event]
}

// Event is implemented by every diskmap trace record.
type Event interface {
	trace.Event
	diskmapEvent()
}

// Input carries the expanded disk; free units are Free.
type Input struct {
	Disk []int `json:"disk"`
}

// Select highlights a unit.
type Select struct {
	Index int `json:"index"`
}

// SelectOut clears a highlight.
type SelectOut struct {
	Index int `json:"index"`
}

// Moved relocates one unit.
type Moved struct {
	Move
}

// Multiply is one checksum term.
type Multiply struct {
	Lhs    int `json:"lhs"`
	Rhs    int `json:"rhs"`
	Result int `json:"result"`
}

// RunningChecksum is the checksum so far.
type RunningChecksum struct {
	Checksum int `json:"checksum"`
}

func (Input) Kind() string           { return "input" }
func (Select) Kind() string          { return "select" }
func (SelectOut) Kind() string       { return "select-out" }
func (Moved) Kind() string           { return "move" }
func (Multiply) Kind() string        { return "multiply" }
func (RunningChecksum) Kind() string { return "checksum" }

func (Input) diskmapEvent()           {}
func (Select) diskmapEvent()          {}
func (SelectOut) diskmapEvent()       {}
func (Moved) diskmapEvent()           {}
func (Multiply) diskmapEvent()        {}
func (RunningChecksum) diskmapEvent() {}
