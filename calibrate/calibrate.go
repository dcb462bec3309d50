package calibrate

import (
	"fmt"
	"math/bits"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/puzzletrace/grid"
	"github.com/katalvlaran/puzzletrace/trace"
)

// Parse reads one "test: a b c" equation per line.
func Parse(input string) ([]Equation, error) {
	lines := grid.Lines(input)
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}

	eqs := make([]Equation, 0, len(lines))
	for n, line := range lines {
		head, tail, ok := strings.Cut(line, ":")
		fields := strings.Fields(tail)
		if !ok || len(fields) == 0 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadEquation, n+1, line)
		}
		test, err := strconv.ParseInt(strings.TrimSpace(head), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: test %q", ErrBadEquation, n+1, head)
		}

		eq := Equation{Test: test, Operands: make([]int64, 0, len(fields))}
		for _, f := range fields {
			v, err := strconv.ParseInt(f, 10, 64)
			if err != nil || v < 0 {
				return nil, fmt.Errorf("%w: line %d: %q", ErrBadOperand, n+1, f)
			}
			eq.Operands = append(eq.Operands, v)
		}
		eqs = append(eqs, eq)
	}

	return eqs, nil
}

// Search reports whether any assignment from ops satisfies eq, and the first
// satisfying assignment found.
func Search(eq Equation, ops OperatorSet) (bool, []Operator) {
	if len(eq.Operands) == 0 {
		return false, nil
	}
	s := searcher{eq: eq, ops: ops}
	ok := s.descend(1, value{n: eq.Operands[0]})

	return ok, s.witness
}

// Solve searches every equation with ops and totals the satisfiable ones.
func Solve(eqs []Equation, ops OperatorSet) Result {
	rec := trace.NewRecorder[Event](len(eqs) * 32)
	rec.Emit(Input{Equations: cloneEquations(eqs)})

	var total int64
	for index, eq := range eqs {
		rec.Emit(Select{Index: index})

		s := searcher{eq: eq, ops: ops, rec: rec, index: index}
		ok := len(eq.Operands) > 0 && s.descend(1, value{n: eq.Operands[0]})
		rec.Emit(OverallOk{Index: index, OK: ok})

		if ok {
			total += eq.Test
			rec.Emit(Solution{Index: index, Operators: s.witness})
			rec.Emit(OperatorResult{Index: index, Result: eq.Test})
			rec.Emit(Total{Total: total})
		} else {
			rec.Emit(OperatorResult{Index: index, Result: 0})
		}
		rec.Emit(SelectOut{Index: index})
	}

	return Result{Total: total, Trace: rec.Trace()}
}

// value is a running result that remembers whether it left the int64 range.
type value struct {
	n    int64
	over bool
}

// apply evaluates v op rhs for non-negative operands.
func apply(v value, op Operator, rhs int64) value {
	if v.over {
		if op == Multiply && rhs == 0 {
			return value{}
		}
		return v
	}

	switch op {
	case Add:
		sum := v.n + rhs
		if sum < v.n {
			return value{over: true}
		}
		return value{n: sum}
	case Multiply:
		hi, lo := bits.Mul64(uint64(v.n), uint64(rhs))
		if hi != 0 || lo > 1<<63-1 {
			return value{over: true}
		}
		return value{n: int64(lo)}
	default:
		shifted := v
		for p := rhs; ; p /= 10 {
			shifted = apply(shifted, Multiply, 10)
			if p < 10 {
				break
			}
		}
		return apply(shifted, Add, rhs)
	}
}

// searcher walks the operator tree for one equation.
type searcher struct {
	eq      Equation
	ops     OperatorSet
	rec     *trace.Recorder[Event]
	index   int
	current []Operator
	witness []Operator
}

func (s *searcher) emit(e Event) {
	if s.rec != nil {
		s.rec.Emit(e)
	}
}

// descend places an operator before operand i. All branches are explored.
func (s *searcher) descend(i int, acc value) bool {
	if i == len(s.eq.Operands) {
		ok := !acc.over && acc.n == s.eq.Test
		s.emit(SelectOperatorOk{Index: s.index, OK: ok})
		if ok && s.witness == nil {
			s.witness = append([]Operator{}, s.current...)
		}
		return ok
	}

	found := false
	for _, op := range s.ops {
		s.emit(SelectOperator{Index: s.index, Slot: i - 1, Operator: op})
		next := apply(acc, op, s.eq.Operands[i])
		s.emit(OperatorResult{Index: s.index, Result: next.n, Overflow: next.over})

		s.current = append(s.current, op)
		if s.descend(i+1, next) {
			found = true
		}
		s.current = s.current[:len(s.current)-1]

		s.emit(OperatorResult{Index: s.index, Result: acc.n, Overflow: acc.over})
		s.emit(SelectOperatorOut{Index: s.index, Slot: i - 1})
	}

	return found
}

func cloneEquations(eqs []Equation) []Equation {
	out := make([]Equation, len(eqs))
	for i, eq := range eqs {
		out[i] = Equation{Test: eq.Test, Operands: slices.Clone(eq.Operands)}
	}

	return out
}
