package clawmachine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/puzzletrace/grid"
	"github.com/katalvlaran/puzzletrace/trace"
)

var (
	buttonRe = regexp.MustCompile(`^Button ([AB]): X\+(\d+), Y\+(\d+)$`)
	prizeRe  = regexp.MustCompile(`^Prize: X=(\d+), Y=(\d+)$`)
)

// Parse reads machine blocks separated by blank lines.
func Parse(input string) ([]Machine, error) {
	var (
		machines []Machine
		block    []string
	)
	flush := func() error {
		if len(block) == 0 {
			return nil
		}
		m, err := parseMachine(block)
		if err != nil {
			return fmt.Errorf("machine %d: %w", len(machines), err)
		}
		machines = append(machines, m)
		block = block[:0]

		return nil
	}

	for _, line := range grid.Lines(input) {
		line = strings.TrimSpace(line)
		if line == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		block = append(block, line)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(machines) == 0 {
		return nil, ErrEmptyInput
	}

	return machines, nil
}

func parseMachine(lines []string) (Machine, error) {
	if len(lines) != 3 {
		return Machine{}, fmt.Errorf("%w: want 3 lines, got %d", ErrBadMachine, len(lines))
	}
	a := buttonRe.FindStringSubmatch(lines[0])
	b := buttonRe.FindStringSubmatch(lines[1])
	p := prizeRe.FindStringSubmatch(lines[2])
	if a == nil || b == nil || p == nil || a[1] != "A" || b[1] != "B" {
		return Machine{}, fmt.Errorf("%w: %q", ErrBadMachine, strings.Join(lines, " / "))
	}

	nums := make([]int64, 0, 6)
	for _, s := range []string{a[2], a[3], b[2], b[3], p[1], p[2]} {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Machine{}, fmt.Errorf("%w: %v", ErrBadMachine, err)
		}
		nums = append(nums, v)
	}

	return Machine{XA: nums[0], YA: nums[1], XB: nums[2], YB: nums[3], X: nums[4], Y: nums[5]}, nil
}

// Solve returns the presses that win m with both prize coordinates shifted by
// offset, and whether the machine can be won at all.
func (m Machine) Solve(offset int64) (Presses, bool) {
	x, y := m.X+offset, m.Y+offset

	den := m.XA*m.YB - m.YA*m.XB
	if den == 0 {
		return Presses{}, false
	}
	p := Presses{
		A: floorDiv(m.YB*x-m.XB*y, den),
		B: floorDiv(m.XA*y-m.YA*x, den),
	}
	if p.A < 0 || p.B < 0 {
		return Presses{}, false
	}
	if p.A*m.XA+p.B*m.XB != x || p.A*m.YA+p.B*m.YB != y {
		return Presses{}, false
	}

	return p, true
}

// Solve works every machine with the given prize offset and totals the tokens.
func Solve(machines []Machine, offset int64) Result {
	rec := trace.NewRecorder[Event](2*len(machines) + 1)
	rec.Emit(Input{Machines: append([]Machine(nil), machines...)})

	var total int64
	for index, m := range machines {
		p, ok := m.Solve(offset)
		if ok {
			total += p.Cost()
			rec.Emit(Solution{Index: index, Presses: &p})
		} else {
			rec.Emit(Solution{Index: index})
		}
		rec.Emit(Total{Total: total})
	}

	return Result{Tokens: total, Trace: rec.Trace()}
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}
