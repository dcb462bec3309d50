package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/puzzletrace/grid"
	"github.com/katalvlaran/puzzletrace/trace"
)

// Parse reads one report per line, levels separated by whitespace.
func Parse(input string) ([]Report, error) {
	lines := grid.Lines(input)
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}
	reports := make([]Report, 0, len(lines))
	for n, line := range lines {
		fields := strings.Fields(line)
		r := make(Report, 0, len(fields))
		for _, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %q", ErrBadLevel, n+1, f)
			}
			r = append(r, v)
		}
		reports = append(reports, r)
	}

	return reports, nil
}

// Valid reports whether r is safe as written.
func Valid(r Report) bool {
	return check(nil, 0, r, -1)
}

// ValidTolerant reports whether r becomes safe after removing one level, and
// which level was removed first. Reports of at most one level are safe with
// nothing removed; -1 is returned then and when no removal works.
func ValidTolerant(r Report) (bool, int) {
	if len(r) <= 1 {
		return true, -1
	}
	for skip := range r {
		if check(nil, 0, r, skip) {
			return true, skip
		}
	}

	return false, -1
}

// Solve validates every report under mode and counts the safe ones.
func Solve(reports []Report, mode Mode) Result {
	rec := trace.NewRecorder[Event](len(reports) * 8)
	rec.Emit(Input{Reports: cloneReports(reports)})

	total := 0
	for index, r := range reports {
		rec.Emit(CheckReport{Index: index})

		var safe bool
		switch mode {
		case Tolerant:
			if len(r) <= 1 {
				safe = check(rec, index, r, -1)
				break
			}
			for skip := range r {
				rec.Emit(RemoveLevel{Index: index, Level: skip})
				ok := check(rec, index, r, skip)
				rec.Emit(RemoveLevelDone{Index: index, Level: skip, Safe: ok})
				if ok {
					safe = true
					break
				}
			}
		default:
			safe = check(rec, index, r, -1)
		}

		rec.Emit(Verdict{Index: index, Safe: safe})
		if safe {
			total++
			rec.Emit(Total{Total: total})
		}
	}

	return Result{Safe: total, Trace: rec.Trace()}
}

// check validates r with level skip omitted (skip < 0 keeps every level).
// Events are emitted only when rec is non-nil; indices refer to r.
func check(rec *trace.Recorder[Event], index int, r Report, skip int) bool {
	prev := -1
	ascending, decided := false, false
	for i := range r {
		if i == skip {
			continue
		}
		if prev < 0 {
			prev = i
			continue
		}
		if rec != nil {
			rec.Emit(CheckLevels{Index: index, Lhs: prev, Rhs: i})
		}

		d := grid.AbsDiff(r[prev], r[i])
		okDiff := d >= MinStep && d <= MaxStep
		if rec != nil {
			rec.Emit(AbsDiff{AbsDiff: d, Valid: okDiff})
		}
		if !okDiff {
			return false
		}

		up := r[prev] < r[i]
		if !decided {
			ascending, decided = up, true
		}
		if rec != nil {
			rec.Emit(CheckAscending{Ascending: up, Same: up == ascending})
		}
		if up != ascending {
			return false
		}
		prev = i
	}

	return true
}

func cloneReports(reports []Report) []Report {
	out := make([]Report, len(reports))
	for i, r := range reports {
		out[i] = append(Report(nil), r...)
	}

	return out
}
