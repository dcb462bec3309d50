package ordering

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/puzzletrace/depgraph"
	"github.com/katalvlaran/puzzletrace/grid"
	"github.com/katalvlaran/puzzletrace/trace"
)

// Parse reads "a|b" rule lines, a blank line, then comma-separated updates.
func Parse(input string) (Manual, error) {
	lines := grid.Lines(input)
	if len(lines) == 0 {
		return Manual{}, ErrEmptyInput
	}

	split := slices.IndexFunc(lines, func(s string) bool { return strings.TrimSpace(s) == "" })
	if split < 0 {
		return Manual{}, ErrMissingUpdates
	}

	var m Manual
	for n, line := range lines[:split] {
		before, after, ok := strings.Cut(strings.TrimSpace(line), "|")
		if !ok {
			return Manual{}, fmt.Errorf("%w: line %d: %q", ErrBadRule, n+1, line)
		}
		b, err1 := strconv.Atoi(before)
		a, err2 := strconv.Atoi(after)
		if err1 != nil || err2 != nil {
			return Manual{}, fmt.Errorf("%w: line %d: %q", ErrBadRule, n+1, line)
		}
		m.Rules = append(m.Rules, Rule{Before: b, After: a})
	}

	for n, line := range lines[split+1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var u Update
		for _, tok := range strings.Split(line, ",") {
			p, err := strconv.Atoi(strings.TrimSpace(tok))
			if err != nil {
				return Manual{}, fmt.Errorf("%w: line %d: %q", ErrBadPage, split+n+2, tok)
			}
			u = append(u, p)
		}
		m.Updates = append(m.Updates, u)
	}
	if len(m.Updates) == 0 {
		return Manual{}, ErrMissingUpdates
	}

	return m, nil
}

// Index returns the position of the rule "before|after", or -1.
func (r Rules) Index(before, after int) int {
	for i, rule := range r {
		if rule.Before == before && rule.After == after {
			return i
		}
	}

	return -1
}

// Valid reports whether u satisfies every rule.
func (r Rules) Valid(u Update) bool {
	return r.check(nil, u)
}

// Reorder returns u rearranged so that every rule between its pages holds.
func (r Rules) Reorder(u Update) (Update, error) {
	g := depgraph.New[int]()
	for _, p := range u {
		g.AddNode(p)
	}
	for _, rule := range r {
		if g.HasNode(rule.Before) && g.HasNode(rule.After) {
			g.AddEdge(rule.Before, rule.After)
		}
	}

	order, err := depgraph.TopologicalSort(g)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnorderable, err)
	}

	return Update(order), nil
}

// Middle returns the page at the centre of u.
func (u Update) Middle() int {
	if len(u) == 0 {
		return 0
	}

	return u[len(u)/2]
}

// Solve walks every update under mode and totals the selected middle pages.
func Solve(m Manual, mode Mode) (Result, error) {
	rec := trace.NewRecorder[Event](len(m.Updates) * 16)
	rec.Emit(Input{Rules: slices.Clone(m.Rules), Updates: cloneUpdates(m.Updates)})

	total := 0
	for index, u := range m.Updates {
		rec.Emit(Select{Index: index})
		valid := m.Rules.check(rec, u)
		rec.Emit(Verdict{Index: index, Valid: valid})

		switch {
		case mode == Check && valid:
			total += u.Middle()
			rec.Emit(Total{Middle: u.Middle(), Total: total})
		case mode == Reorder && !valid:
			fixed, err := m.Rules.Reorder(u)
			if err != nil {
				return Result{}, fmt.Errorf("update %d: %w", index, err)
			}
			rec.Emit(Reordered{Index: index, Pages: slices.Clone(fixed)})
			total += fixed.Middle()
			rec.Emit(Total{Middle: fixed.Middle(), Total: total})
		}
	}

	return Result{Total: total, Trace: rec.Trace()}, nil
}

// check scans every pair i<j and stops at the first forbidden one.
func (r Rules) check(rec *trace.Recorder[Event], u Update) bool {
	for i := range u {
		if rec != nil {
			rec.Emit(SelectPage{I: i})
		}
		for j := i + 1; j < len(u); j++ {
			if rec != nil {
				rec.Emit(SelectAgainst{I: i, J: j})
			}
			if k := r.Index(u[j], u[i]); k >= 0 {
				if rec != nil {
					rec.Emit(RuleBad{RuleIndex: k})
				}
				return false
			}
			if rec != nil {
				rec.Emit(RuleGood{})
			}
		}
	}

	return true
}

func cloneUpdates(us []Update) []Update {
	out := make([]Update, len(us))
	for i, u := range us {
		out[i] = slices.Clone(u)
	}

	return out
}
