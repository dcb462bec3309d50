package towels

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/puzzletrace/grid"
	"github.com/katalvlaran/puzzletrace/trace"
)

// Parse reads a comma-separated towel line, a blank line and one pattern per
// line.
func Parse(input string) (Inventory, error) {
	lines := grid.Lines(input)
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return Inventory{}, ErrEmptyInput
	}

	var inv Inventory
	for i, field := range strings.Split(lines[0], ",") {
		t := strings.TrimSpace(field)
		if t == "" {
			return Inventory{}, fmt.Errorf("%w: entry %d", ErrEmptyTowel, i)
		}
		inv.Towels = append(inv.Towels, t)
	}
	if len(lines) < 2 {
		return Inventory{}, ErrMissingPatterns
	}
	if strings.TrimSpace(lines[1]) != "" {
		return Inventory{}, fmt.Errorf("%w: line 2 is %q", ErrMissingSeparator, lines[1])
	}
	for _, line := range lines[2:] {
		if p := strings.TrimSpace(line); p != "" {
			inv.Patterns = append(inv.Patterns, p)
		}
	}
	if len(inv.Patterns) == 0 {
		return Inventory{}, ErrMissingPatterns
	}

	return inv, nil
}

// arrangement is a memoized answer for one suffix.
type arrangement struct {
	towels []string
	ok     bool
}

type arranger struct {
	towels []string
	memo   map[string]arrangement
}

func (a *arranger) best(rest string) arrangement {
	if rest == "" {
		return arrangement{ok: true}
	}
	if got, seen := a.memo[rest]; seen {
		return got
	}

	var out arrangement
	for _, t := range a.towels {
		if !strings.HasPrefix(rest, t) {
			continue
		}
		sub := a.best(rest[len(t):])
		if !sub.ok {
			continue
		}
		if !out.ok || len(sub.towels)+1 < len(out.towels) {
			out = arrangement{towels: append([]string{t}, sub.towels...), ok: true}
		}
	}
	a.memo[rest] = out

	return out
}

// Arrange returns the fewest-towel arrangement of pattern and whether one
// exists. An empty pattern is trivially arranged with no towels.
func Arrange(pattern string, towels []string) ([]string, bool) {
	a := arranger{towels: towels, memo: make(map[string]arrangement)}
	got := a.best(pattern)
	if !got.ok {
		return nil, false
	}

	return append([]string{}, got.towels...), true
}

type counter struct {
	towels []string
	memo   map[string]int
}

func (c *counter) count(rest string) int {
	if rest == "" {
		return 1
	}
	if n, seen := c.memo[rest]; seen {
		return n
	}

	n := 0
	for _, t := range c.towels {
		if strings.HasPrefix(rest, t) {
			n += c.count(rest[len(t):])
		}
	}
	c.memo[rest] = n

	return n
}

// Count returns the number of distinct towel sequences that spell pattern.
func Count(pattern string, towels []string) int {
	c := counter{towels: towels, memo: make(map[string]int)}

	return c.count(pattern)
}

// Solve checks every pattern of inv and totals according to mode.
func Solve(inv Inventory, mode Mode) Result {
	rec := trace.NewRecorder[Event](len(inv.Patterns) + 2)
	rec.Emit(Input{
		Towels:   append([]string(nil), inv.Towels...),
		Patterns: append([]string(nil), inv.Patterns...),
	})

	answer := 0
	for index, p := range inv.Patterns {
		if mode == Ways {
			n := Count(p, inv.Towels)
			if n == 0 {
				rec.Emit(Impossible{Index: index})
				continue
			}
			answer += n
			rec.Emit(Counted{Index: index, Count: n})
			continue
		}

		got, ok := Arrange(p, inv.Towels)
		if !ok {
			rec.Emit(Impossible{Index: index})
			continue
		}
		answer++
		lengths := make([]int, len(got))
		for i, t := range got {
			lengths[i] = len(t)
		}
		rec.Emit(Arranged{Index: index, Lengths: lengths})
	}
	rec.Emit(Output{Answer: answer})

	return Result{Answer: answer, Trace: rec.Trace()}
}
