package keypad

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/katalvlaran/puzzletrace/grid"
	"github.com/katalvlaran/puzzletrace/trace"
)

// Parse reads one door code per line.
func Parse(input string) ([]string, error) {
	var codes []string
	for i, line := range grid.Lines(input) {
		code := strings.TrimSpace(line)
		if code == "" {
			continue
		}
		if err := checkCode(code); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		codes = append(codes, code)
	}
	if len(codes) == 0 {
		return nil, ErrEmptyInput
	}

	return codes, nil
}

func checkCode(code string) error {
	for _, r := range code {
		if _, ok := numericPad.keys[r]; !ok {
			return fmt.Errorf("%w: %q has key %q", ErrBadCode, code, r)
		}
	}

	return nil
}

// Number returns the numeric part of code, ignoring non-digit keys.
func Number(code string) int {
	n := 0
	for _, r := range code {
		if unicode.IsDigit(r) {
			n = 10*n + int(r-'0')
		}
	}

	return n
}

// Validate checks c against its struct tags.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// MoveSets lists every shortest move sequence from one key to another that
// never crosses gap, each ending with a confirm press. Vertical moves are
// listed before horizontal ones in the base ordering. When nothing survives
// the single sequence "a" is returned.
//
// Complexity: O(n! / (r! c!)) sequences for r vertical and c horizontal moves, n = r + c.
func MoveSets(from, to, gap grid.Vec2) []string {
	// 1) Collect the multiset of single steps.
	var moves []rune
	d := to.Sub(from)
	moves = appendMoves(moves, d.Row, grid.North, grid.South)
	moves = appendMoves(moves, d.Col, grid.West, grid.East)

	// 2) Keep each distinct ordering that stays off the gap.
	var sets []string
	for _, perm := range permutations(moves) {
		if crossesGap(from, perm, gap) {
			continue
		}
		sets = append(sets, perm+string(DirectionalConfirm))
	}
	if len(sets) == 0 {
		return []string{string(DirectionalConfirm)}
	}

	return sets
}

func appendMoves(moves []rune, n int, neg, pos grid.Heading) []rune {
	h := pos
	if n < 0 {
		h, n = neg, -n
	}
	for range n {
		moves = append(moves, h.Rune())
	}

	return moves
}

func crossesGap(from grid.Vec2, moves string, gap grid.Vec2) bool {
	at := from
	for _, r := range moves {
		h, _ := grid.HeadingFromRune(r)
		at = at.Step(h)
		if at == gap {
			return true
		}
	}

	return false
}

// permutations returns the distinct orderings of runes, in the order a
// full permutation walk first produces them.
func permutations(runes []rune) []string {
	if len(runes) == 0 {
		return []string{""}
	}

	var out []string
	seen := make(map[rune]bool, len(runes))
	for i, r := range runes {
		if seen[r] {
			continue
		}
		seen[r] = true
		rest := make([]rune, 0, len(runes)-1)
		rest = append(rest, runes[:i]...)
		rest = append(rest, runes[i+1:]...)
		for _, tail := range permutations(rest) {
			out = append(out, string(r)+tail)
		}
	}

	return out
}

type memoKey struct {
	seq   string
	limit int
	depth int
}

// expander holds the memo for one batch of codes.
type expander struct {
	memo map[memoKey]int
}

func newExpander() *expander {
	return &expander{memo: make(map[memoKey]int)}
}

// minLength returns the fewest operator presses that make the pad at depth
// type seq. Depth 0 is the numeric pad; depth limit is the pad the operator
// presses directly, where every move set costs its own length.
//
// Every robot arm starts and ends a sequence on confirm, so a sequence's cost
// depends only on (seq, depth) and the memo holds across codes.
//
// Complexity:
//
//   - Time:  O(limit × S × M) for S distinct segment strings of at most M move sets each.
//   - Space: O(limit × S) memo entries plus O(limit) recursion.
func (e *expander) minLength(seq string, limit, depth int) int {
	// 1) Memo hit.
	key := memoKey{seq: seq, limit: limit, depth: depth}
	if n, ok := e.memo[key]; ok {
		return n
	}

	// 2) Pick the pad for this depth; the arm starts on its confirm key.
	p := directionalPad
	if depth == 0 {
		p = numericPad
	}
	at := p.keys[p.confirm]

	// 3) Walk seq key by key, costing each hop by its cheapest move set.
	length := 0
	for _, r := range seq {
		next := p.keys[r]
		sets := MoveSets(at, next, p.gap)
		if depth == limit {
			// 3a) Operator pad: all shortest sets have the same length.
			length += len(sets[0])
		} else {
			// 3b) Robot pad: expand each set one level down and keep the minimum.
			best := e.minLength(sets[0], limit, depth+1)
			for _, s := range sets[1:] {
				best = min(best, e.minLength(s, limit, depth+1))
			}
			length += best
		}
		at = next
	}

	// 4) Store and return.
	e.memo[key] = length

	return length
}

// MinLength returns the length of the shortest sequence the operator must
// press to type code through the given number of robot-operated pads.
func MinLength(code string, robots int) (int, error) {
	if err := checkCode(code); err != nil {
		return 0, err
	}
	if err := (Config{Robots: robots}).Validate(); err != nil {
		return 0, err
	}

	return newExpander().minLength(code, robots, 0), nil
}

// Solve types every code through cfg.Robots robot pads and sums the
// complexities.
func Solve(codes []string, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	for _, code := range codes {
		if err := checkCode(code); err != nil {
			return Result{}, err
		}
	}

	rec := trace.NewRecorder[Event](2*len(codes) + 1)
	rec.Emit(Input{Codes: append([]string(nil), codes...)})

	e := newExpander()
	total := 0
	for index, code := range codes {
		rec.Emit(Select{Index: index})
		total += e.minLength(code, cfg.Robots, 0) * Number(code)
		rec.Emit(Total{Total: total})
	}

	return Result{Complexity: total, Trace: rec.Trace()}, nil
}
