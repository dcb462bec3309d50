package patrol

import (
	"fmt"

	"github.com/katalvlaran/puzzletrace/grid"
	"github.com/katalvlaran/puzzletrace/trace"
)

// Parse reads the lab map. Exactly one guard marker (^ > v <) is required;
// its cell becomes floor.
func Parse(input string) (Lab, error) {
	var (
		guard Guard
		found bool
	)
	m, err := grid.Parse(input, func(pos grid.Vec2, r rune) (Tile, error) {
		switch r {
		case '.':
			return Floor, nil
		case '#':
			return Wall, nil
		}
		h, ok := grid.HeadingFromRune(r)
		if !ok {
			return 0, fmt.Errorf("%w: %q at %d,%d", grid.ErrBadCell, r, pos.Row, pos.Col)
		}
		if found {
			return 0, fmt.Errorf("%w: second guard at %d,%d", ErrMultipleGuards, pos.Row, pos.Col)
		}
		guard, found = Guard{Pos: pos, Facing: h}, true

		return Floor, nil
	})
	if err != nil {
		return Lab{}, err
	}
	if !found {
		return Lab{}, ErrGuardNotFound
	}

	return Lab{Map: m, Guard: guard}, nil
}

// Walk runs the guard to completion and returns how the walk ended and the
// number of distinct cells it stood on.
func Walk(lab Lab) (Outcome, int) {
	w := walker{lab: lab}

	return w.run(nil)
}

// Solve runs lab under mode.
func Solve(lab Lab, mode Mode, options ...Option) Result {
	opts := DefaultOptions()
	for _, opt := range options {
		opt(&opts)
	}

	rec := trace.NewRecorder[Event](lab.Map.Width() * lab.Map.Height())
	rec.Emit(Input{Map: grid.Render(lab.Map, func(t Tile) rune { return rune(t) }), Guard: lab.Guard})

	if mode == Visited {
		w := walker{lab: lab, countCells: true}
		_, n := w.run(rec)

		return Result{Answer: n, Trace: rec.Trace()}
	}

	loops := 0
	for pos, t := range lab.Map.All() {
		if t == Wall || (opts.SkipStart && pos == lab.Guard.Pos) {
			continue
		}
		rec.Emit(Obstruct{Pos: pos})

		w := walker{lab: lab, extra: pos, hasExtra: true}
		walkRec := rec
		if opts.QuietWalks {
			walkRec = nil
		}
		outcome, _ := w.run(walkRec)
		if outcome == Looping {
			loops++
			rec.Emit(Total{Steps: loops})
		}
		rec.Emit(WalkDone{Outcome: outcome.String()})
	}

	return Result{Answer: loops, Trace: rec.Trace()}
}

// walker holds one walk's map view.
type walker struct {
	lab        Lab
	extra      grid.Vec2
	hasExtra   bool
	countCells bool
}

func (w walker) blocked(p grid.Vec2) bool {
	return w.lab.Map.At(p) == Wall || (w.hasExtra && p == w.extra)
}

// run walks until the guard exits or repeats a state. Events go to rec when it
// is non-nil.
func (w walker) run(rec *trace.Recorder[Event]) (Outcome, int) {
	emit := func(e Event) {
		if rec != nil {
			rec.Emit(e)
		}
	}

	g := w.lab.Guard
	cells := make(map[grid.Vec2]struct{})
	states := make(map[Guard]struct{})
	for {
		if _, seen := states[g]; seen {
			return Looping, len(cells)
		}
		states[g] = struct{}{}

		if _, seen := cells[g.Pos]; !seen {
			cells[g.Pos] = struct{}{}
			if w.countCells {
				emit(Total{Steps: len(cells)})
			}
		}
		emit(Visit{Pos: g.Pos})

		next := g.Pos.Step(g.Facing)
		if !w.lab.Map.InBounds(next) {
			return Exited, len(cells)
		}
		emit(Check{Pos: next})

		wall := w.blocked(next)
		emit(CheckResult{Pos: next, Open: !wall})
		emit(CheckOut{Pos: next})
		if wall {
			g.Facing = g.Facing.TurnRight()
			emit(Turn{Pos: g.Pos, Facing: g.Facing})
			continue
		}

		emit(MoveTo{From: g.Pos, To: next, Facing: g.Facing})
		g.Pos = next
	}
}
