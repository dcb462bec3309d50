package racetrack

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/puzzletrace/grid"
	"github.com/katalvlaran/puzzletrace/maze"
	"github.com/katalvlaran/puzzletrace/pathfind"
	"github.com/katalvlaran/puzzletrace/trace"
)

// Parse reads a track of '#' walls and '.' floor with one S and one E.
func Parse(input string) (Track, error) {
	m, err := maze.Parse(input)
	if err != nil {
		return Track{}, fmt.Errorf("racetrack: %w", err)
	}

	return Track{Open: m.Open, Start: m.Start, End: m.End}, nil
}

// DefaultConfig returns the customary config for t with the given budget:
// SmallMapThreshold for maps up to SmallMapWidth wide, LargeMapThreshold
// otherwise.
func DefaultConfig(t Track, jumpBudget int) Config {
	threshold := LargeMapThreshold
	if t.Open.Width() <= SmallMapWidth {
		threshold = SmallMapThreshold
	}

	return Config{JumpBudget: jumpBudget, SaveThreshold: threshold}
}

// Validate checks c's field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Next lists the open orthogonal neighbours of p at unit cost.
func (t Track) Next(p grid.Vec2) []pathfind.Edge[grid.Vec2] {
	ns := t.Open.Neighbors4(p)
	out := make([]pathfind.Edge[grid.Vec2], 0, len(ns))
	for _, n := range ns {
		if t.Open.At(n) {
			out = append(out, pathfind.Edge[grid.Vec2]{To: n, Cost: 1})
		}
	}

	return out
}

// Search computes distances from S to every reachable cell.
func Search(t Track) (*pathfind.Result[grid.Vec2], error) {
	return pathfind.Search(t.Start, t.Next)
}

// Shortcuts scans every ordered pair of reached cells, in settle order, and
// returns the cheats allowed by cfg.
func Shortcuts(res *pathfind.Result[grid.Vec2], cfg Config) []Shortcut {
	cells := res.Settled()
	var out []Shortcut
	for _, in := range cells {
		dIn, _ := res.Dist(in)
		for _, o := range cells {
			if o == in {
				continue
			}
			steps := grid.Manhattan(in, o)
			if steps > cfg.JumpBudget {
				continue
			}
			dOut, _ := res.Dist(o)
			saved := dOut - dIn - int64(steps)
			if saved >= int64(cfg.SaveThreshold) {
				out = append(out, Shortcut{In: in, Out: o, Steps: steps, Saved: saved})
			}
		}
	}

	return out
}

// Solve validates cfg, measures t and counts cheats.
func Solve(t Track, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	rec := trace.NewRecorder[Event](t.Open.Width() * t.Open.Height())
	var free []grid.Vec2
	for p, open := range t.Open.All() {
		if open {
			free = append(free, p)
		}
	}
	rec.Emit(Input{FreeSpaces: free, Start: t.Start, End: t.End, Width: t.Open.Width(), Height: t.Open.Height()})

	res, err := Search(t)
	if err != nil {
		return Result{}, err
	}
	path := res.Path(t.End)
	if path == nil {
		rec.Emit(Total{Result: 0})
		return Result{Trace: rec.Trace()}, nil
	}
	rec.Emit(Select{Path: slices.Clone(path), Start: t.Start, End: t.End})

	cheats := Shortcuts(res, cfg)
	for i, sc := range cheats {
		rec.Emit(SelectJump{Shortcut: sc})
		rec.Emit(Total{Result: i + 1})
		rec.Emit(SelectJumpOut{In: sc.In, Out: sc.Out})
	}
	rec.Emit(SelectOut{Path: path, Start: t.Start, End: t.End})
	rec.Emit(Total{Result: len(cheats)})

	return Result{Cheats: len(cheats), Found: true, Trace: rec.Trace()}, nil
}
