package maze

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/puzzletrace/grid"
	"github.com/katalvlaran/puzzletrace/pathfind"
	"github.com/katalvlaran/puzzletrace/trace"
)

// Parse reads a maze of '#' walls and '.' floor with exactly one S and one E.
func Parse(input string) (Maze, error) {
	var (
		m         Maze
		haveStart bool
		haveEnd   bool
	)
	open, err := grid.Parse(input, func(pos grid.Vec2, r rune) (bool, error) {
		switch r {
		case '#':
			return false, nil
		case '.':
			return true, nil
		case 'S':
			if haveStart {
				return false, fmt.Errorf("%w: S at %d,%d", ErrDuplicateMarker, pos.Row, pos.Col)
			}
			m.Start, haveStart = pos, true
			return true, nil
		case 'E':
			if haveEnd {
				return false, fmt.Errorf("%w: E at %d,%d", ErrDuplicateMarker, pos.Row, pos.Col)
			}
			m.End, haveEnd = pos, true
			return true, nil
		}
		return false, fmt.Errorf("%w: %q at %d,%d", grid.ErrBadCell, r, pos.Row, pos.Col)
	})
	if err != nil {
		return Maze{}, err
	}
	if !haveStart {
		return Maze{}, ErrStartNotFound
	}
	if !haveEnd {
		return Maze{}, ErrEndNotFound
	}
	m.Open = open

	return m, nil
}

// Next lists the moves available from s: forward onto an open tile, or a
// quarter turn either way. Headings are visited in North, East, South, West
// order.
func (m Maze) Next(s State) []pathfind.Edge[State] {
	out := make([]pathfind.Edge[State], 0, 3)
	for _, h := range grid.Headings {
		switch h {
		case s.Facing:
			ahead := s.Pos.Step(h)
			if open, ok := m.Open.AtOk(ahead); ok && open {
				out = append(out, pathfind.Edge[State]{To: State{Pos: ahead, Facing: h}, Cost: MoveCost})
			}
		case s.Facing.Reverse():
		default:
			out = append(out, pathfind.Edge[State]{To: State{Pos: s.Pos, Facing: h}, Cost: TurnCost})
		}
	}

	return out
}

// Search explores every state reachable from the start facing East.
func Search(m Maze) (*pathfind.Result[State], error) {
	return pathfind.Search(State{Pos: m.Start, Facing: grid.East}, m.Next)
}

// Goals returns the four end states in heading order.
func (m Maze) Goals() []State {
	goals := make([]State, 0, len(grid.Headings))
	for _, h := range grid.Headings {
		goals = append(goals, State{Pos: m.End, Facing: h})
	}

	return goals
}

// Solve searches m and reports under mode.
func Solve(m Maze, mode Mode) (Result, error) {
	rec := trace.NewRecorder[Event](m.Open.Width() * m.Open.Height())

	var free []grid.Vec2
	for p, open := range m.Open.All() {
		if open {
			free = append(free, p)
		}
	}
	rec.Emit(Input{FreeSpaces: free, Start: m.Start, End: m.End, Width: m.Open.Width(), Height: m.Open.Height()})

	res, err := Search(m)
	if err != nil {
		return Result{}, err
	}

	goal, best, ok := res.Best(m.Goals()...)
	if !ok {
		rec.Emit(Total{Found: false})
		return Result{Trace: rec.Trace()}, nil
	}

	if mode == Cheapest {
		path := res.Path(goal)
		for _, s := range path {
			d, _ := res.Dist(s)
			rec.Emit(Select{Point: s.Pos, Dir: s.Facing, RunningCost: d})
		}
		rec.Emit(SelectOut{Path: path, Start: m.Start, End: m.End})
		rec.Emit(Total{Result: best, Found: true})

		return Result{Answer: best, Found: true, Trace: rec.Trace()}, nil
	}

	tiles := OptimalTiles(res, m.Goals(), best)
	for i, p := range tiles {
		rec.Emit(SelectTile{Point: p, RunningCount: i})
	}
	rec.Emit(SelectTilesOut{Path: tiles, Start: m.Start, End: m.End})
	rec.Emit(Total{Result: int64(len(tiles)), Found: true})

	return Result{Answer: int64(len(tiles)), Found: true, Trace: rec.Trace()}, nil
}

// OptimalTiles returns, in row-major order, the distinct positions on any
// route that reaches one of goals at cost best.
func OptimalTiles(res *pathfind.Result[State], goals []State, best int64) []grid.Vec2 {
	var ends []State
	for _, g := range goals {
		if d, ok := res.Dist(g); ok && d == best {
			ends = append(ends, g)
		}
	}

	seen := make(map[grid.Vec2]struct{})
	var tiles []grid.Vec2
	for _, s := range res.Ancestors(ends...) {
		if _, dup := seen[s.Pos]; dup {
			continue
		}
		seen[s.Pos] = struct{}{}
		tiles = append(tiles, s.Pos)
	}
	slices.SortFunc(tiles, func(a, b grid.Vec2) int {
		return cmp.Or(cmp.Compare(a.Row, b.Row), cmp.Compare(a.Col, b.Col))
	})

	return tiles
}
