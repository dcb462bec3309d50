package trailhead

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/puzzletrace/grid"
	"github.com/katalvlaran/puzzletrace/trace"
)

// Parse reads a map of digits; '.' marks an impassable cell.
func Parse(input string) (Topo, error) {
	m, err := grid.Parse(input, func(pos grid.Vec2, r rune) (int, error) {
		switch {
		case r == '.':
			return Impassable, nil
		case r >= '0' && r <= '9':
			return int(r - '0'), nil
		}
		return 0, fmt.Errorf("%w: %q at %d,%d", grid.ErrBadCell, r, pos.Row, pos.Col)
	})
	if err != nil {
		return Topo{}, err
	}

	return m, nil
}

// Trails returns every trail from start, in discovery order.
// A start that is not at Base height has no trails.
func Trails(m Topo, start grid.Vec2) []Trail {
	if h, ok := m.AtOk(start); !ok || h != Base {
		return nil
	}

	var out []Trail
	path := Trail{start}
	var hike func(p grid.Vec2)
	hike = func(p grid.Vec2) {
		if m.At(p) == Peak {
			out = append(out, slices.Clone(path))
			return
		}
		for _, n := range m.Neighbors4(p) {
			if m.At(n) != m.At(p)+1 {
				continue
			}
			path = append(path, n)
			hike(n)
			path = path[:len(path)-1]
		}
	}
	hike(start)

	return out
}

// DistinctPeaks keeps the first trail to each peak.
func DistinctPeaks(trails []Trail) []Trail {
	seen := make(map[grid.Vec2]struct{}, len(trails))
	out := make([]Trail, 0, len(trails))
	for _, t := range trails {
		peak := t[len(t)-1]
		if _, dup := seen[peak]; dup {
			continue
		}
		seen[peak] = struct{}{}
		out = append(out, t)
	}

	return out
}

// Solve counts trails from every trailhead under mode.
func Solve(m Topo, mode Mode) Result {
	rec := trace.NewRecorder[Event](m.Width() * m.Height())
	rec.Emit(Input{Map: grid.Render(m, func(h int) rune {
		if h == Impassable {
			return '.'
		}
		return rune('0' + h)
	})})

	total := 0
	for p, h := range m.All() {
		if h != Base {
			continue
		}
		rec.Emit(SelectStart{Start: p})

		trails := Trails(m, p)
		if mode == Score {
			trails = DistinctPeaks(trails)
		}
		for _, t := range trails {
			for _, step := range t[1:] {
				rec.Emit(SelectStart{Start: step})
			}
			total++
			rec.Emit(Total{Total: total})
			rec.Emit(SelectTrailOut{Trail: slices.Clone(t[1:])})
		}
		rec.Emit(SelectStartOut{Start: p})
	}

	return Result{Total: total, Trace: rec.Trace()}
}
