package grid

import (
	"fmt"
	"iter"
	"strings"
)

// New builds a Grid from rows, deep-copying them.
// Returns ErrEmptyGrid or ErrNonRectangular for malformed input.
func New[T any](rows [][]T) (Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Grid[T]{}, ErrEmptyGrid
	}
	w := len(rows[0])
	cells := make([][]T, len(rows))
	for r, row := range rows {
		if len(row) != w {
			return Grid[T]{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), w)
		}
		cells[r] = append([]T(nil), row...)
	}

	return Grid[T]{cells: cells, width: w, height: len(rows)}, nil
}

// Lines splits puzzle text into lines. CRLF endings are normalised and
// leading or trailing blank lines are dropped.
func Lines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.Trim(text, "\n")
	if strings.TrimSpace(text) == "" {
		return nil
	}

	return strings.Split(text, "\n")
}

// Parse decodes text into a Grid using decode for every cell.
// decode receives the cell position so callers can capture markers (start, guard).
func Parse[T any](text string, decode func(pos Vec2, r rune) (T, error)) (Grid[T], error) {
	lines := Lines(text)
	rows := make([][]T, 0, len(lines))
	for r, line := range lines {
		line = strings.TrimRight(line, " \t")
		row := make([]T, 0, len(line))
		c := 0
		for _, ch := range line {
			v, err := decode(Vec2{Row: r, Col: c}, ch)
			if err != nil {
				return Grid[T]{}, err
			}
			row = append(row, v)
			c++
		}
		rows = append(rows, row)
	}

	return New(rows)
}

// Width returns the number of columns.
func (g Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g Grid[T]) Height() int { return g.height }

// InBounds reports whether p lies inside the grid.
func (g Grid[T]) InBounds(p Vec2) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

// At returns the cell at p. It panics when p is out of bounds.
func (g Grid[T]) At(p Vec2) T { return g.cells[p.Row][p.Col] }

// AtOk returns the cell at p and whether p was in bounds.
func (g Grid[T]) AtOk(p Vec2) (T, bool) {
	if !g.InBounds(p) {
		var zero T
		return zero, false
	}

	return g.cells[p.Row][p.Col], true
}

// With returns a copy of g with the cell at p replaced by v.
func (g Grid[T]) With(p Vec2, v T) Grid[T] {
	out := g.Clone()
	out.cells[p.Row][p.Col] = v

	return out
}

// Clone returns a deep copy of g.
func (g Grid[T]) Clone() Grid[T] {
	cells := make([][]T, len(g.cells))
	for r, row := range g.cells {
		cells[r] = append([]T(nil), row...)
	}

	return Grid[T]{cells: cells, width: g.width, height: g.height}
}

// Rows returns a deep copy of the cells, row by row.
func (g Grid[T]) Rows() [][]T { return g.Clone().cells }

// All iterates over every cell in row-major order.
func (g Grid[T]) All() iter.Seq2[Vec2, T] {
	return func(yield func(Vec2, T) bool) {
		for r, row := range g.cells {
			for c, v := range row {
				if !yield(Vec2{Row: r, Col: c}, v) {
					return
				}
			}
		}
	}
}

// Neighbors4 returns the in-bounds orthogonal neighbours of p in heading order.
func (g Grid[T]) Neighbors4(p Vec2) []Vec2 {
	out := make([]Vec2, 0, 4)
	for _, n := range p.Neighbors4() {
		if g.InBounds(n) {
			out = append(out, n)
		}
	}

	return out
}

// Find returns the first position, in row-major order, whose cell satisfies match.
func (g Grid[T]) Find(match func(T) bool) (Vec2, bool) {
	for p, v := range g.All() {
		if match(v) {
			return p, true
		}
	}

	return Vec2{}, false
}

// Render returns g as text rows using cell to pick each rune.
func Render[T any](g Grid[T], cell func(T) rune) []string {
	out := make([]string, len(g.cells))
	var sb strings.Builder
	for r, row := range g.cells {
		sb.Reset()
		for _, v := range row {
			sb.WriteRune(cell(v))
		}
		out[r] = sb.String()
	}

	return out
}
