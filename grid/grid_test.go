package grid_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzletrace/grid"
)

func runes(_ grid.Vec2, r rune) (rune, error) { return r, nil }

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.rows)
			assert.True(t, errors.Is(err, tc.err), "got %v want %v", err, tc.err)
		})
	}
}

func TestNew_DeepCopies(t *testing.T) {
	rows := [][]int{{1, 2}, {3, 4}}
	g, err := grid.New(rows)
	require.NoError(t, err)
	rows[0][0] = 99
	assert.Equal(t, 1, g.At(grid.Vec2{}))
}

func TestParse(t *testing.T) {
	g, err := grid.Parse("\n#.\r\n.#\n\n", runes)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, '#', g.At(grid.Vec2{Row: 1, Col: 1}))

	_, err = grid.Parse("##\n#", runes)
	assert.ErrorIs(t, err, grid.ErrNonRectangular)

	_, err = grid.Parse("   \n", runes)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)

	bad := func(p grid.Vec2, r rune) (int, error) {
		if r == '?' {
			return 0, fmt.Errorf("%w: %q at %v", grid.ErrBadCell, r, p)
		}
		return 1, nil
	}
	_, err = grid.Parse("..?", bad)
	assert.ErrorIs(t, err, grid.ErrBadCell)
}

func TestBoundsAndNeighbors(t *testing.T) {
	g, err := grid.New([][]int{{0, 1, 2}, {3, 4, 5}})
	require.NoError(t, err)

	assert.True(t, g.InBounds(grid.Vec2{Row: 1, Col: 2}))
	assert.False(t, g.InBounds(grid.Vec2{Row: 2, Col: 0}))
	assert.False(t, g.InBounds(grid.Vec2{Row: 0, Col: -1}))

	_, ok := g.AtOk(grid.Vec2{Row: -1})
	assert.False(t, ok)

	assert.Equal(t, []grid.Vec2{{Row: 0, Col: 1}, {Row: 1, Col: 0}}, g.Neighbors4(grid.Vec2{}))
	assert.Len(t, g.Neighbors4(grid.Vec2{Row: 1, Col: 1}), 3)
}

func TestWithDoesNotMutate(t *testing.T) {
	g, err := grid.New([][]int{{0, 0}})
	require.NoError(t, err)
	h := g.With(grid.Vec2{Col: 1}, 7)
	assert.Equal(t, 0, g.At(grid.Vec2{Col: 1}))
	assert.Equal(t, 7, h.At(grid.Vec2{Col: 1}))
}

func TestFindAndAll(t *testing.T) {
	g, err := grid.Parse("..\n.S", runes)
	require.NoError(t, err)
	p, ok := g.Find(func(r rune) bool { return r == 'S' })
	require.True(t, ok)
	assert.Equal(t, grid.Vec2{Row: 1, Col: 1}, p)

	n := 0
	for range g.All() {
		n++
	}
	assert.Equal(t, 4, n)
}

func TestHeadings(t *testing.T) {
	for _, h := range grid.Headings {
		assert.Equal(t, h, h.TurnRight().TurnLeft())
		assert.Equal(t, h, h.Reverse().Reverse())
		assert.Equal(t, h.Delta().Neg(), h.Reverse().Delta())
		got, ok := grid.HeadingFromRune(h.Rune())
		require.True(t, ok)
		assert.Equal(t, h, got)
	}
	assert.Equal(t, grid.East, grid.North.TurnRight())
	assert.Equal(t, grid.North, grid.West.TurnRight())
	_, ok := grid.HeadingFromRune('x')
	assert.False(t, ok)
}

func TestManhattan(t *testing.T) {
	assert.Equal(t, 7, grid.Manhattan(grid.Vec2{Row: 1, Col: 5}, grid.Vec2{Row: 4, Col: 1}))
	assert.Equal(t, int64(3), grid.AbsDiff(int64(-1), int64(2)))
}

func TestRender(t *testing.T) {
	g, err := grid.Parse("#.\n.#", func(_ grid.Vec2, r rune) (bool, error) { return r == '#', nil })
	require.NoError(t, err)

	out := grid.Render(g, func(wall bool) rune {
		if wall {
			return 'X'
		}
		return '_'
	})
	assert.Equal(t, []string{"X_", "_X"}, out)
}
