package trailhead_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzletrace/grid"
	"github.com/katalvlaran/puzzletrace/trace"
	"github.com/katalvlaran/puzzletrace/trailhead"
)

const sample = `89010123
78121874
87430965
96549874
45678903
32019012
01329801
10456732`

func topo(t *testing.T, in string) trailhead.Topo {
	t.Helper()
	m, err := trailhead.Parse(in)
	require.NoError(t, err)

	return m
}

func TestParse(t *testing.T) {
	m := topo(t, sample)
	assert.Equal(t, 8, m.Width())
	assert.Equal(t, 9, m.At(grid.Vec2{Row: 0, Col: 1}))

	_, err := trailhead.Parse("01x")
	assert.ErrorIs(t, err, grid.ErrBadCell)
}

func TestSolve_NoTrailheads(t *testing.T) {
	m := topo(t, "123\n456")
	for _, mode := range []trailhead.Mode{trailhead.Score, trailhead.Rating} {
		res := trailhead.Solve(m, mode)
		assert.Zero(t, res.Total)
		assert.Equal(t, []string{"input"}, res.Trace.Kinds())
	}
}

func TestTrails_Single(t *testing.T) {
	m := topo(t, `...0...
...1...
...2...
6543456
7.....7
8.....8
9.....9`)
	start := grid.Vec2{Row: 0, Col: 3}

	trails := trailhead.Trails(m, start)
	require.Len(t, trails, 2)
	for _, tr := range trails {
		assert.Len(t, tr, 10)
		assert.Equal(t, start, tr[0])
	}
	assert.Len(t, trailhead.DistinctPeaks(trails), 2)

	assert.Nil(t, trailhead.Trails(m, grid.Vec2{Row: 1, Col: 3}))
	assert.Nil(t, trailhead.Trails(m, grid.Vec2{Row: -1, Col: 0}))
}

func TestTrails_SharedPeak(t *testing.T) {
	m := topo(t, `.....0.
..4321.
..5..2.
..6543.
..7..4.
..8..5.
..9876.`)
	trails := trailhead.Trails(m, grid.Vec2{Row: 0, Col: 5})
	assert.Len(t, trails, 3)
	assert.Len(t, trailhead.DistinctPeaks(trails), 1)
}

func TestSolve(t *testing.T) {
	m := topo(t, sample)

	score := trailhead.Solve(m, trailhead.Score)
	assert.Equal(t, 36, score.Total)
	assert.Equal(t, 9, score.Trace.Count("select-start-out"))
	assert.Equal(t, 36, score.Trace.Count("select-trail-out"))

	rating := trailhead.Solve(m, trailhead.Rating)
	assert.Equal(t, 81, rating.Total)
	assert.GreaterOrEqual(t, rating.Total, score.Total)

	out := rating.Trace.Filter("select-trail-out")
	for _, e := range out {
		assert.Len(t, e.(trailhead.SelectTrailOut).Trail, 9)
	}
}

func TestSolve_Idempotent(t *testing.T) {
	m := topo(t, sample)
	a := trailhead.Solve(m, trailhead.Score)
	b := trailhead.Solve(m, trailhead.Score)

	diff, err := trace.Diff(a.Trace, b.Trace)
	require.NoError(t, err)
	assert.Empty(t, diff)
}
