package patrol_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzletrace/grid"
	"github.com/katalvlaran/puzzletrace/patrol"
	"github.com/katalvlaran/puzzletrace/trace"
)

const sample = `....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...`

func lab(t *testing.T, in string) patrol.Lab {
	t.Helper()
	l, err := patrol.Parse(in)
	require.NoError(t, err)

	return l
}

func TestParse(t *testing.T) {
	l := lab(t, sample)
	assert.Equal(t, patrol.Guard{Pos: grid.Vec2{Row: 6, Col: 4}, Facing: grid.North}, l.Guard)
	assert.Equal(t, patrol.Floor, l.Map.At(l.Guard.Pos))
	assert.Equal(t, patrol.Wall, l.Map.At(grid.Vec2{Row: 0, Col: 4}))
	assert.Equal(t, 10, l.Map.Width())
}

func TestParse_Errors(t *testing.T) {
	_, err := patrol.Parse("...\n.#.")
	assert.ErrorIs(t, err, patrol.ErrGuardNotFound)

	_, err = patrol.Parse("^..\n..v")
	assert.ErrorIs(t, err, patrol.ErrMultipleGuards)

	_, err = patrol.Parse("^.x")
	assert.ErrorIs(t, err, grid.ErrBadCell)

	_, err = patrol.Parse("^..\n.")
	assert.ErrorIs(t, err, grid.ErrNonRectangular)
}

func TestWalk(t *testing.T) {
	outcome, n := patrol.Walk(lab(t, sample))
	assert.Equal(t, patrol.Exited, outcome)
	assert.Equal(t, 41, n)
}

func TestWalk_Loop(t *testing.T) {
	// A guard boxed in by four walls circles forever.
	l := lab(t, `.#..
.^.#
#...
..#.`)
	outcome, _ := patrol.Walk(l)
	assert.Equal(t, patrol.Looping, outcome)
}

func TestSolve_Visited(t *testing.T) {
	res := patrol.Solve(lab(t, sample), patrol.Visited)
	assert.Equal(t, 41, res.Answer)
	assert.Equal(t, "input", res.Trace.At(0).Kind())
	assert.Equal(t, 41, res.Trace.Count("total"))

	last, ok := res.Trace.Last()
	require.True(t, ok)
	assert.Equal(t, patrol.Visit{Pos: grid.Vec2{Row: 9, Col: 7}}, last)

	turns := res.Trace.Filter("turn")
	require.NotEmpty(t, turns)
	assert.Equal(t, patrol.Turn{Pos: grid.Vec2{Row: 1, Col: 4}, Facing: grid.East}, turns[0])
}

func TestSolve_Loops(t *testing.T) {
	l := lab(t, sample)

	res := patrol.Solve(l, patrol.Loops)
	assert.Equal(t, 6, res.Answer)
	assert.Equal(t, 92, res.Trace.Count("obstruct"))

	skip := patrol.Solve(l, patrol.Loops, patrol.WithSkipStart(), patrol.WithQuietWalks())
	assert.Equal(t, 6, skip.Answer)
	assert.Equal(t, 91, skip.Trace.Count("obstruct"))
	assert.Zero(t, skip.Trace.Count("visit"))
	assert.Equal(t, 6, skip.Trace.Count("total"))
}

func TestSolve_Idempotent(t *testing.T) {
	l := lab(t, sample)
	a := patrol.Solve(l, patrol.Visited)
	b := patrol.Solve(l, patrol.Visited)

	diff, err := trace.Diff(a.Trace, b.Trace)
	require.NoError(t, err)
	assert.Empty(t, diff)
}
