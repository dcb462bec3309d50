package racetrack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzletrace/grid"
	"github.com/katalvlaran/puzzletrace/racetrack"
	"github.com/katalvlaran/puzzletrace/trace"
)

const sample = `###############
#...#...#.....#
#.#.#.#.#.###.#
#S#...#.#.#...#
#######.#.#.###
#######.#.#...#
#######.#.###.#
###..E#...#...#
###.#######.###
#...###...#...#
#.#####.#.###.#
#.#...#.#.#...#
#.#.#.#.#.#.###
#...#...#...###
###############`

func track(t *testing.T) racetrack.Track {
	t.Helper()
	tr, err := racetrack.Parse(sample)
	require.NoError(t, err)

	return tr
}

func TestParse(t *testing.T) {
	tr := track(t)
	assert.Equal(t, grid.Vec2{Row: 3, Col: 1}, tr.Start)
	assert.Equal(t, grid.Vec2{Row: 7, Col: 5}, tr.End)

	_, err := racetrack.Parse("#.E#")
	assert.ErrorIs(t, err, racetrack.ErrStartNotFound)
}

func TestSearch(t *testing.T) {
	tr := track(t)
	res, err := racetrack.Search(tr)
	require.NoError(t, err)

	d, ok := res.Dist(tr.End)
	require.True(t, ok)
	assert.Equal(t, int64(84), d)
	assert.Len(t, res.Settled(), 85)
	assert.Len(t, res.Path(tr.End), 85)
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, racetrack.Config{JumpBudget: 2, SaveThreshold: 1}.Validate())

	for _, c := range []racetrack.Config{
		{},
		{JumpBudget: 0, SaveThreshold: 10},
		{JumpBudget: 2, SaveThreshold: -1},
	} {
		assert.ErrorIs(t, c.Validate(), racetrack.ErrInvalidConfig, "%+v", c)
	}
}

func TestDefaultConfig(t *testing.T) {
	tr := track(t)
	assert.Equal(t, racetrack.Config{JumpBudget: 2, SaveThreshold: racetrack.SmallMapThreshold},
		racetrack.DefaultConfig(tr, racetrack.ShortJump))
}

func TestSolve(t *testing.T) {
	tr := track(t)
	cases := []struct {
		jump, threshold, want int
	}{
		{2, 1, 44},
		{2, 10, 10},
		{2, 64, 1},
		{20, 50, 285},
		{20, 76, 3},
	}
	for _, tc := range cases {
		res, err := racetrack.Solve(tr, racetrack.Config{JumpBudget: tc.jump, SaveThreshold: tc.threshold})
		require.NoError(t, err)
		assert.True(t, res.Found)
		assert.Equal(t, tc.want, res.Cheats, "jump=%d threshold=%d", tc.jump, tc.threshold)
		assert.Equal(t, tc.want, res.Trace.Count("select-jump"))
	}
}

func TestSolve_ShortcutSavings(t *testing.T) {
	tr := track(t)
	res, err := racetrack.Search(tr)
	require.NoError(t, err)

	cheats := racetrack.Shortcuts(res, racetrack.Config{JumpBudget: 2, SaveThreshold: 64})
	require.Len(t, cheats, 1)
	assert.Equal(t, int64(64), cheats[0].Saved)
	assert.Equal(t, 2, cheats[0].Steps)
}

func TestSolve_InvalidConfig(t *testing.T) {
	_, err := racetrack.Solve(track(t), racetrack.Config{JumpBudget: 2})
	assert.ErrorIs(t, err, racetrack.ErrInvalidConfig)
}

func TestSolve_Idempotent(t *testing.T) {
	tr := track(t)
	cfg := racetrack.DefaultConfig(tr, racetrack.ShortJump)
	a, err := racetrack.Solve(tr, cfg)
	require.NoError(t, err)
	b, err := racetrack.Solve(tr, cfg)
	require.NoError(t, err)

	diff, err := trace.Diff(a.Trace, b.Trace)
	require.NoError(t, err)
	assert.Empty(t, diff)
}
