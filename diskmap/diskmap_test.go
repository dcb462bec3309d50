package diskmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzletrace/diskmap"
	"github.com/katalvlaran/puzzletrace/trace"
)

const sample = "2333133121414131402"

func occupied(units []int) int {
	n := 0
	for _, u := range units {
		if u != diskmap.Free {
			n++
		}
	}

	return n
}

func TestParse(t *testing.T) {
	d, err := diskmap.Parse("12345\n")
	require.NoError(t, err)
	assert.Equal(t, []diskmap.Block{
		{File: 0, Size: 1},
		{File: diskmap.Free, Size: 2},
		{File: 1, Size: 3},
		{File: diskmap.Free, Size: 4},
		{File: 2, Size: 5},
	}, d.Blocks)
	assert.Equal(t, []int{0, -1, -1, 1, 1, 1, -1, -1, -1, -1, 2, 2, 2, 2, 2}, d.Units())

	_, err = diskmap.Parse("  ")
	assert.ErrorIs(t, err, diskmap.ErrEmptyInput)

	_, err = diskmap.Parse("12a4")
	assert.ErrorIs(t, err, diskmap.ErrBadDigit)
}

func TestCompactUnits(t *testing.T) {
	d, err := diskmap.Parse("12345")
	require.NoError(t, err)

	units, moves := diskmap.CompactUnits(d)
	assert.Equal(t, []int{0, 2, 2, 1, 1, 1, 2, 2, 2, -1, -1, -1, -1, -1, -1}, units)
	assert.Equal(t, diskmap.Move{From: 14, To: 1}, moves[0])
	assert.Equal(t, 60, diskmap.Checksum(units))
}

func TestCompact_PreservesUnits(t *testing.T) {
	for _, in := range []string{sample, "12345", "0", "10", "90909", "1313165"} {
		d, err := diskmap.Parse(in)
		require.NoError(t, err)
		before := d.Units()

		for _, compact := range []func(diskmap.Disk) ([]int, []diskmap.Move){diskmap.CompactUnits, diskmap.CompactFiles} {
			after, _ := compact(d)
			assert.Len(t, after, len(before), in)
			assert.Equal(t, occupied(before), occupied(after), in)
		}
	}
}

func TestCompactFiles(t *testing.T) {
	d, err := diskmap.Parse(sample)
	require.NoError(t, err)

	units, moves := diskmap.CompactFiles(d)
	assert.Len(t, moves, 8)
	assert.Equal(t, 2858, diskmap.Checksum(units))
	// 00992111777.44.333....5555.6666.....8888..
	assert.Equal(t, []int{0, 0, 9, 9, 2, 1, 1, 1, 7, 7, 7, diskmap.Free}, units[:12])
	for i := 1; i < len(moves); i++ {
		assert.Less(t, moves[i-1].To, moves[i].To)
	}
}

func TestSolve(t *testing.T) {
	d, err := diskmap.Parse(sample)
	require.NoError(t, err)

	units := diskmap.Solve(d, diskmap.Units)
	assert.Equal(t, 1928, units.Checksum)
	assert.Equal(t, 12, units.Trace.Count("move"))
	assert.Equal(t, 28, units.Trace.Count("multiply"))

	files := diskmap.Solve(d, diskmap.Files)
	assert.Equal(t, 2858, files.Checksum)
	assert.Equal(t, 8, files.Trace.Count("move"))

	last, ok := files.Trace.Last()
	require.True(t, ok)
	assert.Equal(t, "select-out", last.Kind())
}

func TestSolve_Idempotent(t *testing.T) {
	d, err := diskmap.Parse(sample)
	require.NoError(t, err)

	a := diskmap.Solve(d, diskmap.Files)
	b := diskmap.Solve(d, diskmap.Files)
	diff, err := trace.Diff(a.Trace, b.Trace)
	require.NoError(t, err)
	assert.Empty(t, diff)
}
