package puzzle_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzletrace/puzzle"
)

func TestSamples(t *testing.T) {
	samples, err := puzzle.Samples()
	require.NoError(t, err)
	require.Len(t, samples, 12)

	assert.Equal(t, 2, samples[0].Day)
	assert.Equal(t, "report", samples[0].Package)
	assert.Equal(t, []puzzle.Answer{{Part: 1, Answer: "2"}, {Part: 2, Answer: "4"}}, samples[0].Answers)

	last := samples[len(samples)-1]
	assert.Equal(t, 24, last.Day)
	assert.Len(t, last.Answers, 1)
}

func TestExample(t *testing.T) {
	req, want, err := puzzle.Example(9, 1)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Request{Day: 9, Part: 1, Input: "2333133121414131402\n"}, req)
	assert.Equal(t, "1928", want)

	_, _, err = puzzle.Example(24, 2)
	assert.ErrorIs(t, err, puzzle.ErrNoExample)

	_, _, err = puzzle.Example(1, 1)
	assert.ErrorIs(t, err, puzzle.ErrNoExample)
}

// Every registered solver reproduces its catalogue answer.
func TestBuiltin_Examples(t *testing.T) {
	var logs bytes.Buffer
	r := puzzle.Builtin(puzzle.WithLogger(quietLogger(&logs)))

	samples, err := puzzle.Samples()
	require.NoError(t, err)

	var reqs []puzzle.Request
	var want []string
	for _, s := range samples {
		for _, a := range s.Answers {
			req, answer, err := puzzle.Example(s.Day, a.Part)
			require.NoError(t, err)
			reqs = append(reqs, req)
			want = append(want, answer)
		}
	}
	assert.Len(t, r.Keys(), len(reqs))

	outs, err := r.RunBatch(context.Background(), reqs)
	require.NoError(t, err)
	for i, out := range outs {
		assert.Equal(t, want[i], out.Answer, "%s", out.Key)
		assert.Positive(t, out.Trace.Len(), "%s", out.Key)
		assert.Equal(t, "input", out.Trace.At(0).Kind(), "%s", out.Key)
	}
}

func TestBuiltin_ParseError(t *testing.T) {
	var logs bytes.Buffer
	r := puzzle.Builtin(puzzle.WithLogger(quietLogger(&logs)))

	_, err := r.Run(context.Background(), puzzle.Request{Day: 21, Part: 1, Input: "12B"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "day 21 part 1")
}
