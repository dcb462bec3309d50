package puzzle_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzletrace/puzzle"
	"github.com/katalvlaran/puzzletrace/trace"
)

type echoEvent struct {
	Text string `json:"text"`
}

func (echoEvent) Kind() string { return "echo" }

// echo answers with the upper-cased input.
var echo = puzzle.SolverFunc(func(_ context.Context, input string) (puzzle.Output, error) {
	rec := trace.NewRecorder[trace.Event](1)
	rec.Emit(echoEvent{Text: input})

	return puzzle.Output{Answer: strings.ToUpper(input), Trace: rec.Trace()}, nil
})

var errBoom = errors.New("boom")

var failing = puzzle.SolverFunc(func(context.Context, string) (puzzle.Output, error) {
	return puzzle.Output{}, errBoom
})

func quietLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, nil))
}

func TestRegistry_Register(t *testing.T) {
	r := puzzle.NewRegistry()
	require.NoError(t, r.Register(puzzle.Key{Day: 3, Part: 1}, echo))
	require.NoError(t, r.Register(puzzle.Key{Day: 1, Part: 2}, echo))
	require.NoError(t, r.Register(puzzle.Key{Day: 1, Part: 1}, echo))

	err := r.Register(puzzle.Key{Day: 3, Part: 1}, echo)
	assert.ErrorIs(t, err, puzzle.ErrDuplicateSolver)
	assert.Panics(t, func() { r.MustRegister(puzzle.Key{Day: 3, Part: 1}, echo) })

	assert.Equal(t, []puzzle.Key{{Day: 1, Part: 1}, {Day: 1, Part: 2}, {Day: 3, Part: 1}}, r.Keys())

	_, err = r.Lookup(puzzle.Key{Day: 9, Part: 1})
	assert.ErrorIs(t, err, puzzle.ErrUnknownPuzzle)
}

func TestKey_String(t *testing.T) {
	assert.Equal(t, "day 05 part 2", puzzle.Key{Day: 5, Part: 2}.String())
}

func TestRequest_Validate(t *testing.T) {
	assert.NoError(t, puzzle.Request{Day: 1, Part: 1, Input: "x"}.Validate())

	bad := []puzzle.Request{
		{Day: 0, Part: 1, Input: "x"},
		{Day: 26, Part: 1, Input: "x"},
		{Day: 1, Part: 3, Input: "x"},
		{Day: 1, Part: 1},
	}
	for _, req := range bad {
		assert.ErrorIs(t, req.Validate(), puzzle.ErrInvalidRequest, "%+v", req)
	}
}

func TestRegistry_Run(t *testing.T) {
	var logs bytes.Buffer
	r := puzzle.NewRegistry(puzzle.WithLogger(quietLogger(&logs)))
	r.MustRegister(puzzle.Key{Day: 1, Part: 1}, echo)

	out, err := r.Run(context.Background(), puzzle.Request{Day: 1, Part: 1, Input: "abc"})
	require.NoError(t, err)
	assert.Equal(t, puzzle.Key{Day: 1, Part: 1}, out.Key)
	assert.Equal(t, "ABC", out.Answer)
	assert.Equal(t, []string{"echo"}, out.Trace.Kinds())
	assert.Contains(t, logs.String(), "puzzle solved")
	assert.Contains(t, logs.String(), "answer=ABC")
}

func TestRegistry_RunErrors(t *testing.T) {
	var logs bytes.Buffer
	r := puzzle.NewRegistry(puzzle.WithLogger(quietLogger(&logs)))
	r.MustRegister(puzzle.Key{Day: 2, Part: 1}, failing)
	ctx := context.Background()

	_, err := r.Run(ctx, puzzle.Request{Day: 1, Part: 1, Input: "x"})
	assert.ErrorIs(t, err, puzzle.ErrUnknownPuzzle)

	_, err = r.Run(ctx, puzzle.Request{Day: 2, Part: 1})
	assert.ErrorIs(t, err, puzzle.ErrInvalidRequest)

	_, err = r.Run(ctx, puzzle.Request{Day: 2, Part: 1, Input: "x"})
	assert.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), "day 02 part 1")
	assert.Contains(t, logs.String(), "puzzle failed")
}

func TestRegistry_RunBatch(t *testing.T) {
	var (
		logs    bytes.Buffer
		running atomic.Int32
		peak    atomic.Int32
	)
	r := puzzle.NewRegistry(puzzle.WithLogger(quietLogger(&logs)), puzzle.WithBatchLimit(2))
	r.MustRegister(puzzle.Key{Day: 1, Part: 1}, puzzle.SolverFunc(
		func(ctx context.Context, input string) (puzzle.Output, error) {
			n := running.Add(1)
			defer running.Add(-1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}

			return echo.Solve(ctx, input)
		}))

	inputs := []string{"a", "b", "c", "d", "e", "f"}
	reqs := make([]puzzle.Request, len(inputs))
	for i, in := range inputs {
		reqs[i] = puzzle.Request{Day: 1, Part: 1, Input: in}
	}

	outs, err := r.RunBatch(context.Background(), reqs)
	require.NoError(t, err)
	require.Len(t, outs, len(inputs))
	for i, in := range inputs {
		assert.Equal(t, strings.ToUpper(in), outs[i].Answer)
	}
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestRegistry_RunBatchError(t *testing.T) {
	var logs bytes.Buffer
	r := puzzle.NewRegistry(puzzle.WithLogger(quietLogger(&logs)))
	r.MustRegister(puzzle.Key{Day: 1, Part: 1}, echo)
	r.MustRegister(puzzle.Key{Day: 1, Part: 2}, failing)

	_, err := r.RunBatch(context.Background(), []puzzle.Request{
		{Day: 1, Part: 1, Input: "a"},
		{Day: 1, Part: 2, Input: "b"},
	})
	assert.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), "request 1")
}

func TestWithBatchLimit_Panics(t *testing.T) {
	assert.PanicsWithValue(t, puzzle.ErrBadBatchLimit.Error(), func() { puzzle.WithBatchLimit(0) })
}
