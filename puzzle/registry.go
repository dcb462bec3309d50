package puzzle

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

var tracer = otel.Tracer("puzzletrace.puzzle")

// NewRegistry returns an empty Registry.
func NewRegistry(options ...Option) *Registry {
	opts := DefaultOptions()
	for _, opt := range options {
		opt(&opts)
	}

	return &Registry{solvers: make(map[Key]Solver), opts: opts}
}

// Register adds s under k.
func (r *Registry) Register(k Key, s Solver) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, dup := r.solvers[k]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateSolver, k)
	}
	r.solvers[k] = s

	return nil
}

// MustRegister is Register that panics on error.
func (r *Registry) MustRegister(k Key, s Solver) {
	if err := r.Register(k, s); err != nil {
		panic(err)
	}
}

// Lookup returns the solver registered under k.
func (r *Registry) Lookup(k Key) (Solver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.solvers[k]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPuzzle, k)
	}

	return s, nil
}

// Keys returns every registered key ordered by day, then part.
func (r *Registry) Keys() []Key {
	r.mu.RLock()
	keys := make([]Key, 0, len(r.solvers))
	for k := range r.solvers {
		keys = append(keys, k)
	}
	r.mu.RUnlock()

	slices.SortFunc(keys, func(a, b Key) int {
		return cmp.Or(cmp.Compare(a.Day, b.Day), cmp.Compare(a.Part, b.Part))
	})

	return keys
}

// Validate checks r against its struct tags.
func (r Request) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	return nil
}

// Run solves req with its registered solver.
func (r *Registry) Run(ctx context.Context, req Request) (Output, error) {
	if err := req.Validate(); err != nil {
		return Output{}, err
	}
	key := req.Key()
	s, err := r.Lookup(key)
	if err != nil {
		return Output{}, err
	}

	ctx, span := tracer.Start(ctx, "puzzle.Run",
		oteltrace.WithAttributes(
			attribute.Int("puzzle.day", key.Day),
			attribute.Int("puzzle.part", key.Part),
			attribute.Int("puzzle.input_bytes", len(req.Input)),
		),
	)
	defer span.End()

	start := time.Now()
	out, err := s.Solve(ctx, req.Input)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.opts.Logger.Warn("puzzle failed",
			slog.Int("day", key.Day),
			slog.Int("part", key.Part),
			slog.String("error", err.Error()),
		)

		return Output{}, fmt.Errorf("%s: %w", key, err)
	}
	out.Key = key

	span.SetAttributes(
		attribute.String("puzzle.answer", out.Answer),
		attribute.Int("puzzle.trace_len", out.Trace.Len()),
	)
	span.SetStatus(codes.Ok, "")
	r.opts.Logger.Info("puzzle solved",
		slog.Int("day", key.Day),
		slog.Int("part", key.Part),
		slog.String("answer", out.Answer),
		slog.Int("events", out.Trace.Len()),
		slog.Duration("duration", time.Since(start)),
	)

	return out, nil
}

// RunBatch solves every request, at most BatchLimit at a time, and returns
// the outputs in request order. The first failure cancels the rest.
func (r *Registry) RunBatch(ctx context.Context, reqs []Request) ([]Output, error) {
	outs := make([]Output, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.BatchLimit)
	for i, req := range reqs {
		g.Go(func() error {
			out, err := r.Run(gctx, req)
			if err != nil {
				return fmt.Errorf("request %d: %w", i, err)
			}
			outs[i] = out

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return outs, nil
}
