package puzzle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/puzzletrace/trace"
)

// DefaultBatchLimit caps concurrent solves in RunBatch.
const DefaultBatchLimit = 4

var (
	// ErrUnknownPuzzle indicates no solver is registered for a key.
	ErrUnknownPuzzle = errors.New("puzzle: no solver registered")
	// ErrDuplicateSolver indicates a key registered twice.
	ErrDuplicateSolver = errors.New("puzzle: solver already registered")
	// ErrInvalidRequest wraps validation failures of Request.
	ErrInvalidRequest = errors.New("puzzle: invalid request")
	// ErrNoExample indicates the catalogue has no sample for a key.
	ErrNoExample = errors.New("puzzle: no example")
	// ErrBadBatchLimit is the panic message of WithBatchLimit.
	ErrBadBatchLimit = errors.New("puzzle: batch limit must be positive")
)

var validate = validator.New()

// Key identifies one part of one day.
type Key struct {
	Day  int `json:"day" yaml:"day"`
	Part int `json:"part" yaml:"part"`
}

// String renders k as "day 05 part 2".
func (k Key) String() string { return fmt.Sprintf("day %02d part %d", k.Day, k.Part) }

// Request asks for one puzzle part to be solved on Input.
type Request struct {
	Day   int    `json:"day" yaml:"day" validate:"min=1,max=25"`
	Part  int    `json:"part" yaml:"part" validate:"oneof=1 2"`
	Input string `json:"input" yaml:"input" validate:"required"`
}

// Key returns the registry key of r.
func (r Request) Key() Key { return Key{Day: r.Day, Part: r.Part} }

// Output is a solved puzzle part.
type Output struct {
	Key    Key
	Answer string
	Trace  trace.Trace[trace.Event]
}

// Solver solves one puzzle part.
type Solver interface {
	Solve(ctx context.Context, input string) (Output, error)
}

// SolverFunc adapts a function to Solver.
type SolverFunc func(ctx context.Context, input string) (Output, error)

// Solve calls f.
func (f SolverFunc) Solve(ctx context.Context, input string) (Output, error) {
	return f(ctx, input)
}

// Registry maps keys to solvers. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	solvers map[Key]Solver
	opts    Options
}

// Option configures a Registry.
type Option func(*Options)

// Options holds registry settings.
type Options struct {
	// Logger receives one record per run; defaults to slog.Default().
	Logger *slog.Logger
	// BatchLimit caps concurrent solves in RunBatch.
	BatchLimit int
}

// DefaultOptions returns the default logger and DefaultBatchLimit.
func DefaultOptions() Options {
	return Options{Logger: slog.Default(), BatchLimit: DefaultBatchLimit}
}

// WithLogger sets the run logger. A nil logger has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithBatchLimit caps concurrent solves in RunBatch.
// Panics if n < 1.
func WithBatchLimit(n int) Option {
	if n < 1 {
		panic(ErrBadBatchLimit.Error())
	}

	return func(o *Options) { o.BatchLimit = n }
}

// Sample is one catalogue entry: a day's sample input and expected answers.
type Sample struct {
	Day     int      `yaml:"day"`
	Title   string   `yaml:"title"`
	Package string   `yaml:"package"`
	Input   string   `yaml:"input"`
	Answers []Answer `yaml:"answers"`
}

// Answer is the expected result of one part.
type Answer struct {
	Part   int    `yaml:"part"`
	Answer string `yaml:"answer"`
}
