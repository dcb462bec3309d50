package puzzle

import (
	"context"
	"strconv"

	"github.com/katalvlaran/puzzletrace/calibrate"
	"github.com/katalvlaran/puzzletrace/circuit"
	"github.com/katalvlaran/puzzletrace/clawmachine"
	"github.com/katalvlaran/puzzletrace/diskmap"
	"github.com/katalvlaran/puzzletrace/keypad"
	"github.com/katalvlaran/puzzletrace/maze"
	"github.com/katalvlaran/puzzletrace/ordering"
	"github.com/katalvlaran/puzzletrace/patrol"
	"github.com/katalvlaran/puzzletrace/racetrack"
	"github.com/katalvlaran/puzzletrace/report"
	"github.com/katalvlaran/puzzletrace/towels"
	"github.com/katalvlaran/puzzletrace/trace"
	"github.com/katalvlaran/puzzletrace/trailhead"
)

// adapt joins a parser and a solve step into a Solver.
func adapt[T any, E trace.Event](
	parse func(string) (T, error),
	solve func(T) (string, trace.Trace[E], error),
) SolverFunc {
	return func(ctx context.Context, input string) (Output, error) {
		if err := ctx.Err(); err != nil {
			return Output{}, err
		}
		v, err := parse(input)
		if err != nil {
			return Output{}, err
		}
		answer, t, err := solve(v)
		if err != nil {
			return Output{}, err
		}

		return Output{Answer: answer, Trace: trace.Erase(t)}, nil
	}
}

func itoa[N ~int | ~int64](n N) string { return strconv.FormatInt(int64(n), 10) }

// Builtin returns a Registry with every solver of this module registered.
func Builtin(options ...Option) *Registry {
	r := NewRegistry(options...)

	for part, mode := range map[int]report.Mode{1: report.Strict, 2: report.Tolerant} {
		r.MustRegister(Key{Day: 2, Part: part}, adapt(report.Parse,
			func(rs []report.Report) (string, trace.Trace[report.Event], error) {
				res := report.Solve(rs, mode)
				return itoa(res.Safe), res.Trace, nil
			}))
	}

	for part, mode := range map[int]ordering.Mode{1: ordering.Check, 2: ordering.Reorder} {
		r.MustRegister(Key{Day: 5, Part: part}, adapt(ordering.Parse,
			func(m ordering.Manual) (string, trace.Trace[ordering.Event], error) {
				res, err := ordering.Solve(m, mode)
				return itoa(res.Total), res.Trace, err
			}))
	}

	for part, mode := range map[int]patrol.Mode{1: patrol.Visited, 2: patrol.Loops} {
		r.MustRegister(Key{Day: 6, Part: part}, adapt(patrol.Parse,
			func(l patrol.Lab) (string, trace.Trace[patrol.Event], error) {
				res := patrol.Solve(l, mode, patrol.WithQuietWalks())
				return itoa(res.Answer), res.Trace, nil
			}))
	}

	for part, ops := range map[int]calibrate.OperatorSet{1: calibrate.Basic, 2: calibrate.Extended} {
		r.MustRegister(Key{Day: 7, Part: part}, adapt(calibrate.Parse,
			func(eqs []calibrate.Equation) (string, trace.Trace[calibrate.Event], error) {
				res := calibrate.Solve(eqs, ops)
				return itoa(res.Total), res.Trace, nil
			}))
	}

	for part, strategy := range map[int]diskmap.Strategy{1: diskmap.Units, 2: diskmap.Files} {
		r.MustRegister(Key{Day: 9, Part: part}, adapt(diskmap.Parse,
			func(d diskmap.Disk) (string, trace.Trace[diskmap.Event], error) {
				res := diskmap.Solve(d, strategy)
				return itoa(res.Checksum), res.Trace, nil
			}))
	}

	for part, mode := range map[int]trailhead.Mode{1: trailhead.Score, 2: trailhead.Rating} {
		r.MustRegister(Key{Day: 10, Part: part}, adapt(trailhead.Parse,
			func(m trailhead.Topo) (string, trace.Trace[trailhead.Event], error) {
				res := trailhead.Solve(m, mode)
				return itoa(res.Total), res.Trace, nil
			}))
	}

	for part, offset := range map[int]int64{1: 0, 2: clawmachine.PrizeOffset} {
		r.MustRegister(Key{Day: 13, Part: part}, adapt(clawmachine.Parse,
			func(ms []clawmachine.Machine) (string, trace.Trace[clawmachine.Event], error) {
				res := clawmachine.Solve(ms, offset)
				return itoa(res.Tokens), res.Trace, nil
			}))
	}

	for part, mode := range map[int]maze.Mode{1: maze.Cheapest, 2: maze.Tiles} {
		r.MustRegister(Key{Day: 16, Part: part}, adapt(maze.Parse,
			func(m maze.Maze) (string, trace.Trace[maze.Event], error) {
				res, err := maze.Solve(m, mode)
				return itoa(res.Answer), res.Trace, err
			}))
	}

	for part, mode := range map[int]towels.Mode{1: towels.Possible, 2: towels.Ways} {
		r.MustRegister(Key{Day: 19, Part: part}, adapt(towels.Parse,
			func(inv towels.Inventory) (string, trace.Trace[towels.Event], error) {
				res := towels.Solve(inv, mode)
				return itoa(res.Answer), res.Trace, nil
			}))
	}

	for part, jump := range map[int]int{1: racetrack.ShortJump, 2: racetrack.LongJump} {
		r.MustRegister(Key{Day: 20, Part: part}, adapt(racetrack.Parse,
			func(t racetrack.Track) (string, trace.Trace[racetrack.Event], error) {
				res, err := racetrack.Solve(t, racetrack.DefaultConfig(t, jump))
				return itoa(res.Cheats), res.Trace, err
			}))
	}

	for part, robots := range map[int]int{1: keypad.FewRobots, 2: keypad.ManyRobots} {
		r.MustRegister(Key{Day: 21, Part: part}, adapt(keypad.Parse,
			func(codes []string) (string, trace.Trace[keypad.Event], error) {
				res, err := keypad.Solve(codes, keypad.Config{Robots: robots})
				return itoa(res.Complexity), res.Trace, err
			}))
	}

	r.MustRegister(Key{Day: 24, Part: 1}, adapt(circuit.Parse,
		func(net circuit.Network) (string, trace.Trace[circuit.Event], error) {
			res, err := circuit.Solve(net)
			return strconv.FormatUint(res.Output, 10), res.Trace, err
		}))

	return r
}
