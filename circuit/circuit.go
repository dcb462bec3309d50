package circuit

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/puzzletrace/depgraph"
	"github.com/katalvlaran/puzzletrace/grid"
	"github.com/katalvlaran/puzzletrace/trace"
)

// Parse reads "name: bit" assignments, a blank line, then "a OP b -> c" gates.
func Parse(input string) (Network, error) {
	lines := grid.Lines(input)
	if len(lines) == 0 {
		return Network{}, ErrEmptyInput
	}

	var (
		net   Network
		i     int
		wires = make(map[string]bool)
	)
	for ; i < len(lines) && strings.TrimSpace(lines[i]) != ""; i++ {
		w, err := parseWire(lines[i])
		if err != nil {
			return Network{}, fmt.Errorf("line %d: %w", i+1, err)
		}
		if wires[w.Name] {
			return Network{}, fmt.Errorf("line %d: %w: %s", i+1, ErrDuplicateWire, w.Name)
		}
		wires[w.Name] = true
		net.Inputs = append(net.Inputs, w)
	}
	if len(net.Inputs) == 0 {
		return Network{}, ErrEmptyInput
	}

	for ; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		g, err := parseGate(line)
		if err != nil {
			return Network{}, fmt.Errorf("line %d: %w", i+1, err)
		}
		if wires[g.Out] {
			return Network{}, fmt.Errorf("line %d: %w: %s", i+1, ErrDuplicateWire, g.Out)
		}
		wires[g.Out] = true
		net.Gates = append(net.Gates, g)
	}
	if len(net.Gates) == 0 {
		return Network{}, ErrMissingGates
	}

	return net, nil
}

func parseWire(line string) (Wire, error) {
	name, bit, ok := strings.Cut(strings.TrimSpace(line), ":")
	name, bit = strings.TrimSpace(name), strings.TrimSpace(bit)
	if !ok || name == "" || (bit != "0" && bit != "1") {
		return Wire{}, fmt.Errorf("%w: %q", ErrBadWire, line)
	}

	return Wire{Name: name, Value: uint8(bit[0] - '0')}, nil
}

func parseGate(line string) (Gate, error) {
	f := strings.Fields(line)
	if len(f) != 5 || f[3] != "->" {
		return Gate{}, fmt.Errorf("%w: %q", ErrBadGate, line)
	}
	op, ok := ParseOp(f[1])
	if !ok {
		return Gate{}, fmt.Errorf("%w: unknown operator %q", ErrBadGate, f[1])
	}

	return Gate{LHS: f[0], Op: op, RHS: f[2], Out: f[4]}, nil
}

// order returns the gates of net in evaluation order.
func order(net Network) ([]Gate, error) {
	known := make(map[string]bool, len(net.Inputs))
	for _, w := range net.Inputs {
		known[w.Name] = true
	}
	byOut := make(map[string]Gate, len(net.Gates))
	g := depgraph.New[string]()
	for _, gate := range net.Gates {
		if known[gate.Out] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateWire, gate.Out)
		}
		if _, dup := byOut[gate.Out]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateWire, gate.Out)
		}
		byOut[gate.Out] = gate
		g.AddNode(gate.Out)
	}
	for _, gate := range net.Gates {
		for _, operand := range []string{gate.LHS, gate.RHS} {
			if known[operand] {
				continue
			}
			if _, ok := byOut[operand]; !ok {
				return nil, fmt.Errorf("%w: %s feeds %s", ErrUndefinedWire, operand, gate.Out)
			}
			g.AddEdge(operand, gate.Out)
		}
	}

	wires, err := depgraph.Kahn(g)
	if err != nil {
		if errors.Is(err, depgraph.ErrCycleDetected) {
			return nil, fmt.Errorf("%w: %w", ErrCyclicNetwork, err)
		}
		return nil, err
	}

	gates := make([]Gate, len(wires))
	for i, w := range wires {
		gates[i] = byOut[w]
	}

	return gates, nil
}

func evaluate(net Network, fired func(Gate, uint8)) (Values, error) {
	gates, err := order(net)
	if err != nil {
		return nil, err
	}

	values := make(Values, len(net.Inputs)+len(net.Gates))
	for _, w := range net.Inputs {
		values[w.Name] = w.Value
	}
	for _, g := range gates {
		v := g.Op.Apply(values[g.LHS], values[g.RHS])
		values[g.Out] = v
		if fired != nil {
			fired(g, v)
		}
	}

	return values, nil
}

// Evaluate fires every gate of net and returns the bit on every wire.
func Evaluate(net Network) (Values, error) {
	return evaluate(net, nil)
}

// Number reads the wires named prefix followed by a decimal bit index as a
// binary number, index 0 being the least significant bit. Suffixes that are
// not all digits are ignored; two wires naming the same bit (z1 and z01) are
// rejected with ErrDuplicateBit.
func (v Values) Number(prefix rune) (uint64, error) {
	var (
		n    uint64
		seen = make(map[int]string)
	)
	for name, value := range v {
		rest, ok := strings.CutPrefix(name, string(prefix))
		if !ok || !allDigits(rest) {
			continue
		}
		idx, err := strconv.Atoi(rest)
		if err != nil || idx >= 64 {
			return 0, fmt.Errorf("%w: %s", ErrTooWide, name)
		}
		if other, dup := seen[idx]; dup {
			return 0, fmt.Errorf("%w: %s and %s", ErrDuplicateBit, other, name)
		}
		seen[idx] = name
		n |= uint64(value&1) << idx
	}

	return n, nil
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// Solve evaluates net and reads its output wires.
func Solve(net Network) (Result, error) {
	rec := trace.NewRecorder[Event](len(net.Gates) + 2)
	rec.Emit(Input{
		Inputs: append([]Wire(nil), net.Inputs...),
		Gates:  append([]Gate(nil), net.Gates...),
	})

	values, err := evaluate(net, func(g Gate, v uint8) {
		rec.Emit(Evaluated{Gate: g, Value: v})
	})
	if err != nil {
		return Result{}, err
	}
	out, err := values.Number(OutputPrefix)
	if err != nil {
		return Result{}, err
	}
	rec.Emit(Output{Value: out})

	return Result{Output: out, Values: values, Trace: rec.Trace()}, nil
}
