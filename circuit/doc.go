// Package circuit evaluates networks of two-input boolean gates.
//
// A Network assigns fixed bits to primary input wires and defines every other
// wire as the output of exactly one AND, OR or XOR gate. Evaluation is Kahn's
// algorithm over the gates: a gate's in-degree is the number of its operands
// that are themselves gate outputs; gates with no such operands are ready
// immediately, in the order they were declared, and each evaluated gate
// releases the gates that read its output.
//
// The ordering itself comes from depgraph.Kahn, so a network whose gates feed
// back into each other fails with ErrCyclicNetwork instead of stalling. An
// operand that is neither an input nor a gate output fails with
// ErrUndefinedWire.
//
// The network's answer is read from the output wires: every wire named with
// the z prefix holds one bit, z00 being the least significant.
package circuit
