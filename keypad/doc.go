// Package keypad finds the shortest button sequence that types a door code
// through a chain of robot-operated keypads.
//
// The door has a numeric keypad:
//
//	7 8 9
//	4 5 6
//	1 2 3
//	  0 A
//
// Each robot arm in the chain is steered from a directional keypad:
//
//	  ^ a
//	< v >
//
// The blank corner of each pad is a gap that an arm must never pass over.
// Every arm starts on its pad's confirm key (A or a).
//
// MoveSets lists every shortest way to move an arm between two keys: all
// distinct orderings of the required vertical and horizontal moves that avoid
// the gap, each followed by a confirm press. MinLength then expands a code
// layer by layer. Layer 0 is the numeric pad; every deeper layer is a
// directional pad. At the last layer the cost of a key is the length of its
// first move set; above it, the cost is the cheapest move set after full
// expansion below. Results are memoized on (sequence, layer limit, layer),
// which keeps 25 robots tractable. The memo lives for one Solve call.
//
// Equal-length move sets are not interchangeable: two orderings that cost the
// same on one pad can expand very differently on the pads below, which is why
// every candidate is expanded rather than the first one picked.
package keypad
