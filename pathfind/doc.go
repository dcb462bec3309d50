// Package pathfind implements Dijkstra's shortest-path algorithm over an
// implicit state space, keeping every optimal predecessor.
//
// States are any comparable value, typically a small struct such as
// (position, heading). The caller supplies a successor function instead of a
// materialised graph; edges are discovered lazily as states are settled.
//
// Unlike a textbook single-predecessor Dijkstra, Search records a predecessor
// multimap: when a relaxation finds a strictly cheaper route to v, v's
// predecessors are reset to the current state; when it finds an equally cheap
// route, the current state is appended. This is what allows Paths and
// Ancestors to enumerate every minimum-cost route rather than one of them.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//     Each state is settled at most once; every strict improvement pushes a
//     heap entry ("lazy decrease-key"); stale entries are skipped on pop.
//   - Space: O(V + E) for distances, predecessor lists and heap entries.
//
// Determinism:
//
//   - Heap ties are broken by push order, so given the same successor
//     function the settle order, distances and predecessor lists are
//     identical run to run.
//
// Options:
//
//   - WithMaxDistance(x): states farther than x are neither settled nor
//     relaxed (x ≥ 0; a negative value panics).
//
// Errors:
//
//   - ErrNegativeWeight if the successor function yields a negative cost.
package pathfind
