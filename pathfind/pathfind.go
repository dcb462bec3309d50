package pathfind

import (
	"container/heap"
	"fmt"
	"slices"
)

// Search runs Dijkstra from start, expanding states with next.
//
// next is called once per settled state; it must return the same edges for
// the same state. Edges into already-settled states are ignored, so a
// zero-cost tie into a settled state is not recorded as a predecessor.
//
// Options customization:
//
//   - WithMaxDistance(x): states farther than x are neither settled nor queued.
//
// Complexity:
//
//   - Time:  O((V + E) log V) over the V states reached and E edges returned by next.
//   - Space: O(V + E), the heap holding stale duplicates under lazy decrease-key.
func Search[S comparable](start S, next func(S) []Edge[S], opts ...Option) (*Result[S], error) {
	// 1) Build Options (WithMaxDistance already panicked on a negative cap).
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Prepare the runner. dist starts with the source at zero; every other
	//    state is implicitly at Unreachable until first relaxed.
	r := &runner[S]{
		next:    next,
		options: cfg,
		res: &Result[S]{
			start: start,
			dist:  map[S]int64{start: 0},
			prev:  make(map[S][]S),
		},
		done: make(map[S]bool),
	}

	// 3) Seed the heap with the source.
	heap.Push(&r.pq, &stateItem[S]{state: start, dist: 0, seq: r.nextSeq()})

	// 4) Run the main loop; a negative edge aborts the whole search.
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single Search.
type runner[S comparable] struct {
	next    func(S) []Edge[S] // successor function, read-only
	options Options           // distance cap
	res     *Result[S]        // distances, predecessors and settle order
	done    map[S]bool        // settled states
	pq      statePQ[S]        // lazy min-heap of *stateItem
	seq     int               // push counter for FIFO tie-breaking
}

func (r *runner[S]) nextSeq() int {
	r.seq++
	return r.seq
}

// process is the core loop. It repeatedly extracts the closest unsettled
// state, fixes its distance and relaxes its outgoing edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (every reachable state settled).
//   - The minimum distance in the heap exceeds MaxDistance.
//   - relax reports a negative edge.
//
// Complexity: O((V + E) log V); each state settles once, each edge pushes at most once.
func (r *runner[S]) process() error {
	for r.pq.Len() > 0 {
		// 1) Extract the entry with the smallest (dist, seq).
		item := heap.Pop(&r.pq).(*stateItem[S])
		u, d := item.state, item.dist

		// 2) Lazy decrease-key: a settled state's older entries are stale.
		if r.done[u] {
			continue
		}

		// 3) Entries leave in non-decreasing distance, so nothing after
		//    this one can be within the cap either.
		if d > r.options.MaxDistance {
			break
		}

		// 4) Settle u and record the order for Settled().
		r.done[u] = true
		r.res.settled = append(r.res.settled, u)

		// 5) Relax u's successors.
		if err := r.relax(u, d); err != nil {
			return err
		}
	}

	return nil
}

// relax updates distances and predecessor lists for u's successors.
//
// A strictly shorter route replaces v's predecessors with u; an equal route
// appends u, which is what lets Paths and Ancestors enumerate every optimum.
//
// Complexity: O(k log V) for the k edges next returns for u.
func (r *runner[S]) relax(u S, du int64) error {
	for _, e := range r.next(u) {
		// 1) Fail fast on negative cost; Dijkstra's settle order would be wrong.
		if e.Cost < 0 {
			return fmt.Errorf("%w: %v→%v cost=%d", ErrNegativeWeight, u, e.To, e.Cost)
		}

		// 2) Settled targets already have their final distance.
		v := e.To
		if r.done[v] {
			continue
		}

		// 3) Candidate distance through u, clipped by the cap.
		nd := du + e.Cost
		if nd > r.options.MaxDistance {
			continue
		}

		cur, seen := r.res.dist[v]
		switch {
		// 4a) First or strictly better route: reset predecessors and queue v.
		case !seen || nd < cur:
			r.res.dist[v] = nd
			r.res.prev[v] = append(r.res.prev[v][:0], u)
			heap.Push(&r.pq, &stateItem[S]{state: v, dist: nd, seq: r.nextSeq()})
		// 4b) Tie: keep u as an additional predecessor; v is already queued.
		case nd == cur:
			if !slices.Contains(r.res.prev[v], u) {
				r.res.prev[v] = append(r.res.prev[v], u)
			}
		}
	}

	return nil
}

// stateItem is one heap entry.
type stateItem[S comparable] struct {
	state S
	dist  int64
	seq   int // push order, breaks distance ties
}

// statePQ is a min-heap of *stateItem ordered by (dist, seq).
type statePQ[S comparable] []*stateItem[S]

func (pq statePQ[S]) Len() int { return len(pq) }

func (pq statePQ[S]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq statePQ[S]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *statePQ[S]) Push(x any) { *pq = append(*pq, x.(*stateItem[S])) }

// Pop removes the last element; container/heap has already moved the minimum there.
func (pq *statePQ[S]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // drop the reference for the GC
	*pq = old[:n-1]

	return item
}
