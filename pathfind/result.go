package pathfind

import "slices"

// Start returns the state Search began from.
func (r *Result[S]) Start() S { return r.start }

// Dist returns the minimum cost to s and whether s was reached.
// Unreached states report Unreachable.
func (r *Result[S]) Dist(s S) (int64, bool) {
	d, ok := r.dist[s]
	if !ok {
		return Unreachable, false
	}

	return d, true
}

// Predecessors returns every state that reaches s on some optimal route,
// in discovery order. The start state has none.
func (r *Result[S]) Predecessors(s S) []S {
	return slices.Clone(r.prev[s])
}

// Settled returns states in the order their distance became final.
func (r *Result[S]) Settled() []S {
	return slices.Clone(r.settled)
}

// Best returns the candidate with the smallest distance, preferring the
// earliest on ties. ok is false when no candidate was reached.
func (r *Result[S]) Best(candidates ...S) (best S, dist int64, ok bool) {
	dist = Unreachable
	for _, c := range candidates {
		if d, reached := r.dist[c]; reached && d < dist {
			best, dist, ok = c, d, true
		}
	}

	return best, dist, ok
}

// Path returns one optimal route from the start to goal, following the first
// recorded predecessor at each step. It returns nil when goal is unreachable.
func (r *Result[S]) Path(goal S) []S {
	if _, ok := r.dist[goal]; !ok {
		return nil
	}

	path := []S{goal}
	for cur := goal; cur != r.start; {
		cur = r.prev[cur][0]
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path
}

// Paths enumerates every optimal route from the start to goal, branching on
// each predecessor. The count can grow exponentially with the number of ties;
// prefer Ancestors when only the set of states matters.
func (r *Result[S]) Paths(goal S) [][]S {
	if _, ok := r.dist[goal]; !ok {
		return nil
	}

	var (
		out  [][]S
		rev  []S
		walk func(s S)
	)
	walk = func(s S) {
		rev = append(rev, s)
		if s == r.start {
			p := slices.Clone(rev)
			slices.Reverse(p)
			out = append(out, p)
		} else {
			for _, p := range r.prev[s] {
				walk(p)
			}
		}
		rev = rev[:len(rev)-1]
	}
	walk(goal)

	return out
}

// Ancestors returns every state lying on some optimal route from the start
// to any of goals, goals included, in breadth-first order from the goals.
// Unreached goals are ignored.
func (r *Result[S]) Ancestors(goals ...S) []S {
	seen := make(map[S]bool)
	var queue []S
	for _, g := range goals {
		if _, ok := r.dist[g]; ok && !seen[g] {
			seen[g] = true
			queue = append(queue, g)
		}
	}
	for head := 0; head < len(queue); head++ {
		for _, p := range r.prev[queue[head]] {
			if !seen[p] {
				seen[p] = true
				queue = append(queue, p)
			}
		}
	}

	return queue
}
