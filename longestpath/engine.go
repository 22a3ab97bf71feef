package longestpath

import (
	"errors"

	"github.com/dshevtsov/jssp-sb/jgraph"
)

// ErrCycle indicates the graph admits no topological order (CYCLE, spec §7).
var ErrCycle = errors.New("longestpath: graph contains a cycle")

// Result holds per-vertex earliest-start times and the resulting makespan.
type Result struct {
	// EST[v] is the earliest time v can start, given current arcs.
	EST []int
	// Makespan is EST[sink], the length of the longest SOURCE->SINK path.
	Makespan int
}

// ComputeEarliestStarts runs Kahn-ordered longest-path relaxation over g
// and returns each vertex's EST plus the makespan. Returns ErrCycle if g
// is not a DAG.
//
// Complexity: O(V + E).
func ComputeEarliestStarts(g *jgraph.Graph) (*Result, error) {
	order, err := g.TopologicalOrder()
	if err != nil {
		return nil, ErrCycle
	}

	est := make([]int, g.NumVertices())
	est[g.Source()] = 0

	for _, u := range order {
		du := g.Duration(u)
		for _, v := range g.Successors(u) {
			if cand := est[u] + du; cand > est[v] {
				est[v] = cand
			}
		}
	}

	return &Result{EST: est, Makespan: est[g.Sink()]}, nil
}

// ComputeLatestFinishes runs the dual reverse-topological pass, anchoring
// LF[sink] = targetMakespan and propagating
// LF[u] = min over successors v of (LF[v] - Duration(v)).
//
// Vertices with no successors (only SINK, once every conjunctive chain is
// installed) retain LF == targetMakespan; callers pass the graph's own
// ComputeEarliestStarts makespan (or a looser bound) as targetMakespan.
//
// Complexity: O(V + E).
func ComputeLatestFinishes(g *jgraph.Graph, targetMakespan int) ([]int, error) {
	order, err := g.TopologicalOrder()
	if err != nil {
		return nil, ErrCycle
	}

	lf := make([]int, g.NumVertices())
	for v := range lf {
		lf[v] = targetMakespan
	}

	for i := len(order) - 1; i >= 0; i-- {
		v := order[i]
		if v == g.Sink() {
			continue
		}
		best := targetMakespan
		first := true
		for _, succ := range g.Successors(v) {
			cand := lf[succ] - g.Duration(succ)
			if first || cand < best {
				best = cand
				first = false
			}
		}
		if !first {
			lf[v] = best
		}
	}

	return lf, nil
}
