// File: methods_arcs.go
// Role: low-level arc insertion/removal shared by conjunctive and
// disjunctive arc builders, plus successor/predecessor queries.
package jgraph

// addArc inserts u->v, rejecting self-loops (I1) and duplicates (I2).
// It does not check acyclicity; callers that must preserve I4 verify via
// TopologicalOrder after the full batch of arcs is installed.
func (g *Graph) addArc(u, v int) error {
	if u < 0 || u >= g.numV || v < 0 || v >= g.numV {
		return ErrVertexOutOfRange
	}
	if u == v {
		return ErrSelfLoop
	}
	if _, dup := g.successors[u][v]; dup {
		return ErrDuplicateArc
	}

	g.successors[u][v] = struct{}{}
	g.predecessors[v][u] = struct{}{}

	return nil
}

// removeArc deletes u->v if present; it is a no-op if absent, since callers
// only ever remove arcs they themselves recorded in machineArcs.
func (g *Graph) removeArc(u, v int) {
	delete(g.successors[u], v)
	delete(g.predecessors[v], u)
}

// Successors returns v's out-neighbors in ascending vertex-index order,
// satisfying the spec's secondary ordering key for deterministic
// topological traversal.
func (g *Graph) Successors(v int) []int {
	return sortedKeys(g.successors[v])
}

// Predecessors returns v's in-neighbors in ascending vertex-index order.
func (g *Graph) Predecessors(v int) []int {
	return sortedKeys(g.predecessors[v])
}

// InDegree returns len(Predecessors(v)) without allocating a slice.
func (g *Graph) InDegree(v int) int {
	return len(g.predecessors[v])
}

func sortedKeys(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	// Insertion sort is fine here: successor/predecessor fan-out in a JSSP
	// disjunctive graph is bounded by max(J, M), always small.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}

	return out
}
