// File: toposort.go
// Role: Kahn-style topological order, shared by AddOrientedSequence's I4
// check and by the longestpath engine's EST/LF relaxation.
package jgraph

// TopologicalOrder returns a topological ordering of all vertices using
// Kahn's algorithm, breaking ties by ascending vertex index so that the
// order — and everything computed from it — is deterministic (spec §5).
//
// Returns ErrCycle if fewer than NumVertices() vertices are emitted, i.e.
// the graph is not a DAG.
//
// Complexity: O(V * R + E), where R is the largest size the ready
// frontier reaches (each pop scans the frontier linearly).
func (g *Graph) TopologicalOrder() ([]int, error) {
	inDegree := make([]int, g.numV)
	for v := 0; v < g.numV; v++ {
		inDegree[v] = len(g.predecessors[v])
	}

	// A min-ordered ready queue would need a heap; since fan-out is small
	// and ties only need a stable ascending break, a linear scan of the
	// frontier for its minimum is simpler and cheap for these graph sizes.
	ready := make([]int, 0, g.numV)
	for v := 0; v < g.numV; v++ {
		if inDegree[v] == 0 {
			ready = append(ready, v)
		}
	}

	order := make([]int, 0, g.numV)
	for len(ready) > 0 {
		// Pop the smallest-index ready vertex.
		minIdx := 0
		for i := 1; i < len(ready); i++ {
			if ready[i] < ready[minIdx] {
				minIdx = i
			}
		}
		u := ready[minIdx]
		ready[minIdx] = ready[len(ready)-1]
		ready = ready[:len(ready)-1]

		order = append(order, u)

		for _, v := range g.Successors(u) {
			inDegree[v]--
			if inDegree[v] == 0 {
				ready = append(ready, v)
			}
		}
	}

	if len(order) != g.numV {
		return nil, ErrCycle
	}

	return order, nil
}

// Acyclic reports whether the graph currently admits a full topological
// order (Property 5).
func (g *Graph) Acyclic() bool {
	_, err := g.TopologicalOrder()
	return err == nil
}
