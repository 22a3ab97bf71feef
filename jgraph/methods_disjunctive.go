// File: methods_disjunctive.go
// Role: incrementally orient one machine's disjunctive arcs, and undo it
// for re-optimization (§4.5 step 7).
package jgraph

// AddOrientedSequence adds the chain order[0]->order[1]->...->order[k-1]
// as machine's disjunctive arcs. It rejects self-loops or duplicates
// (ErrSelfLoop / ErrDuplicateArc) without touching machineArcs, and
// rejects — rolling back every arc it just added — any sequence that
// would close a cycle, returning ErrInvalidSequence (I4).
//
// Calling AddOrientedSequence for a machine that already has an oriented
// sequence is an error from the caller's side in spirit (the spec models
// re-sequencing as RemoveMachineSequence then AddOrientedSequence); this
// implementation does not special-case it — a stale sequence would simply
// surface ErrDuplicateArc on the first repeated arc.
//
// Complexity: O(k) to add arcs + O(V+E) for the acyclicity check.
func (g *Graph) AddOrientedSequence(machine int, order []int) error {
	added := make([]arc, 0, len(order))
	for i := 0; i+1 < len(order); i++ {
		u, v := order[i], order[i+1]
		if err := g.addArc(u, v); err != nil {
			// Roll back everything installed so far in this call.
			for _, a := range added {
				g.removeArc(a.From, a.To)
			}
			return err
		}
		added = append(added, arc{From: u, To: v})
	}

	if !g.Acyclic() {
		for _, a := range added {
			g.removeArc(a.From, a.To)
		}
		return ErrInvalidSequence
	}

	g.machineArcs[machine] = added
	g.machineOrder[machine] = append([]int(nil), order...)

	return nil
}

// RemoveMachineSequence removes exactly the arcs installed by the most
// recent successful AddOrientedSequence(machine, ...) call. Returns
// ErrUnknownMachine if machine currently has no oriented sequence.
func (g *Graph) RemoveMachineSequence(machine int) error {
	arcs, ok := g.machineArcs[machine]
	if !ok {
		return ErrUnknownMachine
	}
	for _, a := range arcs {
		g.removeArc(a.From, a.To)
	}
	delete(g.machineArcs, machine)
	delete(g.machineOrder, machine)

	return nil
}

// HasSequence reports whether machine currently has an oriented sequence.
func (g *Graph) HasSequence(machine int) bool {
	_, ok := g.machineArcs[machine]
	return ok
}

// SequenceOf returns the operation permutation currently oriented for
// machine, or nil if machine has no oriented sequence.
func (g *Graph) SequenceOf(machine int) []int {
	order, ok := g.machineOrder[machine]
	if !ok {
		return nil
	}

	return append([]int(nil), order...)
}
