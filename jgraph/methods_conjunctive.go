// File: methods_conjunctive.go
// Role: installs the fixed per-job arc chain (I3: never removed).
package jgraph

// AddConjunctiveChain installs SOURCE -> first op of job, each
// (op at position p) -> (op at position p+1), and last op -> SINK. It is
// idempotent-unsafe: calling it twice for the same job returns
// ErrDuplicateArc from the second call's first arc.
//
// Complexity: O(M) for a job with M operations.
func (g *Graph) AddConjunctiveChain(job int) error {
	m := g.inst.NumMachines
	first := g.inst.OperationIndex(job, 0)
	if err := g.addArc(g.source, first); err != nil {
		return err
	}
	for p := 0; p+1 < m; p++ {
		u := g.inst.OperationIndex(job, p)
		v := g.inst.OperationIndex(job, p+1)
		if err := g.addArc(u, v); err != nil {
			return err
		}
	}
	last := g.inst.OperationIndex(job, m-1)
	if err := g.addArc(last, g.sink); err != nil {
		return err
	}

	return nil
}

// InstallAllConjunctiveChains calls AddConjunctiveChain for every job in
// the instance; this is the graph's usual starting state before any
// machine has been sequenced.
func (g *Graph) InstallAllConjunctiveChains() error {
	if g.conjunctiveDone {
		return nil
	}
	for j := 0; j < g.inst.NumJobs; j++ {
		if err := g.AddConjunctiveChain(j); err != nil {
			return err
		}
	}
	g.conjunctiveDone = true

	return nil
}
