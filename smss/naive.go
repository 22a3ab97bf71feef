package smss

// Naive preserves ops' input order and reports Lmax as the simple sum of
// processing times, ignoring heads and tails entirely. It carries no
// optimality guarantee — the spec marks it a placeholder, useful only to
// bootstrap a bottleneck estimate before any machine has real head/tail
// data, never as the orchestrator's sequencing decision for n ≤
// BruteForceLimit.
func Naive(ops []Operation) Result {
	order := make([]int, len(ops))
	sum := 0
	for i, o := range ops {
		order[i] = o.Index
		sum += o.Proc
	}

	return Result{Order: order, Lmax: sum}
}

// Solve dispatches to BruteForce (up to DefaultBruteForceLimit operations)
// and falls back to Naive otherwise. The bottleneck selector and
// orchestrator call SolveWithLimit instead, which lets a caller raise or
// lower the cutoff (see orchestrator.Config.BruteForceLimit and
// config.SolverConfig).
func Solve(ops []Operation) Result {
	return SolveWithLimit(ops, DefaultBruteForceLimit)
}

// SolveWithLimit is Solve with an explicit brute-force cutoff.
func SolveWithLimit(ops []Operation, limit int) Result {
	if len(ops) <= limit {
		if res, err := BruteForce(ops, limit); err == nil {
			return res
		}
	}

	return Naive(ops)
}
