package bottleneck

import (
	"sort"

	"github.com/dshevtsov/jssp-sb/instance"
	"github.com/dshevtsov/jssp-sb/smss"
)

// Candidate is one unscheduled machine's ranked SMSS outcome.
type Candidate struct {
	Machine int
	Result  smss.Result
}

// RankESTInformed solves SMSS for every machine in unscheduled using
// heads derived from est and tails derived from lf against targetMakespan,
// then returns candidates sorted by descending Lmax, ties broken by
// ascending machine index (spec §4.4 canonical rule).
//
// Complexity: O(sum of n_m! ) dominated by smss.Solve per machine; bounded
// in practice by BruteForceLimit per machine.
func RankESTInformed(inst *instance.Instance, est []int, lf []int, targetMakespan int, unscheduled []int, bruteForceLimit int) []Candidate {
	candidates := make([]Candidate, 0, len(unscheduled))
	for _, m := range unscheduled {
		ops := buildOperations(inst, m, est, lf, targetMakespan)
		candidates = append(candidates, Candidate{Machine: m, Result: smss.SolveWithLimit(ops, bruteForceLimit)})
	}

	sortCandidates(candidates)

	return candidates
}

// RankSumOfDurations ranks unscheduled machines by total processing time,
// ignoring the graph. It exists only to bootstrap a selection before any
// machine is sequenced; ESTInformed already produces a valid ranking from
// the start (the conjunctive-only graph has well-defined EST/LF), so the
// orchestrator defaults to ESTInformed and uses this rule only when
// explicitly configured to (see orchestrator.Config.BottleneckRule).
func RankSumOfDurations(inst *instance.Instance, unscheduled []int) []Candidate {
	candidates := make([]Candidate, 0, len(unscheduled))
	for _, m := range unscheduled {
		ops := inst.OperationsOnMachine(m)
		sum := 0
		order := make([]int, len(ops))
		for i, op := range ops {
			order[i] = op
			sum += inst.Task(op).Duration
		}
		candidates = append(candidates, Candidate{Machine: m, Result: smss.Result{Order: order, Lmax: sum}})
	}

	sortCandidates(candidates)

	return candidates
}

func sortCandidates(candidates []Candidate) {
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Result.Lmax != candidates[j].Result.Lmax {
			return candidates[i].Result.Lmax > candidates[j].Result.Lmax
		}
		return candidates[i].Machine < candidates[j].Machine
	})
}

func buildOperations(inst *instance.Instance, machine int, est []int, lf []int, targetMakespan int) []smss.Operation {
	ops := inst.OperationsOnMachine(machine)
	specs := make([]smss.Operation, len(ops))
	for i, op := range ops {
		specs[i] = smss.Operation{
			Index: op,
			Head:  est[op],
			Proc:  inst.Task(op).Duration,
			Tail:  targetMakespan - lf[op],
		}
	}

	return specs
}
