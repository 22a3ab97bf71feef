package orchestrator

import (
	"errors"
	"fmt"

	"github.com/dshevtsov/jssp-sb/bottleneck"
	"github.com/dshevtsov/jssp-sb/instance"
	"github.com/dshevtsov/jssp-sb/internal/logging"
	"github.com/dshevtsov/jssp-sb/jgraph"
	"github.com/dshevtsov/jssp-sb/longestpath"
	"github.com/dshevtsov/jssp-sb/schedule"
	"github.com/dshevtsov/jssp-sb/smss"
)

// ErrUnschedulable indicates that, for some iteration, every ranked
// bottleneck candidate would close a cycle — the orchestrator could not
// grow the sequenced set and gives up (spec §7).
var ErrUnschedulable = errors.New("orchestrator: no candidate machine could be oriented without a cycle")

// Result is the outcome of a full shifting-bottleneck solve.
type Result struct {
	Schedule *schedule.Schedule
	// BottleneckOrder is the sequence of machines chosen as bottleneck,
	// in selection order — Property 2 requires this to be deterministic
	// and reproducible across runs on the same instance.
	BottleneckOrder []int
}

// Solve runs the shifting bottleneck heuristic to completion on inst and
// returns the resulting Schedule, or ErrUnschedulable if no sequencing of
// some machine avoids a cycle. An I1/I2 breach while orienting a
// candidate (which this orchestrator never triggers by construction) is a
// programmer error and panics (see tryOrientCandidates); failures while
// building the conjunctive chains, computing EST/LF, or re-optimizing are
// returned wrapped, not swallowed.
func Solve(inst *instance.Instance, cfg Config) (*Result, error) {
	g := jgraph.NewGraph(inst)
	if err := g.InstallAllConjunctiveChains(); err != nil {
		return nil, fmt.Errorf("orchestrator: building conjunctive chains: %w", err)
	}

	scheduled := make(map[int]bool, inst.NumMachines)
	order := make([]int, 0, inst.NumMachines)

	for len(scheduled) < inst.NumMachines {
		est, err := longestpath.ComputeEarliestStarts(g)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: invariant breach computing EST: %w", err)
		}
		lf, err := longestpath.ComputeLatestFinishes(g, est.Makespan)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: invariant breach computing LF: %w", err)
		}

		unscheduled := unscheduledMachines(inst, scheduled)

		// SumOfDurations only bootstraps the first pick; once a machine is
		// sequenced, ranking is EST-informed under either rule.
		var candidates []bottleneck.Candidate
		if cfg.BottleneckRule == SumOfDurations && len(scheduled) == 0 {
			candidates = bottleneck.RankSumOfDurations(inst, unscheduled)
		} else {
			candidates = bottleneck.RankESTInformed(inst, est.EST, lf, est.Makespan, unscheduled, cfg.BruteForceLimit)
		}

		chosen, ok := tryOrientCandidates(g, candidates, cfg.Logger)
		if !ok {
			return nil, ErrUnschedulable
		}

		scheduled[chosen] = true
		order = append(order, chosen)

		if cfg.Reoptimize {
			if err := reoptimize(g, inst, scheduled, chosen, cfg.BruteForceLimit, cfg.Logger); err != nil {
				return nil, fmt.Errorf("orchestrator: re-optimization: %w", err)
			}
		}
	}

	final, err := longestpath.ComputeEarliestStarts(g)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: invariant breach computing final EST: %w", err)
	}

	return &Result{
		Schedule:        schedule.FromEST(inst, final.EST, final.Makespan),
		BottleneckOrder: order,
	}, nil
}

// tryOrientCandidates attempts AddOrientedSequence for each candidate in
// rank order (highest Lmax first), returning the first machine that
// orients without a cycle. A non-cycle error is a programmer error and
// panics, since it signals an I1/I2 breach the orchestrator's own inputs
// should never produce.
func tryOrientCandidates(g *jgraph.Graph, candidates []bottleneck.Candidate, logger *logging.Logger) (int, bool) {
	for _, cand := range candidates {
		err := g.AddOrientedSequence(cand.Machine, cand.Result.Order)
		if err == nil {
			logger.Infof("selected bottleneck machine %d (Lmax=%d)", cand.Machine, cand.Result.Lmax)
			return cand.Machine, true
		}
		if errors.Is(err, jgraph.ErrInvalidSequence) {
			logger.Debugf("machine %d would close a cycle, trying next candidate", cand.Machine)
			continue
		}
		panic(fmt.Sprintf("orchestrator: invariant breach orienting machine %d: %v", cand.Machine, err))
	}

	return 0, false
}

func unscheduledMachines(inst *instance.Instance, scheduled map[int]bool) []int {
	out := make([]int, 0, inst.NumMachines-len(scheduled))
	for m := 0; m < inst.NumMachines; m++ {
		if !scheduled[m] {
			out = append(out, m)
		}
	}

	return out
}

// reoptimize implements §4.5 step 7: for every already-sequenced machine
// other than the one just chosen, remove its sequence, re-solve SMSS
// against the updated graph, and re-orient — keeping the change only if
// the makespan does not increase.
func reoptimize(g *jgraph.Graph, inst *instance.Instance, scheduled map[int]bool, justAdded, bruteForceLimit int, logger *logging.Logger) error {
	baseline, err := longestpath.ComputeEarliestStarts(g)
	if err != nil {
		return err
	}

	for m := 0; m < inst.NumMachines; m++ {
		if m == justAdded || !scheduled[m] {
			continue
		}

		oldOrder := g.SequenceOf(m)
		if err := g.RemoveMachineSequence(m); err != nil {
			return err
		}

		est, err := longestpath.ComputeEarliestStarts(g)
		if err != nil {
			return err
		}
		lf, err := longestpath.ComputeLatestFinishes(g, est.Makespan)
		if err != nil {
			return err
		}

		ops := make([]smss.Operation, 0, inst.NumJobs)
		for _, op := range inst.OperationsOnMachine(m) {
			ops = append(ops, smss.Operation{
				Index: op,
				Head:  est.EST[op],
				Proc:  inst.Task(op).Duration,
				Tail:  est.Makespan - lf[op],
			})
		}
		res := smss.SolveWithLimit(ops, bruteForceLimit)

		if err := g.AddOrientedSequence(m, res.Order); err != nil {
			// Could not re-orient without a cycle; restore the original.
			if restoreErr := g.AddOrientedSequence(m, oldOrder); restoreErr != nil {
				return fmt.Errorf("restoring machine %d after failed re-optimization: %w", m, restoreErr)
			}
			continue
		}

		newEst, err := longestpath.ComputeEarliestStarts(g)
		if err != nil {
			return err
		}
		if newEst.Makespan > baseline.Makespan {
			if err := g.RemoveMachineSequence(m); err != nil {
				return err
			}
			if err := g.AddOrientedSequence(m, oldOrder); err != nil {
				return fmt.Errorf("restoring machine %d after rejected re-optimization: %w", m, err)
			}
			continue
		}

		logger.Infof("re-optimized machine %d, makespan now %d", m, newEst.Makespan)
		baseline = newEst
	}

	return nil
}
