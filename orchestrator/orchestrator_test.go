package orchestrator_test

import (
	"errors"
	"testing"

	"github.com/dshevtsov/jssp-sb/instance"
	"github.com/dshevtsov/jssp-sb/orchestrator"
	"github.com/dshevtsov/jssp-sb/schedule"
)

func toyInstance(t *testing.T) *instance.Instance {
	t.Helper()
	jobs := [][]instance.Task{
		{{Machine: 0, Duration: 3}, {Machine: 1, Duration: 2}, {Machine: 2, Duration: 2}},
		{{Machine: 1, Duration: 2}, {Machine: 2, Duration: 1}, {Machine: 0, Duration: 4}},
		{{Machine: 2, Duration: 4}, {Machine: 0, Duration: 3}, {Machine: 1, Duration: 2}},
	}
	inst, err := instance.NewInstance(jobs)
	if err != nil {
		t.Fatalf("NewInstance: %v", err)
	}
	return inst
}

func TestSolve_ProducesFeasibleSchedule(t *testing.T) {
	inst := toyInstance(t)
	res, err := orchestrator.Solve(inst, orchestrator.DefaultConfig())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if v := schedule.Validate(res.Schedule, res.Schedule.Makespan); len(v) != 0 {
		t.Errorf("Validate() = %v; shifting-bottleneck schedule must be feasible", v)
	}
	if len(res.BottleneckOrder) != inst.NumMachines {
		t.Errorf("len(BottleneckOrder) = %d; want %d", len(res.BottleneckOrder), inst.NumMachines)
	}
}

func TestSolve_DegenerateTwoByTwo(t *testing.T) {
	jobs := [][]instance.Task{
		{{Machine: 0, Duration: 1}, {Machine: 1, Duration: 1}},
		{{Machine: 0, Duration: 1}, {Machine: 1, Duration: 1}},
	}
	inst, err := instance.NewInstance(jobs)
	if err != nil {
		t.Fatalf("NewInstance: %v", err)
	}
	res, err := orchestrator.Solve(inst, orchestrator.DefaultConfig())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if res.Schedule.Makespan != 3 {
		t.Errorf("Makespan = %d; want 3", res.Schedule.Makespan)
	}
}

func TestSolve_IdentityRouting(t *testing.T) {
	jobs := [][]instance.Task{
		{{Machine: 0, Duration: 2}, {Machine: 1, Duration: 3}, {Machine: 2, Duration: 1}},
	}
	inst, err := instance.NewInstance(jobs)
	if err != nil {
		t.Fatalf("NewInstance: %v", err)
	}
	res, err := orchestrator.Solve(inst, orchestrator.DefaultConfig())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if res.Schedule.Makespan != 6 {
		t.Errorf("Makespan = %d; want 6 (single job, no contention)", res.Schedule.Makespan)
	}
}

func TestSolve_DeterministicAcrossRuns(t *testing.T) {
	inst := toyInstance(t)
	res1, err := orchestrator.Solve(inst, orchestrator.DefaultConfig())
	if err != nil {
		t.Fatalf("Solve (first): %v", err)
	}
	res2, err := orchestrator.Solve(inst, orchestrator.DefaultConfig())
	if err != nil {
		t.Fatalf("Solve (second): %v", err)
	}
	if res1.Schedule.Makespan != res2.Schedule.Makespan {
		t.Errorf("Makespan differs across runs: %d vs %d", res1.Schedule.Makespan, res2.Schedule.Makespan)
	}
	for i := range res1.BottleneckOrder {
		if res1.BottleneckOrder[i] != res2.BottleneckOrder[i] {
			t.Fatalf("BottleneckOrder is not deterministic: %v vs %v", res1.BottleneckOrder, res2.BottleneckOrder)
		}
	}
}

func TestSolve_SumOfDurationsRuleAlsoFeasible(t *testing.T) {
	inst := toyInstance(t)
	cfg := orchestrator.DefaultConfig()
	cfg.BottleneckRule = orchestrator.SumOfDurations
	res, err := orchestrator.Solve(inst, cfg)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if v := schedule.Validate(res.Schedule, res.Schedule.Makespan); len(v) != 0 {
		t.Errorf("Validate() = %v; SumOfDurations schedule must still be feasible", v)
	}
}

func TestSolve_ReoptimizeNeverWorsensMakespan(t *testing.T) {
	inst := toyInstance(t)
	withReopt := orchestrator.DefaultConfig()
	withReopt.Reoptimize = true
	resWith, err := orchestrator.Solve(inst, withReopt)
	if err != nil {
		t.Fatalf("Solve (reoptimize on): %v", err)
	}

	withoutReopt := orchestrator.DefaultConfig()
	withoutReopt.Reoptimize = false
	resWithout, err := orchestrator.Solve(inst, withoutReopt)
	if err != nil {
		t.Fatalf("Solve (reoptimize off): %v", err)
	}

	if resWith.Schedule.Makespan > resWithout.Schedule.Makespan {
		t.Errorf("re-optimized makespan %d is worse than non-reoptimized %d",
			resWith.Schedule.Makespan, resWithout.Schedule.Makespan)
	}
}

func TestErrUnschedulable_IsASentinel(t *testing.T) {
	if !errors.Is(orchestrator.ErrUnschedulable, orchestrator.ErrUnschedulable) {
		t.Fatal("ErrUnschedulable must be comparable via errors.Is")
	}
}
