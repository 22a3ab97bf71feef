package schedule_test

import (
	"testing"

	"github.com/dshevtsov/jssp-sb/instance"
	"github.com/dshevtsov/jssp-sb/schedule"
)

func toyInstance(t *testing.T) *instance.Instance {
	t.Helper()
	jobs := [][]instance.Task{
		{{Machine: 0, Duration: 3}, {Machine: 1, Duration: 2}},
		{{Machine: 1, Duration: 4}, {Machine: 0, Duration: 1}},
	}
	inst, err := instance.NewInstance(jobs)
	if err != nil {
		t.Fatalf("NewInstance: %v", err)
	}
	return inst
}

func TestFromEST(t *testing.T) {
	inst := toyInstance(t)
	// EST indexed by flat operation index; SOURCE/SINK entries are ignored.
	est := []int{0, 3, 0, 5, 0, 0}
	s := schedule.FromEST(inst, est, 6)
	if s.Makespan != 6 {
		t.Errorf("Makespan = %d; want 6", s.Makespan)
	}
	if s.EndTime[0] != 3 || s.EndTime[1] != 5 {
		t.Errorf("EndTime = %v; want [3 5 ...]", s.EndTime)
	}
}

func TestValidate_FeasibleSchedule(t *testing.T) {
	inst := toyInstance(t)
	// Job0: op0 on M0 [0,3), op1 on M1 [4,6). Job1: op0 on M1 [0,4), op1 on M0 [4,5).
	start := []int{0, 4, 0, 4}
	end := []int{3, 6, 4, 5}
	s := &schedule.Schedule{Instance: inst, StartTime: start, EndTime: end, Makespan: 6}
	if v := schedule.Validate(s, 6); len(v) != 0 {
		t.Errorf("Validate() = %v; want no violations", v)
	}
}

func TestValidateJobOrder_Violation(t *testing.T) {
	inst := toyInstance(t)
	// op1 of job0 starts before op0 finishes: 2 < 3.
	start := []int{0, 2, 0, 4}
	end := []int{3, 4, 4, 5}
	s := &schedule.Schedule{Instance: inst, StartTime: start, EndTime: end, Makespan: 6}
	v := schedule.ValidateJobOrder(s)
	if len(v) != 1 || v[0].Kind != "job_order" {
		t.Errorf("ValidateJobOrder() = %v; want one job_order violation", v)
	}
}

func TestValidateMachineExclusivity_Violation(t *testing.T) {
	inst := toyInstance(t)
	// Both job0.op0 and job1.op1 run on machine 0 and overlap: [0,3) vs [1,2).
	start := []int{0, 4, 0, 1}
	end := []int{3, 6, 4, 2}
	s := &schedule.Schedule{Instance: inst, StartTime: start, EndTime: end, Makespan: 6}
	v := schedule.ValidateMachineExclusivity(s)
	if len(v) != 1 || v[0].Kind != "machine_overlap" {
		t.Errorf("ValidateMachineExclusivity() = %v; want one machine_overlap violation", v)
	}
}

func TestValidateMakespan_Violation(t *testing.T) {
	inst := toyInstance(t)
	start := []int{0, 4, 0, 4}
	end := []int{3, 6, 4, 5}
	s := &schedule.Schedule{Instance: inst, StartTime: start, EndTime: end, Makespan: 6}
	v := schedule.ValidateMakespan(s, 10)
	if len(v) != 1 || v[0].Kind != "makespan" {
		t.Errorf("ValidateMakespan() = %v; want one makespan violation", v)
	}
}
