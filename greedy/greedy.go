package greedy

import (
	"github.com/dshevtsov/jssp-sb/instance"
	"github.com/dshevtsov/jssp-sb/schedule"
)

// Solve produces a feasible schedule for inst using the greedy list
// scheduler: no lookahead, no optimization, just job-ready/machine-ready
// max at each step.
//
// Complexity: O(J*M).
func Solve(inst *instance.Instance) *schedule.Schedule {
	machineAvailable := make([]int, inst.NumMachines)
	jobReady := make([]int, inst.NumJobs)

	n := inst.NumOperations()
	start := make([]int, n)
	end := make([]int, n)

	for p := 0; p < inst.NumMachines; p++ {
		for j := 0; j < inst.NumJobs; j++ {
			op := inst.OperationIndex(j, p)
			task := inst.Task(op)

			s := jobReady[j]
			if machineAvailable[task.Machine] > s {
				s = machineAvailable[task.Machine]
			}
			e := s + task.Duration

			start[op] = s
			end[op] = e
			machineAvailable[task.Machine] = e
			jobReady[j] = e
		}
	}

	makespan := 0
	for _, e := range end {
		if e > makespan {
			makespan = e
		}
	}

	return &schedule.Schedule{Instance: inst, StartTime: start, EndTime: end, Makespan: makespan}
}
