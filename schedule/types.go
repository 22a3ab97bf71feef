package schedule

import "github.com/dshevtsov/jssp-sb/instance"

// Schedule is a start time for every operation of an instance, plus the
// derived end time and overall makespan.
type Schedule struct {
	Instance  *instance.Instance
	StartTime []int // StartTime[i] for flat operation index i
	EndTime   []int // EndTime[i] = StartTime[i] + duration(i)
	Makespan  int
}

// FromEST builds a Schedule from per-operation earliest-start times
// (typically longestpath.Result.EST, trimmed to the instance's operation
// range — EST also carries SOURCE/SINK entries the Schedule does not
// need) and the overall makespan.
//
// Complexity: O(N).
func FromEST(inst *instance.Instance, est []int, makespan int) *Schedule {
	n := inst.NumOperations()
	start := make([]int, n)
	end := make([]int, n)
	for i := 0; i < n; i++ {
		start[i] = est[i]
		end[i] = start[i] + inst.Task(i).Duration
	}

	return &Schedule{Instance: inst, StartTime: start, EndTime: end, Makespan: makespan}
}
