package report

import "github.com/dshevtsov/jssp-sb/schedule"

// MachineMetrics summarizes one machine's utilization under a schedule.
type MachineMetrics struct {
	Machine     int
	Busy        int
	Idle        int
	Utilization float64 // Busy / Makespan, 0 if Makespan == 0
}

// ComputeMetrics derives per-machine busy/idle time and utilization from s.
//
// Complexity: O(N).
func ComputeMetrics(s *schedule.Schedule) []MachineMetrics {
	inst := s.Instance
	busy := make([]int, inst.NumMachines)
	for i := 0; i < inst.NumOperations(); i++ {
		busy[inst.Task(i).Machine] += inst.Task(i).Duration
	}

	out := make([]MachineMetrics, inst.NumMachines)
	for m := 0; m < inst.NumMachines; m++ {
		idle := s.Makespan - busy[m]
		util := 0.0
		if s.Makespan > 0 {
			util = float64(busy[m]) / float64(s.Makespan)
		}
		out[m] = MachineMetrics{Machine: m, Busy: busy[m], Idle: idle, Utilization: util}
	}

	return out
}
