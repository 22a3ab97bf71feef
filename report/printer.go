package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/dshevtsov/jssp-sb/schedule"
)

// PrintSchedule writes a human-readable per-operation table, ordered by
// start time (ties broken by operation index for determinism).
func PrintSchedule(w io.Writer, s *schedule.Schedule) {
	inst := s.Instance
	ops := make([]int, inst.NumOperations())
	for i := range ops {
		ops[i] = i
	}
	sort.Slice(ops, func(a, b int) bool {
		i, j := ops[a], ops[b]
		if s.StartTime[i] != s.StartTime[j] {
			return s.StartTime[i] < s.StartTime[j]
		}
		return i < j
	})

	fmt.Fprintf(w, "%-6s %-6s %-6s %-8s %-6s %-6s\n", "job", "pos", "op", "machine", "start", "end")
	for _, op := range ops {
		task := inst.Task(op)
		fmt.Fprintf(w, "%-6d %-6d %-6d %-8d %-6d %-6d\n",
			inst.Job(op), inst.Position(op), op, task.Machine, s.StartTime[op], s.EndTime[op])
	}
	fmt.Fprintf(w, "\nmakespan: %d\n", s.Makespan)
}

// PrintMetrics writes a per-machine metrics table (busy, idle, utilization).
func PrintMetrics(w io.Writer, metrics []MachineMetrics) {
	fmt.Fprintf(w, "%-8s %-8s %-8s %-s\n", "machine", "busy", "idle", "utilization")
	for _, m := range metrics {
		fmt.Fprintf(w, "%-8d %-8d %-8d %.1f%%\n", m.Machine, m.Busy, m.Idle, m.Utilization*100)
	}
}
