package report

import (
	"fmt"
	"io"

	"github.com/dshevtsov/jssp-sb/schedule"
)

// Gantt writes a textual Gantt chart: one row per machine, one column per
// unit time tick, each occupied cell showing the job ID (single
// character: '0'-'9' then 'a'-'z'), blank cells rendered as '.'.
func Gantt(w io.Writer, s *schedule.Schedule) {
	inst := s.Instance
	width := s.Makespan
	if width == 0 {
		width = 1
	}

	for m := 0; m < inst.NumMachines; m++ {
		row := make([]byte, width)
		for i := range row {
			row[i] = '.'
		}
		for _, op := range inst.OperationsOnMachine(m) {
			start, end := s.StartTime[op], s.EndTime[op]
			ch := jobGlyph(inst.Job(op))
			for t := start; t < end && t < width; t++ {
				row[t] = ch
			}
		}
		fmt.Fprintf(w, "M%-3d |%s|\n", m, string(row))
	}
}

func jobGlyph(job int) byte {
	if job < 10 {
		return byte('0' + job)
	}
	if job-10 < 26 {
		return byte('a' + (job - 10))
	}

	return '#'
}
