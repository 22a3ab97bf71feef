package schedule

import "fmt"

// Violation describes one precise feasibility breach (job/position or
// machine/overlapping pair), independent of the solver that produced the
// schedule (spec §4.7).
type Violation struct {
	// Kind is one of "job_order", "machine_overlap", or "makespan".
	Kind string
	// Job/Position identify a job-order violation (Kind == "job_order").
	Job, Position int
	// Machine/OpA/OpB identify a machine-overlap violation.
	Machine, OpA, OpB int
	// Detail is a human-readable explanation.
	Detail string
}

func (v Violation) String() string {
	return v.Detail
}

// Validate checks S1 (job order), S2 (machine exclusivity), and S3
// (makespan consistency against longestMakespan, typically the longest
// SOURCE->SINK path length) and returns every violation found; a nil or
// empty slice means the schedule is feasible.
//
// Complexity: O(J*M + sum_m n_m^2) for the pairwise machine-overlap check.
func Validate(s *Schedule, longestMakespan int) []Violation {
	var violations []Violation
	violations = append(violations, ValidateJobOrder(s)...)
	violations = append(violations, ValidateMachineExclusivity(s)...)
	violations = append(violations, ValidateMakespan(s, longestMakespan)...)

	return violations
}

// ValidateJobOrder checks S1: for each job, consecutive operations must
// not overlap in job-order (end[p] <= start[p+1]).
func ValidateJobOrder(s *Schedule) []Violation {
	var violations []Violation
	inst := s.Instance
	for j := 0; j < inst.NumJobs; j++ {
		for p := 0; p+1 < inst.NumMachines; p++ {
			a := inst.OperationIndex(j, p)
			b := inst.OperationIndex(j, p+1)
			if s.EndTime[a] > s.StartTime[b] {
				violations = append(violations, Violation{
					Kind: "job_order", Job: j, Position: p,
					Detail: fmt.Sprintf("job %d: operation %d ends at %d after operation %d starts at %d",
						j, p, s.EndTime[a], p+1, s.StartTime[b]),
				})
			}
		}
	}

	return violations
}

// ValidateMachineExclusivity checks S2: no two operations on the same
// machine may have overlapping [start, end) intervals.
func ValidateMachineExclusivity(s *Schedule) []Violation {
	var violations []Violation
	inst := s.Instance
	for m := 0; m < inst.NumMachines; m++ {
		ops := inst.OperationsOnMachine(m)
		for i := 0; i < len(ops); i++ {
			for k := i + 1; k < len(ops); k++ {
				a, b := ops[i], ops[k]
				if intervalsOverlap(s.StartTime[a], s.EndTime[a], s.StartTime[b], s.EndTime[b]) {
					violations = append(violations, Violation{
						Kind: "machine_overlap", Machine: m, OpA: a, OpB: b,
						Detail: fmt.Sprintf("machine %d: operation %d [%d,%d) overlaps operation %d [%d,%d)",
							m, a, s.StartTime[a], s.EndTime[a], b, s.StartTime[b], s.EndTime[b]),
					})
				}
			}
		}
	}

	return violations
}

// ValidateMakespan checks S3: the schedule's makespan (max end time)
// equals longestMakespan, the longest SOURCE->SINK path length.
func ValidateMakespan(s *Schedule, longestMakespan int) []Violation {
	actual := 0
	for _, e := range s.EndTime {
		if e > actual {
			actual = e
		}
	}
	if actual != longestMakespan {
		return []Violation{{
			Kind: "makespan",
			Detail: fmt.Sprintf("schedule makespan %d does not equal longest-path makespan %d",
				actual, longestMakespan),
		}}
	}

	return nil
}

func intervalsOverlap(startA, endA, startB, endB int) bool {
	return startA < endB && startB < endA
}
