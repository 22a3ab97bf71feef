// Package greedy implements the list-scheduling baseline (spec §4.6): a
// feasible, non-optimizing upper bound used to sanity-check the shifting
// bottleneck heuristic and to satisfy Property 3 and Property 4.
//
// Scheduling proceeds position by position; within a position, jobs are
// visited in index order and each job's next operation is scheduled at
// max(machine_available[machine], job_ready[job]). Because every job's
// operations are taken strictly in order, M such sweeps (M = machine
// count) schedule every operation exactly once — this is the "iterate
// until all operations are scheduled" loop the spec describes, made
// concrete as a fixed M-pass sweep.
package greedy
