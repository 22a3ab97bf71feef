// Package instance defines the immutable Job-Shop Scheduling Problem input:
// jobs, their fixed operation sequences, machine assignments, and durations.
//
// An Instance is built once (by the loader or a test fixture) and never
// mutated afterward; every downstream package (jgraph, smss, orchestrator,
// greedy) treats it as a read-only reference.
//
// Operation identity is flattened to a single index space: operation i
// belongs to job i/M at position i%M, where M is the machine count. This
// mapping is canonical (OperationIndex / Instance.Job / Instance.Position)
// so the disjunctive graph, the schedule, and the CLI all agree on "which
// operation is #17" without passing (job, position) pairs around.
package instance
