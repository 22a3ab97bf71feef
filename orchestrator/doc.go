// Package orchestrator implements the Shifting Bottleneck main loop
// (spec §4.5): repeatedly select the current bottleneck machine among the
// unscheduled ones, solve its single-machine subproblem, orient its
// disjunctive arcs, and — optionally — re-optimize previously sequenced
// machines against the updated graph.
//
// The outer loop runs exactly NumMachines times; each iteration grows the
// sequenced set by exactly one machine. Cycle recovery (step 5) is
// delegated to jgraph.AddOrientedSequence, which itself refuses any
// sequence that would close a cycle and leaves the graph untouched on
// failure (ErrInvalidSequence) — so "undo the orientation" from the spec
// reduces to "never applied it", and the orchestrator simply advances to
// the next-ranked candidate. Solve returns ErrUnschedulable only if every
// ranked candidate for a given iteration fails this check.
package orchestrator
