// Package bottleneck ranks the still-unscheduled machines by how much
// each would contribute to the makespan if sequenced next (spec §4.4).
//
// Two rules are implemented: ESTInformed (canonical) solves SMSS on every
// unscheduled machine using heads/tails derived from the current graph's
// EST and LF, and ranks machines by the resulting Lmax; SumOfDurations
// (fallback) ranks by raw total processing time, ignoring the graph
// entirely, for use only when no machine has been sequenced yet. Q1 in
// the spec resolves this ambiguity by naming ESTInformed canonical — see
// DESIGN.md.
//
// Ranking, not just selecting, is deliberate: the orchestrator's cycle
// recovery (§4.5 step 5) needs the next-best candidate when the top pick
// turns out to close a cycle.
package bottleneck
