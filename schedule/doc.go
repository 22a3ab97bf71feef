// Package schedule holds the final per-operation start/end times derived
// from a solved disjunctive graph, and validates them against the spec's
// feasibility invariants S1 (job order), S2 (machine exclusivity), and S3
// (makespan consistency).
//
// A Schedule is write-once: FromEST performs the single linear pass the
// spec describes (start_time[i] = EST(i)) and nothing afterward mutates
// it.
package schedule
