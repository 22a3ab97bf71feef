// Package smss solves the Single-Machine Subproblem: given the operations
// currently assigned to one machine, each with a release time (head), a
// processing time, and a tail (residual path-to-SINK), find the
// permutation minimizing Lmax = max_o (start(o) + proc(o) + tail(o)).
// This is 1|r_j,q_j|Lmax in scheduling notation (spec §4.3).
//
// Two solvers are provided, grounded on the exact/approximate split the
// teacher's tsp package uses for its own NP-hard subproblem (tsp/exact.go,
// tsp/bb.go): BruteForce enumerates all n! permutations and is exact for
// n ≤ BruteForceLimit; Naive preserves input order and is a placeholder
// with no optimality guarantee, used only when a caller deliberately opts
// out of the exact solver above the brute-force cutoff.
package smss
