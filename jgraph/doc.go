// Package jgraph implements the disjunctive graph that underlies the
// shifting-bottleneck heuristic: a mutable directed graph over operation
// indices plus two synthetic vertices, SOURCE and SINK.
//
// Vertex set: V = {0..N-1} ∪ {SOURCE, SINK}, N = instance.NumOperations().
// Edge set is partitioned into conjunctive arcs (per-job order, installed
// once and never removed) and disjunctive arcs (per-machine order, added
// and removed incrementally as the orchestrator sequences each machine).
//
// Graph is the sole owner of adjacency; every mutation is guarded against
// self-loops (I1) and duplicate arcs (I2) at the API boundary, and
// AddOrientedSequence additionally rejects any arc set that would close a
// cycle (I4), reporting ErrInvalidSequence without mutating the graph.
//
// Graph is not safe for concurrent use from multiple goroutines — per the
// spec's single-threaded cooperative model, the Orchestrator owns the
// Graph exclusively during a solve.
package jgraph
