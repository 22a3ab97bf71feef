// Package jsspsb implements a shifting-bottleneck heuristic solver for the
// classical Job-Shop Scheduling Problem.
//
// An Instance (package instance) describes J jobs, each a fixed sequence
// of operations across M machines. The solver builds a disjunctive graph
// over operations (package jgraph), orients one machine's operations at a
// time by solving that machine's single-machine subproblem exactly for
// small operation counts (package smss) and picking, at each step, the
// machine whose subproblem has the largest maximum lateness (package
// bottleneck). Package longestpath computes earliest-start and
// latest-finish times over the graph as it fills in; package orchestrator
// drives the loop end to end, including an optional re-optimization pass
// over already-sequenced machines.
//
// Package greedy offers a non-optimizing baseline list scheduler for
// comparison. Package schedule turns either solver's output into
// per-operation start/end times and validates job-order and
// machine-exclusivity invariants. Package loader reads the .jss instance
// format and published-optimum CSVs; package config loads and validates a
// YAML solver configuration; package report prints schedules, per-machine
// utilization, and a text Gantt chart. The cmd/jssp binary wires these
// together behind a small CLI.
package jsspsb
