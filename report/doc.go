// Package report renders a solved Schedule for the terminal: the
// per-operation table, per-machine metrics (makespan, busy/idle time,
// utilization), and a Gantt-style textual chart (spec §6 CLI stdout
// contract). Printing and visualization are explicitly out of scope for
// the solver core — this package is their external collaborator.
package report
