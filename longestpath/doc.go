// Package longestpath computes earliest-start and latest-finish times on a
// jgraph.Graph by topological relaxation, the engine behind EST, LF, and
// the makespan (spec §4.2).
//
// ComputeEarliestStarts walks the graph in topological order, relaxing
// EST[v] = max(EST[v], EST[u] + Duration(u)) across every arc u->v;
// ComputeLatestFinishes is the dual pass over the reverse order, anchored
// at a caller-supplied target makespan. Both fail with ErrCycle if the
// graph is not presently a DAG — which AddOrientedSequence already
// prevents by construction, so in practice this surfaces only if a caller
// mutates the graph outside the documented protocol.
package longestpath
