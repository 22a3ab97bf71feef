package jgraph

import (
	"errors"

	"github.com/dshevtsov/jssp-sb/instance"
)

// Sentinel errors for graph construction and mutation.
var (
	// ErrSelfLoop indicates an arc u->u was attempted (I1).
	ErrSelfLoop = errors.New("jgraph: self-loop not allowed")

	// ErrDuplicateArc indicates an arc already exists in the requested direction (I2).
	ErrDuplicateArc = errors.New("jgraph: duplicate arc")

	// ErrInvalidSequence indicates AddOrientedSequence would close a cycle (I4).
	ErrInvalidSequence = errors.New("jgraph: sequence would introduce a cycle")

	// ErrUnknownMachine indicates RemoveMachineSequence was called for a
	// machine that has no currently-oriented sequence.
	ErrUnknownMachine = errors.New("jgraph: machine has no oriented sequence")

	// ErrVertexOutOfRange indicates a vertex index outside [0, N+1].
	ErrVertexOutOfRange = errors.New("jgraph: vertex index out of range")

	// ErrCycle indicates the graph has no valid topological order (I4 violated).
	ErrCycle = errors.New("jgraph: graph contains a cycle")
)

// arc is a directed edge (From -> To), weight implied by Duration(From).
type arc struct {
	From, To int
}

// Graph is the disjunctive graph over operation vertices plus SOURCE/SINK.
//
// successors[v] and predecessors[v] are sets keyed by neighbor vertex,
// giving O(1) duplicate detection on insert (I2) independent of adjacency
// size — the defect the spec calls out in the original C reference
// (duplicate successor/predecessor growth silently degrading EST
// propagation) cannot occur here.
type Graph struct {
	inst *instance.Instance

	numOps int // N = inst.NumOperations()
	source int // = numOps
	sink   int // = numOps + 1
	numV   int // = numOps + 2

	successors   []map[int]struct{}
	predecessors []map[int]struct{}

	// machineArcs records, per machine, the exact arc list installed by the
	// most recent AddOrientedSequence call — RemoveMachineSequence undoes
	// precisely these arcs, nothing more.
	machineArcs map[int][]arc

	// machineOrder records the full operation permutation passed to the
	// most recent AddOrientedSequence call, including single-operation
	// machines (zero arcs) that machineArcs alone cannot reconstruct.
	machineOrder map[int][]int

	conjunctiveDone bool
}

// NewGraph allocates an empty disjunctive graph over inst's operations.
// No conjunctive or disjunctive arcs are present yet; call
// AddConjunctiveChain once per job before running the longest-path engine.
func NewGraph(inst *instance.Instance) *Graph {
	numOps := inst.NumOperations()
	numV := numOps + 2
	g := &Graph{
		inst:         inst,
		numOps:       numOps,
		source:       numOps,
		sink:         numOps + 1,
		numV:         numV,
		successors:   make([]map[int]struct{}, numV),
		predecessors: make([]map[int]struct{}, numV),
		machineArcs:  make(map[int][]arc),
		machineOrder: make(map[int][]int),
	}
	for v := 0; v < numV; v++ {
		g.successors[v] = make(map[int]struct{})
		g.predecessors[v] = make(map[int]struct{})
	}

	return g
}

// Source returns the synthetic SOURCE vertex index.
func (g *Graph) Source() int { return g.source }

// Sink returns the synthetic SINK vertex index.
func (g *Graph) Sink() int { return g.sink }

// NumVertices returns |V| = N + 2.
func (g *Graph) NumVertices() int { return g.numV }

// NumOperations returns N, the number of real (non-synthetic) vertices.
func (g *Graph) NumOperations() int { return g.numOps }

// Duration returns the edge weight contributed by vertex v as an arc tail:
// the processing time of v's operation, or 0 for SOURCE and SINK.
func (g *Graph) Duration(v int) int {
	if v == g.source || v == g.sink {
		return 0
	}
	return g.inst.Task(v).Duration
}

// Instance returns the instance this graph was built from.
func (g *Graph) Instance() *instance.Instance { return g.inst }
