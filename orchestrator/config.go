package orchestrator

import (
	"github.com/dshevtsov/jssp-sb/internal/logging"
	"github.com/dshevtsov/jssp-sb/smss"
)

// BottleneckRule selects which ranking rule (spec §4.4) the orchestrator
// uses to pick the next bottleneck machine.
type BottleneckRule int

const (
	// ESTInformed ranks unscheduled machines by solving SMSS against the
	// current graph's EST/LF — the spec's canonical rule (Q1).
	ESTInformed BottleneckRule = iota
	// SumOfDurations ranks by raw total processing time, ignoring the
	// graph; cheaper, and only intended to bootstrap before any machine
	// is sequenced.
	SumOfDurations
)

// Config tunes behavior the spec leaves open (Q1, Q2) via a solver config
// file (SPEC_FULL.md DOMAIN STACK), rather than compile-time constants.
type Config struct {
	// BottleneckRule selects §4.4's canonical vs. fallback rule.
	BottleneckRule BottleneckRule
	// Reoptimize enables the optional re-optimization pass (§4.5 step 7).
	Reoptimize bool
	// BruteForceLimit caps smss.BruteForce's exact search; above it SMSS
	// falls back to the naive placeholder (spec §4.3).
	BruteForceLimit int
	// Logger receives progress messages; nil is silent.
	Logger *logging.Logger
}

// DefaultConfig returns the spec's canonical configuration: EST-informed
// bottleneck selection, re-optimization enabled, and the default
// brute-force cutoff.
func DefaultConfig() Config {
	return Config{
		BottleneckRule:  ESTInformed,
		Reoptimize:      true,
		BruteForceLimit: smss.DefaultBruteForceLimit,
	}
}
