package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dshevtsov/jssp-sb/config"
	"github.com/dshevtsov/jssp-sb/orchestrator"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "solve.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "")
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := orchestrator.DefaultConfig()
	if cfg.BottleneckRule != want.BottleneckRule || cfg.Reoptimize != want.Reoptimize || cfg.BruteForceLimit != want.BruteForceLimit {
		t.Errorf("Load(empty) = %+v; want defaults %+v", cfg, want)
	}
}

func TestLoad_Overrides(t *testing.T) {
	path := writeConfig(t, "bottleneck_rule: sum_of_durations\nreoptimize: false\nbrute_force_limit: 10\n")
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BottleneckRule != orchestrator.SumOfDurations {
		t.Errorf("BottleneckRule = %v; want SumOfDurations", cfg.BottleneckRule)
	}
	if cfg.Reoptimize {
		t.Error("Reoptimize = true; want false")
	}
	if cfg.BruteForceLimit != 10 {
		t.Errorf("BruteForceLimit = %d; want 10", cfg.BruteForceLimit)
	}
}

func TestLoad_RejectsUnknownField(t *testing.T) {
	path := writeConfig(t, "unknown_field: 1\n")
	if _, err := config.Load(path); err == nil {
		t.Error("Load() with an unknown field should fail schema validation")
	}
}

func TestLoad_RejectsInvalidBottleneckRule(t *testing.T) {
	path := writeConfig(t, "bottleneck_rule: not_a_real_rule\n")
	if _, err := config.Load(path); err == nil {
		t.Error("Load() with an invalid bottleneck_rule should fail schema validation")
	}
}

func TestLoad_RejectsOutOfRangeBruteForceLimit(t *testing.T) {
	path := writeConfig(t, "brute_force_limit: 0\n")
	if _, err := config.Load(path); err == nil {
		t.Error("Load() with brute_force_limit below the schema minimum should fail")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() on a missing file should return an error")
	}
}
