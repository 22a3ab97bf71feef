package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/dshevtsov/jssp-sb/orchestrator"
)

// SolverConfig is the decoded form of solve.yaml.
type SolverConfig struct {
	BottleneckRule  string `yaml:"bottleneck_rule"`
	Reoptimize      *bool  `yaml:"reoptimize"`
	BruteForceLimit int    `yaml:"brute_force_limit"`
}

// Load reads, schema-validates, and decodes path into an
// orchestrator.Config, starting from orchestrator.DefaultConfig() and
// overriding only the fields solve.yaml sets.
func Load(path string) (orchestrator.Config, error) {
	cfg := orchestrator.DefaultConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var doc interface{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if doc == nil {
		// An empty file sets nothing; validate it as an empty mapping.
		doc = map[string]interface{}{}
	}

	jsonData, err := json.Marshal(doc)
	if err != nil {
		return cfg, fmt.Errorf("config: re-encoding %s: %w", path, err)
	}

	schema, err := jsonschema.CompileString("solve-config.json", configSchemaJSON)
	if err != nil {
		return cfg, fmt.Errorf("config: compiling schema: %w", err)
	}

	var validated interface{}
	if err := json.Unmarshal(jsonData, &validated); err != nil {
		return cfg, fmt.Errorf("config: re-decoding %s: %w", path, err)
	}
	if err := schema.Validate(validated); err != nil {
		return cfg, fmt.Errorf("config: %s failed schema validation: %w", path, err)
	}

	var sc SolverConfig
	if err := yaml.Unmarshal(raw, &sc); err != nil {
		return cfg, fmt.Errorf("config: decoding %s: %w", path, err)
	}

	switch sc.BottleneckRule {
	case "", "est_informed":
		cfg.BottleneckRule = orchestrator.ESTInformed
	case "sum_of_durations":
		cfg.BottleneckRule = orchestrator.SumOfDurations
	}
	if sc.Reoptimize != nil {
		cfg.Reoptimize = *sc.Reoptimize
	}
	if sc.BruteForceLimit > 0 {
		cfg.BruteForceLimit = sc.BruteForceLimit
	}

	return cfg, nil
}
