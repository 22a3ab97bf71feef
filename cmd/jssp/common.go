package main

import (
	"fmt"

	"github.com/dshevtsov/jssp-sb/config"
	"github.com/dshevtsov/jssp-sb/greedy"
	"github.com/dshevtsov/jssp-sb/instance"
	"github.com/dshevtsov/jssp-sb/internal/logging"
	"github.com/dshevtsov/jssp-sb/loader"
	"github.com/dshevtsov/jssp-sb/orchestrator"
	"github.com/dshevtsov/jssp-sb/schedule"
)

func loadInstance(path string) (*instance.Instance, error) {
	inst, err := loader.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading instance: %w", err)
	}

	return inst, nil
}

func loadSolverConfig() (orchestrator.Config, error) {
	if configFile == "" {
		cfg := orchestrator.DefaultConfig()
		cfg.Logger = logging.Default(verbose)
		return cfg, nil
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		return orchestrator.Config{}, err
	}
	cfg.Logger = logging.Default(verbose)

	return cfg, nil
}

// solveInstance dispatches to the greedy baseline or the shifting
// bottleneck orchestrator depending on the --greedy flag.
func solveInstance(inst *instance.Instance) (*schedule.Schedule, []int, error) {
	if useGreedy {
		return greedy.Solve(inst), nil, nil
	}

	cfg, err := loadSolverConfig()
	if err != nil {
		return nil, nil, err
	}

	result, err := orchestrator.Solve(inst, cfg)
	if err != nil {
		return nil, nil, err
	}

	return result.Schedule, result.BottleneckOrder, nil
}
