package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshevtsov/jssp-sb/greedy"
	"github.com/dshevtsov/jssp-sb/loader"
	"github.com/dshevtsov/jssp-sb/orchestrator"
)

var benchCmd = &cobra.Command{
	Use:   "bench <instance.jss>",
	Short: "Compare the shifting-bottleneck heuristic against the greedy baseline",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBench(args[0])
	},
}

func registerBenchCommand(root *cobra.Command) {
	root.AddCommand(benchCmd)
}

func runBench(path string) error {
	inst, err := loadInstance(path)
	if err != nil {
		return err
	}

	greedySched := greedy.Solve(inst)

	cfg, err := loadSolverConfig()
	if err != nil {
		return err
	}
	result, err := orchestrator.Solve(inst, cfg)
	if err != nil {
		return err
	}

	fmt.Printf("greedy makespan:            %d\n", greedySched.Makespan)
	fmt.Printf("shifting-bottleneck makespan: %d\n", result.Schedule.Makespan)

	opt := loader.Optimum(instanceRoot, path)
	if opt >= 0 {
		fmt.Printf("published optimum:          %d\n", opt)
	}

	return nil
}
