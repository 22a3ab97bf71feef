package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshevtsov/jssp-sb/loader"
	"github.com/dshevtsov/jssp-sb/orchestrator"
	"github.com/dshevtsov/jssp-sb/report"
)

var useGreedy bool

var solveCmd = &cobra.Command{
	Use:   "solve <instance.jss>",
	Short: "Solve an instance and print its schedule",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSolve(args[0])
	},
}

func registerSolveCommand(root *cobra.Command) {
	root.AddCommand(solveCmd)
	solveCmd.Flags().BoolVar(&useGreedy, "greedy", false, "use the greedy list scheduler instead of shifting bottleneck")
}

func runSolve(path string) error {
	inst, err := loadInstance(path)
	if err != nil {
		return err
	}

	sched, bottleneckOrder, err := solveInstance(inst)
	if err != nil {
		if errors.Is(err, orchestrator.ErrUnschedulable) {
			fmt.Fprintln(os.Stderr, "no feasible schedule found: every bottleneck candidate closed a cycle")
		}
		return err
	}

	report.PrintSchedule(os.Stdout, sched)
	fmt.Println()
	report.PrintMetrics(os.Stdout, report.ComputeMetrics(sched))
	fmt.Println()
	report.Gantt(os.Stdout, sched)

	if verbose && len(bottleneckOrder) > 0 {
		fmt.Fprintf(os.Stderr, "bottleneck order: %v\n", bottleneckOrder)
	}

	opt := loader.Optimum(instanceRoot, path)
	if opt >= 0 {
		fmt.Printf("\npublished optimum: %d\n", opt)
	}

	return nil
}
