package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshevtsov/jssp-sb/schedule"
)

var validateCmd = &cobra.Command{
	Use:   "validate <instance.jss>",
	Short: "Solve an instance and verify S1-S3 feasibility",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(args[0])
	},
}

func registerValidateCommand(root *cobra.Command) {
	root.AddCommand(validateCmd)
	validateCmd.Flags().BoolVar(&useGreedy, "greedy", false, "validate the greedy list scheduler's output instead of shifting bottleneck")
}

func runValidate(path string) error {
	inst, err := loadInstance(path)
	if err != nil {
		return err
	}

	sched, _, err := solveInstance(inst)
	if err != nil {
		return err
	}

	violations := schedule.Validate(sched, sched.Makespan)
	if len(violations) == 0 {
		fmt.Printf("feasible: makespan %d\n", sched.Makespan)
		return nil
	}

	for _, v := range violations {
		fmt.Fprintln(os.Stderr, v.String())
	}

	return fmt.Errorf("%d feasibility violation(s)", len(violations))
}
