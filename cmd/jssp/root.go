package main

import "github.com/spf13/cobra"

var (
	instanceRoot string
	configFile   string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "jssp",
	Short: "Shifting-bottleneck solver for the Job-Shop Scheduling Problem",
	Long: "jssp loads a .jss instance, runs the shifting-bottleneck heuristic " +
		"(or the greedy baseline), and reports the resulting schedule.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&instanceRoot, "root", ".", "root directory for the <subdir>/<name>.jss convention and optimum lookup")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "optional solver config file (YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print orchestrator progress (bottleneck picks, re-optimization)")

	registerSolveCommand(rootCmd)
	registerValidateCommand(rootCmd)
	registerBenchCommand(rootCmd)
}
