// Command jssp is the CLI front-end for the shifting-bottleneck JSSP
// solver (spec §6): load a .jss instance, solve it, and print the
// resulting schedule, per-machine metrics, and a Gantt chart.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
