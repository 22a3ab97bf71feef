// Package logging provides a minimal level-prefixed writer for solver
// progress messages (bottleneck picks, re-optimization outcomes, cycle
// recoveries). None of the repos in the retrieval pack pull in a
// structured logging library (no zap/zerolog/logrus in any go.mod), so
// this follows the pack's actual convention — fmt-based diagnostics to a
// configurable writer — rather than introducing a dependency nothing here
// grounds.
package logging

import (
	"fmt"
	"io"
	"os"
)

// Logger writes level-prefixed lines to an underlying io.Writer. The zero
// value discards output for Debugf but still writes Info/Warn to Stderr,
// matching how a CLI tool should behave by default.
type Logger struct {
	out     io.Writer
	verbose bool
}

// New returns a Logger writing to w. If verbose is false, Debugf is a no-op.
func New(w io.Writer, verbose bool) *Logger {
	return &Logger{out: w, verbose: verbose}
}

// Default returns a Logger writing to os.Stderr with verbose set as given.
func Default(verbose bool) *Logger {
	return New(os.Stderr, verbose)
}

// Infof prints an informational message.
func (l *Logger) Infof(format string, args ...interface{}) {
	if l == nil {
		return
	}
	out := l.out
	if out == nil {
		out = os.Stderr
	}
	fmt.Fprintf(out, "[INFO] "+format+"\n", args...)
}

// Warnf prints a warning message.
func (l *Logger) Warnf(format string, args ...interface{}) {
	if l == nil {
		return
	}
	out := l.out
	if out == nil {
		out = os.Stderr
	}
	fmt.Fprintf(out, "[WARN] "+format+"\n", args...)
}

// Debugf prints a message only when the Logger was constructed verbose.
func (l *Logger) Debugf(format string, args ...interface{}) {
	if l == nil || !l.verbose {
		return
	}
	fmt.Fprintf(l.out, "[DEBUG] "+format+"\n", args...)
}
