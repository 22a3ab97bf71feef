// File: jss.go
// Role: parses the .jss instance text format (spec §6).
package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dshevtsov/jssp-sb/instance"
)

// LoadFile opens path and parses it as a .jss instance. Returns
// ErrFileNotFound if the file cannot be opened, or ErrParse (wrapped with
// detail) if its content is malformed.
func LoadFile(path string) (*instance.Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFileNotFound, path, err)
	}
	defer f.Close()

	return Load(f)
}

// Load parses a .jss instance from r.
//
// Format: lines starting with '#' or blank are comments; the first
// non-comment line holds "num_jobs num_machines"; each of the following
// num_jobs lines (tokens may wrap across physical lines) holds
// 2*num_machines whitespace-separated integers, read pairwise as
// (machine, duration).
func Load(r io.Reader) (*instance.Instance, error) {
	tokens, err := tokenize(r)
	if err != nil {
		return nil, err
	}

	pos := 0
	nextInt := func() (int, error) {
		if pos >= len(tokens) {
			return 0, fmt.Errorf("%w: unexpected end of input", ErrParse)
		}
		v, err := strconv.Atoi(tokens[pos])
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not an integer", ErrParse, tokens[pos])
		}
		pos++

		return v, nil
	}

	numJobs, err := nextInt()
	if err != nil {
		return nil, err
	}
	numMachines, err := nextInt()
	if err != nil {
		return nil, err
	}
	if numJobs <= 0 || numMachines <= 0 {
		return nil, fmt.Errorf("%w: num_jobs and num_machines must be positive", ErrParse)
	}

	jobs := make([][]instance.Task, numJobs)
	for j := 0; j < numJobs; j++ {
		tasks := make([]instance.Task, numMachines)
		for p := 0; p < numMachines; p++ {
			machine, err := nextInt()
			if err != nil {
				return nil, err
			}
			duration, err := nextInt()
			if err != nil {
				return nil, err
			}
			tasks[p] = instance.Task{Machine: machine, Duration: duration}
		}
		jobs[j] = tasks
	}

	inst, err := instance.NewInstance(jobs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	return inst, nil
}

// tokenize reads r line by line, drops comment/blank lines, and splits
// the remainder on whitespace — a single job's data may span multiple
// physical lines, so the token stream is flattened before interpretation.
func tokenize(r io.Reader) ([]string, error) {
	var tokens []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		tokens = append(tokens, strings.Fields(line)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	return tokens, nil
}
