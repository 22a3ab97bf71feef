// File: optimum.go
// Role: directory convention + optional published-optimum CSV lookup
// (spec §6). Missing or unparseable data is non-fatal: -1 means unknown.
package loader

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Subdir returns the longest prefix of filename's base name (extension
// stripped) containing no decimal digit — the directory convention
// instances live under, e.g. "ft06.jss" -> "ft".
func Subdir(filename string) string {
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	i := 0
	for i < len(base) && (base[i] < '0' || base[i] > '9') {
		i++
	}

	return base[:i]
}

// Optimum looks up the published optimum makespan for the instance file
// at root/<subdir>/<name>.jss in root/<subdir>/optimum/optimum.csv, where
// subdir = Subdir(name). Returns -1 if the CSV is missing, unparseable,
// or has no matching row — never an error (spec §6: "non-fatal").
func Optimum(root, name string) int {
	base := filepath.Base(name)
	subdir := Subdir(base)
	path := filepath.Join(root, subdir, "optimum", "optimum.csv")

	f, err := os.Open(path)
	if err != nil {
		return -1
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil || len(records) < 1 {
		return -1
	}

	for _, rec := range records[1:] { // skip header
		if len(rec) < 2 {
			continue
		}
		if rec[0] != base {
			continue
		}
		v, err := strconv.Atoi(strings.TrimSpace(rec[1]))
		if err != nil {
			return -1
		}

		return v
	}

	return -1
}
