// Package loader reads JSSP instances from the .jss text format and, when
// available, looks up each instance's published optimum from a CSV
// sidecar file (spec §6). Both are external collaborators to the solver
// core — loader errors (FILE_NOT_FOUND, PARSE_ERROR) are fatal to the
// CLI and never raised inside the engine packages.
package loader
