package loader

import "errors"

// Sentinel errors surfaced to the CLI; never raised inside the solver core.
var (
	// ErrFileNotFound is returned, wrapped with the path and the text of
	// the underlying os error, when an instance file cannot be opened.
	ErrFileNotFound = errors.New("loader: file not found")

	// ErrParse indicates the .jss content does not match the expected
	// line-oriented token format.
	ErrParse = errors.New("loader: parse error")
)
