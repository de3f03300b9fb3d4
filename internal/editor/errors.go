package editor

import "errors"

// Errors returned by the public API; all of them are setup failures that
// abort a run before any file is touched. They can be checked with errors.Is.
var (
	// ErrBadPattern is returned when the regex pattern does not compile.
	ErrBadPattern = errors.New("jet: bad pattern")

	// ErrBadGlob is returned when the glob pattern does not compile.
	ErrBadGlob = errors.New("jet: bad glob")

	// ErrNoRoot is returned when the configuration names no path to edit.
	ErrNoRoot = errors.New("jet: path is required")
)
