// Package editor implements the search-and-replace pipeline behind the jet
// command: pattern compilation, tree traversal with filtering, and parallel
// per-file rewriting.
package editor

import "runtime"

// StdinSentinel is the Root value that makes a run read standard input and
// write standard output instead of walking a tree.
const StdinSentinel = "-"

// Mode selects the input source for a run. It is derived from Root exactly
// once at startup; nothing downstream re-inspects the path.
type Mode int

const (
	// ModeTree discovers files by walking the tree rooted at Config.Root.
	ModeTree Mode = iota
	// ModeStream rewrites standard input to standard output.
	ModeStream
)

type Config struct {
	Pattern     string
	Replacement string
	Root        string

	Glob          string
	ToStdout      bool
	Verbose       bool
	MaxDepth      int
	IncludeHidden bool

	// Workers caps the number of files rewritten concurrently in tree mode.
	// Zero or negative selects runtime.NumCPU().
	Workers int
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		MaxDepth: -1,
	}
}

// Validate checks the configuration for errors and sets derived defaults.
// An empty Pattern passes: it is a valid regex that matches the empty
// string at every position.
func (c *Config) Validate() error {
	if c.Root == "" {
		return ErrNoRoot
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	return nil
}

// Mode reports whether the run reads standard input or walks a tree.
func (c Config) Mode() Mode {
	if c.Root == StdinSentinel {
		return ModeStream
	}
	return ModeTree
}
