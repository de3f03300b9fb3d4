// Package jet rewrites matching text across files with regular expressions.
//
// Example usage:
//
//	cfg := jet.DefaultConfig()
//	cfg.Pattern = `(\d+)-(\d+)-(\d+)`
//	cfg.Replacement = "$3/$2/$1"
//	cfg.Root = "./docs"
//	if err := jet.Run(context.Background(), cfg); err != nil {
//	    log.Fatal(err)
//	}
package jet

import (
	"context"

	"github.com/NicoNex/jet/internal/editor"
	"github.com/rs/zerolog"
)

// Config holds the configuration for one search-and-replace run.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config = editor.Config

// Mode selects the input source for a run: a directory tree or stdin.
type Mode = editor.Mode

// Modes a Config can resolve to; see Config.Mode.
const (
	ModeTree   = editor.ModeTree
	ModeStream = editor.ModeStream
)

// StdinSentinel is the Root value that switches a run to stream mode,
// rewriting standard input onto standard output.
const StdinSentinel = editor.StdinSentinel

// Run executes one search-and-replace pass with the given configuration.
// It blocks until every selected file has been processed and returns an
// error only for setup failures; per-file failures are reported on the
// diagnostic stream and do not escalate.
func Run(ctx context.Context, cfg Config) error {
	return editor.Run(ctx, cfg)
}

// DefaultConfig returns a Config with sensible default values.
// At minimum, you must set Pattern, Replacement, and Root before calling Run.
func DefaultConfig() Config {
	return editor.DefaultConfig()
}

// Logger returns the package-level zerolog logger used for diagnostics.
func Logger() zerolog.Logger {
	return editor.Logger()
}
