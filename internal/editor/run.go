package editor

import (
	"context"
	"io"
	"os"
)

// Content endpoints for the process; patched in tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
)

// Run executes one search-and-replace pass described by cfg. It returns an
// error only for setup failures: invalid configuration, pattern, or glob.
// Per-file failures are reported on the diagnostic stream and never
// escalate.
func Run(ctx context.Context, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	m, err := CompilePattern(cfg.Pattern, cfg.Replacement)
	if err != nil {
		return err
	}
	g, err := CompileGlob(cfg.Glob)
	if err != nil {
		return err
	}

	t := newTransformer(m, cfg)

	if cfg.Mode() == ModeStream {
		t.stream(stdin)
		return nil
	}

	sel := &selector{
		root:     cfg.Root,
		glob:     g,
		maxDepth: cfg.MaxDepth,
		hidden:   cfg.IncludeHidden,
	}

	paths := make(chan string)
	go func() {
		defer close(paths)
		sel.walk(ctx, paths)
	}()
	fanOut(cfg.Workers, paths, t.file)

	return nil
}
