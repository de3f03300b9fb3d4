package editor

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

// transformer rewrites one unit of text at a time: a file in tree mode or
// the whole input in stream mode. A single transformer is shared by every
// worker; all of its fields are read-only during a run.
type transformer struct {
	matcher *Matcher
	out     io.Writer      // rewritten content in print and stream modes
	diag    zerolog.Logger // per-file failure reports
	status  zerolog.Logger // per-file success notices
	verbose bool
	print   bool
}

func newTransformer(m *Matcher, cfg Config) *transformer {
	return &transformer{
		matcher: m,
		out:     stdout,
		diag:    logger,
		status:  statusLogger,
		verbose: cfg.Verbose,
		print:   cfg.ToStdout,
	}
}

// file reads path whole, rewrites it, and writes the result back in place
// or to the content writer. Every failure leaves the file as it was before
// the failed step and never aborts the run: read failures are reported only
// when verbose, write failures always.
func (t *transformer) file(path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		if t.verbose {
			t.diag.Error().Str("path", path).Err(err).Msg("read failed")
		}
		return
	}
	if !utf8.Valid(src) {
		if t.verbose {
			t.diag.Error().Str("path", path).Msg("invalid utf-8")
		}
		return
	}

	rewritten := t.matcher.Rewrite(src)

	if t.print {
		fmt.Fprintf(t.out, "%s\n", rewritten)
		return
	}

	// The read handle is already closed; truncating keeps the file's mode.
	f, err := os.Create(path)
	if err != nil {
		t.diag.Error().Str("path", path).Err(err).Msg("open for write failed")
		return
	}
	if _, err := f.Write(rewritten); err != nil {
		f.Close()
		t.diag.Error().Str("path", path).Err(err).Msg("write failed")
		return
	}
	if err := f.Close(); err != nil {
		t.diag.Error().Str("path", path).Err(err).Msg("write failed")
		return
	}
	if t.verbose {
		t.status.Info().Str("path", path).Msg("modified")
	}
}

// stream rewrites everything read from in onto the content writer, adding
// nothing beyond what substitution produces. A failed read is reported
// unconditionally: it is the entire run in stream mode.
func (t *transformer) stream(in io.Reader) {
	src, err := io.ReadAll(in)
	if err != nil {
		t.diag.Error().Err(err).Msg("read stdin failed")
		return
	}
	if !utf8.Valid(src) {
		t.diag.Error().Msg("stdin is not valid utf-8")
		return
	}
	if _, err := t.out.Write(t.matcher.Rewrite(src)); err != nil {
		t.diag.Error().Err(err).Msg("write stdout failed")
	}
}
