package editor

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/rs/zerolog"
)

// transformerSink captures the three output streams of a transformer so
// tests can assert on content, diagnostics, and status notices separately.
type transformerSink struct {
	out    bytes.Buffer
	diag   bytes.Buffer
	status bytes.Buffer
}

func newTestTransformer(t *testing.T, pattern, replacement string, verbose, print bool) (*transformer, *transformerSink) {
	t.Helper()
	m, err := CompilePattern(pattern, replacement)
	if err != nil {
		t.Fatalf("compile %q: %v", pattern, err)
	}
	sink := &transformerSink{}
	tr := &transformer{
		matcher: m,
		out:     &sink.out,
		diag:    zerolog.New(&sink.diag),
		status:  zerolog.New(&sink.status),
		verbose: verbose,
		print:   print,
	}
	return tr, sink
}

func writeFixture(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "a.txt")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func readBack(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	return string(b)
}

func TestTransformFile_InPlace(t *testing.T) {
	path := writeFixture(t, []byte("foo bar foo"))
	tr, sink := newTestTransformer(t, "foo", "baz", false, false)

	tr.file(path)

	if got := readBack(t, path); got != "baz bar baz" {
		t.Fatalf("file content = %q, want %q", got, "baz bar baz")
	}
	if sink.out.Len() != 0 || sink.diag.Len() != 0 || sink.status.Len() != 0 {
		t.Fatalf("expected silent in-place rewrite, got out=%q diag=%q status=%q",
			sink.out.String(), sink.diag.String(), sink.status.String())
	}
}

func TestTransformFile_VerboseReportsModified(t *testing.T) {
	path := writeFixture(t, []byte("foo"))
	tr, sink := newTestTransformer(t, "foo", "baz", true, false)

	tr.file(path)

	if !strings.Contains(sink.status.String(), "modified") {
		t.Fatalf("status = %q, want a modified notice", sink.status.String())
	}
	if !strings.Contains(sink.status.String(), "a.txt") {
		t.Fatalf("status = %q, want the file path", sink.status.String())
	}
	if sink.diag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %q", sink.diag.String())
	}
}

func TestTransformFile_PrintLeavesSourceUntouched(t *testing.T) {
	path := writeFixture(t, []byte("foo bar foo"))
	tr, sink := newTestTransformer(t, "foo", "baz", true, true)

	tr.file(path)

	if got := readBack(t, path); got != "foo bar foo" {
		t.Fatalf("source mutated in print mode: %q", got)
	}
	if got := sink.out.String(); got != "baz bar baz\n" {
		t.Fatalf("printed %q, want %q", got, "baz bar baz\n")
	}
	// Print mode returns before the modified notice even when verbose.
	if sink.status.Len() != 0 {
		t.Fatalf("unexpected status notice: %q", sink.status.String())
	}
}

func TestTransformFile_ReadFailure(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
	}{
		{"silent when not verbose", false},
		{"reported when verbose", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reading a directory fails on every platform.
			tr, sink := newTestTransformer(t, "foo", "baz", tt.verbose, false)
			tr.file(t.TempDir())

			if tt.verbose {
				if !strings.Contains(sink.diag.String(), "read failed") {
					t.Fatalf("diag = %q, want a read failure report", sink.diag.String())
				}
				return
			}
			if sink.diag.Len() != 0 {
				t.Fatalf("diag = %q, want silence", sink.diag.String())
			}
		})
	}
}

func TestTransformFile_InvalidUTF8(t *testing.T) {
	content := []byte{0xff, 0xfe, 0xfd}
	path := writeFixture(t, content)
	tr, sink := newTestTransformer(t, "foo", "baz", true, false)

	tr.file(path)

	if !strings.Contains(sink.diag.String(), "invalid utf-8") {
		t.Fatalf("diag = %q, want an invalid utf-8 report", sink.diag.String())
	}
	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(after, content) {
		t.Fatalf("file mutated despite decode failure: %v", after)
	}
}

func TestTransformFile_WriteFailureAlwaysReported(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("file permissions do not bind root")
	}
	path := filepath.Join(t.TempDir(), "a.txt")
	if err := os.WriteFile(path, []byte("foo"), 0o444); err != nil {
		t.Fatal(err)
	}

	// Not verbose: write-path failures are reported regardless.
	tr, sink := newTestTransformer(t, "foo", "baz", false, false)
	tr.file(path)

	if !strings.Contains(sink.diag.String(), "open for write failed") {
		t.Fatalf("diag = %q, want an open-for-write report", sink.diag.String())
	}
	if got := readBack(t, path); got != "foo" {
		t.Fatalf("file content = %q, want untouched %q", got, "foo")
	}
}

func TestTransformStream(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello", "world"},
		{"input newline preserved, none added", "hello\n", "world\n"},
		{"all occurrences", "hello hello", "world world"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, sink := newTestTransformer(t, "hello", "world", false, false)
			tr.stream(strings.NewReader(tt.in))

			if got := sink.out.String(); got != tt.want {
				t.Fatalf("stream wrote %q, want %q", got, tt.want)
			}
			if sink.diag.Len() != 0 {
				t.Fatalf("unexpected diagnostics: %q", sink.diag.String())
			}
		})
	}
}

func TestTransformStream_ReadFailureReported(t *testing.T) {
	tr, sink := newTestTransformer(t, "hello", "world", false, false)
	tr.stream(iotest.ErrReader(errors.New("boom")))

	if !strings.Contains(sink.diag.String(), "read stdin failed") {
		t.Fatalf("diag = %q, want a stdin read report", sink.diag.String())
	}
	if sink.out.Len() != 0 {
		t.Fatalf("unexpected output: %q", sink.out.String())
	}
}

func TestTransformStream_InvalidUTF8Reported(t *testing.T) {
	tr, sink := newTestTransformer(t, "hello", "world", false, false)
	tr.stream(bytes.NewReader([]byte{0xff, 0xfe}))

	if !strings.Contains(sink.diag.String(), "utf-8") {
		t.Fatalf("diag = %q, want a decode report", sink.diag.String())
	}
	if sink.out.Len() != 0 {
		t.Fatalf("unexpected output: %q", sink.out.String())
	}
}
