package editor

import (
	"fmt"
	"regexp"

	"github.com/gobwas/glob"
)

// Matcher is the compiled form of a pattern and replacement template pair.
// It is immutable and shared read-only by every worker in a run.
type Matcher struct {
	re   *regexp.Regexp
	repl []byte
}

// CompilePattern builds the Matcher for a regex source and a replacement
// template. The template may reference capture groups as $1 or ${name} and
// escapes a literal dollar as $$.
func CompilePattern(pattern, replacement string) (*Matcher, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPattern, err)
	}
	return &Matcher{re: re, repl: []byte(replacement)}, nil
}

// Rewrite returns src with every non-overlapping match replaced by the
// expanded template. src itself is never modified.
func (m *Matcher) Rewrite(src []byte) []byte {
	return m.re.ReplaceAll(src, m.repl)
}

// CompileGlob builds the path filter for a glob pattern; an empty pattern
// matches every path. Wildcards are not anchored at separators, so *.txt
// also selects nested files like docs/notes/a.txt.
func CompileGlob(pattern string) (glob.Glob, error) {
	if pattern == "" {
		pattern = "*"
	}
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadGlob, err)
	}
	return g, nil
}
