package editor

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// selector walks the tree under root and emits the paths that survive the
// filter chain: hidden pruning, glob match on the full path, depth limit,
// directory exclusion. Entries that error during traversal are dropped
// without aborting the walk.
type selector struct {
	root     string
	glob     glob.Glob
	maxDepth int  // entries deeper than this are dropped; negative means unbounded
	hidden   bool // keep dot-prefixed entries
}

// walk traverses root once, sending every qualifying path on out. The walk
// ends early when ctx is cancelled. Closing out is the caller's job.
func (s *selector) walk(ctx context.Context, out chan<- string) {
	_ = filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if ctx.Err() != nil {
			return filepath.SkipAll
		}

		// The root is exempt from hidden pruning so explicitly named
		// dot-paths (including ".") still get walked.
		if !s.hidden && path != s.root && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			// Children of this directory would sit one level deeper than
			// the directory itself, except under the root whose children
			// are at depth zero.
			if s.maxDepth >= 0 && path != s.root && s.entryDepth(path) >= s.maxDepth {
				return filepath.SkipDir
			}
			return nil
		}

		if !s.glob.Match(path) {
			return nil
		}
		if isDir(path) {
			// Symlink to a directory: excluded like the directory itself.
			return nil
		}

		select {
		case out <- path:
		case <-ctx.Done():
			return filepath.SkipAll
		}
		return nil
	})
}

// entryDepth is the depth of an entry below the walk root: direct children
// of the root, and a root that is itself a file, sit at depth zero.
func (s *selector) entryDepth(path string) int {
	rel, err := filepath.Rel(s.root, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator))
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
