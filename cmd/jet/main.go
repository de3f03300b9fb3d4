package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/NicoNex/jet"
)

const helpBanner = `
     █████ ██████████ ███████████
    ░░███ ░░███░░░░░█░█░░░███░░░█
     ░███  ░███  █ ░ ░   ░███  ░
     ░███  ░██████       ░███
     ░███  ░███░░█       ░███
 ███ ░███  ░███ ░   █    ░███
░░██████   ██████████    █████
 ░░░░░░   ░░░░░░░░░░    ░░░░░
`

const helpDescription = `
Search and replace text in your files with regular expressions.

Highlights:
  - Edits files in place, or prints the rewritten content with --print.
  - Walks directory trees in parallel; reads standard input when path is "-".
  - Replacement templates reference capture groups as $1 or ${name}.
  - Globs match against the whole path, so *.txt selects nested files too.

Exits non-zero only when the pattern or glob does not compile; per-file
failures are reported and the remaining files are still processed.
`

var longHelp = strings.TrimSpace(helpBanner) + "\n\n" + strings.TrimSpace(helpDescription)

var exampleUsage = strings.TrimSpace(`
  jet foo bar main.go
  jet -g '*.md' '(\d+)-(\d+)-(\d+)' '$3/$2/$1' ./docs
  jet --print 'hello (\w+)' 'goodbye $1' ./notes
  cat notes.txt | jet hello world -
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := jet.DefaultConfig()
	log := jet.Logger()

	root := &cobra.Command{
		Use:     "jet pattern replacement path",
		Short:   "Search and replace text in your files with regular expressions",
		Long:    longHelp,
		Example: exampleUsage,
		Args:    cobra.ExactArgs(3),
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Pattern, cfg.Replacement, cfg.Root = args[0], args[1], args[2]

			if cfg.Verbose {
				log.Info().Interface("config", cfg).Msg("configuration")
			}

			return jet.Run(cmd.Context(), cfg)
		},
	}

	// Flags
	root.Flags().StringVarP(&cfg.Glob, "glob", "g", "", "glob the whole path must match for a file to be edited")
	root.Flags().BoolVarP(&cfg.ToStdout, "print", "p", false, "print to stdout instead of writing each file")
	root.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "verbose, explain what is being done")
	root.Flags().IntVarP(&cfg.MaxDepth, "level", "l", cfg.MaxDepth, "max depth in a directory tree, negative means unbounded")
	root.Flags().BoolVarP(&cfg.IncludeHidden, "all", "a", false, "include hidden files (starting with a dot)")

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("jet")
		os.Exit(1)
	}
}
