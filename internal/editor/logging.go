package editor

import (
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// logger carries per-file failure reports on stderr; statusLogger carries
// per-file success notices on stdout.
var (
	logger       zerolog.Logger
	statusLogger zerolog.Logger
)

func init() {
	logger = logger.Output(consoleWriter(os.Stderr))
	statusLogger = statusLogger.Output(consoleWriter(os.Stdout))
}

func consoleWriter(f *os.File) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        f,
		TimeFormat: time.RFC3339,
		NoColor:    !isatty.IsTerminal(f.Fd()),
	}
}

// Logger returns the package logger.
func Logger() zerolog.Logger {
	return logger
}
