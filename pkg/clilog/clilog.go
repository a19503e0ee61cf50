// 16 Oct 2026

// Package clilog makes the loggers the command line tools share.
// Messages go to stderr (or a log file) with a timestamp and the
// program name, so they never get mixed into the data on stdout.
package clilog

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to w, prefixed with name.
// level is one of debug, info, warn, error. Anything else gives info
// and a warning saying so.
func New(w io.Writer, name, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix:          name,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	})
	lvl, err := log.ParseLevel(strings.ToLower(level))
	switch {
	case level == "":
		lvl = log.InfoLevel
	case err != nil:
		lvl = log.InfoLevel
		logger.Warn("unknown log level, defaulting to info", "provided", level)
	}
	logger.SetLevel(lvl)
	return logger
}

// Level returns "debug" if verbose is set, otherwise dflt.
func Level(verbose bool, dflt string) string {
	if verbose {
		return "debug"
	}
	return dflt
}

// Discard is for library callers who did not hand us a logger.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// OrDiscard returns l, or a logger that throws everything away if l is nil.
func OrDiscard(l *log.Logger) *log.Logger {
	if l == nil {
		return Discard()
	}
	return l
}

// SetVerbose turns on debug messages if verbose is set. Otherwise the
// level is left alone.
func SetVerbose(l *log.Logger, verbose bool) {
	if verbose {
		l.SetLevel(log.DebugLevel)
	}
}
