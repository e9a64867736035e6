// Package logger writes twlite's diagnostics to stderr.
//
// The stylesheet itself never goes through here; only progress and warnings.
package logger

import (
	"io"
	"log"
	"os"
)

var (
	output  io.Writer = os.Stderr
	logger            = log.New(output, "", 0)
	verbose bool
)

// SetOutput redirects diagnostics. Use io.Discard to silence them.
func SetOutput(w io.Writer) {
	output = w
	logger = log.New(output, "", 0)
}

// SetVerbose enables Debug output.
func SetVerbose(v bool) {
	verbose = v
}

// Info logs an informational message.
func Info(format string, args ...any) {
	logger.Printf(format, args...)
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	logger.Printf("warning: "+format, args...)
}

// Debug logs only when verbose output is enabled.
func Debug(format string, args ...any) {
	if verbose {
		logger.Printf(format, args...)
	}
}
