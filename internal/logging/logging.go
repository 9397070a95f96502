// Package logging provides leveled diagnostics on stderr for winepath.
// Translation results go to stdout; everything here stays on stderr so the
// output of `winepath unix ...` remains pipeable.
package logging

import (
	"fmt"
	"os"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
)

// Logger handles leveled logging
type Logger struct {
	quiet bool
	debug bool
}

// New creates a new logger
func New(quiet, debug bool) *Logger {
	return &Logger{quiet: quiet, debug: debug}
}

// Debug logs a debug message (only when debug mode is enabled)
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.debug {
		fmt.Fprintf(os.Stderr, "%s[DEBUG]%s %s\n", colorBlue, colorReset, fmt.Sprintf(format, args...))
	}
}

// Info logs an info message (hidden in quiet mode)
func (l *Logger) Info(format string, args ...interface{}) {
	if !l.quiet {
		fmt.Fprintf(os.Stderr, "%s\n", fmt.Sprintf(format, args...))
	}
}

// Warn logs a warning message (hidden in quiet mode)
func (l *Logger) Warn(format string, args ...interface{}) {
	if !l.quiet {
		fmt.Fprintf(os.Stderr, "%s[WARN]%s %s\n", colorYellow, colorReset, fmt.Sprintf(format, args...))
	}
}

// Error logs an error message (always shown)
func (l *Logger) Error(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s[ERROR]%s %s\n", colorRed, colorReset, fmt.Sprintf(format, args...))
}

// Success logs a success message (hidden in quiet mode)
func (l *Logger) Success(format string, args ...interface{}) {
	if !l.quiet {
		fmt.Fprintf(os.Stderr, "%s✓%s %s\n", colorGreen, colorReset, fmt.Sprintf(format, args...))
	}
}
