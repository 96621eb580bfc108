// Package logger provides leveled diagnostics for bindery commands.
// Debug and info lines appear only in verbose mode; warnings always
// appear. Everything goes to stderr so diagnostics never mix with
// pipeline output on stdout.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	out     io.Writer = os.Stderr
)

// SetVerbose toggles debug and info output.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// Verbose reports whether verbose output is enabled.
func Verbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput redirects log output, primarily for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

// Debugf logs a debug message when verbose mode is on.
func Debugf(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose {
		return
	}
	fmt.Fprintf(out, "[debug] "+format+"\n", args...)
}

// Infof logs an informational message when verbose mode is on.
func Infof(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose {
		return
	}
	fmt.Fprintf(out, format+"\n", args...)
}

// Warnf logs a warning. Warnings are emitted regardless of verbose mode.
func Warnf(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	fmt.Fprintf(out, "warning: "+format+"\n", args...)
}
