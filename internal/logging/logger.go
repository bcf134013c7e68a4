// Copyright (c) 2026 Keymaster Team
// Dropin Demo - payment UI demo harness
// This source code is licensed under the MIT license found in the LICENSE file.

// Package logging holds the process-wide structured logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger. Callers should use the helper functions
// below for formatted messages.
var L = clog.New(os.Stderr)

// Setup points L at w with the given level. Unknown level names fall back
// to info. L is reconfigured in place; other goroutines may be logging
// through it.
func Setup(w io.Writer, level string) {
	L.SetOutput(w)
	L.SetPrefix("dropin-demo")
	L.SetReportTimestamp(true)
	L.SetLevel(ParseLevel(level))
}

// ParseLevel maps a config level name to a charmbracelet/log level.
func ParseLevel(level string) clog.Level {
	lvl, err := clog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return clog.InfoLevel
	}
	return lvl
}

// OpenFile opens (appending) the log file used while the terminal UI owns
// stdout. The parent directory is created when missing.
func OpenFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("could not create log directory: %w", err)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

// DefaultFilePath returns dropin-demo.log inside the user cache directory,
// or the working directory when no cache directory is known.
func DefaultFilePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "dropin-demo.log"
	}
	return filepath.Join(dir, "dropin-demo", "dropin-demo.log")
}

// SetDebug toggles debug output on the current logger.
func SetDebug(enabled bool) {
	if enabled {
		L.SetLevel(clog.DebugLevel)
		return
	}
	L.SetLevel(clog.InfoLevel)
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...interface{}) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...interface{}) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...interface{}) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...interface{}) {
	L.Error(fmt.Sprintf(format, v...))
}
