// Copyright (c) 2026 Keymaster Team
// Dropin Demo - payment UI demo harness
// This source code is licensed under the MIT license found in the LICENSE file.

package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	clog "github.com/charmbracelet/log"
)

// TestLoggingHelpers_WriteToBuffer verifies the package helper functions write
// formatted messages to the package-level logger `L`. The test swaps `L` with
// a buffer-backed logger and restores it afterwards.
func TestLoggingHelpers_WriteToBuffer(t *testing.T) {
	var buf bytes.Buffer
	prev := L
	L = clog.New(&buf)
	L.SetLevel(clog.DebugLevel)
	defer func() { L = prev }()

	Debugf("hello %s", "dbg")
	Infof("info %d", 1)
	Warnf("warn")
	Errorf("err %v", "E")

	out := buf.String()
	for _, want := range []string{"hello dbg", "info 1", "warn", "err E"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output; got: %s", want, out)
		}
	}
}

func TestSetup_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	defer Setup(os.Stderr, "info")

	Setup(&buf, "warn")
	Infof("quiet")
	Warnf("loud")

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Fatalf("info message should be filtered at warn level; got: %s", out)
	}
	if !strings.Contains(out, "loud") {
		t.Fatalf("missing warn output; got: %s", out)
	}
}

func TestParseLevel_FallsBackToInfo(t *testing.T) {
	if got := ParseLevel("DEBUG"); got != clog.DebugLevel {
		t.Fatalf("expected debug level, got %v", got)
	}
	if got := ParseLevel("chatty"); got != clog.InfoLevel {
		t.Fatalf("expected info fallback, got %v", got)
	}
}

func TestOpenFile_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "demo.log")
	f, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile failed: %v", err)
	}
	defer func() { _ = f.Close() }()
	if _, err := f.WriteString("line\n"); err != nil {
		t.Fatalf("write failed: %v", err)
	}
}

func TestSetDebug_TogglesLevel(t *testing.T) {
	var buf bytes.Buffer
	defer Setup(os.Stderr, "info")

	Setup(&buf, "info")
	SetDebug(true)
	if L.GetLevel() != clog.DebugLevel {
		t.Fatalf("expected debug level, got %v", L.GetLevel())
	}
	Debugf("visible")
	SetDebug(false)
	Debugf("hidden")

	out := buf.String()
	if !strings.Contains(out, "visible") || strings.Contains(out, "hidden") {
		t.Fatalf("unexpected output: %s", out)
	}
}
