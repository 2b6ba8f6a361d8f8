package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLogger(t *testing.T) {
	flagLogLevel, flagLogFile = "debug", ""
	t.Cleanup(func() { flagLogLevel, flagLogFile = "info", "" })

	var buf bytes.Buffer
	logger, closeLog, err := newLogger(&buf)
	if err != nil {
		t.Fatalf("newLogger failed: %v", err)
	}
	defer closeLog()

	logger.Debug("board changed", "score", 4)
	if out := buf.String(); !strings.Contains(out, "t2048") || !strings.Contains(out, "score=4") {
		t.Errorf("unexpected log output %q", out)
	}
}

func TestNewLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t2048.log")
	flagLogLevel, flagLogFile = "info", path
	t.Cleanup(func() { flagLogLevel, flagLogFile = "info", "" })

	var fallback bytes.Buffer
	logger, closeLog, err := newLogger(&fallback)
	if err != nil {
		t.Fatalf("newLogger failed: %v", err)
	}
	logger.Info("game started")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "game started") {
		t.Errorf("log file missing entry: %q", data)
	}
	if fallback.Len() != 0 {
		t.Errorf("fallback writer should be unused, got %q", fallback.String())
	}
}

func TestNewLoggerBadLevel(t *testing.T) {
	flagLogLevel = "chatty"
	t.Cleanup(func() { flagLogLevel = "info" })

	if _, _, err := newLogger(&bytes.Buffer{}); err == nil {
		t.Error("newLogger should reject an unknown level")
	}
}
