package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, closeFn, err := setupLogging(false, dir)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	defer closeFn()

	logger.Info("discarded")

	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("Expected no log directory when debug=false")
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, closeFn, err := setupLogging(true, dir)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	logger.Info("Test log message")
	closeFn()

	logPath := filepath.Join(dir, logFileName)
	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected log file to contain content")
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, logFileName)

	// An existing file at the size limit forces a rotation on first write
	if err := os.WriteFile(logPath, make([]byte, maxLogSize), 0o644); err != nil {
		t.Fatalf("Failed to create large log file: %v", err)
	}

	logger, closeFn, err := setupLogging(true, dir)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	logger.Info("after rotation")
	closeFn()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}

	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != logFileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
			break
		}
	}
	if !rotatedFound {
		t.Error("Expected to find rotated log file")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() >= maxLogSize {
		t.Errorf("Expected new log file smaller than %d bytes, got %d", maxLogSize, info.Size())
	}
}

func TestSetupLogging_BadDir(t *testing.T) {
	// A regular file where the directory should be
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := setupLogging(true, filepath.Join(blocker, "logs")); err == nil {
		t.Error("Expected error when the log dir cannot be created")
	}
}
