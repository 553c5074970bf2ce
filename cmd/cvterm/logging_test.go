package main

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	logFile := setupLogging(false, filepath.Join(t.TempDir(), "cvterm.log"))
	if logFile != nil {
		t.Error("Expected nil log file when debug=false")
		logFile.Close()
	}

	if output := log.Writer(); output != io.Discard {
		t.Errorf("Expected log output to be io.Discard, got %v", output)
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	logPath := filepath.Join(dir, "cvterm.log")
	t.Cleanup(func() { setupLogging(false, "") })

	logFile := setupLogging(true, logPath)
	if logFile == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer logFile.Close()

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		t.Error("Expected logs directory to be created")
	}

	slog.Debug("test message", "key", "value")
	log.Println("Test log message")

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
	logPath := filepath.Join(dir, "cvterm.log")
	t.Cleanup(func() { setupLogging(false, "") })

	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("Failed to create large log file: %v", err)
	}

	logFile := setupLogging(true, logPath)
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer logFile.Close()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}
	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != "cvterm.log" && filepath.Ext(entry.Name()) == ".log" {
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
	if info.Size() > maxLogSize {
		t.Errorf("Expected new log file to be smaller than %d bytes, got %d", maxLogSize, info.Size())
	}
}

func TestSetupLogging_NoStdoutStderr(t *testing.T) {
	t.Cleanup(func() { setupLogging(false, "") })

	logFile := setupLogging(true, filepath.Join(t.TempDir(), "cvterm.log"))
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer logFile.Close()

	output := log.Writer()
	if output == os.Stdout {
		t.Error("Log output should not be stdout")
	}
	if output == os.Stderr {
		t.Error("Log output should not be stderr")
	}
}

func TestRunCheckAndVersion(t *testing.T) {
	if code := run("cvterm", []string{"-check"}); code != 0 {
		t.Errorf("Expected exit 0 for -check, got %d", code)
	}
	if code := run("cvterm", []string{"-version"}); code != 0 {
		t.Errorf("Expected exit 0 for -version, got %d", code)
	}
	if code := run("cvterm", []string{"-backend", "vt100"}); code != 2 {
		t.Errorf("Expected exit 2 for bad flag, got %d", code)
	}
}

func TestRunCheckRejectsBadContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("tabs: []\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if code := run("cvterm", []string{"-check", "-content", path}); code != 1 {
		t.Errorf("Expected exit 1 for invalid content, got %d", code)
	}
}
