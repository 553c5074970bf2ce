package main

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// maxLogSize is the size above which the log is rotated on startup
const maxLogSize = 10 * 1024 * 1024

// setupLogging routes slog and the standard logger to path when enabled and
// discards all output otherwise; the terminal is never written to.
// The returned file is nil when logging is disabled or the file can't be opened.
func setupLogging(enabled bool, path string) *os.File {
	if !enabled {
		discard()
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		discard()
		return nil
	}
	rotate(path)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		discard()
		return nil
	}

	// SetDefault redirects the log package too, so its output is set afterwards
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

func discard() {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	log.SetOutput(io.Discard)
}

// rotate renames an oversized log to name-<timestamp>.log
func rotate(path string) {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= maxLogSize {
		return
	}
	base := strings.TrimSuffix(path, filepath.Ext(path))
	rotated := base + "-" + time.Now().Format("20060102-150405") + ".log"
	_ = os.Rename(path, rotated)
}
