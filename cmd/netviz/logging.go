package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

var (
	logDir      = "logs"
	logFileName = "netviz.log"
)

const maxLogSize = 10 * 1024 * 1024

// setupLogging returns a file-backed debug logger, or a discarding one when debug is off
// The screen owns stdout so nothing is ever logged there
func setupLogging(debug bool) (*slog.Logger, *os.File) {
	discard := slog.New(slog.NewTextHandler(io.Discard, nil))
	if !debug {
		slog.SetDefault(discard)
		return discard, nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		slog.SetDefault(discard)
		return discard, nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		os.Rename(logPath, logPath+".old")
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		slog.SetDefault(discard)
		return discard, nil
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(logger)
	return logger, f
}
