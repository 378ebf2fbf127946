package main

import (
	"os"
	"path/filepath"
	"testing"
)

func useTempLogDir(t *testing.T) string {
	t.Helper()
	old := logDir
	logDir = filepath.Join(t.TempDir(), "logs")
	t.Cleanup(func() { logDir = old })
	return logDir
}

func TestSetupLoggingDisabledByDefault(t *testing.T) {
	dir := useTempLogDir(t)

	logger, f := setupLogging(false)
	if f != nil {
		f.Close()
		t.Error("expected nil log file when debug=false")
	}
	if logger == nil {
		t.Fatal("expected a discarding logger")
	}
	logger.Info("dropped")
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("log directory must not be created when debug=false")
	}
}

func TestSetupLoggingEnabledWithDebug(t *testing.T) {
	dir := useTempLogDir(t)

	logger, f := setupLogging(true)
	if f == nil {
		t.Fatal("expected log file when debug=true")
	}
	defer f.Close()

	logger.Debug("frame", "n", 1)

	info, err := os.Stat(filepath.Join(dir, logFileName))
	if err != nil {
		t.Fatalf("stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("expected debug record in log file")
	}
}

func TestSetupLoggingRotation(t *testing.T) {
	dir := useTempLogDir(t)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	logPath := filepath.Join(dir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0o644); err != nil {
		t.Fatal(err)
	}

	_, f := setupLogging(true)
	if f == nil {
		t.Fatal("expected log file")
	}
	defer f.Close()

	if _, err := os.Stat(logPath + ".old"); err != nil {
		t.Errorf("expected rotated file: %v", err)
	}
	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("new log file size %d, want fresh file", info.Size())
	}
}
