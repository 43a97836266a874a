package util

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLoggerWritesJSONToFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "pitch.log")

	logger, err := NewLogger("debug", logFile, "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Info("generation started")
	_ = logger.Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"generation started"`) {
		t.Fatalf("expected JSON log line, got %q", string(data))
	}
}

func TestParseLevelDefaultsToInfo(t *testing.T) {
	if parseLevel("verbose") != zapcore.InfoLevel {
		t.Fatal("unknown level should fall back to info")
	}
	if parseLevel("warn") != zapcore.WarnLevel {
		t.Fatal("warn level not parsed")
	}
}
