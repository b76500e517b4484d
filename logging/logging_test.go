package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/lixenwraith/hero-field/parameter"
)

func TestSetup_DisabledByDefault(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, closeFn, err := Setup(false, dir)
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	defer closeFn()

	if logger.Core().Enabled(zap.ErrorLevel) {
		t.Error("Expected a disabled logger when debug=false")
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("Expected no log directory when debug=false")
	}
}

func TestSetup_EnabledWithDebug(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, closeFn, err := Setup(true, dir)
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	logger.Debug("test message", zap.Int("particles", 3))
	if err := closeFn(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, parameter.LogFileName))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "test message") || !strings.Contains(string(data), "particles") {
		t.Errorf("Expected log file to contain the structured entry, got %q", data)
	}
}

func TestSetup_Rotation(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, parameter.LogFileName)

	// Write just over the limit
	if err := os.WriteFile(logPath, make([]byte, parameter.MaxLogSize+1), 0644); err != nil {
		t.Fatalf("Failed to create large log file: %v", err)
	}

	_, closeFn, err := Setup(true, dir)
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	defer closeFn()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}
	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != parameter.LogFileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
		}
	}
	if !rotatedFound {
		t.Error("Expected to find rotated log file")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() > parameter.MaxLogSize {
		t.Errorf("Expected new log file to be smaller than %d bytes, got %d", parameter.MaxLogSize, info.Size())
	}
}

func TestSetup_SmallFileNotRotated(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, parameter.LogFileName)
	if err := os.WriteFile(logPath, []byte("previous run\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, closeFn, err := Setup(true, dir)
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	closeFn()

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("Expected only the live log file, got %d entries", len(entries))
	}
	data, _ := os.ReadFile(logPath)
	if !strings.HasPrefix(string(data), "previous run") {
		t.Error("Expected appended log to keep earlier content")
	}
}
