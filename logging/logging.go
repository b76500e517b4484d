// Package logging builds the process logger: silent by default, a development
// encoded file under LogDir with --debug. The terminal is never a log sink
// because the page owns the screen.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/hero-field/parameter"
)

// Setup returns a Nop logger unless debug is set, in which case it opens
// dir/LogFileName for append, rotating it first when larger than MaxLogSize
// The returned close func syncs and closes the file; it is never nil
func Setup(debug bool, dir string) (*zap.Logger, func() error, error) {
	if !debug {
		return zap.NewNop(), func() error { return nil }, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	path := filepath.Join(dir, parameter.LogFileName)
	if err := rotate(path, parameter.MaxLogSize, time.Now()); err != nil {
		return nil, nil, err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(file), zapcore.DebugLevel)
	logger := zap.New(core, zap.AddCaller())

	closeFn := func() error {
		_ = logger.Sync()
		return file.Close()
	}
	logger.Info("logging started", zap.String("path", path))
	return logger, closeFn, nil
}

// rotate renames path to a timestamped sibling when it exceeds limit bytes
func rotate(path string, limit int64, now time.Time) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to stat log file: %w", err)
	}
	if info.Size() <= limit {
		return nil
	}
	ext := filepath.Ext(path)
	rotated := fmt.Sprintf("%s-%s%s", path[:len(path)-len(ext)], now.Format("20060102-150405"), ext)
	if err := os.Rename(path, rotated); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}
	return nil
}
