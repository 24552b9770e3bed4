package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/npratt/pathviz/internal/config"
)

// TUILoggerResult contains the results of setting up logging for TUI mode.
type TUILoggerResult struct {
	Logger   *slog.Logger
	LogFile  io.WriteCloser
	FilePath string
}

// Close closes the log file if it was opened.
func (r *TUILoggerResult) Close() error {
	if r.LogFile != nil {
		return r.LogFile.Close()
	}
	return nil
}

// SetupTUILogger creates a logger that writes to a rotating file instead of stderr.
// This prevents log output from corrupting the TUI display.
// Uses lumberjack for automatic log rotation based on the provided config.
func SetupTUILogger(logPath string, level slog.Leveler, rotationCfg config.LogRotationConfig) (*TUILoggerResult, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	writer := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    rotationCfg.MaxSizeMB,
		MaxBackups: rotationCfg.MaxBackups,
		MaxAge:     rotationCfg.MaxAgeDays,
		Compress:   rotationCfg.Compress,
	}

	logger := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: level}))

	return &TUILoggerResult{
		Logger:   logger,
		LogFile:  writer,
		FilePath: logPath,
	}, nil
}

// SetupTUILoggerWithWriter creates a logger that writes to the given writer.
// This is useful for testing where we want to capture the output.
func SetupTUILoggerWithWriter(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
