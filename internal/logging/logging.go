// Package logging builds the application logger. Logs go to a file by
// default so the Bubble Tea REPL keeps the terminal to itself.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a sugared logger writing to path at the given level, plus a
// flush function for shutdown. The level "off" discards everything; the
// path "stderr" skips the file and logs to the console.
func New(level, path string) (*zap.SugaredLogger, func(), error) {
	if level == "off" {
		return zap.NewNop().Sugar(), func() {}, nil
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	out := "stderr"
	if path != "" && path != "stderr" {
		if dir := filepath.Dir(path); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("logging: create %s: %w", dir, err)
			}
		}
		out = path
	}

	cfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(lvl),
		Encoding:          "console",
		EncoderConfig:     zap.NewDevelopmentEncoderConfig(),
		OutputPaths:       []string{out},
		ErrorOutputPaths:  []string{out},
		DisableStacktrace: true,
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("logging: %w", err)
	}
	return logger.Sugar(), func() { _ = logger.Sync() }, nil
}
