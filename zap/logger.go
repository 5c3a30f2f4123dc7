// Package zap builds the file logger used while the reader owns the terminal.
package zap

import (
	"fmt"
	"os"
	"path/filepath"

	zaplib "go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger returns a logger writing console-encoded entries at level or
// above to the file at path, appending to it. The returned close func syncs
// and closes the file. An empty path disables logging.
func NewLogger(path, level string) (*zaplib.Logger, func(), error) {
	if path == "" {
		return zaplib.NewNop(), func() {}, nil
	}

	lvl := zapcore.InfoLevel
	if level != "" {
		var err error
		if lvl, err = zapcore.ParseLevel(level); err != nil {
			return nil, nil, fmt.Errorf("log level: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("log destination: %w", err)
	}
	sink, closeSink, err := zaplib.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to access file log destination (%s): %w", path, err)
	}

	ec := zaplib.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), sink, zaplib.NewAtomicLevelAt(lvl))
	logger := zaplib.New(core)

	return logger, func() {
		_ = logger.Sync()
		closeSink()
	}, nil
}
