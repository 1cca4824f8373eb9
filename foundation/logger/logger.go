// Package logger provides a convenience function to constructing a logger
// for use. This is required not just for applications but for testing.
package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jrick/logrotate/rotator"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config describes where log output is written beyond stdout.
type Config struct {
	File     string
	MaxKB    int64
	MaxRolls int
}

// New constructs a Sugared Logger that writes to stdout and
// provides human-readable timestamps.
func New(service string) (*zap.SugaredLogger, error) {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stdout"}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.DisableStacktrace = true
	config.InitialFields = map[string]any{
		"service": service,
	}

	log, err := config.Build()
	if err != nil {
		return nil, err
	}

	return log.Sugar(), nil
}

// NewWithFile constructs a Sugared Logger that writes to stdout and to a
// rotating log file. The returned function closes the rotator and must be
// called after the final Sync.
func NewWithFile(service string, cfg Config) (*zap.SugaredLogger, func() error, error) {
	if cfg.File == "" {
		log, err := New(service)
		return log, func() error { return nil }, err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0700); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}

	maxKB := cfg.MaxKB
	if maxKB <= 0 {
		maxKB = 10 * 1024
	}
	maxRolls := cfg.MaxRolls
	if maxRolls <= 0 {
		maxRolls = 3
	}

	r, err := rotator.New(cfg.File, maxKB, false, maxRolls)
	if err != nil {
		return nil, nil, fmt.Errorf("creating log rotator: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	ws := zapcore.NewMultiWriteSyncer(zapcore.Lock(os.Stdout), zapcore.AddSync(r))
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), ws, zap.InfoLevel)

	log := zap.New(core, zap.AddCaller()).With(zap.String("service", service))

	return log.Sugar(), r.Close, nil
}
