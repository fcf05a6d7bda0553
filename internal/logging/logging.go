// Package logging constructs the one zap logger a process run threads
// through the decode, build, freeze and serve phases. There is no
// package-level global logger: every call site that needs to log receives
// one explicitly, the same way the teacher's repository types carry a
// *zap.Logger field rather than reaching for a package-level instance.
package logging

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a zap.Logger at the given level (parsed with zapcore; an
// unrecognized level falls back to info) and tags every line it emits
// with a per-run correlation ID so that concatenated logs from multiple
// invocations can be told apart.
func New(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "ts"

	base, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	return base.With(zap.String("run_id", uuid.NewString())), nil
}
