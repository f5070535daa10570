// Package obslog builds the structured logger used across the module,
// replacing the ad-hoc fmt.Printf progress lines a demo program would use
// with a configurable, leveled zap.Logger.
package obslog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a console-encoded zap.Logger at the given level ("debug",
// "info", "warn", "error"). An unrecognised level falls back to "info".
func New(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}

// Nop returns a logger that discards everything, for library callers and
// tests that don't want solver progress on stderr.
func Nop() *zap.Logger {
	return zap.NewNop()
}
