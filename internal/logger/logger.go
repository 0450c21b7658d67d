// SPDX-License-Identifier: MIT

// Package logger builds the zap logger shared by the polymetrics commands.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects level, colouring and destination of log output.
type Config struct {
	// Level is a zap level name: debug, info, warn, error. Empty means info.
	Level string
	// Color wraps level names in ANSI colour codes.
	Color bool
	// Output receives the log lines. Nil means os.Stderr.
	Output io.Writer
}

// DefaultConfig logs info and above, coloured, to stderr.
func DefaultConfig() Config {
	return Config{Level: "info", Color: true, Output: os.Stderr}
}

// New returns a console logger configured by cfg.
// An unknown level name is an error.
func New(cfg Config) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, fmt.Errorf("logger: unknown level %q: %w", cfg.Level, err)
		}
	}
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	encodeLevel := zapcore.CapitalLevelEncoder
	if cfg.Color {
		encodeLevel = colorLevelEncoder
	}
	config := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    encodeLevel,
		EncodeTime:     customTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(config), zapcore.AddSync(out), level)

	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)), nil
}

func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("[2006-01-02 | 15:04:05]"))
}

func colorLevelEncoder(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	var colorCode string
	switch level {
	case zapcore.DebugLevel:
		colorCode = "\033[36m" // cyan
	case zapcore.InfoLevel:
		colorCode = "\033[32m" // green
	case zapcore.WarnLevel:
		colorCode = "\033[33m" // yellow
	case zapcore.ErrorLevel:
		colorCode = "\033[31m" // red
	default:
		colorCode = "\033[0m"
	}
	enc.AppendString(colorCode + level.CapitalString() + "\033[0m")
}
