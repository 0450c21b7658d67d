// SPDX-License-Identifier: MIT

package logger_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/polymetrics/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestNew_LevelFilter checks that messages below the level are dropped.
func TestNew_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.New(logger.Config{Level: "warn", Output: &buf})
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("shown", zap.Int("vertices", 4))
	require.NoError(t, log.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "vertices")
	assert.NotContains(t, out, "\033[", "colour disabled")
}

// TestNew_Color wraps level names in ANSI codes.
func TestNew_Color(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.New(logger.Config{Level: "debug", Color: true, Output: &buf})
	require.NoError(t, err)

	log.Debug("tick")
	assert.Contains(t, buf.String(), "\033[36mDEBUG\033[0m")
}

// TestNew_BadLevel rejects unknown level names.
func TestNew_BadLevel(t *testing.T) {
	_, err := logger.New(logger.Config{Level: "loud"})
	assert.Error(t, err)
}

// TestDefaultConfig is info level, coloured.
func TestDefaultConfig(t *testing.T) {
	cfg := logger.DefaultConfig()
	assert.Equal(t, "info", cfg.Level)
	assert.True(t, cfg.Color)
	assert.NotNil(t, cfg.Output)
}
