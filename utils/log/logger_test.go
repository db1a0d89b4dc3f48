package opslog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLBeforeInitIsNoop(t *testing.T) {
	saved := logger
	logger = nil
	defer func() { logger = saved }()

	assert.Same(t, noopLogger, L())
	assert.NotPanics(t, func() { Component("nav").Infof("dropped %d", 1) })
}

func TestNilLoggerWith(t *testing.T) {
	var l *Logger
	assert.Same(t, noopLogger, l.With("k", "v"))
}

func TestDetectLogLevel(t *testing.T) {
	t.Setenv("ASSETOPS_ENV", "prod")
	t.Setenv("LOG_LEVEL", "warn")

	assert.Equal(t, zap.WarnLevel, detectLogLevel(""))
	assert.Equal(t, zap.DebugLevel, detectLogLevel("debug"))

	t.Setenv("LOG_LEVEL", "")
	assert.Equal(t, zap.InfoLevel, detectLogLevel(""))

	t.Setenv("ASSETOPS_ENV", "dev")
	assert.Equal(t, zap.DebugLevel, detectLogLevel(""))
}

func TestSelectLogPathUsesXDGState(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)

	assert.Equal(t, filepath.Join(dir, "assetops", "app.log"), selectLogPath("assetops", "prod"))
	assert.Equal(t, filepath.Join(dir, "assetops", "app-debug.log"), selectLogPath("assetops", "dev"))
}
