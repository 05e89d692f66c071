package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitLoggerWritesConsoleAndFile(t *testing.T) {
	resetLoggerForTest()
	t.Cleanup(resetLoggerForTest)

	var console bytes.Buffer
	path := filepath.Join(t.TempDir(), "cloth.log")
	log := initLogger(LoggerConfig{
		Level:   "debug",
		Format:  "json",
		LogFile: path,
		MaxSize: 1,
	}, zapcore.AddSync(&console))

	log.Debug("cloth reset", zap.Int("rows", 4))
	require.NoError(t, log.Sync())

	assert.Contains(t, console.String(), `"msg":"cloth reset"`)
	assert.Contains(t, console.String(), `"logger":"cloth"`)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"rows":4`)
}

func TestInitLoggerRunsOnce(t *testing.T) {
	resetLoggerForTest()
	t.Cleanup(resetLoggerForTest)

	var first, second bytes.Buffer
	a := initLogger(LoggerConfig{Level: "info", Format: "console"}, zapcore.AddSync(&first))
	b := initLogger(LoggerConfig{Level: "info", Format: "console"}, zapcore.AddSync(&second))
	assert.Same(t, a, b)

	b.Info("frame")
	assert.Contains(t, first.String(), "frame")
	assert.Empty(t, second.String())
}

func TestInitLoggerBadLevelFallsBackToInfo(t *testing.T) {
	resetLoggerForTest()
	t.Cleanup(resetLoggerForTest)

	var console bytes.Buffer
	log := initLogger(LoggerConfig{Level: "loud", Format: "console"}, zapcore.AddSync(&console))
	log.Debug("hidden")
	log.Info("shown")
	assert.NotContains(t, console.String(), "hidden")
	assert.Contains(t, console.String(), "shown")
}

func TestLoggerFallbackBeforeInit(t *testing.T) {
	resetLoggerForTest()
	assert.NotNil(t, logger())
}
