package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestStartCPUProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cpu.pprof")
	core, logs := observer.New(zap.InfoLevel)
	stop, err := startCPUProfile(path, zap.New(core))
	require.NoError(t, err)
	stop()
	stop()

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
	assert.Equal(t, 1, logs.FilterMessage("cpu profile written").Len())
}

func TestStartCPUProfileBadPath(t *testing.T) {
	_, err := startCPUProfile(filepath.Join(t.TempDir(), "missing", "cpu.pprof"), zap.NewNop())
	assert.Error(t, err)
}

func TestStartCPUProfileWhileRunningLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	stop, err := startCPUProfile(filepath.Join(dir, "first.pprof"), zap.NewNop())
	require.NoError(t, err)
	defer stop()

	second := filepath.Join(dir, "second.pprof")
	_, err = startCPUProfile(second, zap.NewNop())
	require.Error(t, err)
	_, statErr := os.Stat(second)
	assert.True(t, os.IsNotExist(statErr))
}
