package main

import (
	"fmt"
	"os"
	"runtime/pprof"
	"sync"
	"time"

	"go.uber.org/zap"
)

// cpuProfile is a running runtime/pprof CPU profile.
type cpuProfile struct {
	path    string
	file    *os.File
	started time.Time
	log     *zap.Logger
	once    sync.Once
}

// startCPUProfile begins writing a CPU profile to path. The returned stop
// function flushes and closes the file and is safe to call more than once.
func startCPUProfile(path string, log *zap.Logger) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating profile %s: %w", path, err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return nil, fmt.Errorf("starting cpu profile: %w", err)
	}
	p := &cpuProfile{path: path, file: f, started: time.Now(), log: log}
	return p.stop, nil
}

func (p *cpuProfile) stop() {
	p.once.Do(func() {
		pprof.StopCPUProfile()
		if err := p.file.Close(); err != nil {
			p.log.Warn("closing cpu profile", zap.String("path", p.path), zap.Error(err))
			return
		}
		p.log.Info("cpu profile written",
			zap.String("path", p.path),
			zap.Duration("elapsed", time.Since(p.started)))
	})
}
