package main

import (
	"os"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LoggerConfig controls the zap logger.
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"` // console or json
	LogFile    string `mapstructure:"log_file"`
	MaxSize    int    `mapstructure:"max_size"` // megabytes
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // days
	Compress   bool   `mapstructure:"compress"`
}

var (
	globalLogger atomic.Pointer[zap.Logger]
	logOnce      sync.Once
)

// initLogger builds the process logger once. Console output goes to
// console; when a log file is configured a rotating JSON core is added.
func initLogger(cfg LoggerConfig, console zapcore.WriteSyncer) *zap.Logger {
	logOnce.Do(func() {
		level := zap.NewAtomicLevel()
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			level.SetLevel(zap.InfoLevel)
		}

		cores := []zapcore.Core{zapcore.NewCore(newEncoder(cfg.Format), console, level)}
		if cfg.LogFile != "" {
			file := zapcore.AddSync(&lumberjack.Logger{
				Filename:   cfg.LogFile,
				MaxSize:    cfg.MaxSize,
				MaxBackups: cfg.MaxBackups,
				MaxAge:     cfg.MaxAge,
				Compress:   cfg.Compress,
			})
			cores = append(cores, zapcore.NewCore(newEncoder("json"), file, level))
		}

		l := zap.New(zapcore.NewTee(cores...), zap.AddStacktrace(zap.ErrorLevel)).Named("cloth")
		globalLogger.Store(l)
		zap.ReplaceGlobals(l)
		zap.RedirectStdLog(l)
	})
	return logger()
}

func newEncoder(format string) zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02T15:04:05.000Z07:00")
	if format == "json" {
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewJSONEncoder(cfg)
	}
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewConsoleEncoder(cfg)
}

// logger returns the process logger, or a stderr development logger when
// initLogger has not run yet.
func logger() *zap.Logger {
	if l := globalLogger.Load(); l != nil {
		return l
	}
	l, err := zap.NewDevelopment(zap.ErrorOutput(zapcore.Lock(os.Stderr)))
	if err != nil {
		return zap.NewNop()
	}
	return l.Named("fallback")
}

// resetLoggerForTest clears the process logger. Tests only.
func resetLoggerForTest() {
	globalLogger.Store(nil)
	logOnce = sync.Once{}
}
