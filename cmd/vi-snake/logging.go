package main

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lixenwraith/vi-snake/parameter"
)

const (
	logFileName = parameter.LogFileName
	maxLogSize  = parameter.LogMaxSizeMB * 1024 * 1024
)

// setupLogging returns a file logger rotated by lumberjack when debug is set, a no-op logger otherwise
// The terminal owns stdout and stderr, so logs never go there
func setupLogging(debug bool, dir string) (*zap.Logger, func(), error) {
	if !debug {
		return zap.NewNop(), func() {}, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	lj := &lumberjack.Logger{
		Filename:   filepath.Join(dir, logFileName),
		MaxSize:    parameter.LogMaxSizeMB,
		MaxBackups: parameter.LogMaxBackups,
		MaxAge:     parameter.LogMaxAgeDays,
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stack",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(lj), zapcore.DebugLevel)
	logger := zap.New(core, zap.AddCaller())

	closeFn := func() {
		_ = logger.Sync()
		_ = lj.Close()
	}
	return logger, closeFn, nil
}
