// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

// Package log is the process-wide logging facade. Handlers and drivers log
// through it; tests swap the backing logger with SetGlobalLogger.
package log

import (
	"sync"

	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/logger"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/logger/conf"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/logger/logrus"
)

type Fields map[string]interface{}

var (
	mu           sync.RWMutex
	globalLogger logger.Logger
)

func init() {
	_ = InitGlobalLogger(conf.DefaultConfig())
}

// InitGlobalLogger replaces the global logger. Only the logrus core exists,
// any other core name falls through to it.
func InitGlobalLogger(cfg *conf.LogConfig) error {
	l, err := logrus.NewLogrusWrapper(cfg)
	if err != nil {
		return err
	}
	SetGlobalLogger(l)
	return nil
}

// NewLogger creates an independent logger at the given level, detached from the global one.
func NewLogger(level conf.Level) (logger.Logger, error) {
	cfg := conf.DefaultConfig()
	cfg.Level = level
	return logrus.NewLogrusWrapper(cfg)
}

func GlobalLogger() logger.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return globalLogger
}

func SetGlobalLogger(l logger.Logger) {
	mu.Lock()
	globalLogger = l
	mu.Unlock()
}

func WithFields(fields Fields) logger.Logger {
	return GlobalLogger().WithFields(fields)
}

func Info(args ...interface{}) {
	GlobalLogger().Log(conf.InfoLevel, args...)
}

func Infof(template string, args ...interface{}) {
	GlobalLogger().Logf(conf.InfoLevel, template, args...)
}

func Debugf(template string, args ...interface{}) {
	GlobalLogger().Logf(conf.DebugLevel, template, args...)
}

func Warnf(template string, args ...interface{}) {
	GlobalLogger().Logf(conf.WarnLevel, template, args...)
}

func Errorf(template string, args ...interface{}) {
	GlobalLogger().Logf(conf.ErrorLevel, template, args...)
}
