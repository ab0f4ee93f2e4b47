// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package logger

import (
	"context"

	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/logger/conf"
)

// Logger is the logging surface every package writes through.
type Logger interface {
	Logf(level conf.Level, format string, v ...interface{})
	Log(level conf.Level, v ...interface{})

	Tracef(format string, v ...interface{})
	Debugf(format string, v ...interface{})
	Infof(format string, v ...interface{})
	Warnf(format string, v ...interface{})
	Errorf(format string, v ...interface{})

	WithField(key string, value interface{}) Logger
	WithFields(fields map[string]interface{}) Logger
	WithContext(ctx context.Context) Logger
}
