// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package logrus

import (
	"context"
	"io"
	"os"

	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/logger"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/logger/conf"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// contextFieldKeys are copied from the request context onto every entry.
var contextFieldKeys = []string{"request_id", "user_id", "component"}

type ctxKey string

// ContextKey returns the key under which middleware stores a log field.
func ContextKey(field string) interface{} {
	return ctxKey(field)
}

type Wrapper struct {
	entry *logrus.Entry
}

func NewLogrusWrapper(cfg *conf.LogConfig) (logger.Logger, error) {
	if cfg == nil {
		cfg = conf.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	l := logrus.New()
	level, err := logrus.ParseLevel(string(cfg.Level))
	if err != nil {
		return nil, err
	}
	l.SetLevel(level)
	l.SetReportCaller(cfg.ReportCaller)
	l.SetFormatter(newFormatter(cfg.Formatter))
	l.SetOutput(newOutput(cfg.File))
	return &Wrapper{entry: logrus.NewEntry(l)}, nil
}

// NewWithWriter builds a wrapper writing to w, used by tests to capture output.
func NewWithWriter(w io.Writer, level conf.Level, formatter conf.Formatter) logger.Logger {
	l := logrus.New()
	lv, err := logrus.ParseLevel(string(level))
	if err != nil {
		lv = logrus.InfoLevel
	}
	l.SetLevel(lv)
	l.SetFormatter(newFormatter(formatter))
	l.SetOutput(w)
	return &Wrapper{entry: logrus.NewEntry(l)}
}

func newFormatter(f conf.Formatter) logrus.Formatter {
	switch f {
	case conf.JSONFormatter:
		return &logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000Z07:00"}
	case conf.StructuredFormatter:
		return &logrus.TextFormatter{DisableColors: true, FullTimestamp: true}
	default:
		return &logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "2006-01-02 15:04:05.000"}
	}
}

func newOutput(file *conf.FileConfig) io.Writer {
	if file == nil {
		return os.Stdout
	}
	rotated := &lumberjack.Logger{
		Filename:   file.Path,
		MaxSize:    file.MaxSizeMB,
		MaxBackups: file.MaxBackups,
		MaxAge:     file.MaxAgeDays,
		Compress:   file.Compress,
	}
	return io.MultiWriter(os.Stdout, rotated)
}

func toLogrusLevel(level conf.Level) logrus.Level {
	switch level {
	case conf.TraceLevel:
		return logrus.TraceLevel
	case conf.DebugLevel:
		return logrus.DebugLevel
	case conf.WarnLevel:
		return logrus.WarnLevel
	case conf.ErrorLevel:
		return logrus.ErrorLevel
	case conf.FatalLevel:
		// Fatal exit is owned by the log facade, never by the backend.
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

func (w *Wrapper) Logf(level conf.Level, format string, v ...interface{}) {
	w.entry.Logf(toLogrusLevel(level), format, v...)
}

func (w *Wrapper) Log(level conf.Level, v ...interface{}) {
	w.entry.Log(toLogrusLevel(level), v...)
}

func (w *Wrapper) Tracef(format string, v ...interface{}) { w.Logf(conf.TraceLevel, format, v...) }
func (w *Wrapper) Debugf(format string, v ...interface{}) { w.Logf(conf.DebugLevel, format, v...) }
func (w *Wrapper) Infof(format string, v ...interface{})  { w.Logf(conf.InfoLevel, format, v...) }
func (w *Wrapper) Warnf(format string, v ...interface{})  { w.Logf(conf.WarnLevel, format, v...) }
func (w *Wrapper) Errorf(format string, v ...interface{}) { w.Logf(conf.ErrorLevel, format, v...) }

func (w *Wrapper) WithField(key string, value interface{}) logger.Logger {
	return &Wrapper{entry: w.entry.WithField(key, value)}
}

func (w *Wrapper) WithFields(fields map[string]interface{}) logger.Logger {
	return &Wrapper{entry: w.entry.WithFields(logrus.Fields(fields))}
}

func (w *Wrapper) WithContext(ctx context.Context) logger.Logger {
	if ctx == nil {
		return w
	}
	fields := logrus.Fields{}
	for _, key := range contextFieldKeys {
		if v := ctx.Value(ctxKey(key)); v != nil {
			fields[key] = v
		}
	}
	return &Wrapper{entry: w.entry.WithContext(ctx).WithFields(fields)}
}
