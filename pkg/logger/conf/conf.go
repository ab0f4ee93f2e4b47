// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package conf

import (
	"fmt"
	"strings"
)

type Level string

const (
	TraceLevel Level = "trace"
	DebugLevel Level = "debug"
	InfoLevel  Level = "info"
	WarnLevel  Level = "warn"
	ErrorLevel Level = "error"
	FatalLevel Level = "fatal"
)

var levels = map[Level]bool{
	TraceLevel: true,
	DebugLevel: true,
	InfoLevel:  true,
	WarnLevel:  true,
	ErrorLevel: true,
	FatalLevel: true,
}

// FileConfig enables a rotated log file next to stdout.
type FileConfig struct {
	Path       string `yaml:"path" json:"path"`
	MaxSizeMB  int    `yaml:"maxSizeMB" json:"maxSizeMB"`
	MaxBackups int    `yaml:"maxBackups" json:"maxBackups"`
	MaxAgeDays int    `yaml:"maxAgeDays" json:"maxAgeDays"`
	Compress   bool   `yaml:"compress" json:"compress"`
}

type LogConfig struct {
	Core         string      `yaml:"core" json:"core"`
	Level        Level       `yaml:"level" json:"level"`
	Formatter    Formatter   `yaml:"formatter" json:"formatter"`
	ReportCaller bool        `yaml:"reportCaller" json:"reportCaller"`
	File         *FileConfig `yaml:"file" json:"file"`
}

func DefaultConfig() *LogConfig {
	return &LogConfig{
		Core:      "logrus",
		Level:     InfoLevel,
		Formatter: ConsoleFormatter,
	}
}

// ParseLevel accepts the level names case-insensitively.
func ParseLevel(s string) (Level, error) {
	l := Level(strings.ToLower(strings.TrimSpace(s)))
	if !levels[l] {
		return "", fmt.Errorf("unknown log level %q", s)
	}
	return l, nil
}

func (c *LogConfig) Validate() error {
	if !levels[c.Level] {
		return fmt.Errorf("unknown log level %q", c.Level)
	}
	if !isValidFormatter(c.Formatter) {
		return fmt.Errorf("unknown log formatter %q", c.Formatter)
	}
	if c.File != nil && c.File.Path == "" {
		return fmt.Errorf("log file output requires a path")
	}
	return nil
}
