// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package conf

import (
	"fmt"
	"strings"
)

// Formatter selects the line layout of log output.
type Formatter string

const (
	JSONFormatter       Formatter = "json"
	ConsoleFormatter    Formatter = "console"
	StructuredFormatter Formatter = "structured"
)

var formatters = map[Formatter]bool{
	JSONFormatter:       true,
	ConsoleFormatter:    true,
	StructuredFormatter: true,
}

func isValidFormatter(f Formatter) bool {
	return formatters[f]
}

func ParseFormatter(s string) (Formatter, error) {
	f := Formatter(strings.ToLower(strings.TrimSpace(s)))
	if !formatters[f] {
		return "", fmt.Errorf("unknown log formatter %q", s)
	}
	return f, nil
}
