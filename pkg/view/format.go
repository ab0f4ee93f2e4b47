// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package view

import (
	"math"

	"github.com/dustin/go-humanize"
)

var byteUnits = []string{"Bytes", "KB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}

// FormatBytes renders b with 1024-based units and at most two decimals, e.g. "1.5 KB".
func FormatBytes(b float64) string {
	if b == 0 {
		return "0 Bytes"
	}
	i := int(math.Floor(math.Log(math.Abs(b)) / math.Log(1024)))
	if i < 0 {
		i = 0
	}
	if i >= len(byteUnits) {
		i = len(byteUnits) - 1
	}
	scaled := math.Round(b/math.Pow(1024, float64(i))*100) / 100
	return humanize.FtoaWithDigits(scaled, 2) + " " + byteUnits[i]
}

// FormatNumber groups thousands and keeps one decimal for fractional values.
func FormatNumber(v float64) string {
	if v == math.Trunc(v) {
		return humanize.Comma(int64(v))
	}
	return humanize.FormatFloat("#,###.#", v)
}
