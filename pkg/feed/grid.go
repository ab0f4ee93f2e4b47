// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package feed

import "time"

const (
	DefaultGridDays    = 364
	DefaultGridColumns = 52
	GridRows           = 7
	MaxLevel           = 5
)

// GenerateUtilization returns one utilization percentage per day, skewed towards idle days.
func GenerateUtilization(rng RandSource, days int) []int {
	rng = orDefault(rng)
	if days <= 0 {
		days = DefaultGridDays
	}
	values := make([]int, days)
	for i := range values {
		switch {
		case rng.Float64() < 0.4:
			values[i] = intn(rng, 5)
		case rng.Float64() < 0.7:
			values[i] = intn(rng, 35) + 5
		default:
			values[i] = intn(rng, 60) + 40
		}
	}
	return values
}

var levelThresholds = []int{5, 25, 50, 75, 85}

// Level buckets a percentage into 0..5.
func Level(v int) int {
	for i, t := range levelThresholds {
		if v < t {
			return i
		}
	}
	return MaxLevel
}

// DateForCell is the calendar day of cell index, the last cell being today.
func DateForCell(now time.Time, days, index int) time.Time {
	return now.AddDate(0, 0, -(days - index - 1))
}
