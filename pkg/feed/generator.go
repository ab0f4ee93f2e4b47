// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package feed

import "math"

const DefaultVariationPercent = 0.25

// Fluctuate returns a value drawn uniformly from [base-variance, base+variance].
func Fluctuate(rng RandSource, base, variance float64) float64 {
	variance = math.Abs(variance)
	return base + orDefault(rng).Float64()*variance*2 - variance
}

// Variation fluctuates base by a fraction of itself.
func Variation(rng RandSource, base, percent float64) float64 {
	return Fluctuate(rng, base, base*percent)
}

// VariationPercent derives the chart variation from a series variance bound.
func VariationPercent(base, variance float64) float64 {
	if variance == 0 || base == 0 {
		return DefaultVariationPercent
	}
	return variance / base * 2
}
