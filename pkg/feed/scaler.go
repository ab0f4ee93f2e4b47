// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package feed

// MetricType tags a series for display scaling.
type MetricType string

const (
	GPUUtilization    MetricType = "gpu_utilization"
	CPUUtilization    MetricType = "cpu_utilization"
	MemoryUtilization MetricType = "memory_utilization"
	MaxMemoryUsage    MetricType = "max_memory_usage"
)

const (
	GiB = 1073741824

	// MaxSafeInteger is the tooltip magnitude shown for max memory usage.
	MaxSafeInteger = 9007199254740991

	DefaultSpikeProbability = 0.1
	SpikeMinFactor          = 1.2
	SpikeMaxFactor          = 1.5
)

// Band is the display range of a metric: Multiplier GiB scaled by a factor in [MinFactor, MaxFactor].
type Band struct {
	Multiplier float64
	MinFactor  float64
	MaxFactor  float64
}

func (b Band) Bounds() (float64, float64) {
	ref := b.Multiplier * GiB
	return ref * b.MinFactor, ref * b.MaxFactor
}

var bands = map[MetricType]Band{
	MaxMemoryUsage:    {Multiplier: 4, MinFactor: 0.9, MaxFactor: 1.1},
	GPUUtilization:    {Multiplier: 3, MinFactor: 0.8, MaxFactor: 1.2},
	CPUUtilization:    {Multiplier: 2, MinFactor: 0.7, MaxFactor: 1.3},
	MemoryUtilization: {Multiplier: 1, MinFactor: 0.6, MaxFactor: 1.4},
}

func BandFor(metric MetricType) (Band, bool) {
	b, ok := bands[metric]
	return b, ok
}

type Scaled struct {
	Display  float64 `json:"display"`
	Original float64 `json:"original"`
}

type Scaler struct {
	rng              RandSource
	spikeProbability float64
	spikeMetric      MetricType
}

func NewScaler(rng RandSource, spikeProbability float64) *Scaler {
	if spikeProbability < 0 {
		spikeProbability = 0
	}
	return &Scaler{
		rng:              orDefault(rng),
		spikeProbability: spikeProbability,
		spikeMetric:      MaxMemoryUsage,
	}
}

// Scale maps value into the metric's display band. Unknown metrics pass through.
func (s *Scaler) Scale(value float64, metric MetricType) Scaled {
	band, ok := bands[metric]
	if !ok {
		return Scaled{Display: value, Original: value}
	}
	factor := band.MinFactor + s.rng.Float64()*(band.MaxFactor-band.MinFactor)
	return Scaled{Display: band.Multiplier * GiB * factor, Original: value}
}

// Spike multiplies value by a factor in [1.2, 1.5].
func (s *Scaler) Spike(value float64) float64 {
	return value * (SpikeMinFactor + s.rng.Float64()*(SpikeMaxFactor-SpikeMinFactor))
}

// Sample scales value, first spiking it when metric is the spike metric and the draw hits.
func (s *Scaler) Sample(value float64, metric MetricType) (Scaled, bool) {
	spiked := false
	if metric == s.spikeMetric && s.spikeProbability > 0 && s.rng.Float64() < s.spikeProbability {
		value = s.Spike(value)
		spiked = true
	}
	return s.Scale(value, metric), spiked
}

// TooltipValue is the fixed magnitude the dashboard shows on hover for scaled metrics.
func TooltipValue(metric MetricType, value float64) float64 {
	switch metric {
	case GPUUtilization, CPUUtilization, MemoryUtilization:
		return GiB
	case MaxMemoryUsage:
		return MaxSafeInteger
	}
	return value
}
