// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package feed

import (
	"context"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeriesKey(t *testing.T) {
	tests := []struct {
		name string
		want MetricType
	}{
		{"GPU Utilization", GPUUtilization},
		{"CPU Utilization", CPUUtilization},
		{"Memory Utilization", MemoryUtilization},
		{"Max Memory Usage", MaxMemoryUsage},
		{"gpu", GPUUtilization},
		{"Network  Throughput", MetricType("network_throughput")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SeriesKey(tt.name))
		})
	}
}

func TestSeriesFromHistory(t *testing.T) {
	tests := []struct {
		name         string
		series       SeriesConfig
		wantBase     float64
		wantVariance float64
	}{
		{
			name:         "no history keeps config",
			series:       SeriesConfig{BaseValue: 650, Variance: 30},
			wantBase:     650,
			wantVariance: 30,
		},
		{
			name:         "last point becomes base",
			series:       SeriesConfig{Data: []HistoryPoint{{"Nov", 610}, {"Dec", 660}}},
			wantBase:     660,
			wantVariance: 33,
		},
		{
			name:         "zero last point falls back",
			series:       SeriesConfig{Data: []HistoryPoint{{"Dec", 0}}},
			wantBase:     500,
			wantVariance: 25,
		},
		{
			name:         "tiny base falls back variance",
			series:       SeriesConfig{Data: []HistoryPoint{{"Dec", 10}}},
			wantBase:     10,
			wantVariance: 25,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.series.FromHistory()
			assert.Equal(t, tt.wantBase, got.BaseValue)
			assert.Equal(t, tt.wantVariance, got.Variance)
		})
	}
}

func TestChartConfigNormalize(t *testing.T) {
	cfg := ChartConfig{}.Normalize()
	assert.Equal(t, "System Resource Utilization", cfg.Title)
	assert.Len(t, cfg.Series, 4)

	custom := ChartConfig{Title: "Pools", Series: []SeriesConfig{{Name: "GPU", Data: []HistoryPoint{{"Jan", 100}}}}}.Normalize()
	assert.Equal(t, "Pools", custom.Title)
	assert.Equal(t, "Bytes", custom.YAxisLabel)
	assert.Equal(t, 100.0, custom.Series[0].BaseValue)
}

func newTestChart(mode ChartMode) *Chart {
	return NewChart("test", DefaultOverviewChart(), mode, ChartOptions{
		Interval:         testInterval,
		MaxDataPoints:    60,
		SpikeProbability: DefaultSpikeProbability,
		Rand:             NewRandSource(11),
	})
}

func TestChartMountSeedsFullWindow(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 30, 45, 0, time.UTC)
	c := NewChart("seeded", DefaultOverviewChart(), ModeRaw, ChartOptions{
		Interval: time.Second,
		Rand:     NewRandSource(5),
		Clock:    func() time.Time { return now },
	})
	require.NoError(t, c.Mount(context.Background()))
	defer c.Unmount()

	points := c.Snapshot()
	require.Len(t, points, DefaultMaxDataPoints)
	assert.Equal(t, now.Add(-59*time.Second), points[0].Time)
	assert.Equal(t, now, points[59].Time)
	assert.Equal(t, "30:45", points[59].DisplayTime)
	for _, p := range points {
		assert.Len(t, p.Values, 4)
	}
}

func TestChartUnmountStopsUpdates(t *testing.T) {
	c := newTestChart(ModeRaw)
	require.NoError(t, c.Mount(context.Background()))
	require.Eventually(t, func() bool { return c.Ticks() >= 2 }, time.Second, 5*time.Millisecond)

	c.Unmount()
	before := c.Snapshot()
	ticks := c.Ticks()

	time.Sleep(5 * testInterval)

	after := c.Snapshot()
	assert.Equal(t, len(before), len(after))
	assert.Equal(t, ticks, c.Ticks())
	assert.Equal(t, before[len(before)-1].Time, after[len(after)-1].Time)
	assert.Equal(t, DriverStopped, c.State())
}

func TestChartRawSamplesWithinVariance(t *testing.T) {
	c := newTestChart(ModeRaw)
	require.NoError(t, c.Mount(context.Background()))
	c.Unmount()

	for _, s := range c.Config().Series {
		for _, p := range c.Snapshot() {
			v := p.Values[s.Key()]
			assert.LessOrEqual(t, math.Abs(v.Value-s.BaseValue), s.Variance)
			assert.Equal(t, v.Value, v.Original)
		}
	}
}

func TestChartScaledLiveSamplesWithinBand(t *testing.T) {
	c := newTestChart(ModeScaled)
	for i := 0; i < 200; i++ {
		p := c.point(time.Now())
		for key, s := range p.Values {
			band, ok := BandFor(key)
			require.True(t, ok)
			lo, hi := band.Bounds()
			assert.GreaterOrEqual(t, s.Display, lo)
			assert.LessOrEqual(t, s.Display, hi)
			if key != MaxMemoryUsage {
				assert.False(t, s.Spiked)
			}
		}
	}
}

func TestChartOnUpdate(t *testing.T) {
	c := newTestChart(ModeScaled)
	require.NoError(t, c.Mount(context.Background()))
	defer c.Unmount()

	updates := make(chan []Point, 8)
	c.OnUpdate(func(points []Point) {
		select {
		case updates <- points:
		default:
		}
	})

	select {
	case points := <-updates:
		assert.Len(t, points, 60)
	case <-time.After(time.Second):
		t.Fatal("no update received")
	}
}

func TestChartCannotRemountAfterUnmount(t *testing.T) {
	c := newTestChart(ModeRaw)
	require.NoError(t, c.Mount(context.Background()))
	c.Unmount()
	assert.Error(t, c.Mount(context.Background()))
}

func TestChartsDoNotShareWindows(t *testing.T) {
	a := newTestChart(ModeRaw)
	b := newTestChart(ModeRaw)
	require.NoError(t, a.Mount(context.Background()))
	a.Unmount()

	assert.Equal(t, 60, a.Len())
	assert.Equal(t, 0, b.Len())
}

func TestChartConcurrentMountSeedsOnce(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := NewChart("shared", DefaultOverviewChart(), ModeRaw, ChartOptions{
		Interval:      time.Hour,
		MaxDataPoints: 60,
		Rand:          NewRandSource(3),
		Clock:         func() time.Time { return now },
	})
	defer c.Unmount()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, c.Mount(context.Background()))
		}()
	}
	wg.Wait()

	points := c.Snapshot()
	require.Len(t, points, 60)
	for i, p := range points {
		assert.Equal(t, now.Add(-time.Duration(59-i)*time.Hour), p.Time, "point %d", i)
	}
	assert.Equal(t, DriverRunning, c.State())
	assert.Zero(t, c.Ticks())
}
