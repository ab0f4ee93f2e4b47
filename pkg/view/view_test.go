// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package view

import (
	"strings"
	"testing"
	"time"

	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/feed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePoint(ts time.Time) feed.Point {
	return feed.Point{
		Time:        ts,
		DisplayTime: "00:05",
		Values: map[feed.MetricType]feed.Sample{
			feed.GPUUtilization: {Timestamp: ts, Value: 3e9, Display: 3e9, Original: 640},
			feed.MaxMemoryUsage: {Timestamp: ts, Value: 4e9, Display: 4e9, Original: 260, Spiked: true},
		},
	}
}

func TestAreaChartScaled(t *testing.T) {
	ts := time.Date(2026, 1, 1, 0, 0, 5, 0, time.UTC)
	v := AreaChart(feed.DefaultOverviewChart(), feed.ModeScaled, []feed.Point{samplePoint(ts)})

	assert.Equal(t, "System Resource Utilization", v.Title)
	assert.Equal(t, "scaled", v.Mode)
	require.Len(t, v.Series, 4)
	assert.Equal(t, feed.GPUUtilization, v.Series[0].Key)
	assert.Equal(t, "rgba(56, 189, 248, 1)", v.Series[0].Color)

	require.Len(t, v.Points, 1)
	gpu := v.Points[0].Values[feed.GPUUtilization]
	assert.Equal(t, "1 GB", gpu.Tooltip)
	assert.Equal(t, 640.0, gpu.Original)
	maxMem := v.Points[0].Values[feed.MaxMemoryUsage]
	assert.Equal(t, "8 PB", maxMem.Tooltip)
	assert.True(t, maxMem.Spiked)
}

func TestAreaChartRawUsesOriginalForTooltip(t *testing.T) {
	ts := time.Now()
	p := feed.Point{Time: ts, Values: map[feed.MetricType]feed.Sample{
		feed.CPUUtilization: {Value: 2048, Display: 2048, Original: 2048},
	}}
	v := AreaChart(feed.ChartConfig{}, feed.ModeRaw, []feed.Point{p})
	assert.Equal(t, "2 KB", v.Points[0].Values[feed.CPUUtilization].Tooltip)
}

func TestStatCardView(t *testing.T) {
	tests := []struct {
		name          string
		card          feed.StatCard
		wantValue     string
		wantTrend     string
		wantDirection string
		wantIcon      string
	}{
		{
			name:          "units suffix",
			card:          feed.StatCard{Title: "Total Silicon Demand", Value: 1720, Trend: "+12.3", Icon: "Cpu", Suffix: " units"},
			wantValue:     "1,720 units",
			wantTrend:     "+12.3%",
			wantDirection: TrendUp,
			wantIcon:      "Cpu",
		},
		{
			name:          "percent with decimal",
			card:          feed.StatCard{Title: "Network Utilization", Value: 86.5, Trend: "-0.4", Icon: "Network", Suffix: "%"},
			wantValue:     "86.5%",
			wantTrend:     "-0.4%",
			wantDirection: TrendDown,
			wantIcon:      "Network",
		},
		{
			name:          "unknown icon falls back",
			card:          feed.StatCard{Title: "Queue", Value: 3, Trend: "0.0", Icon: "Rocket", Prefix: "~"},
			wantValue:     "~3",
			wantTrend:     "0.0%",
			wantDirection: TrendUp,
			wantIcon:      "CircleDashed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := StatCard(tt.card)
			assert.Equal(t, tt.wantValue, v.Value)
			assert.Equal(t, tt.wantTrend, v.Trend)
			assert.Equal(t, tt.wantDirection, v.Direction)
			assert.Equal(t, tt.wantIcon, v.Icon)
		})
	}
}

func TestHeatGrid(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	values := make([]int, 364)
	values[363] = 90
	values[0] = 30

	g := HeatGrid(values, 0, now)
	assert.Equal(t, 52, g.Columns)
	assert.Equal(t, 7, g.Rows)
	require.Len(t, g.Cells, 364)

	last := g.Cells[363]
	assert.Equal(t, 5, last.Level)
	assert.Equal(t, "Sun, Oct 18, 2026", last.Date)
	assert.Equal(t, "Sun, Oct 18, 2026: 90% utilized", last.Tooltip)
	assert.Equal(t, 2, g.Cells[0].Level)
	assert.Equal(t, 0, g.Cells[1].Level)
}

func TestRenderSparkline(t *testing.T) {
	assert.Equal(t, "", RenderSparkline(nil, 10))
	assert.Equal(t, "▁▁▁", RenderSparkline([]float64{5, 5, 5}, 10))
	assert.Equal(t, "▁█", RenderSparkline([]float64{0, 10}, 10))
	assert.Equal(t, "▁█", RenderSparkline([]float64{100, 0, 10}, 2))
}

func TestThemeRenderers(t *testing.T) {
	theme := DefaultTheme()

	card := theme.RenderStatCard(StatCard(feed.DefaultStatCards()[0]), 30)
	assert.Contains(t, card, "Total Silicon Demand")
	assert.Contains(t, card, "1,720 units")

	grid := theme.RenderHeatGrid(HeatGrid(make([]int, 364), 52, time.Now()))
	assert.Equal(t, 8, len(strings.Split(grid, "\n")))
	assert.Equal(t, "", theme.RenderHeatGrid(HeatGridView{}))

	chart := theme.RenderChart(AreaChart(feed.DefaultOverviewChart(), feed.ModeScaled, []feed.Point{samplePoint(time.Now())}), 20)
	assert.Contains(t, chart, "GPU Utilization")
	assert.Contains(t, chart, "1 GB")

	wf := theme.RenderWorkflows("Recent Workflows", append(feed.DefaultRecentWorkflows(), feed.Workflow{ID: "WF-9", ToRemove: true}))
	assert.Contains(t, wf, "WF-7829")
	assert.NotContains(t, wf, "WF-9 ")
}
