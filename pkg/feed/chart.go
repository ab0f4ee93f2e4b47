// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package feed

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

const (
	historyFallbackBase     = 500
	historyFallbackVariance = 25
)

// HistoryPoint is one entry of a series' historical data, e.g. a monthly average.
type HistoryPoint struct {
	Label string  `json:"month" yaml:"month"`
	Value float64 `json:"value" yaml:"value"`
}

type SeriesConfig struct {
	Name      string         `json:"name" yaml:"name"`
	Color     string         `json:"color" yaml:"color"`
	BaseValue float64        `json:"baseValue" yaml:"baseValue"`
	Variance  float64        `json:"variance" yaml:"variance"`
	Data      []HistoryPoint `json:"data,omitempty" yaml:"data,omitempty"`
}

// Key is the metric key the series' samples are stored under.
func (s SeriesConfig) Key() MetricType {
	return SeriesKey(s.Name)
}

// FromHistory rebases a series on its latest historical value.
func (s SeriesConfig) FromHistory() SeriesConfig {
	if len(s.Data) == 0 {
		return s
	}
	base := s.Data[len(s.Data)-1].Value
	if base == 0 {
		base = historyFallbackBase
	}
	variance := math.Floor(base * 0.05)
	if variance == 0 {
		variance = historyFallbackVariance
	}
	s.BaseValue = base
	s.Variance = variance
	return s
}

type ChartConfig struct {
	Title      string         `json:"title" yaml:"title"`
	Subtitle   string         `json:"subtitle" yaml:"subtitle"`
	YAxisLabel string         `json:"yAxisLabel" yaml:"yAxisLabel"`
	Series     []SeriesConfig `json:"series" yaml:"series"`
}

func DefaultOverviewChart() ChartConfig {
	return ChartConfig{
		Title:      "System Resource Utilization",
		Subtitle:   "Real-time resource metrics",
		YAxisLabel: "Bytes",
		Series: []SeriesConfig{
			{Name: "GPU Utilization", Color: "rgba(56, 189, 248, 1)", BaseValue: 650, Variance: 30},
			{Name: "CPU Utilization", Color: "rgba(62, 207, 142, 1)", BaseValue: 450, Variance: 25},
			{Name: "Memory Utilization", Color: "rgba(255, 220, 50, 1)", BaseValue: 300, Variance: 20},
			{Name: "Max Memory Usage", Color: "rgba(255, 65, 105, 1)", BaseValue: 200, Variance: 15},
		},
	}
}

// Normalize fills in defaults and rebases series that carry history.
func (c ChartConfig) Normalize() ChartConfig {
	def := DefaultOverviewChart()
	if c.Title == "" {
		c.Title = def.Title
	}
	if c.YAxisLabel == "" {
		c.YAxisLabel = def.YAxisLabel
	}
	if len(c.Series) == 0 {
		c.Series = def.Series
		return c
	}
	series := make([]SeriesConfig, len(c.Series))
	for i, s := range c.Series {
		series[i] = s.FromHistory()
	}
	c.Series = series
	return c
}

var seriesAliases = map[string]MetricType{
	"gpu":        GPUUtilization,
	"cpu":        CPUUtilization,
	"memory":     MemoryUtilization,
	"max memory": MaxMemoryUsage,
}

// SeriesKey maps a series display name to its metric key.
func SeriesKey(name string) MetricType {
	lower := strings.ToLower(strings.TrimSpace(name))
	if key, ok := seriesAliases[lower]; ok {
		return key
	}
	return MetricType(strings.Join(strings.Fields(lower), "_"))
}

type ChartMode int

const (
	// ModeRaw plots the fluctuated samples as they are.
	ModeRaw ChartMode = iota
	// ModeScaled plots display-scaled samples and keeps the original for tooltips.
	ModeScaled
)

func (m ChartMode) String() string {
	if m == ModeScaled {
		return "scaled"
	}
	return "raw"
}

type Sample struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
	Display   float64   `json:"display"`
	Original  float64   `json:"original"`
	Spiked    bool      `json:"spiked,omitempty"`
}

type Point struct {
	Time        time.Time             `json:"time"`
	DisplayTime string                `json:"displayTime"`
	Values      map[MetricType]Sample `json:"values"`
}

func displayTime(t time.Time) string {
	return fmt.Sprintf("%02d:%02d", t.Minute(), t.Second())
}

type ChartOptions struct {
	Interval         time.Duration
	MaxDataPoints    int
	SpikeProbability float64
	Rand             RandSource
	Clock            func() time.Time
}

// Chart owns one rolling window of points and the driver appending to it.
type Chart struct {
	name     string
	cfg      ChartConfig
	mode     ChartMode
	interval time.Duration
	rng      RandSource
	scaler   *Scaler
	clock    func() time.Time
	window   *Window[Point]
	driver   *Driver
	ticks    atomic.Int64

	// mountMu makes the idle check and the seed one step.
	mountMu sync.Mutex
}

func NewChart(name string, cfg ChartConfig, mode ChartMode, opts ChartOptions) *Chart {
	if opts.Interval <= 0 {
		opts.Interval = DefaultTickInterval
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	rng := orDefault(opts.Rand)
	c := &Chart{
		name:     name,
		cfg:      cfg.Normalize(),
		mode:     mode,
		interval: opts.Interval,
		rng:      rng,
		scaler:   NewScaler(rng, opts.SpikeProbability),
		clock:    opts.Clock,
		window:   NewWindow[Point](opts.MaxDataPoints),
	}
	c.driver = NewDriver("chart:"+name, opts.Interval, c.tick)
	return c
}

func (c *Chart) Name() string {
	return c.name
}

func (c *Chart) Config() ChartConfig {
	return c.cfg
}

func (c *Chart) Mode() ChartMode {
	return c.mode
}

func (c *Chart) State() DriverState {
	return c.driver.State()
}

// Ticks counts live points appended since Mount, excluding the seeded history.
func (c *Chart) Ticks() int64 {
	return c.ticks.Load()
}

// OnUpdate registers a hook receiving the window after every append.
func (c *Chart) OnUpdate(fn func([]Point)) {
	c.window.OnPush(fn)
}

// Mount seeds a full window of back-dated points and starts live updates.
func (c *Chart) Mount(ctx context.Context) error {
	c.mountMu.Lock()
	defer c.mountMu.Unlock()
	if c.driver.State() == DriverIdle {
		c.seed()
	}
	return c.driver.Start(ctx)
}

// Unmount stops live updates. No point is appended after it returns.
func (c *Chart) Unmount() {
	c.driver.Stop()
}

func (c *Chart) Snapshot() []Point {
	return c.window.Current()
}

func (c *Chart) Len() int {
	return c.window.Len()
}

func (c *Chart) seed() {
	now := c.clock()
	for i := c.window.Cap() - 1; i >= 0; i-- {
		p := c.point(now.Add(-time.Duration(i) * c.interval))
		if c.mode == ModeScaled {
			trend := 1 + 0.2*math.Sin(float64(i)/10*math.Pi)
			for key, s := range p.Values {
				s.Display *= trend
				s.Value = s.Display
				p.Values[key] = s
			}
		}
		c.window.Push(p)
	}
}

func (c *Chart) tick(_ context.Context, now time.Time) {
	c.window.Push(c.point(now))
	c.ticks.Add(1)
}

func (c *Chart) point(ts time.Time) Point {
	p := Point{
		Time:        ts,
		DisplayTime: displayTime(ts),
		Values:      make(map[MetricType]Sample, len(c.cfg.Series)),
	}
	for _, s := range c.cfg.Series {
		key := s.Key()
		if c.mode == ModeRaw {
			v := Fluctuate(c.rng, s.BaseValue, s.Variance)
			p.Values[key] = Sample{Timestamp: ts, Value: v, Display: v, Original: v}
			continue
		}
		v := Variation(c.rng, s.BaseValue, VariationPercent(s.BaseValue, s.Variance))
		scaled, spiked := c.scaler.Sample(v, key)
		p.Values[key] = Sample{
			Timestamp: ts,
			Value:     scaled.Display,
			Display:   scaled.Display,
			Original:  scaled.Original,
			Spiked:    spiked,
		}
	}
	return p
}
