// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package api

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/config"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/errors"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/feed"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/logger/log"
)

const (
	ChartOverview  = "overview"
	ChartResources = "resources"
)

type chartSpec struct {
	mode feed.ChartMode
	cfg  func() feed.ChartConfig
}

var chartSpecs = map[string]chartSpec{
	ChartOverview:  {mode: feed.ModeRaw, cfg: feed.DefaultOverviewChart},
	ChartResources: {mode: feed.ModeScaled, cfg: resourcesChart},
}

func resourcesChart() feed.ChartConfig {
	cfg := feed.DefaultOverviewChart()
	cfg.Title = "Compute Resource Usage"
	cfg.Subtitle = "Live usage across all pools"
	return cfg
}

// ChartNames lists the charts the feed can serve.
func ChartNames() []string {
	names := make([]string, 0, len(chartSpecs))
	for name := range chartSpecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LiveFeed owns the shared, server-lifetime feed components. Streams get their
// own chart instances from NewChart.
type LiveFeed struct {
	cfg    config.FeedConfig
	rng    feed.RandSource
	charts map[string]*feed.Chart
	stats  *feed.StatBoard
	flows  *feed.WorkflowSimulator

	mu      sync.RWMutex
	grid    []int
	mounted bool
}

type LiveFeedOptions struct {
	Rand feed.RandSource
	// StatInterval overrides per-card stat intervals, mainly for tests.
	StatInterval     func(title string) time.Duration
	WorkflowInterval time.Duration
}

func NewLiveFeed(cfg config.FeedConfig, opts LiveFeedOptions) *LiveFeed {
	rng := opts.Rand
	if rng == nil {
		rng = feed.DefaultRand()
	}
	f := &LiveFeed{
		cfg:    cfg,
		rng:    rng,
		charts: make(map[string]*feed.Chart, len(chartSpecs)),
		grid:   feed.GenerateUtilization(rng, feed.DefaultGridDays),
	}
	for name := range chartSpecs {
		f.charts[name], _ = f.NewChart(name)
	}
	f.stats = feed.NewStatBoard(feed.DefaultStatCards(), feed.StatBoardOptions{
		Rand:     rng,
		Jitter:   cfg.GetStatJitter(),
		Interval: opts.StatInterval,
	})
	f.flows = feed.NewWorkflowSimulator(feed.DefaultRecentWorkflows(), feed.WorkflowOptions{
		Rand:     rng,
		Interval: opts.WorkflowInterval,
	})
	return f
}

// NewChart builds an unmounted chart of the named kind.
func (f *LiveFeed) NewChart(name string) (*feed.Chart, bool) {
	spec, ok := chartSpecs[name]
	if !ok {
		return nil, false
	}
	return feed.NewChart(name, spec.cfg(), spec.mode, feed.ChartOptions{
		Interval:         f.cfg.GetTickInterval(),
		MaxDataPoints:    f.cfg.GetMaxDataPoints(),
		SpikeProbability: f.cfg.GetSpikeProbability(),
		Rand:             f.rng,
	}), true
}

func (f *LiveFeed) Mount(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mounted {
		return nil
	}
	for _, name := range ChartNames() {
		if err := f.charts[name].Mount(ctx); err != nil {
			f.unmountLocked()
			return errors.WrapError(err, "failed to mount chart "+name, errors.CodeInitializeError)
		}
	}
	if err := f.stats.Mount(ctx); err != nil {
		f.unmountLocked()
		return errors.WrapError(err, "failed to mount stat board", errors.CodeInitializeError)
	}
	if err := f.flows.Mount(ctx); err != nil {
		f.unmountLocked()
		return errors.WrapError(err, "failed to mount workflow simulator", errors.CodeInitializeError)
	}
	f.mounted = true
	log.Infof("Live feed mounted: charts=%v tick=%v window=%d", ChartNames(), f.cfg.GetTickInterval(), f.cfg.GetMaxDataPoints())
	return nil
}

// Unmount stops every component. Components are single-use, so a later
// Mount fails.
func (f *LiveFeed) Unmount() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unmountLocked()
}

func (f *LiveFeed) unmountLocked() {
	for _, c := range f.charts {
		c.Unmount()
	}
	f.stats.Unmount()
	f.flows.Unmount()
	f.mounted = false
}

func (f *LiveFeed) Mounted() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.mounted
}

func (f *LiveFeed) Chart(name string) (*feed.Chart, bool) {
	c, ok := f.charts[name]
	return c, ok
}

func (f *LiveFeed) Stats() []feed.StatCard {
	return f.stats.Cards()
}

func (f *LiveFeed) WorkflowTitle() string {
	return f.flows.Title()
}

func (f *LiveFeed) Workflows() []feed.Workflow {
	return f.flows.Workflows()
}

func (f *LiveFeed) Grid() []int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]int, len(f.grid))
	copy(out, f.grid)
	return out
}

// SetGrid replaces the simulated grid with backend values.
func (f *LiveFeed) SetGrid(values []int) {
	if len(values) == 0 {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.grid = append([]int(nil), values...)
}
