// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package feed

import (
	"context"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"
)

const DefaultStatJitter = time.Second

type StatCard struct {
	Title  string  `json:"title" yaml:"title"`
	Value  float64 `json:"value" yaml:"value"`
	Trend  string  `json:"trend" yaml:"trend"`
	Period string  `json:"period" yaml:"period"`
	Icon   string  `json:"icon" yaml:"icon"`
	Prefix string  `json:"prefix" yaml:"prefix"`
	Suffix string  `json:"suffix" yaml:"suffix"`
	// Base is the value fluctuations are drawn around.
	Base    float64 `json:"base" yaml:"-"`
	Updates int     `json:"updates" yaml:"-"`
}

func DefaultStatCards() []StatCard {
	return []StatCard{
		{Title: "Total Silicon Demand", Value: 1720, Trend: "+12.3", Period: "from last week", Icon: "Cpu", Suffix: " units"},
		{Title: "Active Nodes", Value: 148, Trend: "+5.2", Period: "from last week", Icon: "Server"},
		{Title: "Pending Workflows", Value: 17, Trend: "-8.4", Period: "from last week", Icon: "Activity"},
		{Title: "Network Utilization", Value: 86.5, Trend: "+3.7", Period: "from last hour", Icon: "Network", Suffix: "%"},
	}
}

type statProfile struct {
	match    string
	interval time.Duration
	rate     float64
}

// Order matters: the first matching title substring wins.
var statProfiles = []statProfile{
	{match: "Demand", interval: 5 * time.Second, rate: 3},
	{match: "Nodes", interval: 7 * time.Second, rate: 2},
	{match: "Workflows", interval: 3 * time.Second, rate: 8},
	{match: "Utilization", interval: 2 * time.Second, rate: 1.5},
}

var defaultStatProfile = statProfile{interval: 4 * time.Second, rate: 5}

func profileFor(title string) statProfile {
	for _, p := range statProfiles {
		if strings.Contains(title, p.match) {
			return p
		}
	}
	return defaultStatProfile
}

func StatInterval(title string) time.Duration {
	return profileFor(title).interval
}

func FluctuationRate(title string) float64 {
	return profileFor(title).rate
}

// StatChange draws a percentage p in [-rate/2, rate/2) and applies it to base.
func StatChange(rng RandSource, base, rate float64) (float64, string) {
	p := orDefault(rng).Float64()*rate - rate/2
	value := math.Floor(base * (1 + p/100))
	trend := strconv.FormatFloat(p, 'f', 1, 64)
	if p > 0 && trend != "0.0" {
		trend = "+" + trend
	}
	return value, trend
}

type StatBoardOptions struct {
	Rand   RandSource
	Jitter time.Duration
	// Interval overrides the per-title base interval.
	Interval func(title string) time.Duration
}

// StatBoard refreshes each card on its own driver.
type StatBoard struct {
	mu      sync.RWMutex
	cards   []StatCard
	drivers []*Driver
	rng     RandSource
	opts    StatBoardOptions
}

func NewStatBoard(cards []StatCard, opts StatBoardOptions) *StatBoard {
	if opts.Interval == nil {
		opts.Interval = StatInterval
	}
	if opts.Jitter < 0 {
		opts.Jitter = 0
	}
	cs := make([]StatCard, len(cards))
	copy(cs, cards)
	for i := range cs {
		if cs[i].Base == 0 {
			cs[i].Base = cs[i].Value
		}
	}
	return &StatBoard{
		cards: cs,
		rng:   orDefault(opts.Rand),
		opts:  opts,
	}
}

func (b *StatBoard) Mount(ctx context.Context) error {
	b.mu.Lock()
	if b.drivers == nil {
		b.drivers = make([]*Driver, len(b.cards))
		for i, card := range b.cards {
			idx := i
			b.drivers[i] = NewDriver("stat:"+card.Title, b.opts.Interval(card.Title),
				func(context.Context, time.Time) { b.update(idx) },
				WithJitter(b.opts.Jitter), WithDriverRand(b.rng))
		}
	}
	drivers := b.drivers
	b.mu.Unlock()

	for _, d := range drivers {
		if err := d.Start(ctx); err != nil {
			b.Unmount()
			return err
		}
	}
	return nil
}

func (b *StatBoard) Unmount() {
	b.mu.RLock()
	drivers := b.drivers
	b.mu.RUnlock()
	for _, d := range drivers {
		d.Stop()
	}
}

func (b *StatBoard) Cards() []StatCard {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]StatCard, len(b.cards))
	copy(out, b.cards)
	return out
}

func (b *StatBoard) update(i int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	card := &b.cards[i]
	card.Value, card.Trend = StatChange(b.rng, card.Base, FluctuationRate(card.Title))
	card.Updates++
}
