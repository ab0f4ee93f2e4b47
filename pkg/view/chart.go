// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package view

import (
	"time"

	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/feed"
)

type SeriesView struct {
	Key   feed.MetricType `json:"key"`
	Name  string          `json:"name"`
	Color string          `json:"color"`
}

type ValueView struct {
	Display  float64 `json:"display"`
	Original float64 `json:"original"`
	Tooltip  string  `json:"tooltip"`
	Spiked   bool    `json:"spiked,omitempty"`
}

type PointView struct {
	Time        time.Time                     `json:"time"`
	DisplayTime string                        `json:"displayTime"`
	Values      map[feed.MetricType]ValueView `json:"values"`
}

type ChartView struct {
	Title      string       `json:"title"`
	Subtitle   string       `json:"subtitle"`
	YAxisLabel string       `json:"yAxisLabel"`
	Mode       string       `json:"mode"`
	Series     []SeriesView `json:"series"`
	Points     []PointView  `json:"points"`
}

// AreaChart shapes a chart window for rendering. Series without a sample at a point are omitted there.
func AreaChart(cfg feed.ChartConfig, mode feed.ChartMode, points []feed.Point) ChartView {
	cfg = cfg.Normalize()
	v := ChartView{
		Title:      cfg.Title,
		Subtitle:   cfg.Subtitle,
		YAxisLabel: cfg.YAxisLabel,
		Mode:       mode.String(),
		Series:     make([]SeriesView, 0, len(cfg.Series)),
		Points:     make([]PointView, 0, len(points)),
	}
	for _, s := range cfg.Series {
		v.Series = append(v.Series, SeriesView{Key: s.Key(), Name: s.Name, Color: s.Color})
	}
	for _, p := range points {
		v.Points = append(v.Points, Point(p, mode))
	}
	return v
}

func Point(p feed.Point, mode feed.ChartMode) PointView {
	pv := PointView{
		Time:        p.Time,
		DisplayTime: p.DisplayTime,
		Values:      make(map[feed.MetricType]ValueView, len(p.Values)),
	}
	for key, s := range p.Values {
		tooltip := s.Original
		if mode == feed.ModeScaled {
			tooltip = feed.TooltipValue(key, s.Original)
		}
		pv.Values[key] = ValueView{
			Display:  s.Display,
			Original: s.Original,
			Tooltip:  FormatBytes(tooltip),
			Spiked:   s.Spiked,
		}
	}
	return pv
}
