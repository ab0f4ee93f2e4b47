// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package feed

import "github.com/prometheus/client_golang/prometheus"

var (
	feedTicksTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_feed_ticks_total",
		Help: "Ticks executed by feed drivers",
	}, []string{"component"})
	feedRunningDrivers = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "dashboard_feed_running_drivers",
		Help: "Feed drivers currently scheduled",
	})
)

func init() {
	prometheus.MustRegister(feedTicksTotal)
	prometheus.MustRegister(feedRunningDrivers)
}
