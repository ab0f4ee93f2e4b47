// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package api

import (
	"time"

	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/clientsets"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/feed"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/view"
	"github.com/gin-gonic/gin"
)

type BackendOverview struct {
	*clientsets.DashboardOverview
	FetchedAt time.Time `json:"fetchedAt"`
}

type OverviewResponse struct {
	Stats     []view.StatCardView `json:"stats"`
	Chart     view.ChartView      `json:"chart"`
	Grid      view.HeatGridView   `json:"grid"`
	Workflows WorkflowsView       `json:"workflows"`
	// Backend is the last cached read of the compute API, absent until the first refresh succeeds.
	Backend *BackendOverview `json:"backend,omitempty"`
}

func (h *Handler) getOverview(c *gin.Context) {
	resp := OverviewResponse{
		Stats:     view.StatCards(h.feed.Stats()),
		Grid:      view.HeatGrid(h.feed.Grid(), feed.DefaultGridColumns, h.now()),
		Workflows: h.workflowsView(),
	}
	if chart, found := h.feed.Chart(ChartOverview); found {
		resp.Chart = view.AreaChart(chart.Config(), chart.Mode(), chart.Snapshot())
	}
	if overview, at, found := h.snapshot.Overview(); found {
		resp.Backend = &BackendOverview{DashboardOverview: overview, FetchedAt: at}
	}
	ok(c, resp)
}
