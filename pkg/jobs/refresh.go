// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package jobs

import (
	"context"
	"time"

	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/clientsets"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/config"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/logger/log"
)

// OverviewJob caches the backend dashboard overview.
type OverviewJob struct {
	schedule string
}

func (j *OverviewJob) Run(ctx context.Context, client *clientsets.Client, snapshot *Snapshot) (*ExecutionStats, error) {
	stats := NewExecutionStats()
	queryStart := time.Now()
	overview, err := client.Dashboard().Overview(ctx)
	stats.QueryDuration = time.Since(queryStart).Seconds()
	if err != nil {
		log.Warnf("Failed to refresh dashboard overview, keeping previous snapshot: %v", err)
		return stats, err
	}
	snapshot.SetOverview(overview, time.Now())

	stats.RecordsProcessed = 1
	stats.ItemsUpdated = 1
	stats.AddCustomMetric("recent_workflows", len(overview.RecentWorkflows))
	stats.AddMessage("Dashboard overview refreshed")
	return stats, nil
}

func (j *OverviewJob) Schedule() string {
	if j.schedule == "" {
		return config.DefaultRefreshSchedule
	}
	return j.schedule
}

// PoolsJob caches the compute pool list.
type PoolsJob struct {
	schedule string
}

func (j *PoolsJob) Run(ctx context.Context, client *clientsets.Client, snapshot *Snapshot) (*ExecutionStats, error) {
	stats := NewExecutionStats()
	queryStart := time.Now()
	pools, err := client.Pools().List(ctx)
	stats.QueryDuration = time.Since(queryStart).Seconds()
	if err != nil {
		log.Warnf("Failed to refresh compute pools, keeping previous snapshot: %v", err)
		return stats, err
	}
	snapshot.SetPools(pools, time.Now())

	stats.RecordsProcessed = int64(len(pools))
	stats.ItemsUpdated = 1
	stats.AddMessage("Compute pools refreshed")
	return stats, nil
}

func (j *PoolsJob) Schedule() string {
	if j.schedule == "" {
		return config.DefaultRefreshSchedule
	}
	return j.schedule
}
