// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package jobs

import (
	"context"

	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/clientsets"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/config"
)

type Job interface {
	Run(ctx context.Context, client *clientsets.Client, snapshot *Snapshot) (*ExecutionStats, error)
	Schedule() string
}

// DefaultJobs returns the refresh jobs enabled by cfg.
func DefaultJobs(cfg config.JobsConfig) []Job {
	if !cfg.IsEnabled() {
		return []Job{}
	}
	return []Job{
		&OverviewJob{schedule: cfg.GetRefreshSchedule()},
		&PoolsJob{schedule: cfg.GetRefreshSchedule()},
	}
}
