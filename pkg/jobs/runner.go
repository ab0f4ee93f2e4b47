// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package jobs

import (
	"context"
	"time"

	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/clientsets"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/errors"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/logger/log"
	"github.com/robfig/cron/v3"
)

type Runner struct {
	cron     *cron.Cron
	jobs     []Job
	client   *clientsets.Client
	snapshot *Snapshot
}

func NewRunner(client *clientsets.Client, snapshot *Snapshot, jobs ...Job) *Runner {
	return &Runner{
		cron:     cron.New(),
		jobs:     jobs,
		client:   client,
		snapshot: snapshot,
	}
}

func (r *Runner) Snapshot() *Snapshot {
	return r.snapshot
}

// Start schedules every job and runs each once immediately so the snapshot is
// warm before the first tick.
func (r *Runner) Start(ctx context.Context) error {
	for _, job := range r.jobs {
		job := job
		if _, err := r.cron.AddFunc(job.Schedule(), func() { r.run(ctx, job) }); err != nil {
			return errors.WrapError(err, "invalid schedule for job "+getJobName(job), errors.CodeInitializeError)
		}
	}
	go r.RunOnce(ctx)
	r.cron.Start()
	return nil
}

// RunOnce executes all jobs sequentially and returns the first error.
func (r *Runner) RunOnce(ctx context.Context) error {
	var first error
	for _, job := range r.jobs {
		if err := r.run(ctx, job); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Stop halts scheduling and waits for running jobs.
func (r *Runner) Stop() {
	<-r.cron.Stop().Done()
}

func (r *Runner) run(ctx context.Context, job Job) error {
	name := getJobName(job)
	start := time.Now()
	stats, err := job.Run(ctx, r.client, r.snapshot)
	jobDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	if err != nil {
		jobRuns.WithLabelValues(name, "error").Inc()
		log.Errorf("Job %s error %v", name, err)
		return err
	}
	jobRuns.WithLabelValues(name, "success").Inc()
	if stats != nil {
		log.Debugf("Job %s done: %d records %v", name, stats.RecordsProcessed, stats.Messages)
	}
	return nil
}
