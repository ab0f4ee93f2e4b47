// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package feed

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/errors"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/logger/log"
	"github.com/google/uuid"
)

const (
	DefaultWorkflowInterval = 3 * time.Second
	MaxActiveWorkflows      = 5
	FallbackDuration        = "1m 0s"

	firstGeneratedID = 7834
	newWorkflowProb  = 0.15
	statusChangeProb = 0.3
	completeProb     = 0.8
)

type WorkflowStatus string

const (
	WorkflowRunning   WorkflowStatus = "Running"
	WorkflowCompleted WorkflowStatus = "Completed"
	WorkflowFailed    WorkflowStatus = "Failed"
)

func (s WorkflowStatus) Finished() bool {
	return s == WorkflowCompleted || s == WorkflowFailed
}

var (
	siliconTypes  = []string{"GPU A100", "GPU H100", "TPU v4", "CPU EPYC"}
	workflowTypes = []string{"Training Pipeline", "Inference Job", "Data Processing", "Model Evaluation", "Batch Prediction"}
	// Completed is drawn three times as often as Running.
	newStatuses = []WorkflowStatus{WorkflowCompleted, WorkflowRunning, WorkflowCompleted, WorkflowCompleted}
)

type Workflow struct {
	Key             string         `json:"key"`
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Status          WorkflowStatus `json:"status"`
	SiliconType     string         `json:"siliconType"`
	Duration        string         `json:"duration"`
	AvatarFallback  string         `json:"avatarFallback"`
	IsNew           bool           `json:"isNew"`
	StatusChanged   bool           `json:"statusChanged"`
	DurationChanged bool           `json:"durationChanged"`
	ToRemove        bool           `json:"toRemove"`
}

func DefaultRecentWorkflows() []Workflow {
	return []Workflow{
		{ID: "WF-7829", Name: "Training Pipeline", Status: WorkflowCompleted, SiliconType: "GPU A100", Duration: "45m 12s", AvatarFallback: "TP"},
		{ID: "WF-7830", Name: "Inference Job", Status: WorkflowCompleted, SiliconType: "GPU H100", Duration: "12m 45s", AvatarFallback: "IJ"},
		{ID: "WF-7831", Name: "Data Processing", Status: WorkflowCompleted, SiliconType: "TPU v4", Duration: "32m 18s", AvatarFallback: "DP"},
		{ID: "WF-7832", Name: "Model Evaluation", Status: WorkflowCompleted, SiliconType: "GPU A100", Duration: "28m 33s", AvatarFallback: "ME"},
		{ID: "WF-7833", Name: "Batch Prediction", Status: WorkflowCompleted, SiliconType: "CPU EPYC", Duration: "15m 07s", AvatarFallback: "BP"},
	}
}

// ParseDuration reads a "12m 5s" duration.
func ParseDuration(s string) (int, int, error) {
	minPart, secPart, ok := strings.Cut(strings.TrimSpace(s), "m")
	if !ok {
		return 0, 0, errors.NewError().WithCode(errors.InvalidArgument).WithMessagef("malformed duration %q", s)
	}
	mins, err := strconv.Atoi(strings.TrimSpace(minPart))
	if err != nil {
		return 0, 0, errors.WrapError(err, fmt.Sprintf("malformed duration %q", s), errors.InvalidArgument)
	}
	secPart = strings.TrimSuffix(strings.TrimSpace(secPart), "s")
	secs, err := strconv.Atoi(secPart)
	if err != nil {
		return 0, 0, errors.WrapError(err, fmt.Sprintf("malformed duration %q", s), errors.InvalidArgument)
	}
	return mins, secs, nil
}

func FormatDuration(mins, secs int) string {
	return fmt.Sprintf("%dm %ds", mins, secs)
}

// AdvanceDuration adds seconds to d, resetting malformed input to FallbackDuration.
func AdvanceDuration(d string, seconds int) string {
	mins, secs, err := ParseDuration(d)
	if err != nil {
		log.Warnf("reset workflow duration %q to %s: %v", d, FallbackDuration, err)
		return FallbackDuration
	}
	secs += seconds
	if secs >= 60 {
		return FormatDuration(mins+1, secs-60)
	}
	return FormatDuration(mins, secs)
}

func initials(name string) string {
	var sb strings.Builder
	for _, f := range strings.Fields(name) {
		sb.WriteString(strings.ToUpper(f[:1]))
	}
	return sb.String()
}

type WorkflowOptions struct {
	Rand     RandSource
	Interval time.Duration
	Title    string
	Subtitle string
}

// WorkflowSimulator animates the recent-workflow list: rows arrive, run, finish and leave.
type WorkflowSimulator struct {
	mu       sync.RWMutex
	rows     []Workflow
	counter  int
	rng      RandSource
	driver   *Driver
	title    string
	subtitle string
}

func NewWorkflowSimulator(initial []Workflow, opts WorkflowOptions) *WorkflowSimulator {
	if opts.Interval <= 0 {
		opts.Interval = DefaultWorkflowInterval
	}
	if opts.Title == "" {
		opts.Title = "Recent Workflows"
	}
	rows := make([]Workflow, len(initial))
	copy(rows, initial)
	for i := range rows {
		if rows[i].Key == "" {
			rows[i].Key = uuid.NewString()
		}
	}
	s := &WorkflowSimulator{
		rows:     rows,
		rng:      orDefault(opts.Rand),
		title:    opts.Title,
		subtitle: opts.Subtitle,
	}
	s.driver = NewDriver("workflows", opts.Interval, func(context.Context, time.Time) { s.Step() })
	return s
}

func (s *WorkflowSimulator) Title() string {
	return s.title
}

func (s *WorkflowSimulator) Subtitle() string {
	return s.subtitle
}

// Mount starts the simulation. An empty list is never animated.
func (s *WorkflowSimulator) Mount(ctx context.Context) error {
	s.mu.RLock()
	empty := len(s.rows) == 0
	s.mu.RUnlock()
	if empty {
		return nil
	}
	return s.driver.Start(ctx)
}

func (s *WorkflowSimulator) Unmount() {
	s.driver.Stop()
}

func (s *WorkflowSimulator) Workflows() []Workflow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Workflow, len(s.rows))
	copy(out, s.rows)
	return out
}

// Step advances the simulation by one tick.
func (s *WorkflowSimulator) Step() {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := s.rows[:0]
	for _, w := range s.rows {
		if w.ToRemove {
			continue
		}
		w.IsNew, w.StatusChanged, w.DurationChanged = false, false, false
		rows = append(rows, w)
	}

	// A full list only takes a new row by retiring its oldest finished one.
	active := len(rows)
	if active < MaxActiveWorkflows || s.rng.Float64() < newWorkflowProb {
		add := active < MaxActiveWorkflows
		if !add {
			for i := range rows {
				if rows[i].Status.Finished() {
					rows[i].ToRemove = true
					add = true
					break
				}
			}
		}
		if add {
			rows = append([]Workflow{s.newWorkflow()}, rows...)
		}
	}

	if len(rows) > 0 && s.rng.Float64() < statusChangeProb {
		idx := -1
		for i := range rows {
			if rows[i].Status == WorkflowRunning {
				idx = i
				break
			}
		}
		if idx < 0 {
			idx = intn(s.rng, len(rows))
		}
		s.advanceStatus(&rows[idx])
	}

	for i := range rows {
		if rows[i].Status == WorkflowRunning {
			rows[i].Duration = AdvanceDuration(rows[i].Duration, intn(s.rng, 5)+1)
			rows[i].DurationChanged = true
		}
	}

	s.rows = rows
	s.counter++
}

func (s *WorkflowSimulator) advanceStatus(w *Workflow) {
	switch {
	case w.Status == WorkflowRunning:
		if s.rng.Float64() < completeProb {
			w.Status = WorkflowCompleted
		} else {
			w.Status = WorkflowFailed
		}
		w.StatusChanged = true
	case w.Status.Finished():
		w.ToRemove = true
	}
}

func (s *WorkflowSimulator) newWorkflow() Workflow {
	name := workflowTypes[intn(s.rng, len(workflowTypes))]
	return Workflow{
		Key:            uuid.NewString(),
		ID:             fmt.Sprintf("WF-%d", firstGeneratedID+s.counter),
		Name:           name,
		Status:         newStatuses[intn(s.rng, len(newStatuses))],
		SiliconType:    siliconTypes[intn(s.rng, len(siliconTypes))],
		Duration:       FormatDuration(intn(s.rng, 59)+1, intn(s.rng, 59)+1),
		AvatarFallback: initials(name),
		IsNew:          true,
	}
}
