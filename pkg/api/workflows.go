// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package api

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/clientsets"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/errors"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/logger/log"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/model/rest"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
)

const (
	draftIDSpace    = 10000
	draftIDAttempts = 8
)

type WorkflowEnvironments struct {
	AWSVirginia        bool `json:"awsVirginia"`
	DGXCloudCalifornia bool `json:"dgxCloudCalifornia"`
}

type WorkflowFormOptions struct {
	EnableNotifications bool `json:"enableNotifications"`
	EnableLogging       bool `json:"enableLogging"`
	EnableRetry         bool `json:"enableRetry"`
}

// WorkflowForm is the multi-step workflow creation form.
type WorkflowForm struct {
	Name                string               `json:"name" binding:"required,max=128"`
	Description         string               `json:"description" binding:"max=1024"`
	Priority            string               `json:"priority" binding:"required,oneof=low medium high"`
	EnvironmentStrategy string               `json:"environmentStrategy" binding:"required,oneof=start time cost"`
	TraceLevel          string               `json:"traceLevel" binding:"required,oneof=min med debug"`
	Environments        WorkflowEnvironments `json:"environments"`
	Options             WorkflowFormOptions  `json:"options"`
}

type WorkflowDraft struct {
	ID        string       `json:"id"`
	Form      WorkflowForm `json:"form"`
	CreatedAt time.Time    `json:"createdAt"`
}

func (h *Handler) createWorkflow(c *gin.Context) {
	var form WorkflowForm
	if err := c.ShouldBindJSON(&form); err != nil {
		_ = c.Error(bindError(err))
		return
	}
	form.Name = strings.TrimSpace(form.Name)
	if form.Name == "" {
		_ = c.Error(errors.NewError().WithCode(errors.RequestParameterInvalid).WithMessage("workflow name is required"))
		return
	}

	draft := WorkflowDraft{Form: form, CreatedAt: h.now()}
	for i := 0; i < draftIDAttempts; i++ {
		draft.ID = fmt.Sprintf("wf-%d", int(math.Floor(h.rng.Float64()*draftIDSpace)))
		if err := h.drafts.Add(draft.ID, draft, cache.DefaultExpiration); err == nil {
			log.GlobalLogger().WithContext(c).Infof("Created workflow draft %s (%s)", draft.ID, form.Name)
			ok(c, draft)
			return
		}
	}
	_ = c.Error(errors.NewError().WithCode(errors.RequestDataExists).WithMessage("could not allocate a workflow id"))
}

func (h *Handler) listWorkflows(c *gin.Context) {
	var filter clientsets.WorkflowFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		_ = c.Error(bindError(err))
		return
	}
	workflows, err := h.client.Workflows().List(c, filter)
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, rest.NewListData(workflows))
}

// getWorkflow serves local drafts first, then asks the backend.
func (h *Handler) getWorkflow(c *gin.Context) {
	id := c.Param("id")
	if v, found := h.drafts.Get(id); found {
		ok(c, v)
		return
	}
	workflow, err := h.client.Workflows().Get(c, id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, workflow)
}
