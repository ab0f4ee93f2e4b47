// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package clientsets

import (
	"context"
)

type WorkflowsController struct {
	c *Client
}

func (w *WorkflowsController) List(ctx context.Context, filter WorkflowFilter) ([]WorkflowSummary, error) {
	var result struct {
		Workflows []WorkflowSummary `json:"workflows"`
	}
	resp, err := w.c.request(ctx).
		SetQueryParams(filter.params()).
		SetResult(&result).
		Get("/api/v1/workflows")
	if err := check("workflows", "list", resp, err); err != nil {
		return nil, err
	}
	if result.Workflows == nil {
		result.Workflows = []WorkflowSummary{}
	}
	return result.Workflows, nil
}

func (w *WorkflowsController) Get(ctx context.Context, id string) (*WorkflowSummary, error) {
	var result WorkflowSummary
	resp, err := w.c.request(ctx).
		SetPathParam("id", id).
		SetResult(&result).
		Get("/api/v1/workflows/{id}")
	if err := check("workflows", "get", resp, err); err != nil {
		return nil, err
	}
	return &result, nil
}
