// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package clientsets

import (
	"context"
	"strconv"

	"github.com/tidwall/gjson"
)

const dashboardController = "dashboard"

type DashboardController struct {
	c *Client
}

func (d *DashboardController) Overview(ctx context.Context) (*DashboardOverview, error) {
	resp, err := d.c.request(ctx).Get("/api/v1/dashboard/overview")
	if err := check(dashboardController, "overview", resp, err); err != nil {
		return nil, err
	}
	return decodeOverview(resp.Body())
}

func (d *DashboardController) Stats(ctx context.Context) (map[string]float64, error) {
	resp, err := d.c.request(ctx).Get("/api/v1/dashboard/stats")
	if err := check(dashboardController, "stats", resp, err); err != nil {
		return nil, err
	}
	return decodeNumberMap(gjson.GetBytes(resp.Body(), "stats")), nil
}

func (d *DashboardController) SiliconAllocation(ctx context.Context) ([]SiliconAllocation, error) {
	resp, err := d.c.request(ctx).Get("/api/v1/dashboard/silicon-allocation")
	if err := check(dashboardController, "silicon-allocation", resp, err); err != nil {
		return nil, err
	}
	return decodeArray(resp.Body(), "allocations", decodeAllocation)
}

func (d *DashboardController) ResourceUtilization(ctx context.Context) (map[string]float64, error) {
	resp, err := d.c.request(ctx).Get("/api/v1/dashboard/resource-utilization")
	if err := check(dashboardController, "resource-utilization", resp, err); err != nil {
		return nil, err
	}
	return decodeNumberMap(gjson.GetBytes(resp.Body(), "utilization")), nil
}

// RecentWorkflows lists the latest workflows. limit <= 0 leaves the backend default.
func (d *DashboardController) RecentWorkflows(ctx context.Context, limit int) ([]WorkflowSummary, error) {
	var result struct {
		Workflows []WorkflowSummary `json:"workflows"`
	}
	req := d.c.request(ctx).SetResult(&result)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}
	resp, err := req.Get("/api/v1/dashboard/recent-workflows")
	if err := check(dashboardController, "recent-workflows", resp, err); err != nil {
		return nil, err
	}
	if result.Workflows == nil {
		result.Workflows = []WorkflowSummary{}
	}
	return result.Workflows, nil
}

// CPUUtilizationGrid returns the daily utilization values of the heat grid.
func (d *DashboardController) CPUUtilizationGrid(ctx context.Context) ([]int, error) {
	resp, err := d.c.request(ctx).Get("/api/v1/dashboard/cpu-utilization-grid")
	if err := check(dashboardController, "cpu-utilization-grid", resp, err); err != nil {
		return nil, err
	}
	body := resp.Body()
	path := "grid"
	if gjson.ParseBytes(body).IsArray() {
		path = "@this"
	}
	return decodeArray(body, path, func(r gjson.Result) int {
		return int(r.Int())
	})
}
