// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package clientsets

import (
	"context"
)

const poolsController = "pools"

type PoolsController struct {
	c *Client
}

func (p *PoolsController) List(ctx context.Context) ([]ComputePool, error) {
	var result struct {
		Pools []ComputePool `json:"pools"`
	}
	resp, err := p.c.request(ctx).
		SetResult(&result).
		Get("/api/v1/pools")
	if err := check(poolsController, "list", resp, err); err != nil {
		return nil, err
	}
	if result.Pools == nil {
		result.Pools = []ComputePool{}
	}
	return result.Pools, nil
}

func (p *PoolsController) Get(ctx context.Context, id string) (*ComputePool, error) {
	var result ComputePool
	resp, err := p.c.request(ctx).
		SetPathParam("id", id).
		SetResult(&result).
		Get("/api/v1/pools/{id}")
	if err := check(poolsController, "get", resp, err); err != nil {
		return nil, err
	}
	return &result, nil
}

func (p *PoolsController) Create(ctx context.Context, req *PoolRequest) (*ComputePool, error) {
	var result ComputePool
	resp, err := p.c.request(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/api/v1/pools")
	if err := check(poolsController, "create", resp, err); err != nil {
		return nil, err
	}
	return &result, nil
}

func (p *PoolsController) Update(ctx context.Context, id string, req *PoolRequest) (*ComputePool, error) {
	var result ComputePool
	resp, err := p.c.request(ctx).
		SetPathParam("id", id).
		SetBody(req).
		SetResult(&result).
		Put("/api/v1/pools/{id}")
	if err := check(poolsController, "update", resp, err); err != nil {
		return nil, err
	}
	return &result, nil
}

func (p *PoolsController) Delete(ctx context.Context, id string) error {
	resp, err := p.c.request(ctx).
		SetPathParam("id", id).
		Delete("/api/v1/pools/{id}")
	return check(poolsController, "delete", resp, err)
}

// Activity lists recent pool events. An empty poolID lists all pools.
func (p *PoolsController) Activity(ctx context.Context, poolID string) ([]PoolActivity, error) {
	req := p.c.request(ctx)
	if poolID != "" {
		req.SetQueryParam("poolId", poolID)
	}
	resp, err := req.Get("/api/v1/pools/activity")
	if err := check(poolsController, "activity", resp, err); err != nil {
		return nil, err
	}
	return decodeArray(resp.Body(), "activities", decodeActivity)
}
