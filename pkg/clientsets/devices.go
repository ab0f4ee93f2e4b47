// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package clientsets

import (
	"context"
	"strconv"
)

type DeviceController struct {
	c *Client
}

func (d *DeviceController) List(ctx context.Context) ([]Device, error) {
	resp, err := d.c.request(ctx).Get("/api/v1/device")
	if err := check("device", "list", resp, err); err != nil {
		return nil, err
	}
	return decodeArray(resp.Body(), "devices", decodeDevice)
}

func (d *DeviceController) Get(ctx context.Context, id int64) ([]Device, error) {
	resp, err := d.c.request(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Get("/api/v1/device/{id}")
	if err := check("device", "get", resp, err); err != nil {
		return nil, err
	}
	return decodeArray(resp.Body(), "devices", decodeDevice)
}

type TopologyController struct {
	c *Client
}

func (t *TopologyController) List(ctx context.Context) ([]TopologyLink, error) {
	resp, err := t.c.request(ctx).Get("/api/v1/topology")
	if err := check("topology", "list", resp, err); err != nil {
		return nil, err
	}
	return decodeArray(resp.Body(), "devices", decodeTopologyLink)
}

func (t *TopologyController) Get(ctx context.Context, id int64) ([]TopologyLink, error) {
	resp, err := t.c.request(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Get("/api/v1/topology/{id}")
	if err := check("topology", "get", resp, err); err != nil {
		return nil, err
	}
	return decodeArray(resp.Body(), "devices", decodeTopologyLink)
}

type BandwidthController struct {
	c *Client
}

func (b *BandwidthController) Get(ctx context.Context, id int64) (*Bandwidth, error) {
	var result Bandwidth
	resp, err := b.c.request(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&result).
		Get("/api/v1/bandwidth/{id}")
	if err := check("bandwidth", "get", resp, err); err != nil {
		return nil, err
	}
	return &result, nil
}

type UsageController struct {
	c *Client
}

func (u *UsageController) Pids(ctx context.Context) ([]int, error) {
	var result struct {
		Pids []int `json:"pids"`
	}
	resp, err := u.c.request(ctx).
		SetResult(&result).
		Get("/api/v1/usage/pids")
	if err := check("usage", "pids", resp, err); err != nil {
		return nil, err
	}
	if result.Pids == nil {
		result.Pids = []int{}
	}
	return result.Pids, nil
}

func (u *UsageController) History(ctx context.Context, pid int) ([]UsageStat, error) {
	var result struct {
		Stats []UsageStat `json:"stats"`
	}
	resp, err := u.c.request(ctx).
		SetPathParam("pid", strconv.Itoa(pid)).
		SetResult(&result).
		Get("/api/v1/usage/pids/{pid}/history")
	if err := check("usage", "history", resp, err); err != nil {
		return nil, err
	}
	if result.Stats == nil {
		result.Stats = []UsageStat{}
	}
	return result.Stats, nil
}
