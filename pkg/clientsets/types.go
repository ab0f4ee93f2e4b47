// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package clientsets

type NodeType struct {
	Type  string `json:"type" binding:"required"`
	Count int    `json:"count" binding:"gte=0"`
}

type ComputePool struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Description        string     `json:"description"`
	Status             string     `json:"status"`
	Region             string     `json:"region"`
	Provider           string     `json:"provider"`
	CPUUtilization     float64    `json:"cpuUtilization"`
	MemoryUtilization  float64    `json:"memoryUtilization"`
	GPUUtilization     float64    `json:"gpuUtilization"`
	NetworkUtilization float64    `json:"networkUtilization"`
	NodeTypes          []NodeType `json:"nodeTypes"`
}

// PoolRequest is the body of pool create and update calls.
type PoolRequest struct {
	Name        string     `json:"name" binding:"required,max=128"`
	Description string     `json:"description" binding:"max=1024"`
	NodeTypes   []NodeType `json:"nodeTypes" binding:"dive"`
	Tags        []string   `json:"tags"`
}

type PoolActivity struct {
	ID        string `json:"id"`
	PoolID    string `json:"poolId"`
	Type      string `json:"type"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type WorkflowSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	Priority  string `json:"priority"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime,omitempty"`
}

type WorkflowFilter struct {
	Status   string `form:"status"`
	Priority string `form:"priority"`
	Search   string `form:"search"`
}

func (f WorkflowFilter) params() map[string]string {
	params := map[string]string{}
	if f.Status != "" {
		params["status"] = f.Status
	}
	if f.Priority != "" {
		params["priority"] = f.Priority
	}
	if f.Search != "" {
		params["search"] = f.Search
	}
	return params
}

type Version struct {
	Version   string `json:"version"`
	BuildTime string `json:"buildTime"`
	CommitID  string `json:"commitId"`
}

type UsageStat struct {
	Timestamp string             `json:"timestamp"`
	Metrics   map[string]float64 `json:"metrics"`
}

type Bandwidth struct {
	Name              string  `json:"name"`
	DeviceCount       int     `json:"deviceCount"`
	TransferSizeBytes int64   `json:"transferSizeBytes"`
	BandwidthMbPerSec float64 `json:"bandwidthMbPerSec"`
}

type Device struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Vendor      string `json:"vendor"`
	Status      string `json:"status"`
	MemoryBytes int64  `json:"memoryBytes"`
}

type TopologyLink struct {
	Source   int64   `json:"source"`
	Target   int64   `json:"target"`
	LinkType string  `json:"linkType"`
	Hops     int     `json:"hops"`
	Weight   float64 `json:"weight"`
}

type SiliconAllocation struct {
	Type      string  `json:"type"`
	Allocated float64 `json:"allocated"`
	Total     float64 `json:"total"`
}

type DashboardOverview struct {
	Stats               map[string]float64  `json:"stats"`
	SiliconAllocation   []SiliconAllocation `json:"siliconAllocation"`
	ResourceUtilization map[string]float64  `json:"resourceUtilization"`
	RecentWorkflows     []WorkflowSummary   `json:"recentWorkflows"`
}
