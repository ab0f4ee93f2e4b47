// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package clientsets

import (
	"encoding/json"

	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/errors"
	"github.com/tidwall/gjson"
)

// The backend leaves devices, topology, allocations and activities loosely typed,
// so fields are picked by the first alias present.

func firstOf(r gjson.Result, paths ...string) gjson.Result {
	for _, p := range paths {
		if v := r.Get(p); v.Exists() {
			return v
		}
	}
	return gjson.Result{}
}

func decodeArray[T any](body []byte, path string, decode func(gjson.Result) T) ([]T, error) {
	if !gjson.ValidBytes(body) {
		return nil, errors.NewError().WithCode(errors.CodeRemoteServiceError).WithMessage("backend returned invalid JSON")
	}
	arr := gjson.GetBytes(body, path)
	if !arr.Exists() {
		return []T{}, nil
	}
	if !arr.IsArray() {
		return nil, errors.NewError().
			WithCode(errors.CodeRemoteServiceError).
			WithMessagef("backend field %s is not an array", path)
	}
	out := make([]T, 0, len(arr.Array()))
	arr.ForEach(func(_, value gjson.Result) bool {
		out = append(out, decode(value))
		return true
	})
	return out, nil
}

func decodeDevice(r gjson.Result) Device {
	return Device{
		ID:          firstOf(r, "id", "deviceId", "device_id").Int(),
		Name:        firstOf(r, "name", "deviceName").String(),
		Type:        firstOf(r, "type", "deviceType").String(),
		Vendor:      r.Get("vendor").String(),
		Status:      r.Get("status").String(),
		MemoryBytes: firstOf(r, "memoryBytes", "memory", "vram").Int(),
	}
}

func decodeTopologyLink(r gjson.Result) TopologyLink {
	return TopologyLink{
		Source:   firstOf(r, "source", "from", "src").Int(),
		Target:   firstOf(r, "target", "to", "dst").Int(),
		LinkType: firstOf(r, "linkType", "type").String(),
		Hops:     int(r.Get("hops").Int()),
		Weight:   r.Get("weight").Float(),
	}
}

func decodeAllocation(r gjson.Result) SiliconAllocation {
	return SiliconAllocation{
		Type:      firstOf(r, "type", "siliconType", "name").String(),
		Allocated: firstOf(r, "allocated", "used", "value").Float(),
		Total:     firstOf(r, "total", "capacity").Float(),
	}
}

func decodeActivity(r gjson.Result) PoolActivity {
	return PoolActivity{
		ID:        r.Get("id").String(),
		PoolID:    firstOf(r, "poolId", "pool_id").String(),
		Type:      firstOf(r, "type", "action").String(),
		Message:   firstOf(r, "message", "description").String(),
		Timestamp: firstOf(r, "timestamp", "time", "createdAt").String(),
	}
}

func decodeNumberMap(r gjson.Result) map[string]float64 {
	out := map[string]float64{}
	r.ForEach(func(key, value gjson.Result) bool {
		if value.Type == gjson.Number {
			out[key.String()] = value.Float()
		}
		return true
	})
	return out
}

func decodeOverview(body []byte) (*DashboardOverview, error) {
	if !gjson.ValidBytes(body) {
		return nil, errors.NewError().WithCode(errors.CodeRemoteServiceError).WithMessage("backend returned invalid JSON")
	}
	allocations, err := decodeArray(body, "siliconAllocation.allocations", decodeAllocation)
	if err != nil {
		return nil, err
	}
	overview := &DashboardOverview{
		Stats:               decodeNumberMap(gjson.GetBytes(body, "stats.stats")),
		SiliconAllocation:   allocations,
		ResourceUtilization: decodeNumberMap(gjson.GetBytes(body, "resourceUtilization.utilization")),
		RecentWorkflows:     []WorkflowSummary{},
	}
	if raw := gjson.GetBytes(body, "recentWorkflows.workflows"); raw.IsArray() {
		if err := json.Unmarshal([]byte(raw.Raw), &overview.RecentWorkflows); err != nil {
			return nil, errors.WrapError(err, "failed to decode recent workflows", errors.CodeRemoteServiceError)
		}
	}
	return overview, nil
}
