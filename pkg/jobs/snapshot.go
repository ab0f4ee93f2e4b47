// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package jobs

import (
	"time"

	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/clientsets"
	"github.com/patrickmn/go-cache"
)

const (
	overviewKey = "dashboard.overview"
	poolsKey    = "dashboard.pools"
)

type entry[T any] struct {
	value     T
	fetchedAt time.Time
}

// Snapshot keeps the last successful backend reads. Entries never expire: a failed
// refresh leaves the previous value in place.
type Snapshot struct {
	cache *cache.Cache
}

func NewSnapshot() *Snapshot {
	return &Snapshot{cache: cache.New(cache.NoExpiration, 0)}
}

func (s *Snapshot) SetOverview(o *clientsets.DashboardOverview, at time.Time) {
	s.cache.Set(overviewKey, entry[*clientsets.DashboardOverview]{value: o, fetchedAt: at}, cache.NoExpiration)
}

func (s *Snapshot) Overview() (*clientsets.DashboardOverview, time.Time, bool) {
	return get[*clientsets.DashboardOverview](s.cache, overviewKey)
}

func (s *Snapshot) SetPools(pools []clientsets.ComputePool, at time.Time) {
	s.cache.Set(poolsKey, entry[[]clientsets.ComputePool]{value: pools, fetchedAt: at}, cache.NoExpiration)
}

func (s *Snapshot) Pools() ([]clientsets.ComputePool, time.Time, bool) {
	return get[[]clientsets.ComputePool](s.cache, poolsKey)
}

func get[T any](c *cache.Cache, key string) (T, time.Time, bool) {
	var zero T
	v, ok := c.Get(key)
	if !ok {
		return zero, time.Time{}, false
	}
	e, ok := v.(entry[T])
	if !ok {
		return zero, time.Time{}, false
	}
	return e.value, e.fetchedAt, true
}
