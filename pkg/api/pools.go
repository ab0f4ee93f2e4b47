// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package api

import (
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/clientsets"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/errors"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/logger/log"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/model/rest"
	"github.com/gin-gonic/gin"
)

func bindError(err error) error {
	return errors.WrapError(err, "invalid request body: "+err.Error(), errors.RequestParameterInvalid)
}

// listPools reads live pools, falling back to the last refreshed snapshot.
func (h *Handler) listPools(c *gin.Context) {
	pools, err := h.client.Pools().List(c)
	if err != nil {
		cached, _, found := h.snapshot.Pools()
		if !found {
			_ = c.Error(err)
			return
		}
		log.GlobalLogger().WithContext(c).Warnf("Serving cached pools after backend failure: %v", err)
		pools = cached
	}
	ok(c, rest.NewListData(pools))
}

func (h *Handler) getPool(c *gin.Context) {
	pool, err := h.client.Pools().Get(c, c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, pool)
}

func (h *Handler) getPoolActivity(c *gin.Context) {
	activity, err := h.client.Pools().Activity(c, c.Query("poolId"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, rest.NewListData(activity))
}

func (h *Handler) createPool(c *gin.Context) {
	var req clientsets.PoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindError(err))
		return
	}
	pool, err := h.client.Pools().Create(c, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	log.GlobalLogger().WithContext(c).Infof("Created compute pool %s (%s)", pool.ID, req.Name)
	ok(c, pool)
}

func (h *Handler) updatePool(c *gin.Context) {
	var req clientsets.PoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindError(err))
		return
	}
	pool, err := h.client.Pools().Update(c, c.Param("id"), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, pool)
}

func (h *Handler) deletePool(c *gin.Context) {
	id := c.Param("id")
	if err := h.client.Pools().Delete(c, id); err != nil {
		_ = c.Error(err)
		return
	}
	log.GlobalLogger().WithContext(c).Infof("Deleted compute pool %s", id)
	ok(c, nil)
}
