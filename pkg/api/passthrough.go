// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package api

import (
	"strconv"

	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/clientsets"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/errors"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/logger/log"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/model/rest"
	"github.com/gin-gonic/gin"
)

// Build information, set with -ldflags at release time.
var (
	Version   = "dev"
	BuildTime = ""
	CommitID  = ""
)

type VersionInfo struct {
	Dashboard clientsets.Version  `json:"dashboard"`
	Backend   *clientsets.Version `json:"backend,omitempty"`
}

func intParam(c *gin.Context, name string) (int64, error) {
	v, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, errors.NewError().WithCode(errors.RequestParameterInvalid).WithMessagef("%s must be an integer", name)
	}
	return v, nil
}

func (h *Handler) getVersion(c *gin.Context) {
	info := VersionInfo{Dashboard: clientsets.Version{Version: Version, BuildTime: BuildTime, CommitID: CommitID}}
	backend, err := h.client.Version(c)
	if err != nil {
		log.GlobalLogger().WithContext(c).Warnf("Backend version unavailable: %v", err)
	} else {
		info.Backend = backend
	}
	ok(c, info)
}

func (h *Handler) listDevices(c *gin.Context) {
	devices, err := h.client.Devices().List(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, rest.NewListData(devices))
}

func (h *Handler) getDevice(c *gin.Context) {
	id, err := intParam(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}
	devices, err := h.client.Devices().Get(c, id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, rest.NewListData(devices))
}

func (h *Handler) listTopology(c *gin.Context) {
	links, err := h.client.Topology().List(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, rest.NewListData(links))
}

func (h *Handler) getTopology(c *gin.Context) {
	id, err := intParam(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}
	links, err := h.client.Topology().Get(c, id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, rest.NewListData(links))
}

func (h *Handler) getBandwidth(c *gin.Context) {
	id, err := intParam(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}
	bw, err := h.client.Bandwidth().Get(c, id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, bw)
}

func (h *Handler) listUsagePids(c *gin.Context) {
	pids, err := h.client.Usage().Pids(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, pids)
}

func (h *Handler) getUsageHistory(c *gin.Context) {
	pid, err := intParam(c, "pid")
	if err != nil {
		_ = c.Error(err)
		return
	}
	history, err := h.client.Usage().History(c, int(pid))
	if err != nil {
		_ = c.Error(err)
		return
	}
	ok(c, rest.NewListData(history))
}
