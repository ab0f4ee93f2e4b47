// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package server

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	defaultGather prometheus.Gatherer = prometheus.DefaultGatherer

	registersMu sync.Mutex
	registers   = []func(g *gin.RouterGroup){addMetrics, addHealth}
)

func SetDefaultGather(gather prometheus.Gatherer) {
	registersMu.Lock()
	defer registersMu.Unlock()
	defaultGather = gather
}

// AddRegister adds routes to the unversioned root group next to /metrics and /health.
func AddRegister(fn func(g *gin.RouterGroup)) {
	registersMu.Lock()
	defer registersMu.Unlock()
	registers = append(registers, fn)
}

func mountRoot(engine *gin.Engine) {
	registersMu.Lock()
	fns := append([]func(g *gin.RouterGroup){}, registers...)
	registersMu.Unlock()
	root := engine.Group("")
	for _, fn := range fns {
		fn(root)
	}
}

func addMetrics(g *gin.RouterGroup) {
	registersMu.Lock()
	gather := defaultGather
	registersMu.Unlock()
	g.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gather, promhttp.HandlerOpts{})))
}

func addHealth(g *gin.RouterGroup) {
	g.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
