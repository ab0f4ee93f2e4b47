// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package router

import (
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/config"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/logger/log"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/router/middleware"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/session"
	"github.com/gin-gonic/gin"
)

// AuthExcludePaths stay reachable without a session.
var AuthExcludePaths = []string{
	"/v1/auth/*",
	"/v1/health",
	"/v1/version",
}

type GroupRegister func(group *gin.RouterGroup) error

// InitRouter builds the /v1 group and hands it to each register in order.
// A nil sessions provider leaves every request anonymous.
func InitRouter(engine *gin.Engine, cfg *config.Config, sessions session.Provider, registers ...GroupRegister) error {
	g := engine.Group("/v1")
	g.Use(middleware.HandleRequestID())
	if cfg.Middleware.IsMetricsEnabled() {
		g.Use(middleware.HandleMetrics())
	}
	if cfg.Middleware.IsLoggingEnabled() {
		log.Info("HTTP request logging middleware enabled")
		g.Use(middleware.HandleLogging())
	} else {
		log.Info("HTTP request logging middleware disabled")
	}

	// Error handling middleware is always enabled
	g.Use(middleware.HandleErrors())

	g.Use(middleware.CorsMiddleware())

	if sessions != nil {
		g.Use(middleware.HandleSession(sessions, cfg.Session.GetKey()))
	}
	if cfg.Middleware.IsAuthEnabled() {
		log.Info("Auth middleware enabled")
		g.Use(middleware.HandleAuth(AuthExcludePaths))
	} else {
		log.Info("Auth middleware disabled")
	}

	for _, register := range registers {
		if err := register(g); err != nil {
			return err
		}
	}
	return nil
}
