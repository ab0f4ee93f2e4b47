// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package middleware

import (
	"time"

	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/errors"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/logger/log"
	"github.com/gin-gonic/gin"
)

// HandleLogging writes one line per request. Errors render with HTTP 200, so
// the envelope code is logged alongside the status.
func HandleLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		logger := log.GlobalLogger().WithContext(c)
		if len(c.Errors) > 0 {
			logger = logger.WithField("code", errors.CodeOf(c.Errors[0].Err))
		}
		logger.Infof(
			"Request: Method=%s | Path=%s | Status=%d | IP=%s | Duration=%v | UserAgent=%s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			c.ClientIP(),
			time.Since(startTime),
			c.Request.UserAgent(),
		)
	}
}
