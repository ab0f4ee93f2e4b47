// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package middleware

import (
	"context"

	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/logger/logrus"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader     = "X-Request-Id"
	ContextKeyRequestID = "request_id"
)

// HandleRequestID reuses the caller's X-Request-Id or assigns one, and puts it
// on the request context for logging and the response envelope.
func HandleRequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ContextKeyRequestID, id)
		c.Header(RequestIDHeader, id)
		ctx := context.WithValue(c.Request.Context(), logrus.ContextKey(ContextKeyRequestID), id)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
