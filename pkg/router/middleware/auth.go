// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package middleware

import (
	"context"
	"strings"

	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/errors"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/logger/log"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/logger/logrus"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/session"
	"github.com/gin-gonic/gin"
)

const (
	ContextKeyUserID    = "auth_user_id"
	ContextKeyUserName  = "auth_user_name"
	ContextKeyUserEmail = "auth_user_email"
)

// TokenFromRequest reads a bearer token, falling back to the session cookie.
func TokenFromRequest(c *gin.Context, cookieName string) string {
	if h := c.GetHeader("Authorization"); h != "" {
		if token, ok := strings.CutPrefix(h, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	if cookie, err := c.Cookie(cookieName); err == nil {
		return cookie
	}
	return ""
}

// HandleSession resolves the caller's session and stores it on the request
// context. It never rejects a request; see HandleAuth.
func HandleSession(provider session.Provider, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		token := TokenFromRequest(c, cookieName)
		if token == "" {
			c.Next()
			return
		}
		ctx = session.WithToken(ctx, token)
		s, err := provider.Current(ctx)
		if err != nil {
			log.GlobalLogger().WithContext(ctx).Warnf("Session lookup failed for path %s: %v", c.Request.URL.Path, err)
			s = session.Anonymous
		}
		if s.IsAuthenticated && s.User != nil {
			ctx = session.WithSession(ctx, s)
			ctx = context.WithValue(ctx, logrus.ContextKey("user_id"), s.User.ID)
			c.Set(ContextKeyUserID, s.User.ID)
			c.Set(ContextKeyUserName, s.User.Name)
			c.Set(ContextKeyUserEmail, s.User.Email)
		}
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// HandleAuth rejects unauthenticated requests outside excludePaths. A pattern
// ending in "/*" matches the whole subtree.
func HandleAuth(excludePaths []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if IsPathExcluded(c.Request.URL.Path, excludePaths) {
			c.Next()
			return
		}
		if !session.FromContext(c.Request.Context()).IsAuthenticated {
			log.GlobalLogger().WithContext(c).Warnf("Auth middleware: unauthenticated request for path %s", c.Request.URL.Path)
			_ = c.Error(errors.NewError().WithCode(errors.AuthFailed).WithMessage("authentication required"))
			c.Abort()
			return
		}
		c.Next()
	}
}

func IsPathExcluded(path string, excludePaths []string) bool {
	for _, pattern := range excludePaths {
		if prefix, ok := strings.CutSuffix(pattern, "/*"); ok {
			if path == prefix || strings.HasPrefix(path, prefix+"/") {
				return true
			}
			continue
		}
		if path == pattern {
			return true
		}
	}
	return false
}
