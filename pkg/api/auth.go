// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package api

import (
	"net/http"

	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/logger/log"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/session"
	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.Session.GetKey(), token, maxAge, "/", "", false, true)
}

func (h *Handler) login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindError(err))
		return
	}
	s, err := session.Authenticate(c, h.sessions, req.Email, req.Password)
	if err != nil {
		_ = c.Error(err)
		return
	}
	maxAge := 0
	if ttl := h.cfg.Session.TTL; ttl > 0 {
		maxAge = int(ttl.Seconds())
	}
	h.setSessionCookie(c, s.Token, maxAge)
	log.GlobalLogger().WithContext(c).Infof("User %s logged in", s.User.Email)
	ok(c, s)
}

func (h *Handler) logout(c *gin.Context) {
	if err := h.sessions.Logout(c); err != nil {
		_ = c.Error(err)
		return
	}
	h.setSessionCookie(c, "", -1)
	ok(c, session.Anonymous)
}

func (h *Handler) me(c *gin.Context) {
	ok(c, session.FromContext(c))
}
