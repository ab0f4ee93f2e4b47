// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package middleware

import (
	stderrors "errors"
	"net/http"

	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/errors"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/logger/log"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/model/rest"
	"github.com/gin-gonic/gin"
)

// HandleErrors renders the first error a handler recorded with c.Error as an
// envelope. The HTTP status stays 200; the code travels in meta.code.
func HandleErrors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if len(c.Errors) == 0 {
			return
		}
		logger := log.GlobalLogger().WithContext(c).WithFields(map[string]interface{}{
			"path":   c.Request.URL.Path,
			"route":  c.FullPath(),
			"method": c.Request.Method,
		})
		for i, extra := range c.Errors[1:] {
			logger.Warnf("Ignoring subsequent error %d: %v", i+1, extra.Err)
		}

		first := c.Errors[0].Err
		var cError *errors.Error
		if !stderrors.As(first, &cError) {
			logger.Errorf("Unwrapped error: %+v", first)
			c.AbortWithStatusJSON(http.StatusOK, rest.ErrorResp(c, errors.InternalError, "Unknown error", nil))
			return
		}
		if cError.IsClientError() {
			logger.Warnf("Request rejected code %d: %s", cError.Code, cError.Message)
		} else {
			logger.Errorf("Request failed code %d: %s: %v\n%s", cError.Code, cError.Message, cError.InnerError, cError.GetStackString())
		}
		c.AbortWithStatusJSON(http.StatusOK, rest.ErrorResp(c, cError.Code, cError.Message, nil))
	}
}
