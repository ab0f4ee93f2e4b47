// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package rest

import (
	"context"

	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/logger/logrus"
)

const CodeSuccess = 2000

var successMeta = Meta{Code: CodeSuccess, Message: "OK"}

type Meta struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Trace carries the request id assigned by the router so clients can quote it.
type Trace struct {
	RequestId string `json:"request_id"`
}

type Response struct {
	Meta    Meta        `json:"meta"`
	Data    interface{} `json:"data"`
	Tracing *Trace      `json:"tracing"`
}

// ListData is the data payload of every list endpoint.
type ListData[T any] struct {
	Rows       []T `json:"rows"`
	TotalCount int `json:"total_count"`
}

// newResponse copies the request id placed in ctx by the request-id middleware.
func newResponse(ctx context.Context, meta Meta, data interface{}) Response {
	resp := Response{Meta: meta, Data: data}
	if ctx == nil {
		return resp
	}
	if id, ok := ctx.Value(logrus.ContextKey("request_id")).(string); ok && id != "" {
		resp.Tracing = &Trace{RequestId: id}
	}
	return resp
}

func SuccessResp(ctx context.Context, data interface{}) Response {
	return newResponse(ctx, successMeta, data)
}

func ErrorResp(ctx context.Context, code int, errMsg string, data interface{}) Response {
	return newResponse(ctx, Meta{Code: code, Message: errMsg}, data)
}

// NewListData wraps rows with their count. A nil slice renders as an empty list.
func NewListData[T any](rows []T) ListData[T] {
	if rows == nil {
		rows = []T{}
	}
	return ListData[T]{
		Rows:       rows,
		TotalCount: len(rows),
	}
}
