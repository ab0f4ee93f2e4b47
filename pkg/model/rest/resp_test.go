// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package rest

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/errors"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/logger/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessResp(t *testing.T) {
	resp := SuccessResp(context.Background(), map[string]int{"count": 3})

	assert.Equal(t, CodeSuccess, resp.Meta.Code)
	assert.Equal(t, "OK", resp.Meta.Message)
	assert.Nil(t, resp.Tracing)
	assert.Equal(t, map[string]int{"count": 3}, resp.Data)
}

func TestErrorRespCarriesRequestID(t *testing.T) {
	ctx := context.WithValue(context.Background(), logrus.ContextKey("request_id"), "req-1")
	resp := ErrorResp(ctx, errors.RequestParameterInvalid, "bad chart", nil)

	assert.Equal(t, errors.RequestParameterInvalid, resp.Meta.Code)
	assert.Equal(t, "bad chart", resp.Meta.Message)
	require.NotNil(t, resp.Tracing)
	assert.Equal(t, "req-1", resp.Tracing.RequestId)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"tracing":{"request_id":"req-1"}`)
}

func TestNewListData(t *testing.T) {
	tests := []struct {
		name      string
		rows      []string
		wantCount int
		wantJSON  string
	}{
		{"rows", []string{"a", "b"}, 2, `{"rows":["a","b"],"total_count":2}`},
		{"nil rows", nil, 0, `{"rows":[],"total_count":0}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := NewListData(tt.rows)
			assert.Equal(t, tt.wantCount, data.TotalCount)

			raw, err := json.Marshal(data)
			require.NoError(t, err)
			assert.JSONEq(t, tt.wantJSON, string(raw))
		})
	}
}
