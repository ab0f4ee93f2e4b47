// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/clientsets"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/config"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/feed"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/jobs"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/model/rest"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/router/middleware"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/session"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTick = 20 * time.Millisecond

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type envelope[T any] struct {
	Meta rest.Meta `json:"meta"`
	Data T         `json:"data"`
}

// fixedRand returns the same value forever.
type fixedRand struct {
	mu sync.Mutex
	v  float64
}

func (f *fixedRand) Float64() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.v
}

type backend struct {
	failing atomic.Bool
	mu      sync.Mutex
	routes  map[string]string
	bodies  map[string][]byte
}

func newBackend(t *testing.T, routes map[string]string) (*backend, *clientsets.Client) {
	t.Helper()
	b := &backend{routes: routes, bodies: map[string][]byte{}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if b.failing.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		key := r.Method + " " + r.URL.Path
		body, _ := io.ReadAll(r.Body)
		b.mu.Lock()
		b.bodies[key] = body
		resp, found := b.routes[key]
		b.mu.Unlock()
		if !found {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, resp)
	}))
	t.Cleanup(srv.Close)
	return b, clientsets.NewClient(&clientsets.Config{BaseURL: srv.URL, Timeout: time.Second})
}

func (b *backend) body(key string) []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bodies[key]
}

type fixture struct {
	engine   *gin.Engine
	handler  *Handler
	backend  *backend
	snapshot *jobs.Snapshot
}

func newFixture(t *testing.T, routes map[string]string) *fixture {
	t.Helper()
	return newFixtureWithSessions(t, routes, session.NewMemoryProvider(0))
}

func newFixtureWithSessions(t *testing.T, routes map[string]string, sessions session.Provider) *fixture {
	t.Helper()
	b, client := newBackend(t, routes)
	spike := 0.0
	cfg := config.Default()
	cfg.Feed = config.FeedConfig{TickInterval: testTick, MaxDataPoints: 10, SpikeProbability: &spike}
	snapshot := jobs.NewSnapshot()
	rng := &fixedRand{v: 0.5}
	h := NewHandler(Options{
		Config:   cfg,
		Client:   client,
		Snapshot: snapshot,
		Sessions: sessions,
		Rand:     rng,
		Feed: NewLiveFeed(cfg.Feed, LiveFeedOptions{
			Rand:             rng,
			StatInterval:     func(string) time.Duration { return testTick },
			WorkflowInterval: testTick,
		}),
		Clock: func() time.Time { return time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC) },
	})

	engine := gin.New()
	engine.ContextWithFallback = true
	g := engine.Group("/v1")
	g.Use(middleware.HandleRequestID(), middleware.HandleErrors(), middleware.HandleSession(h.Sessions(), cfg.Session.GetKey()))
	require.NoError(t, h.Register(g))
	return &fixture{engine: engine, handler: h, backend: b, snapshot: snapshot}
}

func (f *fixture) do(t *testing.T, method, path string, body interface{}, mutate ...func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, m := range mutate {
		m(req)
	}
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	return w
}

func decodeAs[T any](t *testing.T, w *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var env envelope[T]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func TestFeedEndpoints(t *testing.T) {
	f := newFixture(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, f.handler.Feed().Mount(ctx))
	defer f.handler.Feed().Unmount()

	charts := decodeAs[[]string](t, f.do(t, http.MethodGet, "/v1/feed/charts", nil))
	assert.Equal(t, []string{ChartOverview, ChartResources}, charts.Data)

	tests := []struct {
		name string
		mode string
	}{
		{ChartOverview, "raw"},
		{ChartResources, "scaled"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := decodeAs[struct {
				Mode   string            `json:"mode"`
				Series []json.RawMessage `json:"series"`
				Points []json.RawMessage `json:"points"`
			}](t, f.do(t, http.MethodGet, "/v1/feed/charts/"+tt.name, nil))
			assert.Equal(t, rest.CodeSuccess, env.Meta.Code)
			assert.Equal(t, tt.mode, env.Data.Mode)
			assert.Len(t, env.Data.Series, 4)
			assert.Len(t, env.Data.Points, 10)
		})
	}

	unknown := decodeAs[any](t, f.do(t, http.MethodGet, "/v1/feed/charts/nope", nil))
	assert.Equal(t, 4004, unknown.Meta.Code)

	stats := decodeAs[[]map[string]any](t, f.do(t, http.MethodGet, "/v1/feed/stats", nil))
	assert.Len(t, stats.Data, 4)

	flows := decodeAs[WorkflowsView](t, f.do(t, http.MethodGet, "/v1/feed/workflows", nil))
	assert.Equal(t, "Recent Workflows", flows.Data.Title)
	assert.NotEmpty(t, flows.Data.Workflows)

	grid := decodeAs[struct {
		Columns int               `json:"columns"`
		Cells   []json.RawMessage `json:"cells"`
	}](t, f.do(t, http.MethodGet, "/v1/feed/grid", nil))
	assert.Equal(t, feed.DefaultGridColumns, grid.Data.Columns)
	assert.Len(t, grid.Data.Cells, feed.DefaultGridDays)

	health := decodeAs[map[string]any](t, f.do(t, http.MethodGet, "/v1/health", nil))
	assert.Equal(t, true, health.Data["feed"])
}

func TestOverviewIncludesCachedBackend(t *testing.T) {
	f := newFixture(t, nil)

	before := decodeAs[OverviewResponse](t, f.do(t, http.MethodGet, "/v1/dashboard/overview", nil))
	assert.Nil(t, before.Data.Backend)
	assert.Len(t, before.Data.Stats, 4)
	assert.Equal(t, "System Resource Utilization", before.Data.Chart.Title)

	f.snapshot.SetOverview(&clientsets.DashboardOverview{Stats: map[string]float64{"activeNodes": 148}}, time.Now())
	after := decodeAs[OverviewResponse](t, f.do(t, http.MethodGet, "/v1/dashboard/overview", nil))
	require.NotNil(t, after.Data.Backend)
	assert.Equal(t, 148.0, after.Data.Backend.Stats["activeNodes"])
}

func TestPools(t *testing.T) {
	pool := `{"id":"p-1","name":"MI300 pool"}`
	f := newFixture(t, map[string]string{
		"GET /api/v1/pools":          `{"pools":[` + pool + `]}`,
		"GET /api/v1/pools/p-1":      pool,
		"POST /api/v1/pools":         pool,
		"PUT /api/v1/pools/p-1":      pool,
		"DELETE /api/v1/pools/p-1":   `{}`,
		"GET /api/v1/pools/activity": `{"activities":[{"id":"a"}]}`,
	})

	list := decodeAs[rest.ListData[map[string]any]](t, f.do(t, http.MethodGet, "/v1/pools", nil))
	assert.Equal(t, 1, list.Data.TotalCount)

	got := decodeAs[clientsets.ComputePool](t, f.do(t, http.MethodGet, "/v1/pools/p-1", nil))
	assert.Equal(t, "MI300 pool", got.Data.Name)

	activity := decodeAs[rest.ListData[map[string]any]](t, f.do(t, http.MethodGet, "/v1/pools/activity?poolId=p-1", nil))
	assert.Equal(t, 1, activity.Data.TotalCount)

	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
		code   int
	}{
		{"create", http.MethodPost, "/v1/pools", clientsets.PoolRequest{Name: "MI300 pool", NodeTypes: []clientsets.NodeType{{Type: "mi300x", Count: 4}}}, rest.CodeSuccess},
		{"create without name", http.MethodPost, "/v1/pools", clientsets.PoolRequest{Description: "x"}, 4001},
		{"create with bad node type", http.MethodPost, "/v1/pools", clientsets.PoolRequest{Name: "a", NodeTypes: []clientsets.NodeType{{Count: 1}}}, 4001},
		{"update", http.MethodPut, "/v1/pools/p-1", clientsets.PoolRequest{Name: "renamed"}, rest.CodeSuccess},
		{"update missing pool", http.MethodPut, "/v1/pools/p-9", clientsets.PoolRequest{Name: "renamed"}, 8001},
		{"delete", http.MethodDelete, "/v1/pools/p-1", nil, rest.CodeSuccess},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := decodeAs[any](t, f.do(t, tt.method, tt.path, tt.body))
			assert.Equal(t, tt.code, env.Meta.Code)
		})
	}

	var forwarded clientsets.PoolRequest
	require.NoError(t, json.Unmarshal(f.backend.body("POST /api/v1/pools"), &forwarded))
	assert.Equal(t, "MI300 pool", forwarded.Name)

	t.Run("backend down without snapshot", func(t *testing.T) {
		f.backend.failing.Store(true)
		defer f.backend.failing.Store(false)
		env := decodeAs[any](t, f.do(t, http.MethodGet, "/v1/pools", nil))
		assert.Equal(t, 8001, env.Meta.Code)
	})

	t.Run("backend down serves snapshot", func(t *testing.T) {
		f.snapshot.SetPools([]clientsets.ComputePool{{ID: "cached"}, {ID: "cached-2"}}, time.Now())
		f.backend.failing.Store(true)
		defer f.backend.failing.Store(false)
		env := decodeAs[rest.ListData[map[string]any]](t, f.do(t, http.MethodGet, "/v1/pools", nil))
		assert.Equal(t, rest.CodeSuccess, env.Meta.Code)
		assert.Equal(t, 2, env.Data.TotalCount)
	})
}

func validForm() WorkflowForm {
	return WorkflowForm{
		Name:                "Llama fine-tune",
		Priority:            "high",
		EnvironmentStrategy: "cost",
		TraceLevel:          "med",
		Environments:        WorkflowEnvironments{AWSVirginia: true},
		Options:             WorkflowFormOptions{EnableLogging: true},
	}
}

func TestCreateWorkflow(t *testing.T) {
	f := newFixture(t, map[string]string{
		"GET /api/v1/workflows":      `{"workflows":[{"id":"wf-1","name":"remote","status":"running"}]}`,
		"GET /api/v1/workflows/wf-1": `{"id":"wf-1","name":"remote","status":"running"}`,
	})

	tests := []struct {
		name   string
		mutate func(*WorkflowForm)
		code   int
	}{
		{"valid", func(*WorkflowForm) {}, rest.CodeSuccess},
		{"missing name", func(w *WorkflowForm) { w.Name = "" }, 4001},
		{"blank name", func(w *WorkflowForm) { w.Name = "   " }, 4001},
		{"unknown priority", func(w *WorkflowForm) { w.Priority = "urgent" }, 4001},
		{"unknown strategy", func(w *WorkflowForm) { w.EnvironmentStrategy = "cheapest" }, 4001},
		{"unknown trace level", func(w *WorkflowForm) { w.TraceLevel = "verbose" }, 4001},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)
			env := decodeAs[WorkflowDraft](t, f.do(t, http.MethodPost, "/v1/workflows", form))
			assert.Equal(t, tt.code, env.Meta.Code)
			if tt.code == rest.CodeSuccess {
				assert.Equal(t, "wf-5000", env.Data.ID)
				assert.Equal(t, "Llama fine-tune", env.Data.Form.Name)
			}
		})
	}

	draft := decodeAs[WorkflowDraft](t, f.do(t, http.MethodGet, "/v1/workflows/wf-5000", nil))
	assert.Equal(t, "high", draft.Data.Form.Priority)

	t.Run("id collisions are exhausted", func(t *testing.T) {
		env := decodeAs[any](t, f.do(t, http.MethodPost, "/v1/workflows", validForm()))
		assert.Equal(t, 4002, env.Meta.Code)
	})

	remote := decodeAs[clientsets.WorkflowSummary](t, f.do(t, http.MethodGet, "/v1/workflows/wf-1", nil))
	assert.Equal(t, "remote", remote.Data.Name)

	list := decodeAs[rest.ListData[map[string]any]](t, f.do(t, http.MethodGet, "/v1/workflows?status=running", nil))
	assert.Equal(t, 1, list.Data.TotalCount)
}

func TestAuthFlow(t *testing.T) {
	fileSessions, err := session.NewFileProvider(t.TempDir(), "")
	require.NoError(t, err)
	providers := map[string]session.Provider{
		"memory": session.NewMemoryProvider(0),
		"file":   fileSessions,
	}
	for name, sessions := range providers {
		t.Run(name, func(t *testing.T) {
			f := newFixtureWithSessions(t, nil, sessions)

			bad := decodeAs[any](t, f.do(t, http.MethodPost, "/v1/auth/login", LoginRequest{Email: "ada@amd.com"}))
			assert.Equal(t, 4001, bad.Meta.Code)

			w := f.do(t, http.MethodPost, "/v1/auth/login", LoginRequest{Email: "ada@amd.com", Password: "pw"})
			login := decodeAs[session.Session](t, w)
			require.True(t, login.Data.IsAuthenticated)
			assert.Equal(t, "ada", login.Data.User.Name)

			cookies := w.Result().Cookies()
			require.NotEmpty(t, cookies)
			assert.Equal(t, config.DefaultSessionKey, cookies[0].Name)
			withCookie := func(r *http.Request) { r.AddCookie(&http.Cookie{Name: cookies[0].Name, Value: cookies[0].Value}) }

			me := decodeAs[session.Session](t, f.do(t, http.MethodGet, "/v1/auth/me", nil, withCookie))
			assert.True(t, me.Data.IsAuthenticated)
			assert.Equal(t, "ada@amd.com", me.Data.User.Email)

			bearer := decodeAs[session.Session](t, f.do(t, http.MethodGet, "/v1/auth/me", nil, func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+login.Data.Token)
			}))
			assert.True(t, bearer.Data.IsAuthenticated)

			anonymous := decodeAs[session.Session](t, f.do(t, http.MethodGet, "/v1/auth/me", nil))
			assert.False(t, anonymous.Data.IsAuthenticated)

			// a logout without credentials must not end someone else's session
			anonOut := f.do(t, http.MethodPost, "/v1/auth/logout", nil)
			assert.Equal(t, rest.CodeSuccess, decodeAs[any](t, anonOut).Meta.Code)
			still := decodeAs[session.Session](t, f.do(t, http.MethodGet, "/v1/auth/me", nil, withCookie))
			assert.True(t, still.Data.IsAuthenticated)

			out := f.do(t, http.MethodPost, "/v1/auth/logout", nil, withCookie)
			assert.Equal(t, rest.CodeSuccess, decodeAs[any](t, out).Meta.Code)

			after := decodeAs[session.Session](t, f.do(t, http.MethodGet, "/v1/auth/me", nil, withCookie))
			assert.False(t, after.Data.IsAuthenticated)
		})
	}
}

func TestPassthrough(t *testing.T) {
	f := newFixture(t, map[string]string{
		"GET /api/v1/device":               `{"devices":[{"id":1,"name":"gpu1"},{"id":2,"name":"gpu2"}]}`,
		"GET /api/v1/device/1":             `{"devices":[{"id":1,"name":"gpu1"}]}`,
		"GET /api/v1/topology":             `{"devices":[{"source":0,"target":1}]}`,
		"GET /api/v1/topology/1":           `{"devices":[]}`,
		"GET /api/v1/bandwidth/3":          `{"name":"rccl","deviceCount":8}`,
		"GET /api/v1/usage/pids":           `{"pids":[7]}`,
		"GET /api/v1/usage/pids/7/history": `{"stats":[{"timestamp":"t","metrics":{"gpu":1}}]}`,
		"GET /api/v1/version":              `{"version":"2.0.0"}`,
	})

	tests := []struct {
		path  string
		code  int
		total int
	}{
		{"/v1/devices", rest.CodeSuccess, 2},
		{"/v1/devices/1", rest.CodeSuccess, 1},
		{"/v1/devices/abc", 4001, 0},
		{"/v1/topology", rest.CodeSuccess, 1},
		{"/v1/topology/1", rest.CodeSuccess, 0},
		{"/v1/bandwidth/x", 4001, 0},
		{"/v1/usage/pids/7/history", rest.CodeSuccess, 1},
		{"/v1/usage/pids/seven/history", 4001, 0},
	}
	for _, tt := range tests {
		t.Run(strings.TrimPrefix(tt.path, "/v1/"), func(t *testing.T) {
			env := decodeAs[rest.ListData[map[string]any]](t, f.do(t, http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.code, env.Meta.Code)
			if tt.code == rest.CodeSuccess {
				assert.Equal(t, tt.total, env.Data.TotalCount)
			}
		})
	}

	bw := decodeAs[clientsets.Bandwidth](t, f.do(t, http.MethodGet, "/v1/bandwidth/3", nil))
	assert.Equal(t, 8, bw.Data.DeviceCount)

	pids := decodeAs[[]int](t, f.do(t, http.MethodGet, "/v1/usage/pids", nil))
	assert.Equal(t, []int{7}, pids.Data)

	version := decodeAs[VersionInfo](t, f.do(t, http.MethodGet, "/v1/version", nil))
	assert.Equal(t, Version, version.Data.Dashboard.Version)
	require.NotNil(t, version.Data.Backend)
	assert.Equal(t, "2.0.0", version.Data.Backend.Version)

	f.backend.failing.Store(true)
	degraded := decodeAs[VersionInfo](t, f.do(t, http.MethodGet, "/v1/version", nil))
	assert.Equal(t, rest.CodeSuccess, degraded.Meta.Code)
	assert.Nil(t, degraded.Data.Backend)
}
