// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package api

import (
	"net/http"
	"time"

	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/clientsets"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/config"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/feed"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/jobs"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/model/rest"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/session"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/patrickmn/go-cache"
)

const draftTTL = 24 * time.Hour

type Options struct {
	Config   *config.Config
	Client   *clientsets.Client
	Snapshot *jobs.Snapshot
	Sessions session.Provider
	Feed     *LiveFeed
	Rand     feed.RandSource
	Clock    func() time.Time
}

// Handler serves the dashboard HTTP surface.
type Handler struct {
	cfg      *config.Config
	client   *clientsets.Client
	snapshot *jobs.Snapshot
	sessions session.Provider
	feed     *LiveFeed
	drafts   *cache.Cache
	rng      feed.RandSource
	now      func() time.Time
	upgrader websocket.Upgrader
}

func NewHandler(opts Options) *Handler {
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Client == nil {
		opts.Client = clientsets.NewClient(clientsets.ConfigFrom(opts.Config.API))
	}
	if opts.Snapshot == nil {
		opts.Snapshot = jobs.NewSnapshot()
	}
	if opts.Sessions == nil {
		opts.Sessions = session.NewMemoryProvider(opts.Config.Session.TTL)
	}
	if opts.Rand == nil {
		opts.Rand = feed.DefaultRand()
	}
	if opts.Feed == nil {
		opts.Feed = NewLiveFeed(opts.Config.Feed, LiveFeedOptions{Rand: opts.Rand})
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &Handler{
		cfg:      opts.Config,
		client:   opts.Client,
		snapshot: opts.Snapshot,
		sessions: opts.Sessions,
		feed:     opts.Feed,
		drafts:   cache.New(draftTTL, time.Hour),
		rng:      opts.Rand,
		now:      opts.Clock,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

func (h *Handler) Feed() *LiveFeed {
	return h.feed
}

func (h *Handler) Sessions() session.Provider {
	return h.sessions
}

// Register mounts every dashboard route on group.
func (h *Handler) Register(group *gin.RouterGroup) error {
	group.GET("/health", h.health)
	group.GET("/version", h.getVersion)

	authGroup := group.Group("/auth")
	{
		authGroup.POST("/login", h.login)
		authGroup.POST("/logout", h.logout)
		authGroup.GET("/me", h.me)
	}

	group.GET("/dashboard/overview", h.getOverview)

	feedGroup := group.Group("/feed")
	{
		feedGroup.GET("/charts", h.listCharts)
		feedGroup.GET("/charts/:name", h.getChart)
		feedGroup.GET("/charts/:name/stream", h.streamChart)
		feedGroup.GET("/stats", h.getStats)
		feedGroup.GET("/workflows", h.getFeedWorkflows)
		feedGroup.GET("/grid", h.getGrid)
	}

	poolGroup := group.Group("/pools")
	{
		poolGroup.GET("", h.listPools)
		poolGroup.GET("/activity", h.getPoolActivity)
		poolGroup.GET("/:id", h.getPool)
		poolGroup.POST("", h.createPool)
		poolGroup.PUT("/:id", h.updatePool)
		poolGroup.DELETE("/:id", h.deletePool)
	}

	workflowGroup := group.Group("/workflows")
	{
		workflowGroup.GET("", h.listWorkflows)
		workflowGroup.POST("", h.createWorkflow)
		workflowGroup.GET("/:id", h.getWorkflow)
	}

	group.GET("/devices", h.listDevices)
	group.GET("/devices/:id", h.getDevice)
	group.GET("/topology", h.listTopology)
	group.GET("/topology/:id", h.getTopology)
	group.GET("/bandwidth/:id", h.getBandwidth)
	group.GET("/usage/pids", h.listUsagePids)
	group.GET("/usage/pids/:pid/history", h.getUsageHistory)
	return nil
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, rest.SuccessResp(c, gin.H{
		"status": "ok",
		"feed":   h.feed.Mounted(),
	}))
}

func ok(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, rest.SuccessResp(c, data))
}
