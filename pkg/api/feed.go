// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package api

import (
	"context"
	"time"

	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/errors"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/feed"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/logger/log"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/view"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	streamWriteTimeout = 5 * time.Second
	streamBuffer       = 16
)

type WorkflowsView struct {
	Title     string          `json:"title"`
	Workflows []feed.Workflow `json:"workflows"`
}

// StreamMessage is one websocket frame: a snapshot first, then one point per tick.
type StreamMessage struct {
	Type     string          `json:"type"`
	StreamID string          `json:"streamId"`
	Chart    *view.ChartView `json:"chart,omitempty"`
	Point    *view.PointView `json:"point,omitempty"`
}

func chartNotFound(name string) error {
	return errors.NewError().WithCode(errors.RequestDataNotExisted).WithMessagef("unknown chart %q", name)
}

func (h *Handler) listCharts(c *gin.Context) {
	ok(c, ChartNames())
}

func (h *Handler) getChart(c *gin.Context) {
	name := c.Param("name")
	chart, found := h.feed.Chart(name)
	if !found {
		_ = c.Error(chartNotFound(name))
		return
	}
	ok(c, view.AreaChart(chart.Config(), chart.Mode(), chart.Snapshot()))
}

func (h *Handler) getStats(c *gin.Context) {
	ok(c, view.StatCards(h.feed.Stats()))
}

func (h *Handler) workflowsView() WorkflowsView {
	return WorkflowsView{Title: h.feed.WorkflowTitle(), Workflows: h.feed.Workflows()}
}

func (h *Handler) getFeedWorkflows(c *gin.Context) {
	ok(c, h.workflowsView())
}

func (h *Handler) getGrid(c *gin.Context) {
	ok(c, view.HeatGrid(h.feed.Grid(), feed.DefaultGridColumns, h.now()))
}

// streamChart gives each connection its own chart, mounted for the lifetime of
// the socket.
func (h *Handler) streamChart(c *gin.Context) {
	name := c.Param("name")
	chart, found := h.feed.NewChart(name)
	if !found {
		_ = c.Error(chartNotFound(name))
		return
	}
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.GlobalLogger().WithContext(c).Warnf("Failed to upgrade chart stream %s: %v", name, err)
		return
	}
	defer conn.Close()

	streamID := uuid.NewString()
	logger := log.GlobalLogger().WithContext(c).WithField("stream_id", streamID)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := chart.Mount(ctx); err != nil {
		logger.Errorf("Failed to mount chart %s for stream: %v", name, err)
		return
	}
	defer chart.Unmount()

	updates := make(chan feed.Point, streamBuffer)
	chart.OnUpdate(func(points []feed.Point) {
		if len(points) == 0 {
			return
		}
		select {
		case updates <- points[len(points)-1]:
		default:
		}
	})

	snapshot := view.AreaChart(chart.Config(), chart.Mode(), chart.Snapshot())
	if err := h.writeStream(conn, StreamMessage{Type: "snapshot", StreamID: streamID, Chart: &snapshot}); err != nil {
		logger.Debugf("Chart stream %s closed before snapshot: %v", name, err)
		return
	}
	logger.Debugf("Chart stream %s opened", name)

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-closed:
			logger.Debugf("Chart stream %s closed by client", name)
			return
		case p := <-updates:
			pv := view.Point(p, chart.Mode())
			if err := h.writeStream(conn, StreamMessage{Type: "point", StreamID: streamID, Point: &pv}); err != nil {
				if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					logger.Debugf("Chart stream %s write error: %v", name, err)
				}
				return
			}
		}
	}
}

func (h *Handler) writeStream(conn *websocket.Conn, msg StreamMessage) error {
	if err := conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout)); err != nil {
		return err
	}
	return conn.WriteJSON(msg)
}
