// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package server

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/api"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/clientsets"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/config"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/errors"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/jobs"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/logger/log"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/router"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/session"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	cfg     *config.Config
	engine  *gin.Engine
	handler *api.Handler
	runner  *jobs.Runner
}

// NewSessionProvider persists sessions on disk when a storage path is configured.
func NewSessionProvider(cfg config.SessionConfig) (session.Provider, error) {
	if cfg.StoragePath == "" {
		return session.NewMemoryProvider(cfg.TTL), nil
	}
	return session.NewFileProvider(cfg.StoragePath, cfg.GetKey())
}

func New(cfg *config.Config) (*Server, error) {
	sessions, err := NewSessionProvider(cfg.Session)
	if err != nil {
		return nil, errors.WrapError(err, "failed to init session store", errors.CodeInitializeError)
	}
	client := clientsets.NewClient(clientsets.ConfigFrom(cfg.API))
	snapshot := jobs.NewSnapshot()
	handler := api.NewHandler(api.Options{
		Config:   cfg,
		Client:   client,
		Snapshot: snapshot,
		Sessions: sessions,
	})

	engine := gin.New()
	engine.ContextWithFallback = true
	engine.Use(gin.Recovery())
	if err := router.InitRouter(engine, cfg, sessions, handler.Register); err != nil {
		return nil, err
	}
	mountRoot(engine)

	return &Server{
		cfg:     cfg,
		engine:  engine,
		handler: handler,
		runner:  jobs.NewRunner(client, snapshot, jobs.DefaultJobs(cfg.Jobs)...),
	}, nil
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) Handler() *api.Handler {
	return s.handler
}

// Start mounts the live feed and schedules the refresh jobs.
func (s *Server) Start(ctx context.Context) error {
	if err := s.handler.Feed().Mount(ctx); err != nil {
		return err
	}
	if err := s.runner.Start(ctx); err != nil {
		s.handler.Feed().Unmount()
		return err
	}
	return nil
}

func (s *Server) Stop() {
	s.runner.Stop()
	s.handler.Feed().Unmount()
}

// Run serves HTTP until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	if err := s.Start(ctx); err != nil {
		return err
	}
	defer s.Stop()

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.cfg.GetHttpPort()),
		Handler: s.engine,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Infof("Dashboard listening on %s (%s)", httpServer.Addr, s.cfg)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			return errors.WrapError(err, "http server failed", errors.InternalError)
		}
		return nil
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	log.Info("Shutting down dashboard server")
	return httpServer.Shutdown(shutdownCtx)
}

func InitServer(ctx context.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	return InitServerWithConfig(ctx, cfg)
}

func InitServerWithConfig(ctx context.Context, cfg *config.Config) error {
	if err := log.InitGlobalLogger(cfg.GetLogConfig()); err != nil {
		return errors.WrapError(err, "failed to init logger", errors.CodeInitializeError)
	}
	s, err := New(cfg)
	if err != nil {
		return err
	}
	return s.Run(ctx)
}
