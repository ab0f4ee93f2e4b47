// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/api"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/clientsets"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/config"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/logger/log"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/tui"
	"github.com/spf13/cobra"
)

var (
	watchRefresh time.Duration
	watchBackend bool
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Show the live dashboard in the terminal",
	Long: `Watch renders the stat cards, charts, workflow list and utilization grid
in the terminal. Press tab to switch charts, g to toggle the grid and q to quit.

With --backend the utilization grid is loaded from the backend API once
at startup instead of being generated locally.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchRefresh, "refresh", time.Second, "redraw interval")
	watchCmd.Flags().BoolVar(&watchBackend, "backend", false, "load the utilization grid from the backend api")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	liveFeed := api.NewLiveFeed(cfg.Feed, api.LiveFeedOptions{})
	if watchBackend {
		loadGrid(ctx, cfg, liveFeed)
	}
	if err := liveFeed.Mount(ctx); err != nil {
		return fmt.Errorf("failed to start live feed: %w", err)
	}
	defer liveFeed.Unmount()

	return tui.Run(ctx, tui.NewModel(liveFeed, api.ChartNames(), watchRefresh))
}

// loadGrid keeps the generated grid when the backend cannot be reached.
func loadGrid(ctx context.Context, cfg *config.Config, liveFeed *api.LiveFeed) {
	client := clientsets.NewClient(clientsets.ConfigFrom(cfg.API))
	grid, err := client.Dashboard().CPUUtilizationGrid(ctx)
	if err != nil {
		log.Debugf("Using generated utilization grid: %v", err)
		return
	}
	liveFeed.SetGrid(grid)
}
