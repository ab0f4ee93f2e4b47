// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package cmd

import (
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/config"
	"github.com/spf13/cobra"
)

var cfgFile string

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Silicon Dashboard - live compute metrics for pools, nodes and workflows",
	Long: `Silicon Dashboard serves simulated live metrics for a compute cluster
over HTTP and WebSocket, and proxies pool, device and workflow records
from the backend API.

Example:
  dashboard serve --config config.yaml
  dashboard watch
  dashboard version`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $CONFIG_PATH or ./config.yaml)")
}

// loadConfig falls back to built-in defaults when no config file exists.
func loadConfig() (*config.Config, error) {
	return config.LoadConfigOrDefault(cfgFile)
}
