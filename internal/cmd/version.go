// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package cmd

import (
	"fmt"

	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/api"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), versionString())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func versionString() string {
	s := "dashboard " + api.Version
	if api.CommitID != "" {
		s += " (" + api.CommitID + ")"
	}
	if api.BuildTime != "" {
		s += " built " + api.BuildTime
	}
	return s
}
