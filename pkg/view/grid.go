// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package view

import (
	"fmt"
	"time"

	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/feed"
)

const (
	DefaultGridTitle       = "CPU Core Utilization"
	DefaultGridDescription = "Daily utilization for the past year"
	gridDateLayout         = "Mon, Jan 2, 2006"
)

type GridCell struct {
	Index   int    `json:"index"`
	Value   int    `json:"value"`
	Level   int    `json:"level"`
	Date    string `json:"date"`
	Tooltip string `json:"tooltip"`
}

type HeatGridView struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Columns     int        `json:"columns"`
	Rows        int        `json:"rows"`
	Cells       []GridCell `json:"cells"`
}

// HeatGrid lays values out oldest first, the last cell being now.
func HeatGrid(values []int, columns int, now time.Time) HeatGridView {
	if columns <= 0 {
		columns = feed.DefaultGridColumns
	}
	days := len(values)
	g := HeatGridView{
		Title:       DefaultGridTitle,
		Description: DefaultGridDescription,
		Columns:     columns,
		Rows:        feed.GridRows,
		Cells:       make([]GridCell, 0, days),
	}
	for i, v := range values {
		date := feed.DateForCell(now, days, i).Format(gridDateLayout)
		g.Cells = append(g.Cells, GridCell{
			Index:   i,
			Value:   v,
			Level:   feed.Level(v),
			Date:    date,
			Tooltip: fmt.Sprintf("%s: %d%% utilized", date, v),
		})
	}
	return g
}
