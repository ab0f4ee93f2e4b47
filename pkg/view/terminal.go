// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package view

import (
	"fmt"
	"math"
	"strings"

	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/feed"
	"github.com/charmbracelet/lipgloss"
)

// Theme holds the terminal palette. Colors are ANSI 256 indexes or hex strings.
type Theme struct {
	Title      lipgloss.Color
	Faint      lipgloss.Color
	Up         lipgloss.Color
	Down       lipgloss.Color
	Border     lipgloss.Color
	GridLevels [feed.MaxLevel + 1]lipgloss.Color
	Status     map[feed.WorkflowStatus]lipgloss.Color
	Silicon    map[string]lipgloss.Color
}

func DefaultTheme() Theme {
	return Theme{
		Title:  lipgloss.Color("255"),
		Faint:  lipgloss.Color("245"),
		Up:     lipgloss.Color("#4ade80"),
		Down:   lipgloss.Color("#f87171"),
		Border: lipgloss.Color("238"),
		GridLevels: [feed.MaxLevel + 1]lipgloss.Color{
			lipgloss.Color("236"),
			lipgloss.Color("22"),
			lipgloss.Color("28"),
			lipgloss.Color("34"),
			lipgloss.Color("40"),
			lipgloss.Color("46"),
		},
		Status: map[feed.WorkflowStatus]lipgloss.Color{
			feed.WorkflowCompleted: lipgloss.Color("#4ade80"),
			feed.WorkflowRunning:   lipgloss.Color("#60a5fa"),
			feed.WorkflowFailed:    lipgloss.Color("#f87171"),
		},
		Silicon: map[string]lipgloss.Color{
			"GPU A100": lipgloss.Color("#38bdf8"),
			"GPU H100": lipgloss.Color("#34d399"),
			"TPU v4":   lipgloss.Color("#facc15"),
			"CPU EPYC": lipgloss.Color("#fb7185"),
		},
	}
}

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// RenderSparkline draws the last width values scaled between their min and max.
func RenderSparkline(values []float64, width int) string {
	if width > 0 && len(values) > width {
		values = values[len(values)-width:]
	}
	if len(values) == 0 {
		return ""
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	var sb strings.Builder
	for _, v := range values {
		idx := 0
		if hi > lo {
			idx = int((v - lo) / (hi - lo) * float64(len(sparkBlocks)-1))
		}
		sb.WriteRune(sparkBlocks[idx])
	}
	return sb.String()
}

func (t Theme) RenderStatCard(card StatCardView, width int) string {
	trendColor := t.Up
	if card.Direction == TrendDown {
		trendColor = t.Down
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Foreground(t.Faint).Render(card.Title),
		lipgloss.NewStyle().Foreground(t.Title).Bold(true).Render(card.Value),
		lipgloss.NewStyle().Foreground(trendColor).Render(card.Trend)+" "+
			lipgloss.NewStyle().Foreground(t.Faint).Render(card.Period),
	)
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(body)
}

// RenderHeatGrid fills the grid row by row, one glyph per day.
func (t Theme) RenderHeatGrid(g HeatGridView) string {
	if g.Columns <= 0 || g.Rows <= 0 {
		return ""
	}
	rows := make([]strings.Builder, g.Rows)
	for _, cell := range g.Cells {
		row := cell.Index / g.Columns
		if row >= g.Rows {
			break
		}
		rows[row].WriteString(lipgloss.NewStyle().Foreground(t.GridLevels[cell.Level]).Render("■"))
	}
	lines := make([]string, 0, g.Rows+1)
	lines = append(lines, lipgloss.NewStyle().Foreground(t.Title).Bold(true).Render(g.Title))
	for i := range rows {
		lines = append(lines, rows[i].String())
	}
	return strings.Join(lines, "\n")
}

// RenderChart draws one sparkline per series using display values.
func (t Theme) RenderChart(c ChartView, width int) string {
	lines := []string{lipgloss.NewStyle().Foreground(t.Title).Bold(true).Render(c.Title)}
	for _, s := range c.Series {
		values := make([]float64, 0, len(c.Points))
		last := ""
		for _, p := range c.Points {
			if v, ok := p.Values[s.Key]; ok {
				values = append(values, v.Display)
				last = v.Tooltip
			}
		}
		label := lipgloss.NewStyle().Width(20).Foreground(t.Faint).Render(s.Name)
		lines = append(lines, fmt.Sprintf("%s %s %s", label, RenderSparkline(values, width), last))
	}
	return strings.Join(lines, "\n")
}

func (t Theme) RenderWorkflows(title string, rows []feed.Workflow) string {
	lines := []string{lipgloss.NewStyle().Foreground(t.Title).Bold(true).Render(title)}
	for _, w := range rows {
		if w.ToRemove {
			continue
		}
		lines = append(lines, fmt.Sprintf("%-8s %-18s %s %s %s",
			w.ID,
			w.Name,
			lipgloss.NewStyle().Width(10).Foreground(t.Status[w.Status]).Render(string(w.Status)),
			lipgloss.NewStyle().Width(9).Foreground(t.Silicon[w.SiliconType]).Render(w.SiliconType),
			w.Duration,
		))
	}
	return strings.Join(lines, "\n")
}
