// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

// Package tui renders the live feed in the terminal.
package tui

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/feed"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/view"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultRefresh = time.Second
	defaultWidth   = 100
	cardsPerRow    = 4
)

// Source is the live feed as seen by the terminal view.
type Source interface {
	Chart(name string) (*feed.Chart, bool)
	Stats() []feed.StatCard
	WorkflowTitle() string
	Workflows() []feed.Workflow
	Grid() []int
}

type tickMsg time.Time

type Model struct {
	mu       sync.Mutex
	source   Source
	charts   []string
	active   int
	theme    view.Theme
	refresh  time.Duration
	now      func() time.Time
	width    int
	height   int
	frames   int
	showGrid bool
}

func NewModel(source Source, charts []string, refresh time.Duration) *Model {
	if refresh <= 0 {
		refresh = defaultRefresh
	}
	return &Model{
		source:   source,
		charts:   charts,
		theme:    view.DefaultTheme(),
		refresh:  refresh,
		now:      time.Now,
		width:    defaultWidth,
		showGrid: true,
	}
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.refresh, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) Init() tea.Cmd {
	return m.tick()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.mu.Lock()
		m.width = msg.Width
		m.height = msg.Height
		m.mu.Unlock()
		return m, nil

	case tickMsg:
		m.mu.Lock()
		m.frames++
		m.mu.Unlock()
		return m, m.tick()

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	//nolint:exhaustive // Only handling specific keys
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyTab:
		m.mu.Lock()
		if len(m.charts) > 0 {
			m.active = (m.active + 1) % len(m.charts)
		}
		m.mu.Unlock()
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return m, nil
		}
		switch msg.Runes[0] {
		case 'q':
			return m, tea.Quit
		case 'g':
			m.mu.Lock()
			m.showGrid = !m.showGrid
			m.mu.Unlock()
		}
	default:
	}
	return m, nil
}

// ActiveChart is the name of the chart currently shown.
func (m *Model) ActiveChart() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.charts) == 0 {
		return ""
	}
	return m.charts[m.active]
}

func (m *Model) View() string {
	m.mu.Lock()
	width := m.width
	showGrid := m.showGrid
	m.mu.Unlock()

	sections := []string{
		lipgloss.NewStyle().Foreground(m.theme.Title).Bold(true).Render("Silicon Dashboard"),
		m.renderCards(width),
	}
	if name := m.ActiveChart(); name != "" {
		if chart, ok := m.source.Chart(name); ok {
			cv := view.AreaChart(chart.Config(), chart.Mode(), chart.Snapshot())
			sections = append(sections, m.theme.RenderChart(cv, sparkWidth(width)))
		}
	}
	sections = append(sections, m.theme.RenderWorkflows(m.source.WorkflowTitle(), m.source.Workflows()))
	if showGrid {
		sections = append(sections, m.theme.RenderHeatGrid(view.HeatGrid(m.source.Grid(), feed.DefaultGridColumns, m.now())))
	}
	sections = append(sections, lipgloss.NewStyle().Foreground(m.theme.Faint).Render("tab: switch chart • g: toggle grid • q: quit"))
	return strings.Join(sections, "\n\n")
}

func (m *Model) renderCards(width int) string {
	cards := view.StatCards(m.source.Stats())
	cardWidth := width/cardsPerRow - 2
	if cardWidth < 16 {
		cardWidth = 16
	}
	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		rendered = append(rendered, m.theme.RenderStatCard(c, cardWidth))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// sparkWidth leaves room for the series label and tooltip.
func sparkWidth(width int) int {
	w := width - 36
	if w < 10 {
		return 10
	}
	return w
}

// Run blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, model *Model) error {
	p := tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen())
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
