// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package view

import (
	"strconv"

	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/feed"
)

const (
	TrendUp   = "up"
	TrendDown = "down"

	defaultIcon = "CircleDashed"
)

var knownIcons = map[string]bool{
	"Server":   true,
	"Cpu":      true,
	"Activity": true,
	"Network":  true,
}

type StatCardView struct {
	Title     string `json:"title"`
	Value     string `json:"value"`
	Trend     string `json:"trend"`
	Direction string `json:"direction"`
	Period    string `json:"period"`
	Icon      string `json:"icon"`
	Updates   int    `json:"updates"`
}

func StatCard(card feed.StatCard) StatCardView {
	icon := card.Icon
	if !knownIcons[icon] {
		icon = defaultIcon
	}
	return StatCardView{
		Title:     card.Title,
		Value:     card.Prefix + FormatNumber(card.Value) + card.Suffix,
		Trend:     card.Trend + "%",
		Direction: trendDirection(card.Trend),
		Period:    card.Period,
		Icon:      icon,
		Updates:   card.Updates,
	}
}

func StatCards(cards []feed.StatCard) []StatCardView {
	out := make([]StatCardView, 0, len(cards))
	for _, c := range cards {
		out = append(out, StatCard(c))
	}
	return out
}

// trendDirection treats unparsable trends as flat, i.e. up.
func trendDirection(trend string) string {
	v, err := strconv.ParseFloat(trend, 64)
	if err == nil && v < 0 {
		return TrendDown
	}
	return TrendUp
}
