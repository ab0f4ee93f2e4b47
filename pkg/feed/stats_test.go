// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package feed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatProfiles(t *testing.T) {
	tests := []struct {
		title        string
		wantInterval time.Duration
		wantRate     float64
	}{
		{"Total Silicon Demand", 5 * time.Second, 3},
		{"Active Nodes", 7 * time.Second, 2},
		{"Pending Workflows", 3 * time.Second, 8},
		{"Network Utilization", 2 * time.Second, 1.5},
		{"Queue Depth", 4 * time.Second, 5},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.wantInterval, StatInterval(tt.title))
			assert.Equal(t, tt.wantRate, FluctuationRate(tt.title))
		})
	}
}

func TestStatChange(t *testing.T) {
	tests := []struct {
		name      string
		draw      float64
		base      float64
		rate      float64
		wantValue float64
		wantTrend string
	}{
		{"no change", 0.5, 1720, 3, 1720, "0.0"},
		{"max increase", 1, 1720, 3, 1745, "+1.5"},
		{"max decrease", 0, 1720, 3, 1694, "-1.5"},
		{"fractional base floors", 0.5, 86.5, 1.5, 86, "0.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, trend := StatChange(newSeqRand(tt.draw), tt.base, tt.rate)
			assert.Equal(t, tt.wantValue, value)
			assert.Equal(t, tt.wantTrend, trend)
		})
	}
}

func TestStatChangeBounds(t *testing.T) {
	rng := NewRandSource(9)
	for i := 0; i < 1000; i++ {
		value, _ := StatChange(rng, 148, 2)
		assert.GreaterOrEqual(t, value, 146.0)
		assert.LessOrEqual(t, value, 149.0)
	}
}

func TestDefaultStatCards(t *testing.T) {
	cards := DefaultStatCards()
	require.Len(t, cards, 4)
	assert.Equal(t, "Total Silicon Demand", cards[0].Title)
	assert.Equal(t, 1720.0, cards[0].Value)
	assert.Equal(t, " units", cards[0].Suffix)
	assert.Equal(t, 86.5, cards[3].Value)
	assert.Equal(t, "%", cards[3].Suffix)
}

func TestStatBoardUpdatesIndependently(t *testing.T) {
	board := NewStatBoard(DefaultStatCards(), StatBoardOptions{
		Rand: NewRandSource(2),
		Interval: func(title string) time.Duration {
			if title == "Active Nodes" {
				return time.Hour
			}
			return testInterval
		},
	})
	require.NoError(t, board.Mount(context.Background()))
	require.Eventually(t, func() bool {
		return board.Cards()[0].Updates >= 2
	}, time.Second, 5*time.Millisecond)
	board.Unmount()

	cards := board.Cards()
	assert.Equal(t, 0, cards[1].Updates)
	assert.Equal(t, 148.0, cards[1].Value)
	assert.Equal(t, 1720.0, cards[0].Base)
	assert.InDelta(t, 1720, cards[0].Value, 1720*0.015+1)

	frozen := board.Cards()
	time.Sleep(5 * testInterval)
	assert.Equal(t, frozen, board.Cards())
}

func TestStatBoardCannotRemount(t *testing.T) {
	board := NewStatBoard(DefaultStatCards()[:1], StatBoardOptions{
		Interval: func(string) time.Duration { return testInterval },
	})
	require.NoError(t, board.Mount(context.Background()))
	board.Unmount()
	assert.Error(t, board.Mount(context.Background()))
}
