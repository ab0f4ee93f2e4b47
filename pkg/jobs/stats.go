// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package jobs

// ExecutionStats summarizes one job run.
type ExecutionStats struct {
	RecordsProcessed int64                  `json:"records_processed,omitempty"`
	ItemsUpdated     int64                  `json:"items_updated,omitempty"`
	QueryDuration    float64                `json:"query_duration,omitempty"`
	CustomMetrics    map[string]interface{} `json:"custom_metrics,omitempty"`
	Messages         []string               `json:"messages,omitempty"`
}

func NewExecutionStats() *ExecutionStats {
	return &ExecutionStats{
		CustomMetrics: make(map[string]interface{}),
		Messages:      make([]string, 0),
	}
}

func (s *ExecutionStats) AddMessage(message string) {
	s.Messages = append(s.Messages, message)
}

func (s *ExecutionStats) AddCustomMetric(key string, value interface{}) {
	s.CustomMetrics[key] = value
}
