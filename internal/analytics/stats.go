// Copyright 2025 Draftforge Users
// SPDX-License-Identifier: Apache-2.0

package analytics

import (
	"github.com/samthorne/draftforge/internal/forge"
)

// Summary aggregates game outcomes from the primary deck's point of view.
// The primary deck always plays seat 1, so Winner == 1 counts as a win.
type Summary struct {
	Games    int           `json:"games"`
	Wins     int           `json:"wins"`
	WinRate  float64       `json:"win_rate"`
	Duration DurationStats `json:"duration_ms"`
}

// DurationStats summarizes game lengths in milliseconds.
type DurationStats struct {
	Min  int64   `json:"min"`
	Max  int64   `json:"max"`
	Mean float64 `json:"mean"`
}

// Summarize folds outcomes into a Summary. An empty slice yields the zero
// Summary rather than NaN rates.
func Summarize(outcomes []forge.Outcome) Summary {
	if len(outcomes) == 0 {
		return Summary{}
	}

	s := Summary{Games: len(outcomes)}
	var total int64
	for i, o := range outcomes {
		if o.Winner == 1 {
			s.Wins++
		}
		total += o.DurationMS
		if i == 0 || o.DurationMS < s.Duration.Min {
			s.Duration.Min = o.DurationMS
		}
		if o.DurationMS > s.Duration.Max {
			s.Duration.Max = o.DurationMS
		}
	}
	s.WinRate = float64(s.Wins) / float64(s.Games)
	s.Duration.Mean = float64(total) / float64(s.Games)
	return s
}
