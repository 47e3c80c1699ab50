// Copyright 2025 Draftforge Users
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/samthorne/draftforge/internal/analytics"
	"github.com/samthorne/draftforge/internal/forge"
	"github.com/samthorne/draftforge/internal/gauntlet"
	"github.com/samthorne/draftforge/internal/history"
)

type FormatType string

const (
	FormatJSON  FormatType = "json"
	FormatTable FormatType = "table"
)

// Formatter renders domain values for CLI output, either as indented JSON or
// as aligned text tables.
type Formatter struct {
	format FormatType
}

func NewFormatter(format FormatType) *Formatter {
	return &Formatter{format: format}
}

func (f *Formatter) Format(data interface{}) (string, error) {
	switch f.format {
	case FormatJSON:
		return f.formatJSON(data)
	case FormatTable:
		return f.formatTable(data)
	default:
		return "", fmt.Errorf("unsupported format: %s", f.format)
	}
}

func (f *Formatter) formatJSON(data interface{}) (string, error) {
	output, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(output), nil
}

func (f *Formatter) formatTable(data interface{}) (string, error) {
	switch v := data.(type) {
	case forge.Outcome:
		return formatOutcomeTable(&v)
	case *forge.Outcome:
		return formatOutcomeTable(v)
	case *gauntlet.Result:
		return formatGauntletTable(v)
	case []history.Match:
		return formatHistoryTable(v)
	case analytics.Summary:
		return formatSummaryTable(&v)
	default:
		var buf bytes.Buffer
		w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintf(w, "Type:\t%T\n", v)
		_, _ = fmt.Fprintf(w, "Value:\t%v\n", v)
		_ = w.Flush()
		return buf.String(), nil
	}
}

func formatOutcomeTable(o *forge.Outcome) (string, error) {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "Winner:\tAi(%d)\n", o.Winner)
	_, _ = fmt.Fprintf(w, "Duration:\t%d ms\n", o.DurationMS)
	_ = w.Flush()
	return buf.String(), nil
}

func formatGauntletTable(r *gauntlet.Result) (string, error) {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintf(w, "OPPONENT\tRESULT\tDURATION\n")
	for _, m := range r.Matches {
		switch {
		case m.Err != nil:
			_, _ = fmt.Fprintf(w, "%s\terror: %v\t-\n", m.Opponent, m.Err)
		case m.Outcome.Winner == 1:
			_, _ = fmt.Fprintf(w, "%s\twin\t%d ms\n", m.Opponent, m.Outcome.DurationMS)
		default:
			_, _ = fmt.Fprintf(w, "%s\tloss\t%d ms\n", m.Opponent, m.Outcome.DurationMS)
		}
	}
	_ = w.Flush()

	summary, err := formatSummaryTable(&r.Summary)
	if err != nil {
		return "", err
	}
	return buf.String() + "\n" + summary, nil
}

func formatSummaryTable(s *analytics.Summary) (string, error) {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "Games:\t%d\n", s.Games)
	_, _ = fmt.Fprintf(w, "Wins:\t%d\n", s.Wins)
	_, _ = fmt.Fprintf(w, "Win Rate:\t%.1f%%\n", s.WinRate*100)
	if s.Games > 0 {
		_, _ = fmt.Fprintf(w, "Duration:\tmin %d ms, mean %.0f ms, max %d ms\n",
			s.Duration.Min, s.Duration.Mean, s.Duration.Max)
	}
	_ = w.Flush()
	return buf.String(), nil
}

func formatHistoryTable(matches []history.Match) (string, error) {
	if len(matches) == 0 {
		return "No matches recorded.\n", nil
	}

	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "PLAYED\tDECK\tOPPONENT\tWINNER\tDURATION\n")
	for _, m := range matches {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\tAi(%d)\t%d ms\n",
			m.CreatedAt.Format(time.DateTime), m.Deck, m.Opponent, m.Winner, m.DurationMS)
	}
	_ = w.Flush()
	return buf.String(), nil
}
