// Copyright 2025 Draftforge Users
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samthorne/draftforge/internal/history"
	"github.com/samthorne/draftforge/internal/logger"
)

var (
	historyLimitFlag    int
	historyDeckFlag     string
	historyOpponentFlag string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded match results",
	Long: `List matches recorded by 'sim' and 'gauntlet', most recent first.
Deck and opponent filters match on substrings.`,
	Example: `  draftforge history
  draftforge history --limit 50
  draftforge history --deck draft_deck --opponent mono_red`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := history.Open(cfg.HistoryDB)
		if err != nil {
			return fmt.Errorf("open history: %w", err)
		}
		defer func() { _ = store.Close() }()

		matches, err := store.List(history.Query{
			Deck:     historyDeckFlag,
			Opponent: historyOpponentFlag,
			Limit:    historyLimitFlag,
		})
		if err != nil {
			return err
		}

		rendered, err := newFormatter().Format(matches)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	},
}

// saveMatches records outcomes without failing the calling command; history
// is a convenience, not part of the result.
func saveMatches(path string, matches []history.Match) {
	if len(matches) == 0 {
		return
	}
	store, err := history.Open(path)
	if err != nil {
		logger.Logger.Warn("history unavailable", "path", path, "error", err)
		return
	}
	defer func() { _ = store.Close() }()

	for i := range matches {
		if err := store.SaveMatch(&matches[i]); err != nil {
			logger.Logger.Warn("failed to record match", "error", err)
		}
	}
}

func init() {
	historyCmd.Flags().IntVar(&historyLimitFlag, "limit", 0, "Maximum rows to list (default 20)")
	historyCmd.Flags().StringVar(&historyDeckFlag, "deck", "", "Only matches whose deck name contains this")
	historyCmd.Flags().StringVar(&historyOpponentFlag, "opponent", "", "Only matches whose opponent name contains this")

	rootCmd.AddCommand(historyCmd)
}
