// Copyright 2025 Draftforge Users
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/samthorne/draftforge/internal/forge"
	"github.com/samthorne/draftforge/internal/gauntlet"
	"github.com/samthorne/draftforge/internal/history"
)

var (
	gauntletWorkersFlag   int
	gauntletOpponentsFlag []string
	gauntletNoSaveFlag    bool
)

var gauntletCmd = &cobra.Command{
	Use:   "gauntlet <deck>",
	Short: "Play one game against every gauntlet deck",
	Long: `Run <deck> against each opponent in the gauntlet, one game per matchup,
and summarize the record. Games run in parallel, one simulator process
per worker.

The opponent list comes from DRAFTFORGE_OPPONENTS unless --opponents is
given. Per-game failures are reported in the result table without
aborting the remaining matchups.`,
	Example: `  # Measure the drafted deck against the configured gauntlet
  draftforge gauntlet draft_deck.dck

  # Two simulator processes at a time, explicit opponents
  draftforge gauntlet draft_deck.dck --workers 2 --opponents mono_red.dck,mono_blue.dck`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		runner, err := forge.NewRunner(cfg)
		if err != nil {
			return err
		}

		opponents := cfg.Opponents
		if len(gauntletOpponentsFlag) > 0 {
			opponents = gauntletOpponentsFlag
		}

		g := gauntlet.New(runner)
		if gauntletWorkersFlag > 0 {
			g.Workers = gauntletWorkersFlag
		}

		bar := progressbar.Default(int64(len(opponents)), "simulating")
		g.OnResult = func(gauntlet.MatchResult) {
			_ = bar.Add(1)
		}

		res, err := g.Run(cmd.Context(), args[0], opponents)
		if err != nil {
			return err
		}
		_ = bar.Finish()

		if !gauntletNoSaveFlag {
			var rows []history.Match
			for _, mr := range res.Matches {
				if mr.Outcome == nil {
					continue
				}
				rows = append(rows, history.Match{
					Deck:       res.Deck,
					Opponent:   mr.Opponent,
					Winner:     mr.Outcome.Winner,
					DurationMS: mr.Outcome.DurationMS,
				})
			}
			saveMatches(cfg.HistoryDB, rows)
		}

		rendered, err := newFormatter().Format(res)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	},
}

func init() {
	gauntletCmd.Flags().IntVar(&gauntletWorkersFlag, "workers", 0, "Concurrent simulator processes (default: GOMAXPROCS)")
	gauntletCmd.Flags().StringSliceVar(&gauntletOpponentsFlag, "opponents", nil, "Opponent decks (default: configured gauntlet)")
	gauntletCmd.Flags().BoolVar(&gauntletNoSaveFlag, "no-save", false, "Skip recording outcomes in history")

	rootCmd.AddCommand(gauntletCmd)
}
