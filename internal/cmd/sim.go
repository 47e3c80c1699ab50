// Copyright 2025 Draftforge Users
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samthorne/draftforge/internal/forge"
	"github.com/samthorne/draftforge/internal/history"
)

var (
	simOpponentFlag string
	simNoSaveFlag   bool
)

var simCmd = &cobra.Command{
	Use:   "sim <deck>",
	Short: "Run one AI-versus-AI game",
	Long: `Launch the Forge simulator for a single game between <deck> and an
opponent, then report the winning seat and the game duration.

When --opponent is omitted the opponent is drawn at random from the
configured gauntlet (DRAFTFORGE_OPPONENTS). Deck names are resolved by
Forge against its constructed decks directory.`,
	Example: `  # Play the drafted deck against a random gauntlet deck
  draftforge sim draft_deck.dck

  # Pin the opponent
  draftforge sim draft_deck.dck --opponent mono_red.dck

  # Machine-readable outcome
  draftforge sim draft_deck.dck --format json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		runner, err := forge.NewRunner(cfg)
		if err != nil {
			return err
		}

		m, err := runner.Resolve(forge.Match{Deck: args[0], Opponent: simOpponentFlag})
		if err != nil {
			return err
		}

		out, err := runner.Run(m)
		if err != nil {
			return err
		}
		outcome, err := forge.ExtractOutcome(out.Stdout)
		if err != nil {
			return err
		}

		if !simNoSaveFlag {
			saveMatches(cfg.HistoryDB, []history.Match{{
				Deck:       m.Deck,
				Opponent:   m.Opponent,
				Winner:     outcome.Winner,
				DurationMS: outcome.DurationMS,
			}})
		}

		rendered, err := newFormatter().Format(outcome)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	},
}

func init() {
	simCmd.Flags().StringVar(&simOpponentFlag, "opponent", "", "Opponent deck (default: random gauntlet deck)")
	simCmd.Flags().BoolVar(&simNoSaveFlag, "no-save", false, "Skip recording the outcome in history")

	rootCmd.AddCommand(simCmd)
}
