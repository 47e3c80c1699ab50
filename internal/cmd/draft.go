// Copyright 2025 Draftforge Users
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/samthorne/draftforge/internal/deck"
	"github.com/samthorne/draftforge/internal/draft"
)

var (
	draftSeedFlag        int64
	draftStrategyFlag    string
	draftInteractiveFlag bool
	draftNameFlag        string
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Draft a deck from the card pool",
	Long: `Run an eight-seat booster draft: three rounds of fifteen-card packs,
passed to the right after every pick. Seat 0 is yours; the other seven
seats pick at random.

The forty-five drafted cards become a sixty-card deck (thirty-three
spells plus basic lands matched to the deck's colors) written to the
Forge constructed decks directory, ready for 'draftforge sim'.`,
	Example: `  # Bot-draft with the default strategy
  draftforge draft

  # Reproduce an earlier draft
  draftforge draft --seed 8631795121788135445

  # Pick by hand
  draftforge draft --interactive --name my_draft`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if draftInteractiveFlag {
			return nil
		}
		_, err := draft.NewStrategy(draftStrategyFlag, draftSeedFlag)
		return err
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		pool, err := deck.LoadPool(cfg.CardPool)
		if err != nil {
			return fmt.Errorf("load card pool: %w", err)
		}

		seed := draftSeedFlag
		if seed == 0 {
			seed, err = draft.NewSeed()
			if err != nil {
				return err
			}
		}

		d, err := draft.New(pool, seed)
		if err != nil {
			return err
		}

		var picks []int
		if draftInteractiveFlag {
			picks, err = runInteractive(cmd, d, pool)
		} else {
			var strategy draft.Strategy
			strategy, err = draft.NewStrategy(draftStrategyFlag, seed)
			if err != nil {
				return err
			}
			picks, err = d.Run(strategy)
		}
		if err != nil {
			return err
		}

		deckList, err := deck.Build(pool, picks)
		if err != nil {
			return err
		}

		path, err := deck.WriteDck(cfg.DecksDir, draftNameFlag, pool, deckList)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Drafted %d cards (seed %d).\n", len(picks), seed)
		fmt.Fprintf(w, "Deck written: %s\n", path)
		fmt.Fprintf(w, "Run 'draftforge gauntlet %s.dck' to measure it.\n", draftNameFlag)
		return nil
	},
}

// runInteractive renders each pack and reads slot numbers from stdin until
// the draft completes. Bad input re-prompts without burning the pick.
func runInteractive(cmd *cobra.Command, d *draft.Draft, pool *deck.Pool) ([]int, error) {
	w := cmd.OutOrStdout()
	renderer := draft.NewRenderer(pool, w)
	scanner := bufio.NewScanner(cmd.InOrStdin())

	for !d.Done() {
		renderer.Render(d.View())
		fmt.Fprint(w, "Pick a slot: ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("input closed before the draft completed")
		}

		slot, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil {
			fmt.Fprintln(w, "Enter a slot number.")
			continue
		}
		if _, err := d.Pick(slot); err != nil {
			fmt.Fprintf(w, "Bad pick: %v\n", err)
		}
	}
	return d.Picks(), nil
}

func init() {
	draftCmd.Flags().Int64Var(&draftSeedFlag, "seed", 0, "Draft seed (0 picks a random seed)")
	draftCmd.Flags().StringVar(&draftStrategyFlag, "strategy", "first", "Pick strategy for seat 0 (first, random)")
	draftCmd.Flags().BoolVar(&draftInteractiveFlag, "interactive", false, "Pick by hand instead of using a strategy")
	draftCmd.Flags().StringVar(&draftNameFlag, "name", "draft_deck", "Deck name for the written .dck file")

	rootCmd.AddCommand(draftCmd)
}
