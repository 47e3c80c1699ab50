// Copyright 2025 Draftforge Users
// SPDX-License-Identifier: Apache-2.0

package forge

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/samthorne/draftforge/internal/errors"
)

const sampleOutput = `Forge simulation mode
Starting game 1 of 1
Turn 14: Ai(2) attacks
Game Result: Game 1 ended in 2723 ms. Ai(1)-Adventure - Low Black has won!
Match complete.
`

func TestExtractOutcome_PlayerOne(t *testing.T) {
	got, err := ExtractOutcome(sampleOutput)
	if err != nil {
		t.Fatalf("ExtractOutcome() error: %v", err)
	}
	if got.Winner != 1 {
		t.Errorf("Winner = %d, want 1", got.Winner)
	}
	if got.DurationMS != 2723 {
		t.Errorf("DurationMS = %d, want 2723", got.DurationMS)
	}
}

func TestExtractOutcome_PlayerTwo(t *testing.T) {
	out := "Game Result: Game 1 ended in 100345 ms. Ai(2)-Draft - draft_deck has won!\n"
	got, err := ExtractOutcome(out)
	if err != nil {
		t.Fatalf("ExtractOutcome() error: %v", err)
	}
	if got.Winner != 2 {
		t.Errorf("Winner = %d, want 2", got.Winner)
	}
	if got.DurationMS != 100345 {
		t.Errorf("DurationMS = %d, want 100345", got.DurationMS)
	}
}

func TestExtractOutcomes_WellFormedLines(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		winner   int
		duration int64
	}{
		{"zero duration", "Game Result: Game 1 ended in 0 ms. Ai(2) has won!", 2, 0},
		{"large game number", "Game Result: Game 9999 ended in 414 ms. Ai(1)-Mono Red has won!", 1, 414},
		{"punctuated deck name", "Game Result: Game 3 ended in 88 ms. Ai(2)-B/W Tokens (v2) has won!", 2, 88},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractOutcome(tt.line + "\n")
			if err != nil {
				t.Fatalf("ExtractOutcome() error: %v", err)
			}
			if got.Winner != tt.winner || got.DurationMS != tt.duration {
				t.Errorf("got (%d, %d), want (%d, %d)", got.Winner, got.DurationMS, tt.winner, tt.duration)
			}
		})
	}
}

func TestExtractOutcomes_NoResultLine(t *testing.T) {
	out := "Forge simulation mode\nloading decks\nGame 1 of 1\nexiting\n"
	outcomes, err := ExtractOutcomes(out)
	if !stderrors.Is(err, errors.ErrNoResult) {
		t.Fatalf("err = %v, want ErrNoResult", err)
	}
	if outcomes != nil {
		t.Errorf("outcomes = %v, want nil", outcomes)
	}
}

func TestExtractOutcomes_EmptyInput(t *testing.T) {
	if _, err := ExtractOutcomes(""); !stderrors.Is(err, errors.ErrNoResult) {
		t.Fatalf("err = %v, want ErrNoResult", err)
	}
}

func TestExtractOutcomes_MultipleGames(t *testing.T) {
	out := strings.Join([]string{
		"Game Result: Game 1 ended in 2723 ms. Ai(1)-Adventure - Low Black has won!",
		"interleaved chatter",
		"Game Result: Game 2 ended in 1911 ms. Ai(2)-Dimir Control has won!",
	}, "\n")

	outcomes, err := ExtractOutcomes(out)
	if err != nil {
		t.Fatalf("ExtractOutcomes() error: %v", err)
	}
	if len(outcomes) != 2 {
		t.Fatalf("len(outcomes) = %d, want 2", len(outcomes))
	}
	if outcomes[0].Winner != 1 || outcomes[0].DurationMS != 2723 {
		t.Errorf("outcomes[0] = %+v, want winner 1, 2723 ms", outcomes[0])
	}
	if outcomes[1].Winner != 2 || outcomes[1].DurationMS != 1911 {
		t.Errorf("outcomes[1] = %+v, want winner 2, 1911 ms", outcomes[1])
	}
}

func TestExtractOutcomes_UnknownSeatSkipped(t *testing.T) {
	onlyUnknown := "Game Result: Game 1 ended in 52 ms. Ai(3)-Ghost has won!\n"
	if _, err := ExtractOutcomes(onlyUnknown); !stderrors.Is(err, errors.ErrNoResult) {
		t.Fatalf("err = %v, want ErrNoResult for unknown seat", err)
	}

	mixed := onlyUnknown + "Game Result: Game 2 ended in 61 ms. Ai(2)-Ghost has won!\n"
	outcomes, err := ExtractOutcomes(mixed)
	if err != nil {
		t.Fatalf("ExtractOutcomes() error: %v", err)
	}
	if len(outcomes) != 1 || outcomes[0].Winner != 2 {
		t.Errorf("outcomes = %+v, want single winner-2 outcome", outcomes)
	}
}

func TestExtractOutcomes_NearMissLines(t *testing.T) {
	nearMisses := []string{
		"Game Result: Game 1 ended in 2723 ms. Ai(1)-Adventure - Low Black",
		"Game 1 ended in 2723 ms. Ai(1) has won!",
		"Game Result: Game 1 ended in ms. Ai(1) has won!",
		"Game Result: Game 1 ended in 2723 ms. Player(1) has won!",
	}
	for _, line := range nearMisses {
		if _, err := ExtractOutcomes(line + "\n"); !stderrors.Is(err, errors.ErrNoResult) {
			t.Errorf("line %q: err = %v, want ErrNoResult", line, err)
		}
	}
}

func TestExtractOutcomes_Idempotent(t *testing.T) {
	first, err1 := ExtractOutcomes(sampleOutput)
	second, err2 := ExtractOutcomes(sampleOutput)
	if err1 != nil || err2 != nil {
		t.Fatalf("errors: %v, %v", err1, err2)
	}
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("outcome %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}
