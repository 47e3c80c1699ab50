// Copyright 2025 Draftforge Users
// SPDX-License-Identifier: Apache-2.0

package forge

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/samthorne/draftforge/internal/errors"
)

// resultPattern matches the simulator's per-game result line, e.g.
//
//	Game Result: Game 1 ended in 2723 ms. Ai(1)-Adventure - Low Black has won!
//
// Capture groups: elapsed milliseconds, winning AI seat.
var resultPattern = regexp.MustCompile(`Game Result: Game \d+ ended in (\d+) ms\. Ai\((\d)\)[^\n]*has won!`)

// ExtractOutcomes scans the full stdout text for result lines and returns
// one Outcome per reported game, in output order. Winner and duration always
// come from the same matched line. Lines naming a seat other than 1 or 2 are
// indeterminate and skipped. When nothing usable is found the return is a
// wrapped ErrNoResult; callers treat that as an unknown outcome.
//
// Pure function of its input: the same text always yields the same outcomes.
func ExtractOutcomes(stdout string) ([]Outcome, error) {
	lines := strings.Split(stdout, "\n")
	var outcomes []Outcome
	for _, line := range lines {
		m := resultPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		ms, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			continue
		}
		winner, _ := strconv.Atoi(m[2])
		if winner != 1 && winner != 2 {
			continue
		}
		outcomes = append(outcomes, Outcome{Winner: winner, DurationMS: ms})
	}
	if len(outcomes) == 0 {
		return nil, errors.WrapNoResult(len(lines))
	}
	return outcomes, nil
}

// ExtractOutcome returns the outcome of a single-game run (the first result
// line found).
func ExtractOutcome(stdout string) (Outcome, error) {
	outcomes, err := ExtractOutcomes(stdout)
	if err != nil {
		return Outcome{}, err
	}
	return outcomes[0], nil
}
