// Copyright 2025 Draftforge Users
// SPDX-License-Identifier: Apache-2.0

// Package forge launches the Forge simulator jar and extracts game outcomes
// from its console output.
package forge

// Match describes one simulated game between two deck files. Opponent may be
// left empty, in which case the runner draws one from its candidate list.
type Match struct {
	Deck     string `json:"deck"`
	Opponent string `json:"opponent,omitempty"`
}

// Invocation is the fully built command line for one simulator run: binary,
// ordered argument tokens, and working directory. Immutable once built and
// consumed exactly once.
type Invocation struct {
	Binary string
	Args   []string
	Dir    string
}

// Output holds the captured text streams of a completed invocation, line
// endings normalized to \n. It lives only as long as the caller needs the
// text; nothing is persisted here.
type Output struct {
	Stdout string
	Stderr string
}

// Outcome is the parsed result of a single game.
type Outcome struct {
	Winner     int   `json:"winner"`
	DurationMS int64 `json:"duration_ms"`
}
