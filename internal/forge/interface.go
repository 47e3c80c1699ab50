// Copyright 2025 Draftforge Users
// SPDX-License-Identifier: Apache-2.0

package forge

// Runner launches one game and returns its captured streams. GameRunner is
// the real implementation; tests substitute canned output.
type Runner interface {
	Run(m Match) (*Output, error)
}
