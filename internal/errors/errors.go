// Copyright 2025 Draftforge Users
// SPDX-License-Identifier: Apache-2.0

package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for comparison with errors.Is
var (
	ErrForgeNotFound    = errors.New("forge installation not found")
	ErrSimulationFailed = errors.New("simulation process failed")
	ErrNoResult         = errors.New("no game result in simulator output")
	ErrNoCandidates     = errors.New("opponent candidate list is empty")
	ErrInvalidPick      = errors.New("invalid draft pick")
	ErrDraftComplete    = errors.New("draft already complete")
	ErrPoolExhausted    = errors.New("card pool too small for pack")
	ErrUnsupportedForge = errors.New("forge version does not support simulation")
	ErrInvalidDeckName  = errors.New("invalid deck name")
)

// Wrap functions for consistent error wrapping
func WrapForgeNotFound(msg string) error {
	return fmt.Errorf("%w: %s", ErrForgeNotFound, msg)
}

func WrapSimulationFailed(err error, stderr string) error {
	if stderr == "" {
		return fmt.Errorf("%w: %v", ErrSimulationFailed, err)
	}
	return fmt.Errorf("%w: %v, stderr: %s", ErrSimulationFailed, err, stderr)
}

func WrapNoResult(lines int) error {
	return fmt.Errorf("%w: scanned %d lines", ErrNoResult, lines)
}

func WrapInvalidPick(slot int) error {
	return fmt.Errorf("%w: slot %d", ErrInvalidPick, slot)
}

func WrapPoolExhausted(rarity string, want, have int) error {
	return fmt.Errorf("%w: need %d %s cards, pool has %d", ErrPoolExhausted, want, rarity, have)
}

func WrapUnsupportedForge(got, min string) error {
	return fmt.Errorf("%w: found %s, need at least %s", ErrUnsupportedForge, got, min)
}

func WrapInvalidDeckName(name string) error {
	return fmt.Errorf("%w: %q", ErrInvalidDeckName, name)
}
