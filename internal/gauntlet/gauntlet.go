// Copyright 2025 Draftforge Users
// SPDX-License-Identifier: Apache-2.0

// Package gauntlet evaluates a deck by playing it against a list of opponent
// decks, one simulator game per opponent, fanned out over a worker pool.
package gauntlet

import (
	"context"
	"runtime"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samthorne/draftforge/internal/analytics"
	"github.com/samthorne/draftforge/internal/errors"
	"github.com/samthorne/draftforge/internal/forge"
	"github.com/samthorne/draftforge/internal/logger"
)

var tracer = otel.Tracer("draftforge/gauntlet")

// MatchResult is the outcome of one opponent matchup. Err carries a launch
// or parse failure for this opponent only; the rest of the gauntlet is
// unaffected.
type MatchResult struct {
	Opponent string         `json:"opponent"`
	Outcome  *forge.Outcome `json:"outcome,omitempty"`
	Err      error          `json:"-"`
}

// Result aggregates a full gauntlet run.
type Result struct {
	Deck    string            `json:"deck"`
	Matches []MatchResult     `json:"matches"`
	Summary analytics.Summary `json:"summary"`
}

// Gauntlet fans independent single-game invocations out over Workers
// goroutines. Each invocation is still synchronous and uncancellable on its
// own; cancelling the context stops dispatching further opponents while
// in-flight games run to completion.
type Gauntlet struct {
	Runner  forge.Runner
	Workers int
	// OnResult, when set, observes each match as it completes. Called from
	// the collection goroutine, never concurrently.
	OnResult func(MatchResult)
}

// New sizes a gauntlet to the machine. Workers can be lowered afterwards to
// keep JVM memory in check.
func New(runner forge.Runner) *Gauntlet {
	return &Gauntlet{
		Runner:  runner,
		Workers: runtime.GOMAXPROCS(0),
	}
}

// Run plays deck against every opponent once and folds the outcomes into a
// summary. A cancelled context returns the partial result alongside the
// context error.
func (g *Gauntlet) Run(ctx context.Context, deck string, opponents []string) (*Result, error) {
	if len(opponents) == 0 {
		return nil, errors.ErrNoCandidates
	}

	workers := g.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(opponents) {
		workers = len(opponents)
	}

	ctx, span := tracer.Start(ctx, "gauntlet.run", trace.WithAttributes(
		attribute.String("deck", deck),
		attribute.Int("opponents", len(opponents)),
		attribute.Int("workers", workers),
	))
	defer span.End()

	logger.Logger.Info("starting gauntlet", "deck", deck, "opponents", len(opponents), "workers", workers)

	jobs := make(chan string)
	results := make(chan MatchResult, len(opponents))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case opponent, ok := <-jobs:
					if !ok {
						return
					}
					results <- g.play(ctx, deck, opponent)
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, opponent := range opponents {
			select {
			case jobs <- opponent:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	res := &Result{Deck: deck}
	var outcomes []forge.Outcome
	for mr := range results {
		res.Matches = append(res.Matches, mr)
		if mr.Outcome != nil {
			outcomes = append(outcomes, *mr.Outcome)
		}
		if g.OnResult != nil {
			g.OnResult(mr)
		}
	}
	res.Summary = analytics.Summarize(outcomes)

	if err := ctx.Err(); err != nil {
		logger.Logger.Warn("gauntlet cancelled", "played", len(res.Matches), "of", len(opponents))
		return res, err
	}
	logger.Logger.Info("gauntlet complete", "wins", res.Summary.Wins, "games", res.Summary.Games, "win_rate", res.Summary.WinRate)
	return res, nil
}

// play runs one matchup: launch the simulator, then extract the outcome from
// its stdout. Failures land in the result row.
func (g *Gauntlet) play(ctx context.Context, deck, opponent string) MatchResult {
	_, span := tracer.Start(ctx, "gauntlet.match", trace.WithAttributes(
		attribute.String("opponent", opponent),
	))
	defer span.End()

	mr := MatchResult{Opponent: opponent}

	out, err := g.Runner.Run(forge.Match{Deck: deck, Opponent: opponent})
	if err != nil {
		span.RecordError(err)
		logger.Logger.Warn("matchup failed", "opponent", opponent, "error", err)
		mr.Err = err
		return mr
	}

	outcome, err := forge.ExtractOutcome(out.Stdout)
	if err != nil {
		span.RecordError(err)
		logger.Logger.Warn("matchup result unreadable", "opponent", opponent, "error", err)
		mr.Err = err
		return mr
	}

	span.SetAttributes(
		attribute.Int("winner", outcome.Winner),
		attribute.Int64("duration_ms", outcome.DurationMS),
	)
	logger.Logger.Info("matchup complete", "opponent", opponent, "winner", outcome.Winner, "duration_ms", outcome.DurationMS)
	mr.Outcome = &outcome
	return mr
}
