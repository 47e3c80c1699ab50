// Copyright 2025 Draftforge Users
// SPDX-License-Identifier: Apache-2.0

// Package api exposes simulation and match history over JSON-RPC.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/rpc"
	"github.com/gorilla/rpc/json"

	"github.com/samthorne/draftforge/internal/forge"
	"github.com/samthorne/draftforge/internal/history"
	"github.com/samthorne/draftforge/internal/logger"
)

// Runner is the slice of the forge runner the RPC surface needs: opponent
// resolution ahead of the launch, then the launch itself.
type Runner interface {
	Resolve(m forge.Match) (forge.Match, error)
	Run(m forge.Match) (*forge.Output, error)
}

// SimService handles Sim.* methods.
type SimService struct {
	runner Runner
	store  *history.Store // nil disables persistence
}

// SimRunArgs names the decks for one game. An empty opponent draws from the
// configured candidate list.
type SimRunArgs struct {
	Deck     string `json:"deck"`
	Opponent string `json:"opponent,omitempty"`
}

// SimRunReply reports the played matchup and its outcome.
type SimRunReply struct {
	Deck       string `json:"deck"`
	Opponent   string `json:"opponent"`
	Winner     int    `json:"winner"`
	DurationMS int64  `json:"duration_ms"`
}

// Run launches one game and extracts its outcome. The outcome is reported
// even when persisting it fails; storage problems only make noise in the
// log.
func (s *SimService) Run(r *http.Request, args *SimRunArgs, reply *SimRunReply) error {
	if args.Deck == "" {
		return fmt.Errorf("deck is required")
	}

	m, err := s.runner.Resolve(forge.Match{Deck: args.Deck, Opponent: args.Opponent})
	if err != nil {
		return err
	}

	out, err := s.runner.Run(m)
	if err != nil {
		return err
	}
	outcome, err := forge.ExtractOutcome(out.Stdout)
	if err != nil {
		return err
	}

	if s.store != nil {
		record := history.Match{
			Deck:       m.Deck,
			Opponent:   m.Opponent,
			Winner:     outcome.Winner,
			DurationMS: outcome.DurationMS,
		}
		if err := s.store.SaveMatch(&record); err != nil {
			logger.Logger.Warn("failed to persist match", "error", err)
		}
	}

	reply.Deck = m.Deck
	reply.Opponent = m.Opponent
	reply.Winner = outcome.Winner
	reply.DurationMS = outcome.DurationMS
	return nil
}

// HistoryService handles History.* methods.
type HistoryService struct {
	store *history.Store
}

// HistoryRecentArgs filters the listing; zero values mean no filter and the
// default row count.
type HistoryRecentArgs struct {
	Limit    int    `json:"limit,omitempty"`
	Deck     string `json:"deck,omitempty"`
	Opponent string `json:"opponent,omitempty"`
}

// HistoryRecentReply carries matching rows, most recent first.
type HistoryRecentReply struct {
	Matches []history.Match `json:"matches"`
}

// Recent lists stored matches.
func (s *HistoryService) Recent(r *http.Request, args *HistoryRecentArgs, reply *HistoryRecentReply) error {
	if s.store == nil {
		return fmt.Errorf("history store unavailable")
	}
	matches, err := s.store.List(history.Query{
		Deck:     args.Deck,
		Opponent: args.Opponent,
		Limit:    args.Limit,
	})
	if err != nil {
		return err
	}
	reply.Matches = matches
	return nil
}

// NewHandler builds the HTTP handler: the JSON-RPC endpoint at /rpc and a
// liveness probe at /healthz.
func NewHandler(runner Runner, store *history.Store) (http.Handler, error) {
	s := rpc.NewServer()
	s.RegisterCodec(json.NewCodec(), "application/json")
	if err := s.RegisterService(&SimService{runner: runner, store: store}, "Sim"); err != nil {
		return nil, fmt.Errorf("register sim service: %w", err)
	}
	if err := s.RegisterService(&HistoryService{store: store}, "History"); err != nil {
		return nil, fmt.Errorf("register history service: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/rpc", s)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})
	return mux, nil
}

// Serve runs the handler until the context is cancelled, then shuts down
// gracefully.
func Serve(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	logger.Logger.Info("rpc server listening", "addr", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
