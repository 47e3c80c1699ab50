// Copyright 2025 Draftforge Users
// SPDX-License-Identifier: Apache-2.0

// draftforge drafts Magic decks and measures them against Forge's AI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/samthorne/draftforge/internal/cmd"
	"github.com/samthorne/draftforge/internal/config"
	"github.com/samthorne/draftforge/internal/logger"
	"github.com/samthorne/draftforge/internal/telemetry"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Logger.Error("invalid configuration", "error", err)
		return 1
	}

	shutdown, err := telemetry.Setup(ctx, cfg.OTLPEndpoint)
	if err != nil {
		logger.Logger.Warn("telemetry disabled", "error", err)
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Logger.Warn("telemetry shutdown failed", "error", err)
			}
		}()
	}

	if err := cmd.Execute(ctx); err != nil {
		return 1
	}
	return 0
}
