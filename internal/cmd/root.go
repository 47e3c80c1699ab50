// Copyright 2025 Draftforge Users
// SPDX-License-Identifier: Apache-2.0

// Package cmd wires the draftforge subcommands.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/samthorne/draftforge/internal/config"
	"github.com/samthorne/draftforge/internal/format"
	"github.com/samthorne/draftforge/internal/logger"
)

var (
	formatFlag   string
	logLevelFlag string
	logJSONFlag  bool
)

// cfg is loaded once per invocation, before any subcommand runs.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "draftforge",
	Short: "Draft practice decks and pit them against Forge's AI",
	Long: `draftforge builds Magic decks through simulated booster drafts and measures
them by shelling out to the Forge simulator for AI-versus-AI games.

Game outcomes are parsed from the simulator transcript and recorded in a
local history database for later inspection.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch strings.ToLower(logLevelFlag) {
		case "debug":
			logger.SetLevel(slog.LevelDebug)
		case "info":
			logger.SetLevel(slog.LevelInfo)
		case "warn":
			logger.SetLevel(slog.LevelWarn)
		case "error":
			logger.SetLevel(slog.LevelError)
		default:
			return fmt.Errorf("unknown log level %q (valid: debug, info, warn, error)", logLevelFlag)
		}
		if logJSONFlag {
			logger.SetOutput(os.Stderr, true)
		}

		switch format.FormatType(formatFlag) {
		case format.FormatJSON, format.FormatTable:
		default:
			return fmt.Errorf("unknown format %q (valid: json, table)", formatFlag)
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load configuration: %w", err)
		}
		return nil
	},
}

// Execute runs the CLI with the given base context.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func newFormatter() *format.Formatter {
	return format.NewFormatter(format.FormatType(formatFlag))
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", string(format.FormatTable), "Output format (json, table)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&logJSONFlag, "log-json", false, "Emit logs as JSON")
}
