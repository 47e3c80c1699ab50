// Copyright 2025 Draftforge Users
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/samthorne/draftforge/internal/api"
	"github.com/samthorne/draftforge/internal/forge"
	"github.com/samthorne/draftforge/internal/history"
	"github.com/samthorne/draftforge/internal/logger"
)

var serveAddrFlag string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve simulation and history over JSON-RPC",
	Long: `Expose Sim.Run and History.Recent as JSON-RPC methods over HTTP.
Requests go to POST /rpc; /healthz answers liveness probes. The server
runs until interrupted.`,
	Example: `  draftforge serve
  draftforge serve --addr 0.0.0.0:8645

  # One game via curl
  curl -s -X POST http://127.0.0.1:8645/rpc \
    -H 'Content-Type: application/json' \
    -d '{"method":"Sim.Run","params":[{"deck":"draft_deck.dck"}],"id":1}'`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return api.ValidateListenAddr(serveAddrFlag)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		runner, err := forge.NewRunner(cfg)
		if err != nil {
			return err
		}

		store, err := history.Open(cfg.HistoryDB)
		if err != nil {
			logger.Logger.Warn("history unavailable, serving without persistence", "error", err)
			store = nil
		} else {
			defer func() { _ = store.Close() }()
		}

		handler, err := api.NewHandler(runner, store)
		if err != nil {
			return err
		}
		return api.Serve(cmd.Context(), serveAddrFlag, handler)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddrFlag, "addr", "127.0.0.1:8645", "Listen address (host:port)")

	rootCmd.AddCommand(serveCmd)
}
