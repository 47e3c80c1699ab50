// Copyright 2025 Draftforge Users
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samthorne/draftforge/internal/forge"
)

// buildVersion is stamped by the release build via -ldflags.
var buildVersion = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build and Forge versions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "draftforge %s\n", buildVersion)

		v, err := forge.JarVersion(cfg.ForgeJar)
		if err != nil {
			fmt.Fprintf(w, "Forge: version unknown (%s)\n", cfg.ForgeJar)
			return nil
		}
		if _, err := forge.CheckJar(cfg.ForgeJar); err != nil {
			fmt.Fprintf(w, "Forge: %s (unsupported, need %s or newer)\n", v, forge.MinSimVersion)
			return nil
		}
		fmt.Fprintf(w, "Forge: %s\n", v)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
