// Copyright 2025 Draftforge Users
// SPDX-License-Identifier: Apache-2.0

// Package config loads draftforge settings from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// DefaultJar is the Forge archive name used when none is configured.
const DefaultJar = "forge-gui-desktop-2.0.01-jar-with-dependencies.jar"

// Config carries every knob the CLI and RPC surfaces share. Zero values for
// the path fields are resolved against the user config dir at load time.
type Config struct {
	ForgeDir     string   `env:"DRAFTFORGE_FORGE_DIR"`
	ForgeJar     string   `env:"DRAFTFORGE_FORGE_JAR" envDefault:"forge-gui-desktop-2.0.01-jar-with-dependencies.jar"`
	JavaBin      string   `env:"DRAFTFORGE_JAVA_BIN" envDefault:"java"`
	DecksDir     string   `env:"DRAFTFORGE_DECKS_DIR"`
	CardPool     string   `env:"DRAFTFORGE_CARD_POOL" envDefault:"fdn_cards.json"`
	Opponents    []string `env:"DRAFTFORGE_OPPONENTS" envSeparator:"," envDefault:"draft_deck.dck"`
	HistoryDB    string   `env:"DRAFTFORGE_HISTORY_DB"`
	OTLPEndpoint string   `env:"DRAFTFORGE_OTLP_ENDPOINT"`
}

// Load parses the environment and fills in derived defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DecksDir == "" {
		cfg.DecksDir = defaultDecksDir()
	}
	if cfg.HistoryDB == "" {
		cfg.HistoryDB = defaultHistoryPath()
	}
	return cfg, nil
}

// defaultDecksDir is where Forge reads constructed decks from. On Windows
// this resolves under AppData\Roaming, matching a stock Forge install.
func defaultDecksDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join("decks", "constructed")
	}
	return filepath.Join(base, "Forge", "decks", "constructed")
}

func defaultHistoryPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "draftforge-history.db"
	}
	return filepath.Join(base, "draftforge", "history.db")
}
