// Copyright 2025 Draftforge Users
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"DRAFTFORGE_FORGE_DIR", "DRAFTFORGE_FORGE_JAR", "DRAFTFORGE_JAVA_BIN",
		"DRAFTFORGE_DECKS_DIR", "DRAFTFORGE_CARD_POOL", "DRAFTFORGE_OPPONENTS",
		"DRAFTFORGE_HISTORY_DB", "DRAFTFORGE_OTLP_ENDPOINT",
	} {
		t.Setenv(key, "placeholder") // register restore
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.ForgeJar != DefaultJar {
		t.Errorf("ForgeJar = %q, want %q", cfg.ForgeJar, DefaultJar)
	}
	if cfg.JavaBin != "java" {
		t.Errorf("JavaBin = %q, want java", cfg.JavaBin)
	}
	if cfg.CardPool != "fdn_cards.json" {
		t.Errorf("CardPool = %q, want fdn_cards.json", cfg.CardPool)
	}
	if len(cfg.Opponents) != 1 || cfg.Opponents[0] != "draft_deck.dck" {
		t.Errorf("Opponents = %v, want [draft_deck.dck]", cfg.Opponents)
	}
	if cfg.DecksDir == "" {
		t.Error("DecksDir default should not be empty")
	}
	if cfg.HistoryDB == "" {
		t.Error("HistoryDB default should not be empty")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DRAFTFORGE_FORGE_DIR", "/opt/forge")
	t.Setenv("DRAFTFORGE_JAVA_BIN", "/usr/lib/jvm/java-17/bin/java")
	t.Setenv("DRAFTFORGE_OPPONENTS", "DM_mdr.dck,adventurer.dck")
	t.Setenv("DRAFTFORGE_HISTORY_DB", "/tmp/history.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.ForgeDir != "/opt/forge" {
		t.Errorf("ForgeDir = %q, want /opt/forge", cfg.ForgeDir)
	}
	if !strings.HasSuffix(cfg.JavaBin, "bin/java") {
		t.Errorf("JavaBin = %q, want explicit java path", cfg.JavaBin)
	}
	if len(cfg.Opponents) != 2 {
		t.Fatalf("Opponents = %v, want two entries", cfg.Opponents)
	}
	if cfg.Opponents[0] != "DM_mdr.dck" || cfg.Opponents[1] != "adventurer.dck" {
		t.Errorf("Opponents = %v, want [DM_mdr.dck adventurer.dck]", cfg.Opponents)
	}
	if cfg.HistoryDB != "/tmp/history.db" {
		t.Errorf("HistoryDB = %q, want /tmp/history.db", cfg.HistoryDB)
	}
}
