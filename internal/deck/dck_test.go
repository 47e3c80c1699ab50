// Copyright 2025 Draftforge Users
// SPDX-License-Identifier: Apache-2.0

package deck

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samthorne/draftforge/internal/errors"
)

func TestEncodeDck_Format(t *testing.T) {
	p := testPool(t)
	shock := mustID(t, p, "Shock")
	island := mustID(t, p, "Island")

	var b strings.Builder
	err := EncodeDck(&b, "draft_deck", p, []int{shock, shock, island})
	if err != nil {
		t.Fatalf("EncodeDck() error: %v", err)
	}

	want := strings.Join([]string{
		"[metadata]",
		"Name=draft_deck",
		"[Main]",
		"1 Island|FDN|1",
		"2 Shock|FDN|1",
		"[Sideboard]",
		"",
		"[Avatar]",
		"",
		"[Planes]",
		"",
		"[Schemes]",
		"",
		"[Conspiracy]",
		"",
		"[Dungeon]",
		"",
		"[Attractions]",
		"",
		"[Contraptions]",
		"",
	}, "\n") + "\n"

	if b.String() != want {
		t.Errorf("encoded deck mismatch\ngot:\n%s\nwant:\n%s", b.String(), want)
	}
}

func TestEncodeDck_SortedByName(t *testing.T) {
	p := testPool(t)
	deck := []int{
		mustID(t, p, "Wind Drake"),
		mustID(t, p, "Cancel"),
		mustID(t, p, "Shock"),
		mustID(t, p, "Cancel"),
	}

	var b strings.Builder
	if err := EncodeDck(&b, "mix", p, deck); err != nil {
		t.Fatalf("EncodeDck() error: %v", err)
	}

	lines := strings.Split(b.String(), "\n")
	// Rows between [Main] and [Sideboard] hold the card lines.
	var cards []string
	inMain := false
	for _, line := range lines {
		switch {
		case line == "[Main]":
			inMain = true
		case line == "[Sideboard]":
			inMain = false
		case inMain:
			cards = append(cards, line)
		}
	}

	want := []string{"2 Cancel|FDN|1", "1 Shock|FDN|1", "1 Wind Drake|FDN|1"}
	if len(cards) != len(want) {
		t.Fatalf("card lines = %v, want %v", cards, want)
	}
	for i := range want {
		if cards[i] != want[i] {
			t.Errorf("card line %d = %q, want %q", i, cards[i], want[i])
		}
	}
}

func TestEncodeDck_CardOwnEdition(t *testing.T) {
	p := NewPool([]Card{
		{Name: "Shock", Rarity: RarityCommon, ColorIdentity: []string{"R"}, Set: "M21", CollectorNumber: "159"},
	})

	var b strings.Builder
	if err := EncodeDck(&b, "own", p, []int{0}); err != nil {
		t.Fatalf("EncodeDck() error: %v", err)
	}
	if !strings.Contains(b.String(), "1 Shock|M21|159\n") {
		t.Errorf("card edition not carried through:\n%s", b.String())
	}
}

func TestEncodeDck_UnknownID(t *testing.T) {
	p := testPool(t)
	var b strings.Builder
	if err := EncodeDck(&b, "bad", p, []int{p.Size() + 10}); err == nil {
		t.Error("unknown card id should error")
	}
}

func TestWriteDck(t *testing.T) {
	p := testPool(t)
	dir := filepath.Join(t.TempDir(), "decks", "constructed")
	deck := []int{mustID(t, p, "Shock"), mustID(t, p, "Island")}

	path, err := WriteDck(dir, "draft_deck", p, deck)
	if err != nil {
		t.Fatalf("WriteDck() error: %v", err)
	}
	if path != filepath.Join(dir, "draft_deck.dck") {
		t.Errorf("path = %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	if !strings.HasPrefix(text, "[metadata]\nName=draft_deck\n[Main]\n") {
		t.Errorf("unexpected header:\n%s", text)
	}
	if !strings.HasSuffix(text, "[Contraptions]\n\n") {
		t.Errorf("missing trailing sections:\n%s", text)
	}
}

func TestWriteDck_InvalidName(t *testing.T) {
	p := testPool(t)
	for _, name := range []string{"", "a/b", `a\b`} {
		_, err := WriteDck(t.TempDir(), name, p, nil)
		if !stderrors.Is(err, errors.ErrInvalidDeckName) {
			t.Errorf("name %q: err = %v, want ErrInvalidDeckName", name, err)
		}
	}
}
