// Copyright 2025 Draftforge Users
// SPDX-License-Identifier: Apache-2.0

package draft

import (
	"math/rand"
	"testing"

	"github.com/samthorne/draftforge/internal/deck"
)

// draftPool has enough of every rarity for a full 1/10/3/1 booster.
func draftPool(t *testing.T) *deck.Pool {
	t.Helper()
	cards := []deck.Card{
		{Name: "Plains", ColorIdentity: []string{"W"}, IsBasicLand: true},
		{Name: "Island", ColorIdentity: []string{"U"}, IsBasicLand: true},
		{Name: "Swamp", ColorIdentity: []string{"B"}, IsBasicLand: true},
		{Name: "Mountain", ColorIdentity: []string{"R"}, IsBasicLand: true},
		{Name: "Forest", ColorIdentity: []string{"G"}, IsBasicLand: true},
	}
	commons := []string{
		"Pacifism", "Wind Drake", "Cancel", "Gravedigger", "Doom Blade", "Shock",
		"Goblin Piker", "Giant Growth", "Centaur Courser", "Divination",
		"Ornithopter", "Sage of Lat-Nam",
	}
	for _, name := range commons {
		cards = append(cards, deck.Card{Name: name, Rarity: deck.RarityCommon})
	}
	for _, name := range []string{"Serra Angel", "Nightmare", "Prodigal Pyromancer", "Mind Control"} {
		cards = append(cards, deck.Card{Name: name, Rarity: deck.RarityUncommon})
	}
	cards = append(cards,
		deck.Card{Name: "Shivan Dragon", Rarity: deck.RarityRare},
		deck.Card{Name: "Mahamoti Djinn", Rarity: deck.RarityRare},
		deck.Card{Name: "Vraska, Swarm's Eminence", Rarity: deck.RarityMythic},
	)
	return deck.NewPool(cards)
}

func rarityOf(t *testing.T, pool *deck.Pool, id int) string {
	t.Helper()
	card, ok := pool.Card(id)
	if !ok {
		t.Fatalf("unknown card id %d", id)
	}
	if card.IsBasicLand {
		return "basic"
	}
	return card.Rarity
}

func TestMakePack_Shape(t *testing.T) {
	pool := draftPool(t)
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 20; trial++ {
		pack := makePack(rng, pool)
		if len(pack) != PackSize {
			t.Fatalf("pack size = %d, want %d", len(pack), PackSize)
		}

		counts := make(map[string]int)
		for _, id := range pack {
			if id == EmptySlot {
				t.Fatal("full pool should fill every slot")
			}
			counts[rarityOf(t, pool, id)]++
		}

		if counts["basic"] != 1 {
			t.Errorf("basics = %d, want 1", counts["basic"])
		}
		if counts[deck.RarityCommon] != packCommons {
			t.Errorf("commons = %d, want %d", counts[deck.RarityCommon], packCommons)
		}
		if counts[deck.RarityUncommon] != packUncommons {
			t.Errorf("uncommons = %d, want %d", counts[deck.RarityUncommon], packUncommons)
		}
		if top := counts[deck.RarityRare] + counts[deck.RarityMythic]; top != 1 {
			t.Errorf("rare/mythic = %d, want 1", top)
		}
	}
}

func TestMakePack_NoDuplicateCommons(t *testing.T) {
	pool := draftPool(t)
	rng := rand.New(rand.NewSource(3))

	pack := makePack(rng, pool)
	seen := make(map[int]bool)
	for _, id := range pack {
		if id == EmptySlot {
			continue
		}
		if rarityOf(t, pool, id) != deck.RarityCommon {
			continue
		}
		if seen[id] {
			t.Fatalf("common id %d dealt twice in one pack", id)
		}
		seen[id] = true
	}
}

func TestMakePack_ShortPools(t *testing.T) {
	pool := deck.NewPool([]deck.Card{
		{Name: "Shock", Rarity: deck.RarityCommon},
		{Name: "Cancel", Rarity: deck.RarityCommon},
	})
	rng := rand.New(rand.NewSource(1))

	pack := makePack(rng, pool)
	if len(pack) != PackSize {
		t.Fatalf("pack size = %d, want %d", len(pack), PackSize)
	}
	if open := len(pack.Open()); open != 2 {
		t.Errorf("open slots = %d, want 2", open)
	}
	for _, i := range pack.Open() {
		if i >= 2 {
			t.Errorf("cards should fill the low slots, found one at %d", i)
		}
	}
}

func TestPack_OpenAndEmpty(t *testing.T) {
	pack := Pack{5, EmptySlot, 7, EmptySlot}
	open := pack.Open()
	if len(open) != 2 || open[0] != 0 || open[1] != 2 {
		t.Errorf("Open() = %v, want [0 2]", open)
	}
	if pack.Empty() {
		t.Error("pack with cards reported empty")
	}
	if !(Pack{EmptySlot, EmptySlot}).Empty() {
		t.Error("cleared pack not reported empty")
	}
}

func TestSample(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	ids := []int{10, 20, 30, 40, 50}

	got := sample(rng, ids, 3)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	seen := make(map[int]bool)
	for _, id := range got {
		if seen[id] {
			t.Fatalf("id %d drawn twice", id)
		}
		seen[id] = true
		found := false
		for _, want := range ids {
			if id == want {
				found = true
			}
		}
		if !found {
			t.Fatalf("id %d not from source", id)
		}
	}

	whole := sample(rng, ids, 10)
	if len(whole) != len(ids) {
		t.Errorf("short bucket: len = %d, want %d", len(whole), len(ids))
	}
}
