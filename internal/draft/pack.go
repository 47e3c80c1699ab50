// Copyright 2025 Draftforge Users
// SPDX-License-Identifier: Apache-2.0

// Package draft runs an 8-seat booster draft: three rounds of fifteen picks,
// packs passed to the right, bot seats drafting at random.
package draft

import (
	"math/rand"

	"github.com/samthorne/draftforge/internal/deck"
)

// EmptySlot marks a pack slot whose card has been taken (or was never dealt).
const EmptySlot = -1

// Pack shape: 1 basic land, 10 commons, 3 uncommons, 1 rare or mythic,
// padded with empty slots up to PackSize when a rarity pool runs short.
const (
	PackSize      = 15
	packCommons   = 10
	packUncommons = 3
)

// Pack holds card IDs by slot, EmptySlot where nothing remains.
type Pack []int

// Open returns the indices of slots that still hold a card.
func (p Pack) Open() []int {
	var open []int
	for i, id := range p {
		if id != EmptySlot {
			open = append(open, i)
		}
	}
	return open
}

// Empty reports whether every slot has been taken.
func (p Pack) Empty() bool {
	return len(p.Open()) == 0
}

// makePack deals one booster from the pool's rarity buckets. Buckets are
// sampled fresh for every pack; short buckets yield short packs rather than
// an error.
func makePack(rng *rand.Rand, pool *deck.Pool) Pack {
	pack := make(Pack, 0, PackSize)

	if basics := pool.BasicLands(); len(basics) > 0 {
		pack = append(pack, basics[rng.Intn(len(basics))])
	}
	pack = append(pack, sample(rng, pool.Rarity(deck.RarityCommon), packCommons)...)
	pack = append(pack, sample(rng, pool.Rarity(deck.RarityUncommon), packUncommons)...)

	topEnd := append(append([]int(nil), pool.Rarity(deck.RarityRare)...), pool.Rarity(deck.RarityMythic)...)
	if len(topEnd) > 0 {
		pack = append(pack, topEnd[rng.Intn(len(topEnd))])
	}

	if len(pack) > PackSize {
		pack = pack[:PackSize]
	}
	for len(pack) < PackSize {
		pack = append(pack, EmptySlot)
	}
	return pack
}

// sample draws up to n distinct IDs without replacement. A bucket smaller
// than n is returned whole.
func sample(rng *rand.Rand, ids []int, n int) []int {
	if len(ids) <= n {
		return append([]int(nil), ids...)
	}
	picked := make([]int, 0, n)
	for _, i := range rng.Perm(len(ids))[:n] {
		picked = append(picked, ids[i])
	}
	return picked
}
