// Copyright 2025 Draftforge Users
// SPDX-License-Identifier: Apache-2.0

package deck

import (
	"github.com/samthorne/draftforge/internal/errors"
)

// Deck construction constants: 33 drafted spells topped up with 27 basic
// lands for a 60-card constructed deck.
const (
	DeckSize   = 60
	SpellCount = 33
	LandCount  = 27
)

// Build assembles a playable deck from draft picks: the first SpellCount
// picks, plus LandCount basic lands split across the colors those picks
// actually play. A colorless pick set defaults to Islands. The land split
// uses largest-remainder rounding so the total always lands on LandCount
// exactly.
func Build(pool *Pool, picks []int) ([]int, error) {
	spells := picks
	if len(spells) > SpellCount {
		spells = spells[:SpellCount]
	}

	counts := make(map[string]int, len(Colors))
	for _, id := range spells {
		card, ok := pool.Card(id)
		if !ok {
			continue
		}
		for _, c := range card.ColorIdentity {
			if isColor(c) {
				counts[c]++
			}
		}
	}

	// Colors without a matching basic land can't be served; drop them from
	// the split before computing shares.
	total := 0
	for _, c := range Colors {
		if _, ok := pool.BasicLand(c); !ok {
			delete(counts, c)
			continue
		}
		total += counts[c]
	}

	if total == 0 {
		island, ok := pool.BasicLand("U")
		if !ok {
			return nil, errors.WrapPoolExhausted("basic land", 1, len(pool.BasicLands()))
		}
		return append(spells, repeat(island, LandCount)...), nil
	}

	deck := make([]int, 0, len(spells)+LandCount)
	deck = append(deck, spells...)
	deck = append(deck, allocateLands(pool, counts, total)...)
	return deck, nil
}

// allocateLands splits LandCount lands proportionally to the color counts.
// Each color gets the floor of its exact share; the shortfall goes to the
// largest fractional remainders, ties broken in WUBRG order.
func allocateLands(pool *Pool, counts map[string]int, total int) []int {
	type share struct {
		color string
		base  int
		rem   float64
	}

	shares := make([]share, 0, len(counts))
	assigned := 0
	for _, c := range Colors {
		n := counts[c]
		if n == 0 {
			continue
		}
		exact := float64(n) * LandCount / float64(total)
		base := int(exact)
		shares = append(shares, share{color: c, base: base, rem: exact - float64(base)})
		assigned += base
	}

	for leftover := LandCount - assigned; leftover > 0; leftover-- {
		best := 0
		for i := 1; i < len(shares); i++ {
			if shares[i].rem > shares[best].rem {
				best = i
			}
		}
		shares[best].base++
		shares[best].rem = 0
	}

	lands := make([]int, 0, LandCount)
	for _, s := range shares {
		id, _ := pool.BasicLand(s.color)
		lands = append(lands, repeat(id, s.base)...)
	}
	return lands
}

func isColor(symbol string) bool {
	for _, c := range Colors {
		if symbol == c {
			return true
		}
	}
	return false
}

func repeat(id, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = id
	}
	return out
}
