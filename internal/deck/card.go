// Copyright 2025 Draftforge Users
// SPDX-License-Identifier: Apache-2.0

// Package deck holds the card database, deck construction from draft picks,
// and the Forge .dck serialization.
package deck

import (
	"encoding/json"
	"fmt"
	"os"
)

// Card rarities as they appear in the pool JSON.
const (
	RarityCommon   = "common"
	RarityUncommon = "uncommon"
	RarityRare     = "rare"
	RarityMythic   = "mythic"
)

// Colors lists the five color symbols in canonical WUBRG order. Allocation
// ties are broken in this order so deck building stays deterministic.
var Colors = []string{"W", "U", "B", "R", "G"}

// Card is one entry of the card pool JSON.
type Card struct {
	Name            string   `json:"name"`
	Rarity          string   `json:"rarity"`
	ColorIdentity   []string `json:"color_identity"`
	IsBasicLand     bool     `json:"is_basic_land"`
	Set             string   `json:"set,omitempty"`
	CollectorNumber string   `json:"collector_number,omitempty"`
}

// Pool is an indexed card database. Cards get dense IDs in first-seen name
// order; duplicate names keep the first entry.
type Pool struct {
	cards      []Card
	ids        map[string]int
	rarities   map[string][]int
	basicLands map[string]int // color symbol -> land ID
}

// NewPool indexes a card list.
func NewPool(cards []Card) *Pool {
	p := &Pool{
		ids: make(map[string]int),
		rarities: map[string][]int{
			RarityCommon:   nil,
			RarityUncommon: nil,
			RarityRare:     nil,
			RarityMythic:   nil,
		},
		basicLands: make(map[string]int),
	}

	for _, c := range cards {
		if _, seen := p.ids[c.Name]; seen {
			continue
		}
		id := len(p.cards)
		p.ids[c.Name] = id
		p.cards = append(p.cards, c)

		if c.IsBasicLand {
			if len(c.ColorIdentity) == 1 {
				p.basicLands[c.ColorIdentity[0]] = id
			}
			continue
		}
		if _, ok := p.rarities[c.Rarity]; ok {
			p.rarities[c.Rarity] = append(p.rarities[c.Rarity], id)
		}
	}
	return p
}

// LoadPool reads a card pool JSON file, an array of card objects.
func LoadPool(path string) (*Pool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read card pool: %w", err)
	}
	var cards []Card
	if err := json.Unmarshal(data, &cards); err != nil {
		return nil, fmt.Errorf("parse card pool %s: %w", path, err)
	}
	return NewPool(cards), nil
}

// Size reports how many distinct cards the pool holds.
func (p *Pool) Size() int { return len(p.cards) }

// Card returns the card for an ID.
func (p *Pool) Card(id int) (Card, bool) {
	if id < 0 || id >= len(p.cards) {
		return Card{}, false
	}
	return p.cards[id], true
}

// ID looks up a card ID by exact name.
func (p *Pool) ID(name string) (int, bool) {
	id, ok := p.ids[name]
	return id, ok
}

// Rarity returns the IDs bucketed under a rarity. Basic lands are kept
// separate; use BasicLand or BasicLands for those.
func (p *Pool) Rarity(rarity string) []int {
	return p.rarities[rarity]
}

// BasicLand returns the basic land ID for a color symbol.
func (p *Pool) BasicLand(color string) (int, bool) {
	id, ok := p.basicLands[color]
	return id, ok
}

// BasicLands returns every basic land ID in WUBRG order.
func (p *Pool) BasicLands() []int {
	var ids []int
	for _, c := range Colors {
		if id, ok := p.basicLands[c]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}
