// Copyright 2025 Draftforge Users
// SPDX-License-Identifier: Apache-2.0

package draft

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/samthorne/draftforge/internal/errors"
)

// Strategy chooses a slot from the current pack. Implementations only see
// the View; they never touch draft internals.
type Strategy interface {
	Name() string
	Pick(v View) (int, error)
}

// strategies maps names to constructors so the CLI can select one by flag.
var strategies = map[string]func(seed int64) Strategy{
	"first":  func(int64) Strategy { return firstOpen{} },
	"random": func(seed int64) Strategy { return &randomPick{rng: rand.New(rand.NewSource(seed))} },
}

// NewStrategy builds a named strategy. The seed only matters to the
// randomized ones.
func NewStrategy(name string, seed int64) (Strategy, error) {
	ctor, ok := strategies[name]
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q (have %v)", name, StrategyNames())
	}
	return ctor(seed), nil
}

// StrategyNames lists the registered strategy names, sorted.
func StrategyNames() []string {
	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// firstOpen always takes the lowest open slot.
type firstOpen struct{}

func (firstOpen) Name() string { return "first" }

func (firstOpen) Pick(v View) (int, error) {
	if len(v.Open) == 0 {
		return 0, errors.WrapInvalidPick(0)
	}
	return v.Open[0], nil
}

// randomPick takes a uniformly random open slot.
type randomPick struct {
	rng *rand.Rand
}

func (*randomPick) Name() string { return "random" }

func (r *randomPick) Pick(v View) (int, error) {
	if len(v.Open) == 0 {
		return 0, errors.WrapInvalidPick(0)
	}
	return v.Open[r.rng.Intn(len(v.Open))], nil
}
