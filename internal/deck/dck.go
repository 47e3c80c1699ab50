// Copyright 2025 Draftforge Users
// SPDX-License-Identifier: Apache-2.0

package deck

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samthorne/draftforge/internal/errors"
)

// Fallbacks for cards whose pool entry carries no set or collector number.
const (
	defaultSetCode   = "FDN"
	defaultCollector = "1"
)

// trailingSections are the empty sections Forge expects after [Main],
// in the order its own deck serializer writes them.
var trailingSections = []string{
	"[Sideboard]",
	"[Avatar]",
	"[Planes]",
	"[Schemes]",
	"[Conspiracy]",
	"[Dungeon]",
	"[Attractions]",
	"[Contraptions]",
}

// EncodeDck writes a deck in Forge's .dck format: a [metadata] header, the
// [Main] list as "<count> <name>|<set>|<collector>" lines sorted by card
// name, then the empty trailing sections.
func EncodeDck(w io.Writer, name string, pool *Pool, deck []int) error {
	type entry struct {
		card  Card
		count int
	}

	byID := make(map[int]*entry, len(deck))
	for _, id := range deck {
		if e, ok := byID[id]; ok {
			e.count++
			continue
		}
		card, ok := pool.Card(id)
		if !ok {
			return fmt.Errorf("unknown card id %d", id)
		}
		byID[id] = &entry{card: card, count: 1}
	}

	entries := make([]*entry, 0, len(byID))
	for _, e := range byID {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].card.Name < entries[j].card.Name
	})

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "[metadata]")
	fmt.Fprintf(bw, "Name=%s\n", name)
	fmt.Fprintln(bw, "[Main]")
	for _, e := range entries {
		set := e.card.Set
		if set == "" {
			set = defaultSetCode
		}
		collector := e.card.CollectorNumber
		if collector == "" {
			collector = defaultCollector
		}
		fmt.Fprintf(bw, "%d %s|%s|%s\n", e.count, e.card.Name, set, collector)
	}
	for _, section := range trailingSections {
		fmt.Fprintln(bw, section)
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}

// WriteDck serializes a deck to <dir>/<name>.dck, creating the directory if
// needed, and returns the written path. The name becomes both the filename
// and the Name= metadata field, so it must be a bare name, not a path.
func WriteDck(dir, name string, pool *Pool, deck []int) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return "", errors.WrapInvalidDeckName(name)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create deck dir: %w", err)
	}

	path := filepath.Join(dir, name+".dck")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create deck file: %w", err)
	}
	if err := EncodeDck(f, name, pool, deck); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}
