// Copyright 2025 Draftforge Users
// SPDX-License-Identifier: Apache-2.0

package draft

import (
	"fmt"
	"io"
	"strings"

	"github.com/samthorne/draftforge/internal/deck"
)

// Renderer prints a draft view as text: the current pack's slots in the
// middle, the pick list below.
type Renderer struct {
	pool *deck.Pool
	w    io.Writer
}

// NewRenderer writes draft views for the given pool to w.
func NewRenderer(pool *deck.Pool, w io.Writer) *Renderer {
	return &Renderer{pool: pool, w: w}
}

// Render prints one snapshot of the draft.
func (r *Renderer) Render(v View) {
	rule := strings.Repeat("=", 40)
	fmt.Fprintln(r.w, rule)
	fmt.Fprintf(r.w, "  DRAFT  round %d/%d  pick %d/%d\n", v.Round+1, Rounds, v.Pick+1, PackSize)
	fmt.Fprintln(r.w, rule)

	fmt.Fprintln(r.w, "CURRENT PACK:")
	for i, id := range v.Pack {
		fmt.Fprintf(r.w, "  Slot %2d: %s\n", i, r.cardName(id))
	}

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, "PICKS SO FAR:")
	if len(v.Picks) == 0 {
		fmt.Fprintln(r.w, "  No picks yet.")
	} else {
		for i, id := range v.Picks {
			fmt.Fprintf(r.w, "  Pick %2d: %s\n", i+1, r.cardName(id))
		}
	}
	fmt.Fprintln(r.w, rule)
}

func (r *Renderer) cardName(id int) string {
	if id == EmptySlot {
		return "[EMPTY]"
	}
	card, ok := r.pool.Card(id)
	if !ok {
		return fmt.Sprintf("[unknown id %d]", id)
	}
	return card.Name
}
