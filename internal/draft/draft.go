// Copyright 2025 Draftforge Users
// SPDX-License-Identifier: Apache-2.0

package draft

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"

	"github.com/samthorne/draftforge/internal/deck"
	"github.com/samthorne/draftforge/internal/errors"
	"github.com/samthorne/draftforge/internal/logger"
)

// Draft structure: 8 seats, 3 rounds, 15 picks per round. Seat 0 is the
// drafter; the other seven are bots.
const (
	Seats      = 8
	Rounds     = 3
	TotalPicks = Rounds * PackSize
)

// Draft tracks a booster draft in progress. All packs for all rounds are
// dealt up front. Not safe for concurrent use.
type Draft struct {
	pool   *deck.Pool
	rng    *rand.Rand
	rounds [][]Pack // [round][pack index]
	holder []int    // seat -> index of the pack it currently holds
	picks  []int    // seat-0 picks, in order
	round  int
	pick   int
	done   bool
}

// View is the seat-0 snapshot a pick strategy works from.
type View struct {
	Pack  Pack  // current pack slots, EmptySlot where taken
	Open  []int // indices of slots still holding a card
	Picks []int // card IDs picked so far
	Round int   // 0-based round
	Pick  int   // 0-based pick within the round
}

// New deals a full draft from the pool using the given seed. The same pool
// and seed always deal the same packs.
func New(pool *deck.Pool, seed int64) (*Draft, error) {
	if pool.Size() == 0 {
		return nil, errors.WrapPoolExhausted("any", 1, 0)
	}

	d := &Draft{
		pool:   pool,
		rng:    rand.New(rand.NewSource(seed)),
		holder: identityHolders(),
	}
	for r := 0; r < Rounds; r++ {
		packs := make([]Pack, Seats)
		for s := range packs {
			packs[s] = makePack(d.rng, pool)
		}
		d.rounds = append(d.rounds, packs)
	}
	logger.Logger.Debug("draft dealt", "seed", seed, "pool_size", pool.Size())
	return d, nil
}

// NewSeed draws a draft seed from the system entropy source.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

func identityHolders() []int {
	holders := make([]int, Seats)
	for i := range holders {
		holders[i] = i
	}
	return holders
}

// Done reports whether all rounds have been drafted.
func (d *Draft) Done() bool { return d.done }

// Picks returns the seat-0 picks so far, oldest first.
func (d *Draft) Picks() []int {
	return append([]int(nil), d.picks...)
}

// Round returns the 0-based current round, Rounds once the draft is done.
func (d *Draft) Round() int { return d.round }

// currentPack is the pack seat 0 holds right now.
func (d *Draft) currentPack() Pack {
	return d.rounds[d.round][d.holder[0]]
}

// View snapshots the seat-0 state. After the draft completes the pack view
// is empty.
func (d *Draft) View() View {
	v := View{
		Picks: d.Picks(),
		Round: d.round,
		Pick:  d.pick,
	}
	if d.done {
		v.Pack = make(Pack, PackSize)
		for i := range v.Pack {
			v.Pack[i] = EmptySlot
		}
		return v
	}
	pack := d.currentPack()
	v.Pack = append(Pack(nil), pack...)
	v.Open = pack.Open()
	return v
}

// Mask reports which slots of the current pack are pickable.
func (d *Draft) Mask() [PackSize]bool {
	var mask [PackSize]bool
	if d.done {
		return mask
	}
	for i, id := range d.currentPack() {
		mask[i] = id != EmptySlot
	}
	return mask
}

// Pick takes the card in the given slot for seat 0, lets the bot seats pick,
// and passes every pack one seat to the right. An out-of-range or empty slot
// fails without advancing the draft.
func (d *Draft) Pick(slot int) (int, error) {
	if d.done {
		return 0, errors.ErrDraftComplete
	}
	pack := d.currentPack()
	if slot < 0 || slot >= PackSize {
		return 0, errors.WrapInvalidPick(slot)
	}
	if pack[slot] == EmptySlot {
		return 0, errors.WrapInvalidPick(slot)
	}

	cardID := pack[slot]
	d.picks = append(d.picks, cardID)
	pack[slot] = EmptySlot

	d.botPicks()
	d.passRight()
	d.advance()
	return cardID, nil
}

// botPicks has seats 1..7 each take a uniformly random open slot from the
// pack they hold. Bot picks are discarded; only the thinning of the packs
// matters to seat 0.
func (d *Draft) botPicks() {
	for seat := 1; seat < Seats; seat++ {
		pack := d.rounds[d.round][d.holder[seat]]
		open := pack.Open()
		if len(open) == 0 {
			continue
		}
		pack[open[d.rng.Intn(len(open))]] = EmptySlot
	}
}

// passRight hands each seat's pack to the next seat.
func (d *Draft) passRight() {
	next := make([]int, Seats)
	for seat, packIdx := range d.holder {
		next[(seat+1)%Seats] = packIdx
	}
	d.holder = next
}

// advance moves the pick counter, re-dealing holders at round boundaries and
// closing the draft after the final round.
func (d *Draft) advance() {
	d.pick++
	if d.pick < PackSize {
		return
	}
	d.round++
	d.pick = 0
	if d.round < Rounds {
		d.holder = identityHolders()
		return
	}
	d.done = true
	logger.Logger.Debug("draft complete", "picks", len(d.picks))
}

// Run drafts to completion with the given strategy and returns all seat-0
// picks.
func (d *Draft) Run(s Strategy) ([]int, error) {
	for !d.done {
		slot, err := s.Pick(d.View())
		if err != nil {
			return nil, fmt.Errorf("strategy %s: %w", s.Name(), err)
		}
		if _, err := d.Pick(slot); err != nil {
			return nil, err
		}
	}
	return d.Picks(), nil
}
