// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package dummy implements the solo-mode dummy player: a deck-flipping
// stand-in for a second player that never makes a live decision. Its
// entire round is simulated once, at round start, against the engine's
// deterministic RNG, so replaying the same seed and action sequence always
// reproduces the same dummy turns without drawing any RNG at the moment
// the dummy's turn actually comes up.
package dummy

import (
	"github.com/mage-knight-digital/mkengine/catalog"
	"github.com/mage-knight-digital/mkengine/ids"
	"github.com/mage-knight-digital/mkengine/rng"
	"github.com/mage-knight-digital/mkengine/state"
)

// PlayerID is the fixed turn-order identity the dummy occupies.
const PlayerID ids.PlayerID = "__dummy__"

// cardsPerTurn is the number of cards the dummy flips from its deck on a
// normal turn, before any bonus flips.
const cardsPerTurn = 3

// IsDummyPlayer reports whether id names the dummy's turn-order slot.
func IsDummyPlayer(id ids.PlayerID) bool {
	return id == PlayerID
}

// SelectHero picks a hero for the dummy to borrow, uniformly at random
// among every hero not already claimed by a human player.
func SelectHero(usedHeroes []catalog.Hero, rngState *rng.State) catalog.Hero {
	used := make(map[catalog.Hero]bool, len(usedHeroes))
	for _, h := range usedHeroes {
		used[h] = true
	}
	available := make([]catalog.Hero, 0, len(catalog.AllHeroes))
	for _, h := range catalog.AllHeroes {
		if !used[h] {
			available = append(available, h)
		}
	}
	idx := rngState.NextInt(0, len(available)-1)
	return available[idx]
}

// CreatePlayer builds a fresh dummy player for hero: a shuffled starting
// deck, the hero's starting crystals, and the first round's flip plan.
func CreatePlayer(hero catalog.Hero, rngState *rng.State) *state.DummyPlayerState {
	deck := catalog.BuildStartingDeck(hero)
	rng.Shuffle(rngState, deck)

	crystals := state.NewCrystalPool()
	color, count := catalog.HeroStartingCrystals(hero)
	crystals.Gain(color, count)

	d := &state.DummyPlayerState{
		Hero:     hero,
		Deck:     deck,
		Crystals: crystals,
	}
	d.RoundFlips = precomputeFlips(d.Deck, d.Crystals)
	return d
}

// cardBasicColor returns the basic mana color a card's flip can match
// against the dummy's crystals, or ok=false for a card with no single
// basic color (wounds, and any gold-colored card).
func cardBasicColor(id ids.CardID) (catalog.BasicManaColor, bool) {
	def, ok := catalog.GetCard(id)
	if !ok {
		return "", false
	}
	switch def.Color {
	case catalog.CardColorRed:
		return catalog.ColorRed, true
	case catalog.CardColorBlue:
		return catalog.ColorBlue, true
	case catalog.CardColorGreen:
		return catalog.ColorGreen, true
	case catalog.CardColorWhite:
		return catalog.ColorWhite, true
	default:
		return "", false
	}
}

// precomputeFlips simulates an entire round of dummy turns against deck in
// order: each turn flips cardsPerTurn cards (or whatever remains), and if
// the turn's last card names a basic color the dummy holds crystals of, an
// additional bonus flip per held crystal of that color follows within the
// same turn. The final flip of each turn is marked EndsTurn so the engine
// knows where to stop without re-deriving the grouping.
func precomputeFlips(deck []ids.CardID, crystals *state.CrystalPool) []state.DummyCardFlip {
	var flips []state.DummyCardFlip
	remaining := deck

	for len(remaining) > 0 {
		base := cardsPerTurn
		if base > len(remaining) {
			base = len(remaining)
		}
		turn := make([]state.DummyCardFlip, 0, base)
		for _, c := range remaining[:base] {
			turn = append(turn, state.DummyCardFlip{Card: c})
		}
		remaining = remaining[base:]

		if color, ok := cardBasicColor(turn[len(turn)-1].Card); ok {
			if n := crystals.Count(color); n > 0 {
				if n > len(remaining) {
					n = len(remaining)
				}
				for _, c := range remaining[:n] {
					turn = append(turn, state.DummyCardFlip{Card: c, BonusFlip: true})
				}
				remaining = remaining[n:]
			}
		}

		turn[len(turn)-1].EndsTurn = true
		flips = append(flips, turn...)
	}

	return flips
}

// ExecuteTurn consumes the dummy's next precomputed turn — every flip up
// to and including the next EndsTurn — moving those cards from Deck to
// Discard and advancing FlipIndex. Returns ok=false once the round's plan
// is exhausted (the round-end turn-order loop reads this as "dummy
// announces end of round").
func ExecuteTurn(d *state.DummyPlayerState) ([]state.DummyCardFlip, bool) {
	if d.FlipIndex >= len(d.RoundFlips) {
		return nil, false
	}
	start := d.FlipIndex
	end := start
	for end < len(d.RoundFlips) && !d.RoundFlips[end].EndsTurn {
		end++
	}
	if end < len(d.RoundFlips) {
		end++ // include the EndsTurn flip itself
	}
	turn := d.RoundFlips[start:end]
	d.FlipIndex = end

	moved := len(turn)
	d.Discard = append(d.Discard, d.Deck[:moved]...)
	d.Deck = d.Deck[moved:]

	return turn, true
}

// PrepareRound combines the dummy's deck and discard, reshuffles them, and
// re-simulates the new round's flip plan. Called at the start of every
// round once a dummy is in play.
func PrepareRound(g *state.GameState) {
	d := g.Dummy
	all := append(d.Deck, d.Discard...)
	rng.Shuffle(&g.RNG, all)

	d.Deck = all
	d.Discard = nil
	d.FlipIndex = 0
	d.RoundFlips = precomputeFlips(d.Deck, d.Crystals)
}

// ProcessOfferGains applies the dummy's end-of-round scavenging, run
// before the shared advanced-action/spell offers refresh for everyone
// else: the offer's oldest advanced action is diverted into the dummy's
// discard (instead of cycling back into the deck) and immediately
// replenished from the deck exactly as a normal refresh would, and the
// dummy gains one crystal of the oldest spell's powering color (the spell
// offer itself is only read, never mutated).
func ProcessOfferGains(d *state.DummyPlayerState, aaOffer *catalog.Offer, spellOffer catalog.Offer) {
	if len(aaOffer.FaceUp) > 0 {
		taken := aaOffer.FaceUp[0]
		d.Discard = append(d.Discard, taken)

		faceUp := append([]ids.CardID(nil), aaOffer.FaceUp[1:]...)
		deck := append([]ids.CardID(nil), aaOffer.Deck...)
		if len(deck) > 0 {
			faceUp = append(faceUp, deck[0])
			deck = deck[1:]
		}
		aaOffer.FaceUp = faceUp
		aaOffer.Deck = deck
	}

	if len(spellOffer.FaceUp) > 0 {
		oldest := spellOffer.FaceUp[0]
		if def, ok := catalog.GetCard(oldest); ok {
			d.Crystals.Gain(def.PoweredBy, 1)
		}
	}
}
