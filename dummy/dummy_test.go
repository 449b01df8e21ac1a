// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package dummy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mage-knight-digital/mkengine/catalog"
	"github.com/mage-knight-digital/mkengine/dummy"
	"github.com/mage-knight-digital/mkengine/ids"
	"github.com/mage-knight-digital/mkengine/rng"
	"github.com/mage-knight-digital/mkengine/state"
)

func TestIsDummyPlayer(t *testing.T) {
	assert.True(t, dummy.IsDummyPlayer(dummy.PlayerID))
	assert.False(t, dummy.IsDummyPlayer(ids.PlayerID("p1")))
}

func TestSelectHeroExcludesUsedHeroes(t *testing.T) {
	r := rng.New(42)
	used := []catalog.Hero{
		catalog.HeroArythea, catalog.HeroTovak, catalog.HeroGoldyx,
		catalog.HeroNorowas, catalog.HeroWolfhawk, catalog.HeroKrang,
	}
	hero := dummy.SelectHero(used, &r)
	assert.Equal(t, catalog.HeroBraevalar, hero)
}

func TestCreatePlayerBuildsShuffledDeckAndStartingCrystals(t *testing.T) {
	r := rng.New(42)
	d := dummy.CreatePlayer(catalog.HeroArythea, &r)

	assert.Len(t, d.Deck, len(catalog.BuildStartingDeck(catalog.HeroArythea)))
	color, count := catalog.HeroStartingCrystals(catalog.HeroArythea)
	assert.Equal(t, count, d.Crystals.Count(color))
	assert.NotEmpty(t, d.RoundFlips)
	assert.Equal(t, 0, d.FlipIndex)
}

func TestCreatePlayerPrecomputesWholeDeckAcrossTurns(t *testing.T) {
	r := rng.New(1)
	d := dummy.CreatePlayer(catalog.HeroTovak, &r)

	total := 0
	endsTurnCount := 0
	for _, flip := range d.RoundFlips {
		total++
		if flip.EndsTurn {
			endsTurnCount++
		}
	}
	assert.Equal(t, len(d.Deck), total)
	assert.Greater(t, endsTurnCount, 0)
	assert.True(t, d.RoundFlips[len(d.RoundFlips)-1].EndsTurn, "plan must end on a turn boundary")
}

func TestExecuteTurnConsumesOneTurnAtATime(t *testing.T) {
	r := rng.New(7)
	d := dummy.CreatePlayer(catalog.HeroGoldyx, &r)
	deckSize := len(d.Deck)

	var consumed int
	turns := 0
	for {
		turn, ok := dummy.ExecuteTurn(d)
		if !ok {
			break
		}
		turns++
		consumed += len(turn)
		assert.True(t, turn[len(turn)-1].EndsTurn)
	}

	assert.Equal(t, deckSize, consumed)
	assert.Len(t, d.Deck, 0)
	assert.Len(t, d.Discard, deckSize)
	assert.Greater(t, turns, 0)
}

func TestPrepareRoundReshufflesDeckAndDiscard(t *testing.T) {
	r := rng.New(9)
	d := dummy.CreatePlayer(catalog.HeroNorowas, &r)
	g := &state.GameState{Dummy: d, RNG: r}

	deckSize := len(d.Deck)
	_, ok := dummy.ExecuteTurn(d)
	require.True(t, ok)
	require.NotEmpty(t, d.Discard)

	dummy.PrepareRound(g)

	assert.Equal(t, deckSize, len(g.Dummy.Deck))
	assert.Empty(t, g.Dummy.Discard)
	assert.Equal(t, 0, g.Dummy.FlipIndex)
	assert.NotEmpty(t, g.Dummy.RoundFlips)
}

func TestProcessOfferGainsDivertsOldestAAAndGrantsSpellCrystal(t *testing.T) {
	r := rng.New(3)
	d := dummy.CreatePlayer(catalog.HeroKrang, &r)

	aaOffer := catalog.Offer{
		FaceUp: []ids.CardID{"rage_aa", "flight", "training"},
		Deck:   []ids.CardID{"resolve"},
	}
	spellOffer := catalog.Offer{FaceUp: []ids.CardID{"fire_ball", "chill", "mind_read"}}

	spellDef, ok := catalog.GetCard(spellOffer.FaceUp[0])
	require.True(t, ok)
	before := d.Crystals.Count(spellDef.PoweredBy)

	dummy.ProcessOfferGains(d, &aaOffer, spellOffer)

	assert.Contains(t, d.Discard, ids.CardID("rage_aa"))
	assert.Equal(t, []ids.CardID{"flight", "training", "resolve"}, aaOffer.FaceUp)
	assert.Empty(t, aaOffer.Deck)
	assert.Equal(t, before+1, d.Crystals.Count(spellDef.PoweredBy))
	assert.Equal(t, []ids.CardID{"fire_ball", "chill", "mind_read"}, spellOffer.FaceUp, "spell offer is read-only")
}
