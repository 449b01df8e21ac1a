// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package client_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mage-knight-digital/mkengine/catalog"
	"github.com/mage-knight-digital/mkengine/client"
	"github.com/mage-knight-digital/mkengine/hexcoord"
	"github.com/mage-knight-digital/mkengine/ids"
	"github.com/mage-knight-digital/mkengine/rng"
	"github.com/mage-knight-digital/mkengine/state"
)

func twoPlayerGame() *state.GameState {
	p1 := state.NewPlayerState("p1", catalog.HeroArythea)
	p1.Hand = []ids.CardID{"march", "march", "rage"}
	p1.Deck = []ids.CardID{"stamina"}

	p2 := state.NewPlayerState("p2", catalog.HeroGoldyx)
	p2.Hand = []ids.CardID{"tranquility"}
	p2.Discard = []ids.CardID{"swiftness", "swiftness"}

	m := state.NewMapState()
	cityHex := hexcoord.New(1, -1)
	m.Hexes[cityHex] = &state.HexState{
		Terrain: catalog.TerrainCity,
		Site: &state.SiteState{
			Type: catalog.SiteCity,
			Garrison: []state.EnemyToken{
				{TokenID: "t1", Definition: "prowlers", Revealed: false},
				{TokenID: "t2", Definition: "prowlers", Revealed: true},
			},
		},
	}

	return &state.GameState{
		Players:   []*state.PlayerState{p1, p2},
		TurnOrder: []ids.PlayerID{"p1", "p2"},
		Map:       m,
		RNG:       rng.New(1),
	}
}

func TestToClientStateShowsOwnHandButHidesOthers(t *testing.T) {
	g := twoPlayerGame()

	view := client.ToClientState(g, "p1")
	require.Len(t, view.Players, 2)

	self := view.Players[0]
	assert.Equal(t, []ids.CardID{"march", "march", "rage"}, self.Hand)
	assert.Equal(t, 3, self.HandCount)

	other := view.Players[1]
	assert.Nil(t, other.Hand)
	assert.Equal(t, 1, other.HandCount)
	assert.Equal(t, 2, other.DiscardCount)
}

func TestToClientStateHidesUnrevealedGarrisonTokens(t *testing.T) {
	g := twoPlayerGame()
	view := client.ToClientState(g, "p1")

	hex := view.Map.Hexes[hexcoord.New(1, -1)]
	require.NotNil(t, hex.Site)
	assert.Equal(t, 2, hex.Site.GarrisonCount)
	require.Len(t, hex.Site.Garrison, 2)

	var sawHidden, sawRevealed bool
	for _, tok := range hex.Site.Garrison {
		if tok.Revealed {
			sawRevealed = true
			require.NotNil(t, tok.Definition)
			assert.Equal(t, ids.EnemyID("prowlers"), tok.Definition.ID)
		} else {
			sawHidden = true
			assert.Nil(t, tok.Definition)
		}
	}
	assert.True(t, sawHidden)
	assert.True(t, sawRevealed)
}

func TestToClientStateHydratesCombatEnemies(t *testing.T) {
	g := twoPlayerGame()
	g.Combat = &state.CombatState{
		Phase:  catalog.CombatRangedSiege,
		Player: "p1",
		Enemies: []state.CombatEnemy{
			{InstanceID: "e1", EnemyID: "prowlers"},
		},
	}

	view := client.ToClientState(g, "p1")
	require.NotNil(t, view.Combat)
	require.Len(t, view.Combat.Enemies, 1)
	assert.Equal(t, ids.EnemyID("prowlers"), view.Combat.Enemies[0].Definition.ID)
}

func TestToClientStateHidesDummyFuturePlan(t *testing.T) {
	g := twoPlayerGame()
	g.Dummy = &state.DummyPlayerState{
		Hero:    catalog.HeroNorowas,
		Deck:    []ids.CardID{"a", "b", "c"},
		Discard: []ids.CardID{"d"},
		RoundFlips: []state.DummyCardFlip{
			{Card: "a"}, {Card: "b"},
		},
		FlipIndex: 1,
	}

	view := client.ToClientState(g, "p1")
	require.NotNil(t, view.DummyPlayer)
	assert.Equal(t, 3, view.DummyPlayer.DeckCount)
	assert.Equal(t, 1, view.DummyPlayer.DiscardCount)
	assert.Equal(t, 1, view.DummyPlayer.FlipIndex)
}
