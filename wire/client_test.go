// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package wire_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mage-knight-digital/mkengine/catalog"
	"github.com/mage-knight-digital/mkengine/client"
	"github.com/mage-knight-digital/mkengine/hexcoord"
	"github.com/mage-knight-digital/mkengine/ids"
	"github.com/mage-knight-digital/mkengine/rng"
	"github.com/mage-knight-digital/mkengine/state"
	"github.com/mage-knight-digital/mkengine/wire"
)

func TestMarshalClientStateUsesCamelCaseAndSortsHexesLexicographically(t *testing.T) {
	g := &state.GameState{
		Players: []*state.PlayerState{
			state.NewPlayerState("p1", catalog.HeroArythea),
		},
		TurnOrder: []ids.PlayerID{"p1"},
		Map:       state.NewMapState(),
		RNG:       rng.New(1),
	}
	g.Players[0].Hand = []ids.CardID{"march"}
	g.Map.Hexes[hexcoord.New(1, 0)] = &state.HexState{Terrain: catalog.TerrainPlains}
	g.Map.Hexes[hexcoord.New(0, 0)] = &state.HexState{Terrain: catalog.TerrainHills}

	cs := client.ToClientState(g, "p1")
	data, err := wire.MarshalClientState(cs)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Contains(t, raw, "currentPlayerId")
	assert.Contains(t, raw, "woundPileCount")

	mapObj := raw["map"].(map[string]any)
	hexes := mapObj["hexes"].([]any)
	require.Len(t, hexes, 2)
	first := hexes[0].(map[string]any)["hex"].(map[string]any)
	second := hexes[1].(map[string]any)["hex"].(map[string]any)
	assert.Equal(t, float64(0), first["q"])
	assert.Equal(t, float64(1), second["q"])
}

func TestMarshalClientStateHidesOtherPlayersHand(t *testing.T) {
	p1 := state.NewPlayerState("p1", catalog.HeroArythea)
	p1.Hand = []ids.CardID{"march"}
	p2 := state.NewPlayerState("p2", catalog.HeroGoldyx)
	p2.Hand = []ids.CardID{"rage", "rage"}

	g := &state.GameState{
		Players:   []*state.PlayerState{p1, p2},
		TurnOrder: []ids.PlayerID{"p1", "p2"},
		Map:       state.NewMapState(),
		RNG:       rng.New(1),
	}

	cs := client.ToClientState(g, "p1")
	data, err := wire.MarshalClientState(cs)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	players := raw["players"].([]any)
	require.Len(t, players, 2)

	self := players[0].(map[string]any)
	assert.Equal(t, []any{"march"}, self["hand"])

	other := players[1].(map[string]any)
	assert.NotContains(t, other, "hand")
	assert.Equal(t, float64(2), other["handCount"])
}

func TestMarshalClientStateOmitsFinalScoresUntilGameEnded(t *testing.T) {
	p1 := state.NewPlayerState("p1", catalog.HeroArythea)
	g := &state.GameState{
		Players:   []*state.PlayerState{p1},
		TurnOrder: []ids.PlayerID{"p1"},
		Map:       state.NewMapState(),
		RNG:       rng.New(1),
	}

	cs := client.ToClientState(g, "p1")
	data, err := wire.MarshalClientState(cs)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.NotContains(t, raw, "finalScores")

	p1.GainFame(12)
	g.GameEnded = true
	cs = client.ToClientState(g, "p1")
	data, err = wire.MarshalClientState(cs)
	require.NoError(t, err)

	raw = map[string]any{}
	require.NoError(t, json.Unmarshal(data, &raw))
	scores := raw["finalScores"].([]any)
	require.Len(t, scores, 1)
	score := scores[0].(map[string]any)
	assert.Equal(t, "p1", score["playerId"])
	assert.Equal(t, float64(12), score["baseScore"])
	assert.Equal(t, float64(1), score["rank"])
}
