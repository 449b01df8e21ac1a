// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package movement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mage-knight-digital/mkengine/catalog"
	"github.com/mage-knight-digital/mkengine/hexcoord"
	"github.com/mage-knight-digital/mkengine/movement"
	"github.com/mage-knight-digital/mkengine/state"
)

func playerAt(pos hexcoord.HexCoord) *state.PlayerState {
	p := state.NewPlayerState("p1", catalog.HeroArythea)
	p.Position = &pos
	return p
}

func TestEvaluateMoveEntryBlocksRampagingEnemyHex(t *testing.T) {
	m := state.NewMapState()
	origin := hexcoord.New(0, 0)
	enemyHex := hexcoord.New(1, 0)
	m.Hexes[origin] = &state.HexState{Terrain: catalog.TerrainPlains}
	m.Hexes[enemyHex] = &state.HexState{
		Terrain: catalog.TerrainPlains,
		Enemies: []state.EnemyToken{{TokenID: "orc_1", Definition: "prowlers"}},
	}

	g := &state.GameState{Map: m}
	entry := movement.EvaluateMoveEntry(g, playerAt(origin), enemyHex)
	assert.Nil(t, entry.Cost)
	assert.Equal(t, movement.BlockRampagingEnemy, *entry.BlockReason)
}

func TestEnumerateChallengesListsOnlyRampagingEnemyHexes(t *testing.T) {
	m := state.NewMapState()
	origin := hexcoord.New(0, 0)
	enemyHex := hexcoord.New(1, 0)
	openHex := hexcoord.New(0, 1)
	m.Hexes[origin] = &state.HexState{Terrain: catalog.TerrainPlains}
	m.Hexes[enemyHex] = &state.HexState{
		Terrain: catalog.TerrainPlains,
		Enemies: []state.EnemyToken{{TokenID: "orc_1", Definition: "prowlers"}},
	}
	m.Hexes[openHex] = &state.HexState{Terrain: catalog.TerrainPlains}

	g := &state.GameState{Map: m}
	targets := movement.EnumerateChallenges(g, playerAt(origin))
	assert.Equal(t, []hexcoord.HexCoord{enemyHex}, targets)
}

func TestEnumerateChallengesEmptyWithoutPosition(t *testing.T) {
	g := &state.GameState{Map: state.NewMapState()}
	p := state.NewPlayerState("p1", catalog.HeroArythea)
	assert.Empty(t, movement.EnumerateChallenges(g, p))
}
