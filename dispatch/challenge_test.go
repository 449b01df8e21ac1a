// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package dispatch_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mage-knight-digital/mkengine/action"
	"github.com/mage-knight-digital/mkengine/catalog"
	"github.com/mage-knight-digital/mkengine/dispatch"
	"github.com/mage-knight-digital/mkengine/hexcoord"
	"github.com/mage-knight-digital/mkengine/ids"
	"github.com/mage-knight-digital/mkengine/rng"
	"github.com/mage-knight-digital/mkengine/state"
	"github.com/mage-knight-digital/mkengine/undo"
)

func challengeGame() (*state.GameState, hexcoord.HexCoord) {
	m := state.NewMapState()
	origin := hexcoord.New(0, 0)
	enemyHex := hexcoord.New(1, 0)
	m.Hexes[origin] = &state.HexState{Terrain: catalog.TerrainPlains}
	m.Hexes[enemyHex] = &state.HexState{
		Terrain: catalog.TerrainPlains,
		Enemies: []state.EnemyToken{{TokenID: "prowlers_1", Definition: "prowlers"}},
	}

	p1 := state.NewPlayerState("p1", catalog.HeroArythea)
	p1.Position = &origin

	g := &state.GameState{
		Players:   []*state.PlayerState{p1},
		TurnOrder: []ids.PlayerID{"p1"},
		Phase:     catalog.PhaseRound,
		Map:       m,
		RNG:       rng.New(1),
	}
	return g, enemyHex
}

func TestApplyChallengeStartsCombatWithoutMovingPlayer(t *testing.T) {
	g, enemyHex := challengeGame()
	d := dispatch.New(nil)
	u := undo.NewStack()

	result, err := d.Apply(context.Background(), g, u, 0, action.Challenge{Target: enemyHex}, g.ActionEpoch)
	require.NoError(t, err)
	assert.True(t, result.CombatStarted)
	assert.Equal(t, hexcoord.New(0, 0), *g.Players[0].Position)
	require.NotNil(t, g.Combat)
	require.Len(t, g.Combat.Enemies, 1)
	require.NotNil(t, g.ChallengeHex)
	assert.Equal(t, enemyHex, *g.ChallengeHex)
}

func TestApplyChallengeRejectsNonRampagingTarget(t *testing.T) {
	g, _ := challengeGame()
	openHex := hexcoord.New(0, 1)
	g.Map.Hexes[openHex] = &state.HexState{Terrain: catalog.TerrainPlains}

	d := dispatch.New(nil)
	u := undo.NewStack()
	_, err := d.Apply(context.Background(), g, u, 0, action.Challenge{Target: openHex}, g.ActionEpoch)
	assert.Error(t, err)
}

// TestDefeatingChallengedEnemyClearsItFromTheHex drives a full, minimal
// combat against a skirted rampaging enemy through to resolution, and
// checks the hex it occupied becomes enterable again (its token is gone
// rather than left stale, the way a conquered site's garrison is left in
// place behind the IsConquered flag).
func TestDefeatingChallengedEnemyClearsItFromTheHex(t *testing.T) {
	g, enemyHex := challengeGame()
	d := dispatch.New(nil)
	u := undo.NewStack()
	ctx := context.Background()

	_, err := d.Apply(ctx, g, u, 0, action.Challenge{Target: enemyHex}, g.ActionEpoch)
	require.NoError(t, err)

	// RangedSiege -> Block (nothing assigned at either step).
	_, err = d.Apply(ctx, g, u, 0, action.EndCombatPhase{}, g.ActionEpoch)
	require.NoError(t, err)
	assert.Equal(t, catalog.CombatBlock, g.Combat.Phase)

	// Block -> Attack, taking the enemy's full attack as unblocked damage.
	_, err = d.Apply(ctx, g, u, 0, action.EndCombatPhase{}, g.ActionEpoch)
	require.NoError(t, err)
	assert.Equal(t, catalog.CombatAttack, g.Combat.Phase)

	// Prowlers has 3 armor; give the player exactly enough melee attack.
	g.Players[0].Accumulated.MeleeAttack.Physical = 3
	enemy := g.Combat.Enemies[0]
	_, err = d.Apply(ctx, g, u, 0, action.AssignAttack{
		EnemyInstanceID: enemy.InstanceID,
		Range:           catalog.RangeMelee,
		Element:         catalog.ElementPhysical,
		Amount:          3,
	}, g.ActionEpoch)
	require.NoError(t, err)

	result, err := d.Apply(ctx, g, u, 0, action.EndCombatPhase{}, g.ActionEpoch)
	require.NoError(t, err)
	assert.True(t, result.CombatEnded)
	assert.Nil(t, g.Combat)
	assert.Nil(t, g.ChallengeHex)
	assert.Empty(t, g.Map.Hexes[enemyHex].Enemies)
}
