// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package action_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mage-knight-digital/mkengine/action"
	"github.com/mage-knight-digital/mkengine/catalog"
	"github.com/mage-knight-digital/mkengine/ids"
	"github.com/mage-knight-digital/mkengine/rng"
	"github.com/mage-knight-digital/mkengine/state"
)

func elusiveBlockCombatGame() *state.GameState {
	p1 := state.NewPlayerState("p1", catalog.HeroArythea)
	p1.Accumulated.Block.Physical = 5

	combatState := state.NewCombatState("p1", []state.CombatEnemy{
		{InstanceID: "prowlers_1", EnemyID: "prowlers"},
	})
	combatState.Phase = catalog.CombatBlock

	return &state.GameState{
		Players:   []*state.PlayerState{p1},
		TurnOrder: []ids.PlayerID{"p1"},
		Phase:     catalog.PhaseRound,
		Map:       state.NewMapState(),
		RNG:       rng.New(1),
		Combat:    combatState,
	}
}

func hasAssignBlock(actions []action.LegalAction) bool {
	for _, a := range actions {
		if _, ok := a.(action.AssignBlock); ok {
			return true
		}
	}
	return false
}

func TestEnumerateLegalActionsOffersAssignBlockAgainstUnsealedElusiveEnemy(t *testing.T) {
	g := elusiveBlockCombatGame()
	set := action.EnumerateLegalActions(g, 0, false)
	assert.True(t, hasAssignBlock(set.Actions))
}

func TestEnumerateLegalActionsHidesAssignBlockOnceElusiveEnemyIsSealed(t *testing.T) {
	g := elusiveBlockCombatGame()
	g.Combat.Enemies[0].BlockSourceSealed = true

	set := action.EnumerateLegalActions(g, 0, false)
	assert.False(t, hasAssignBlock(set.Actions))
}

func TestProwlersDefinitionCarriesElusive(t *testing.T) {
	def, ok := catalog.GetEnemy("prowlers")
	require.True(t, ok)
	assert.Contains(t, def.Abilities, catalog.AbilityElusive)
}
