// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package combat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mage-knight-digital/mkengine/catalog"
	"github.com/mage-knight-digital/mkengine/combat"
	"github.com/mage-knight-digital/mkengine/state"
)

func TestFinalizeBlockSwiftRequiresDoubleBlock(t *testing.T) {
	def, ok := catalog.GetEnemy("werewolves") // Swift, Attack 3
	require.True(t, ok)

	notEnough := state.CombatEnemy{AccumulatedBlock: state.ElementalAmounts{Physical: 3}}
	combat.FinalizeBlock(&notEnough, def)
	assert.False(t, notEnough.IsBlocked)
	assert.Equal(t, 3, notEnough.DamageToAssign)

	enough := state.CombatEnemy{AccumulatedBlock: state.ElementalAmounts{Physical: 6}}
	combat.FinalizeBlock(&enough, def)
	assert.True(t, enough.IsBlocked)
	assert.Equal(t, 0, enough.DamageToAssign)
}

func TestFinalizeBlockBrutalDoublesUnblockedDamage(t *testing.T) {
	def, ok := catalog.GetEnemy("diggers") // Brutal, Attack 3
	require.True(t, ok)

	unblocked := state.CombatEnemy{}
	combat.FinalizeBlock(&unblocked, def)
	assert.False(t, unblocked.IsBlocked)
	assert.Equal(t, 6, unblocked.DamageToAssign)

	fullyBlocked := state.CombatEnemy{AccumulatedBlock: state.ElementalAmounts{Physical: 3}}
	combat.FinalizeBlock(&fullyBlocked, def)
	assert.True(t, fullyBlocked.IsBlocked)
	assert.Equal(t, 0, fullyBlocked.DamageToAssign)
}

func TestAssignAttackElusiveAcceptsOnlyOneSource(t *testing.T) {
	def, ok := catalog.GetEnemy("prowlers") // Elusive, Armor 3
	require.True(t, ok)

	player := state.NewPlayerState("p1", catalog.HeroArythea)
	player.Accumulated.MeleeAttack.Physical = 5
	enemy := &state.CombatEnemy{}

	require.NoError(t, combat.AssignAttack(player, enemy, def, catalog.RangeMelee, catalog.ElementPhysical, 2))
	assert.True(t, enemy.AttackSourceSealed)

	err := combat.AssignAttack(player, enemy, def, catalog.RangeMelee, catalog.ElementPhysical, 1)
	assert.Error(t, err)

	require.NoError(t, combat.UnassignAttack(player, enemy, catalog.RangeMelee, catalog.ElementPhysical, 2))
	assert.False(t, enemy.AttackSourceSealed)

	require.NoError(t, combat.AssignAttack(player, enemy, def, catalog.RangeMelee, catalog.ElementPhysical, 3))
}

func TestAssignBlockElusiveAcceptsOnlyOneSource(t *testing.T) {
	def, ok := catalog.GetEnemy("prowlers") // Elusive
	require.True(t, ok)

	player := state.NewPlayerState("p1", catalog.HeroArythea)
	player.Accumulated.Block.Physical = 5
	enemy := &state.CombatEnemy{}

	require.NoError(t, combat.AssignBlock(player, enemy, def, catalog.ElementPhysical, 2))
	assert.True(t, enemy.BlockSourceSealed)

	err := combat.AssignBlock(player, enemy, def, catalog.ElementPhysical, 1)
	assert.Error(t, err)
}

func TestAssignAttackNonElusiveAcceptsMultipleSources(t *testing.T) {
	def, ok := catalog.GetEnemy("guardsmen") // no abilities
	require.True(t, ok)

	player := state.NewPlayerState("p1", catalog.HeroArythea)
	player.Accumulated.MeleeAttack.Physical = 5
	enemy := &state.CombatEnemy{}

	require.NoError(t, combat.AssignAttack(player, enemy, def, catalog.RangeMelee, catalog.ElementPhysical, 2))
	require.NoError(t, combat.AssignAttack(player, enemy, def, catalog.RangeMelee, catalog.ElementPhysical, 3))
	assert.Equal(t, 5, enemy.AttackAssigned.Physical)
}

func TestIsEnemyAttacksSkippedDefeatedOrBlocked(t *testing.T) {
	assert.True(t, combat.IsEnemyAttacksSkipped(state.CombatEnemy{IsDefeated: true}))
	assert.True(t, combat.IsEnemyAttacksSkipped(state.CombatEnemy{IsBlocked: true}))
	assert.False(t, combat.IsEnemyAttacksSkipped(state.CombatEnemy{}))
}
