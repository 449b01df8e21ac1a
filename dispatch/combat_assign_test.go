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
	"github.com/mage-knight-digital/mkengine/undo"
)

func TestApplyAssignAttackUnknownEnemyInstanceReturnsErrorNotPanic(t *testing.T) {
	g, enemyHex := challengeGame()
	d := dispatch.New(nil)
	u := undo.NewStack()
	ctx := context.Background()

	_, err := d.Apply(ctx, g, u, 0, action.Challenge{Target: enemyHex}, g.ActionEpoch)
	require.NoError(t, err)

	g.Players[0].Accumulated.MeleeAttack.Physical = 3
	_, err = d.Apply(ctx, g, u, 0, action.AssignAttack{
		EnemyInstanceID: "nobody_here",
		Range:           catalog.RangeMelee,
		Element:         catalog.ElementPhysical,
		Amount:          3,
	}, g.ActionEpoch)
	assert.Error(t, err)
}

// TestApplyAssignAttackElusiveRejectsSecondSource drives a full combat
// against prowlers (Elusive) and confirms a second AssignAttack call is
// rejected once the first has sealed the enemy's one permitted source.
func TestApplyAssignAttackElusiveRejectsSecondSource(t *testing.T) {
	g, enemyHex := challengeGame()
	d := dispatch.New(nil)
	u := undo.NewStack()
	ctx := context.Background()

	_, err := d.Apply(ctx, g, u, 0, action.Challenge{Target: enemyHex}, g.ActionEpoch)
	require.NoError(t, err)
	_, err = d.Apply(ctx, g, u, 0, action.EndCombatPhase{}, g.ActionEpoch)
	require.NoError(t, err)
	_, err = d.Apply(ctx, g, u, 0, action.EndCombatPhase{}, g.ActionEpoch)
	require.NoError(t, err)
	require.Equal(t, catalog.CombatAttack, g.Combat.Phase)

	g.Players[0].Accumulated.MeleeAttack.Physical = 5
	enemy := g.Combat.Enemies[0]

	_, err = d.Apply(ctx, g, u, 0, action.AssignAttack{
		EnemyInstanceID: enemy.InstanceID,
		Range:           catalog.RangeMelee,
		Element:         catalog.ElementPhysical,
		Amount:          2,
	}, g.ActionEpoch)
	require.NoError(t, err)

	_, err = d.Apply(ctx, g, u, 0, action.AssignAttack{
		EnemyInstanceID: enemy.InstanceID,
		Range:           catalog.RangeMelee,
		Element:         catalog.ElementPhysical,
		Amount:          1,
	}, g.ActionEpoch)
	assert.Error(t, err)
}
