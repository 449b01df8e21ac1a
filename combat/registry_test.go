// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package combat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mage-knight-digital/mkengine/catalog"
	"github.com/mage-knight-digital/mkengine/combat"
	"github.com/mage-knight-digital/mkengine/ids"
	"github.com/mage-knight-digital/mkengine/state"
)

func TestAsRegistryResolvesEnemiesAndUnitsByID(t *testing.T) {
	c := state.NewCombatState("p1", []state.CombatEnemy{
		{InstanceID: "prowlers_1", EnemyID: "prowlers"},
	})
	player := state.NewPlayerState("p1", catalog.HeroArythea)
	player.Units = []state.Unit{
		{InstanceID: "peasants_1", Definition: "peasants", State: catalog.UnitReady},
	}

	registry := combat.AsRegistry(c, player)

	enemy := registry.GetCombatant(ids.CombatInstanceID("prowlers_1"))
	if assert.NotNil(t, enemy) {
		assert.Equal(t, "prowlers_1", enemy.CombatantID())
	}

	unit := registry.GetCombatant(ids.CombatInstanceID("peasants_1"))
	if assert.NotNil(t, unit) {
		assert.Equal(t, "peasants_1", unit.CombatantID())
	}

	assert.Nil(t, registry.GetCombatant(ids.CombatInstanceID("nobody")))
}

func TestAsRegistryNilCombatStateStillResolvesUnits(t *testing.T) {
	player := state.NewPlayerState("p1", catalog.HeroArythea)
	player.Units = []state.Unit{
		{InstanceID: "peasants_1", Definition: "peasants", State: catalog.UnitReady},
	}

	registry := combat.AsRegistry(nil, player)
	unit := registry.GetCombatant(ids.CombatInstanceID("peasants_1"))
	assert.NotNil(t, unit)
}
