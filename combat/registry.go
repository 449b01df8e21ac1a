// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package combat

import (
	"github.com/mage-knight-digital/mkengine/gamectx"
	"github.com/mage-knight-digital/mkengine/ids"
	"github.com/mage-knight-digital/mkengine/state"
)

// enemyCombatant adapts a *state.CombatEnemy to gamectx.Combatant.
type enemyCombatant struct{ enemy *state.CombatEnemy }

func (c enemyCombatant) CombatantID() string { return string(c.enemy.InstanceID) }

// Enemy returns the underlying combat enemy.
func (c enemyCombatant) Enemy() *state.CombatEnemy { return c.enemy }

// unitCombatant adapts a recruited *state.Unit to gamectx.Combatant. Units
// carry a UnitInstanceID rather than a CombatInstanceID — there's only
// ever one combat a given unit can be committed to at a time, so its unit
// instance ID doubles as its combat-instance identity here.
type unitCombatant struct{ unit *state.Unit }

func (c unitCombatant) CombatantID() string { return string(c.unit.InstanceID) }

// Unit returns the underlying recruited unit.
func (c unitCombatant) Unit() *state.Unit { return c.unit }

type registry struct {
	combat *state.CombatState
	player *state.PlayerState
}

// AsRegistry adapts c's enemies and player's units into a
// gamectx.CombatantRegistry, so effect resolution and dispatch can resolve
// "this enemy" or "that unit" by a single ID type without threading
// *state.CombatState and *state.PlayerState through every call site.
func AsRegistry(c *state.CombatState, player *state.PlayerState) gamectx.CombatantRegistry {
	return registry{combat: c, player: player}
}

func (r registry) GetCombatant(id ids.CombatInstanceID) gamectx.Combatant {
	if r.combat != nil {
		if enemy, ok := r.combat.EnemyByInstance(id); ok {
			return enemyCombatant{enemy: enemy}
		}
	}
	if r.player != nil {
		for i := range r.player.Units {
			if ids.CombatInstanceID(string(r.player.Units[i].InstanceID)) == id {
				return unitCombatant{unit: &r.player.Units[i]}
			}
		}
	}
	return nil
}
