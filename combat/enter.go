// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package combat

import (
	"github.com/mage-knight-digital/mkengine/catalog"
	"github.com/mage-knight-digital/mkengine/ids"
	"github.com/mage-knight-digital/mkengine/state"
)

// EnterCombat assembles a fresh CombatState for player against tokens,
// hydrating each from the static catalog up front (so nothing later in
// combat needs to rejoin against catalog.GetEnemy mid-fight).
func EnterCombat(player ids.PlayerID, tokens []state.EnemyToken) *state.CombatState {
	enemies := make([]state.CombatEnemy, len(tokens))
	for i, t := range tokens {
		enemies[i] = state.CombatEnemy{
			InstanceID: ids.CombatInstanceID(string(t.TokenID)),
			EnemyID:    t.Definition,
		}
	}
	return state.NewCombatState(player, enemies)
}

// DefinitionsFor resolves every participating enemy's static definition,
// keyed by EnemyID, for callers (assign/resolution helpers, the
// enumerator) that need repeated lookups without hitting catalog.GetEnemy
// in a loop.
func DefinitionsFor(c *state.CombatState) map[ids.EnemyID]catalog.EnemyDefinition {
	out := make(map[ids.EnemyID]catalog.EnemyDefinition, len(c.Enemies))
	for _, e := range c.Enemies {
		if _, ok := out[e.EnemyID]; ok {
			continue
		}
		if def, ok := catalog.GetEnemy(e.EnemyID); ok {
			out[e.EnemyID] = def
		}
	}
	return out
}
