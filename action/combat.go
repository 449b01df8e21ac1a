// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package action

import (
	"github.com/mage-knight-digital/mkengine/catalog"
	"github.com/mage-knight-digital/mkengine/combat"
	"github.com/mage-knight-digital/mkengine/state"
)

// elements lists every element an accumulator can carry, in a fixed order
// so assignment actions enumerate deterministically.
var elements = [4]catalog.Element{
	catalog.ElementPhysical, catalog.ElementFire, catalog.ElementIce, catalog.ElementColdFire,
}

// rangesByPhase names which AttackRange values an AssignAttack may draw
// from in each combat phase: RangedSiege offers Ranged and Siege pools,
// Attack offers all three (melee plus whatever Ranged/Siege carried over
// unspent).
func rangesByPhase(phase catalog.CombatPhase) []catalog.AttackRange {
	switch phase {
	case catalog.CombatRangedSiege:
		return []catalog.AttackRange{catalog.RangeRanged, catalog.RangeSiege}
	case catalog.CombatAttack:
		return []catalog.AttackRange{catalog.RangeMelee, catalog.RangeRanged, catalog.RangeSiege}
	default:
		return nil
	}
}

func poolAmount(pool state.ElementalAmounts, element catalog.Element) int {
	switch element {
	case catalog.ElementFire:
		return pool.Fire
	case catalog.ElementIce:
		return pool.Ice
	case catalog.ElementColdFire:
		return pool.ColdFire
	default:
		return pool.Physical
	}
}

func rangePool(player *state.PlayerState, r catalog.AttackRange) state.ElementalAmounts {
	switch r {
	case catalog.RangeRanged:
		return player.Accumulated.RangedAttack
	case catalog.RangeSiege:
		return player.Accumulated.SiegeAttack
	default:
		return player.Accumulated.MeleeAttack
	}
}

// enumerateCombat emits categories 9-11 (AssignAttack, AssignBlock,
// AutoAssignDefend, EndCombatPhase) for the active combat's current phase.
func enumerateCombat(c *state.CombatState, player *state.PlayerState, actions *[]LegalAction) {
	defs := combat.DefinitionsFor(c)

	switch c.Phase {
	case catalog.CombatRangedSiege, catalog.CombatAttack:
		for _, r := range rangesByPhase(c.Phase) {
			pool := rangePool(player, r)
			for _, el := range elements {
				if poolAmount(pool, el) <= 0 {
					continue
				}
				for _, enemy := range c.Enemies {
					if combat.IsEnemyAttacksSkipped(enemy) {
						continue
					}
					if combat.IsRangedSiegeBlockedByFortified(defs, enemy, r) {
						continue
					}
					if def, ok := defs[enemy.EnemyID]; ok && combat.HasAbility(def, catalog.AbilityElusive) && enemy.AttackSourceSealed {
						continue
					}
					*actions = append(*actions, AssignAttack{
						EnemyInstanceID: enemy.InstanceID,
						Range:           r,
						Element:         el,
						Amount:          poolAmount(pool, el),
					})
				}
			}
		}
	case catalog.CombatBlock:
		hasReadyUnit := false
		for _, u := range player.Units {
			if u.State == catalog.UnitReady {
				hasReadyUnit = true
				break
			}
		}
		for _, enemy := range c.Enemies {
			if combat.IsEnemyAttacksSkipped(enemy) {
				continue
			}
			elusiveSealed := false
			if def, ok := defs[enemy.EnemyID]; ok {
				elusiveSealed = combat.HasAbility(def, catalog.AbilityElusive) && enemy.BlockSourceSealed
			}
			if !elusiveSealed {
				for _, el := range elements {
					amt := poolAmount(player.Accumulated.Block, el)
					if amt <= 0 {
						continue
					}
					*actions = append(*actions, AssignBlock{EnemyInstanceID: enemy.InstanceID, Element: el, Amount: amt})
				}
			}
			if hasReadyUnit && !elusiveSealed {
				*actions = append(*actions, AutoAssignDefend{EnemyInstanceID: enemy.InstanceID})
			}
		}
	}

	*actions = append(*actions, EndCombatPhase{})
}
