// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package combat implements the four-phase combat state machine and the
// pure elemental-math helpers spec.md §4.4 names: resistance-adjusted
// attack/block effectiveness, ability-driven phase modulation, and
// unblocked-damage allocation between a hero and their ready units.
package combat

import (
	"github.com/mage-knight-digital/mkengine/catalog"
	"github.com/mage-knight-digital/mkengine/ids"
	"github.com/mage-knight-digital/mkengine/state"
)

// HasAbility reports whether an enemy definition carries ability.
func HasAbility(def catalog.EnemyDefinition, ability catalog.EnemyAbilityType) bool {
	for _, a := range def.Abilities {
		if a == ability {
			return true
		}
	}
	return false
}

// hasResistance reports whether def's Resistances list names element.
func hasResistance(def catalog.EnemyDefinition, element catalog.Element) bool {
	for _, r := range def.Resistances {
		if r == element {
			return true
		}
	}
	return false
}

// resisted reports whether element is halved against def. Physical and
// single-element attacks check def.Resistances directly; a cold-fire
// attack is only halved when def resists *both* fire and ice (resisting
// one alone does not stop a cold-fire strike).
func resisted(def catalog.EnemyDefinition, element catalog.Element) bool {
	switch element {
	case catalog.ElementColdFire:
		return hasResistance(def, catalog.ElementFire) && hasResistance(def, catalog.ElementIce)
	default:
		return hasResistance(def, element)
	}
}

// halveRoundUp halves n, rounding up in the attacker's favor (2 damage
// against a resisted enemy still deals 1, but 3 deals 2) — the standard
// Mage Knight resistance rounding.
func halveRoundUp(n int) int {
	return (n + 1) / 2
}

// EffectiveAttack returns how much of a raw attack value actually applies
// against def, after halving for any matching resistance.
func EffectiveAttack(def catalog.EnemyDefinition, element catalog.Element, raw int) int {
	if raw <= 0 {
		return 0
	}
	if resisted(def, element) {
		return halveRoundUp(raw)
	}
	return raw
}

// EffectiveBlock returns how much of a raw block value counts against an
// attack of attackElement. Physical block works at full value only
// against physical attacks; against an elemental attack, block of the
// same element counts fully, cold-fire block counts fully against
// anything, and any other (mismatched or physical) block counts at half
// value, rounded down, since it cannot cleanly neutralize an elemental
// strike.
func EffectiveBlock(attackElement, blockElement catalog.Element, raw int) int {
	if raw <= 0 {
		return 0
	}
	if attackElement == catalog.ElementPhysical {
		return raw
	}
	if blockElement == catalog.ElementColdFire || blockElement == attackElement {
		return raw
	}
	return raw / 2
}

// IsRangedSiegeBlockedByFortified reports whether target cannot be hit by
// an attack of attackRange in the RangedSiege phase because it has
// Fortified. Fortified only protects against Ranged attacks — Siege
// attacks ignore it entirely, matching the rulebook distinction between
// the two RangedSiege-phase attack kinds. Melee attacks are never subject
// to this check (Fortified has no effect in the Attack phase).
func IsRangedSiegeBlockedByFortified(defs map[ids.EnemyID]catalog.EnemyDefinition, target state.CombatEnemy, attackRange catalog.AttackRange) bool {
	if attackRange != catalog.RangeRanged {
		return false
	}
	def, ok := defs[target.EnemyID]
	return ok && HasAbility(def, catalog.AbilityFortified)
}

// IsEnemyAttacksSkipped reports whether enemy's attack never reaches the
// player: already defeated, or already fully blocked. The dispatcher's
// damage routing and the action enumerator's combat loops call this
// directly instead of repeating the IsDefeated/IsBlocked pair inline.
func IsEnemyAttacksSkipped(enemy state.CombatEnemy) bool {
	return enemy.IsDefeated || enemy.IsBlocked
}

// AutoAssignDefend computes which ready units automatically contribute
// block toward an incoming attack's required amount, filling from the
// front of readyUnits until the requirement is met or units run out,
// returning the units actually tapped and the total block they cover.
// Used by the dispatcher's auto-defend convenience action; an explicit
// AssignBlock sequence is always available as the manual alternative.
func AutoAssignDefend(readyUnits []state.Unit, unitArmorAsBlock map[ids.UnitInstanceID]int, required int) ([]ids.UnitInstanceID, int) {
	var tapped []ids.UnitInstanceID
	covered := 0
	for _, u := range readyUnits {
		if covered >= required {
			break
		}
		if u.State != catalog.UnitReady {
			continue
		}
		block := unitArmorAsBlock[u.InstanceID]
		if block <= 0 {
			continue
		}
		tapped = append(tapped, u.InstanceID)
		covered += block
	}
	return tapped, covered
}
