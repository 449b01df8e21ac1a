// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package combat

import (
	"github.com/mage-knight-digital/mkengine/catalog"
	"github.com/mage-knight-digital/mkengine/ids"
	"github.com/mage-knight-digital/mkengine/mkerr"
	"github.com/mage-knight-digital/mkengine/state"
)

func amountOf(a state.ElementalAmounts, element catalog.Element) int {
	switch element {
	case catalog.ElementFire:
		return a.Fire
	case catalog.ElementIce:
		return a.Ice
	case catalog.ElementColdFire:
		return a.ColdFire
	default:
		return a.Physical
	}
}

func subtractAmount(a *state.ElementalAmounts, element catalog.Element, n int) {
	a.Add(element, -n)
}

// attackPool returns the range-scoped attack pool an assignment of rng
// draws from, mirroring the effect resolver's own pool selection so a
// gained attack value and its later assignment always agree on which
// bucket holds it.
func attackPool(player *state.PlayerState, rng catalog.AttackRange) *state.ElementalAmounts {
	switch rng {
	case catalog.RangeRanged:
		return &player.Accumulated.RangedAttack
	case catalog.RangeSiege:
		return &player.Accumulated.SiegeAttack
	default:
		return &player.Accumulated.MeleeAttack
	}
}

// AssignAttack moves n points of attack of element, from the range-scoped
// pool rng names, onto enemy, committing it toward defeating that enemy.
// Returns an error if the player does not hold n points of that element in
// that pool, or if def is Elusive and enemy has already sealed its one
// permitted attack source.
func AssignAttack(player *state.PlayerState, enemy *state.CombatEnemy, def catalog.EnemyDefinition, rng catalog.AttackRange, element catalog.Element, n int) error {
	if n <= 0 {
		return nil
	}
	if HasAbility(def, catalog.AbilityElusive) && enemy.AttackSourceSealed {
		return mkerr.IllegalAction("elusive enemy accepts attack from only one source")
	}
	pool := attackPool(player, rng)
	if amountOf(*pool, element) < n {
		return mkerr.IllegalAction("insufficient attack value to assign")
	}
	subtractAmount(pool, element, n)
	enemy.AttackAssigned.Add(element, n)
	if HasAbility(def, catalog.AbilityElusive) {
		enemy.AttackSourceSealed = true
	}
	return nil
}

// UnassignAttack reverses a prior AssignAttack, returning n points of
// element back to the rng pool it was drawn from. An Elusive enemy's seal
// releases once its assigned total returns to zero.
func UnassignAttack(player *state.PlayerState, enemy *state.CombatEnemy, rng catalog.AttackRange, element catalog.Element, n int) error {
	if n <= 0 {
		return nil
	}
	if amountOf(enemy.AttackAssigned, element) < n {
		return mkerr.IllegalAction("insufficient assigned attack to unassign")
	}
	subtractAmount(&enemy.AttackAssigned, element, n)
	attackPool(player, rng).Add(element, n)
	if enemy.AttackAssigned.Total() == 0 {
		enemy.AttackSourceSealed = false
	}
	return nil
}

// AssignBlock moves n points of block of element from the player's pool
// onto enemy, committing it against that enemy's attack. Returns an error
// if def is Elusive and enemy has already sealed its one permitted block
// source.
func AssignBlock(player *state.PlayerState, enemy *state.CombatEnemy, def catalog.EnemyDefinition, element catalog.Element, n int) error {
	if n <= 0 {
		return nil
	}
	if HasAbility(def, catalog.AbilityElusive) && enemy.BlockSourceSealed {
		return mkerr.IllegalAction("elusive enemy accepts block from only one source")
	}
	if amountOf(player.Accumulated.Block, element) < n {
		return mkerr.IllegalAction("insufficient block value to assign")
	}
	subtractAmount(&player.Accumulated.Block, element, n)
	enemy.AccumulatedBlock.Add(element, n)
	if HasAbility(def, catalog.AbilityElusive) {
		enemy.BlockSourceSealed = true
	}
	return nil
}

// UnassignBlock reverses a prior AssignBlock. An Elusive enemy's seal
// releases once its accumulated block returns to zero.
func UnassignBlock(player *state.PlayerState, enemy *state.CombatEnemy, element catalog.Element, n int) error {
	if n <= 0 {
		return nil
	}
	if amountOf(enemy.AccumulatedBlock, element) < n {
		return mkerr.IllegalAction("insufficient assigned block to unassign")
	}
	subtractAmount(&enemy.AccumulatedBlock, element, n)
	player.Accumulated.Block.Add(element, n)
	if enemy.AccumulatedBlock.Total() == 0 {
		enemy.BlockSourceSealed = false
	}
	return nil
}

// FinalizeAttack commits enemy's AttackAssigned against def's armor,
// marking it defeated if the effective total (after resistance halving,
// per element) meets or exceeds the armor. Mage Knight attacks are
// all-or-nothing: an assignment that falls short of armor is simply
// wasted, the same as the tabletop's "attack didn't get through" outcome —
// it is not returned to any accumulator, since AttackAssigned no longer
// remembers which range pool(s) it was drawn from.
func FinalizeAttack(enemy *state.CombatEnemy, def catalog.EnemyDefinition) {
	total := EffectiveAttack(def, catalog.ElementPhysical, enemy.AttackAssigned.Physical) +
		EffectiveAttack(def, catalog.ElementFire, enemy.AttackAssigned.Fire) +
		EffectiveAttack(def, catalog.ElementIce, enemy.AttackAssigned.Ice) +
		EffectiveAttack(def, catalog.ElementColdFire, enemy.AttackAssigned.ColdFire)

	if total >= def.Armor {
		enemy.IsDefeated = true
	}
	enemy.AttackAssigned = state.ElementalAmounts{}
}

// FinalizeBlock commits enemy's AccumulatedBlock against def's attack,
// marking it blocked if the effective total meets or exceeds the block
// required to stop it, and computing DamageToAssign otherwise. Blocks are
// all-or-nothing: a block that falls short is wasted and the enemy's full
// attack gets through. Swift doubles the block required to fully stop the
// attack; Brutal doubles whatever damage gets through when that
// requirement isn't met.
func FinalizeBlock(enemy *state.CombatEnemy, def catalog.EnemyDefinition) {
	total := EffectiveBlock(def.Element, catalog.ElementPhysical, enemy.AccumulatedBlock.Physical) +
		EffectiveBlock(def.Element, catalog.ElementFire, enemy.AccumulatedBlock.Fire) +
		EffectiveBlock(def.Element, catalog.ElementIce, enemy.AccumulatedBlock.Ice) +
		EffectiveBlock(def.Element, catalog.ElementColdFire, enemy.AccumulatedBlock.ColdFire)

	required := def.Attack
	if HasAbility(def, catalog.AbilitySwift) {
		required *= 2
	}

	if total >= required {
		enemy.IsBlocked = true
		enemy.DamageToAssign = 0
		return
	}

	remaining := def.Attack
	if HasAbility(def, catalog.AbilityBrutal) {
		remaining *= 2
	}
	enemy.DamageToAssign = remaining
}

// ApplyDamageAssignment applies one DamageAssignment: reduces incoming
// damage per target by its armor, routes overflow to wounds (into the
// hero's hand, or into the deck if the source attack carries Poison — the
// poisoned wound enters the deck instead of the hand). If the attack
// carries Paralyze, every unit named in ToUnits is set to UnitParalyzed
// instead of being wounded; the unit stays in player.Units, and the hero
// takes no wound beyond the armor overflow above.
func ApplyDamageAssignment(player *state.PlayerState, assignment state.DamageAssignment, def catalog.EnemyDefinition) error {
	if assignment.ToHero < 0 {
		return mkerr.IllegalAction("negative damage assignment to hero")
	}

	paralyze := HasAbility(def, catalog.AbilityParalyze)
	poison := HasAbility(def, catalog.AbilityPoison)

	heroOverflow := assignment.ToHero - player.Armor()
	if heroOverflow > 0 {
		wounds := heroOverflow
		for i := 0; i < wounds; i++ {
			if poison {
				player.Deck = append(player.Deck, catalog.WoundCardID)
			} else {
				player.Hand = append(player.Hand, catalog.WoundCardID)
			}
		}
	}

	for instanceID, dmg := range assignment.ToUnits {
		if dmg < 0 {
			return mkerr.IllegalAction("negative damage assignment to unit")
		}
		idx := unitIndex(player, instanceID)
		if idx < 0 {
			return mkerr.IllegalAction("damage assigned to unknown unit instance")
		}
		unit := &player.Units[idx]
		if paralyze {
			unit.State = catalog.UnitParalyzed
			continue
		}
		unitDef, ok := catalog.GetUnit(unit.Definition)
		armor := 0
		if ok {
			armor = unitDef.Armor
		}
		if dmg >= armor {
			unit.State = catalog.UnitWounded
			unit.Wounds++
		}
	}
	return nil
}

func unitIndex(player *state.PlayerState, id ids.UnitInstanceID) int {
	for i, u := range player.Units {
		if u.InstanceID == id {
			return i
		}
	}
	return -1
}
