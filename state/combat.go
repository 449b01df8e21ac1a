// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package state

import (
	"github.com/mage-knight-digital/mkengine/catalog"
	"github.com/mage-knight-digital/mkengine/ids"
)

// ElementalAmounts tallies a value (attack or block) broken down by
// element, since physical/fire/ice/coldfire accumulate independently and
// only combine at the resolution boundary (resistance halving applies
// per-element, not to a pre-summed total).
type ElementalAmounts struct {
	Physical int
	Fire     int
	Ice      int
	ColdFire int
}

// Add adds amount of element to the tally in place.
func (a *ElementalAmounts) Add(element catalog.Element, amount int) {
	switch element {
	case catalog.ElementFire:
		a.Fire += amount
	case catalog.ElementIce:
		a.Ice += amount
	case catalog.ElementColdFire:
		a.ColdFire += amount
	default:
		a.Physical += amount
	}
}

// Total sums every element's amount.
func (a ElementalAmounts) Total() int {
	return a.Physical + a.Fire + a.Ice + a.ColdFire
}

// AttackRecord is one declared attack against the assembled enemy group,
// attributed to whichever element it carries for resistance purposes.
type AttackRecord struct {
	Element catalog.Element
	Range   catalog.AttackRange
	Amount  int
}

// CombatEnemy is one enemy participating in the current combat, hydrated
// from its static catalog.EnemyDefinition at combat start so later lookups
// never need to rejoin against the catalog mid-fight.
type CombatEnemy struct {
	InstanceID ids.CombatInstanceID
	EnemyID    ids.EnemyID
	IsDefeated bool
	IsBlocked  bool

	// AccumulatedAttack is this enemy's own attack broken down by element
	// (what it throws at the player, filled in when the RangedSiege/Attack
	// phase resolves its strike).
	AccumulatedAttack ElementalAmounts

	// AccumulatedBlock is the block the player has committed against this
	// enemy's attack, by element.
	AccumulatedBlock ElementalAmounts

	// AttackAssigned is the attack the player has committed toward
	// defeating this enemy, by element (the Attack/RangedSiege-phase
	// counterpart of AccumulatedBlock).
	AttackAssigned ElementalAmounts

	DamageToAssign int

	// AttackSourceSealed and BlockSourceSealed latch once an Elusive enemy
	// has received its one permitted attack or block assignment; further
	// assignment attempts are rejected until an Unassign empties the
	// corresponding accumulator back to zero.
	AttackSourceSealed bool
	BlockSourceSealed  bool
}

// Clone returns a deep copy (no reference fields beyond value types).
func (e CombatEnemy) Clone() CombatEnemy { return e }

// DamageAssignment records how unblocked damage from one enemy attack was
// split between the hero and ready units.
type DamageAssignment struct {
	EnemyInstanceID ids.CombatInstanceID
	ToHero          int
	ToUnits         map[ids.UnitInstanceID]int
}

// Clone returns a deep copy.
func (d DamageAssignment) Clone() DamageAssignment {
	out := d
	if len(d.ToUnits) > 0 {
		out.ToUnits = make(map[ids.UnitInstanceID]int, len(d.ToUnits))
		for k, v := range d.ToUnits {
			out.ToUnits[k] = v
		}
	}
	return out
}

// CombatState is the current combat's full state machine: phase, the
// assembled enemy group, declared attacks, and per-combat modifiers. A
// player has at most one CombatState at a time (spec's "exactly one of
// combat or normal turn" invariant).
type CombatState struct {
	Phase   catalog.CombatPhase
	Player  ids.PlayerID
	Enemies []CombatEnemy

	Attacks []AttackRecord

	DamageAssignments []DamageAssignment

	// FortifiedBlocked marks enemies behind a Fortified ally that cannot be
	// targeted by ranged/siege attacks until every non-Fortified enemy in
	// the group is defeated or blocked.
	FortifiedBlocked map[ids.CombatInstanceID]bool

	Modifiers ModifierSet
}

// NewCombatState starts a fresh combat for player against the given
// enemies, in the RangedSiege phase (the machine's entry point).
func NewCombatState(player ids.PlayerID, enemies []CombatEnemy) *CombatState {
	return &CombatState{
		Phase:   catalog.CombatRangedSiege,
		Player:  player,
		Enemies: enemies,
	}
}

// EnemyByInstance finds a participating enemy by instance ID.
func (c *CombatState) EnemyByInstance(id ids.CombatInstanceID) (*CombatEnemy, bool) {
	for i := range c.Enemies {
		if c.Enemies[i].InstanceID == id {
			return &c.Enemies[i], true
		}
	}
	return nil, false
}

// HasPendingDamageAssignment reports whether any unblocked, undefeated
// enemy still has damage waiting on a DamageAssignment.
func (c *CombatState) HasPendingDamageAssignment() bool {
	for _, e := range c.Enemies {
		if !e.IsDefeated && !e.IsBlocked && e.DamageToAssign > 0 {
			return true
		}
	}
	return false
}

// AllResolved reports whether every enemy in the group is either defeated
// or blocked, the condition that lets the machine skip the Attack phase.
func (c *CombatState) AllResolved() bool {
	for _, e := range c.Enemies {
		if !e.IsDefeated && !e.IsBlocked {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the entire combat.
func (c *CombatState) Clone() *CombatState {
	out := *c

	out.Enemies = make([]CombatEnemy, len(c.Enemies))
	for i, e := range c.Enemies {
		out.Enemies[i] = e.Clone()
	}

	out.Attacks = append([]AttackRecord(nil), c.Attacks...)

	out.DamageAssignments = make([]DamageAssignment, len(c.DamageAssignments))
	for i, d := range c.DamageAssignments {
		out.DamageAssignments[i] = d.Clone()
	}

	if len(c.FortifiedBlocked) > 0 {
		out.FortifiedBlocked = make(map[ids.CombatInstanceID]bool, len(c.FortifiedBlocked))
		for k, v := range c.FortifiedBlocked {
			out.FortifiedBlocked[k] = v
		}
	}

	out.Modifiers = c.Modifiers.Clone()

	return &out
}
