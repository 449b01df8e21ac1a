// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package state

import (
	"github.com/mage-knight-digital/mkengine/catalog"
	"github.com/mage-knight-digital/mkengine/hexcoord"
	"github.com/mage-knight-digital/mkengine/ids"
)

// Unit is one recruited unit in a player's roster. InstanceID distinguishes
// two copies of the same UnitDefinition (e.g. two Peasants) recruited by
// the same player. State reuses catalog.UnitState rather than declaring a
// parallel readiness enum.
type Unit struct {
	InstanceID ids.UnitInstanceID
	Definition ids.UnitID
	State      catalog.UnitState
	Wounds     int // number of wound markers the unit currently carries
}

// Clone returns a copy (Unit has no reference fields, so a value copy is
// already a deep copy; the method exists for uniformity with the rest of
// the package's Clone contract).
func (u Unit) Clone() Unit { return u }

// AccumulatedValues holds the four per-turn point accumulators that clear
// at turn end. Attack is split into three range-scoped pools — Melee,
// Ranged, Siege — because which pool an attack value lands in, not just
// its element, governs when it may be spent: only Ranged and Siege attack
// may be assigned during the RangedSiege combat phase, and only Siege
// attack may target a Fortified enemy there. Each pool is further broken
// down by element (spec's "attack_values, block_values" plural) since
// resistance math depends on which element paid for a given point of
// damage. Block carries no range restriction, so it stays a single pool.
type AccumulatedValues struct {
	Move      int
	Influence int

	MeleeAttack  ElementalAmounts
	RangedAttack ElementalAmounts
	SiegeAttack  ElementalAmounts

	Block ElementalAmounts
}

// SkillCooldowns tracks once-per-turn/once-per-round skill usage, keyed by
// skill ID, reset at the corresponding boundary.
type SkillCooldowns struct {
	UsedThisTurn  map[ids.SkillID]bool
	UsedThisRound map[ids.SkillID]bool
}

// NewSkillCooldowns returns an empty tracker.
func NewSkillCooldowns() SkillCooldowns {
	return SkillCooldowns{
		UsedThisTurn:  make(map[ids.SkillID]bool),
		UsedThisRound: make(map[ids.SkillID]bool),
	}
}

// ClearTurn resets turn-scoped cooldowns.
func (c *SkillCooldowns) ClearTurn() {
	c.UsedThisTurn = make(map[ids.SkillID]bool)
}

// ClearRound resets round-scoped cooldowns.
func (c *SkillCooldowns) ClearRound() {
	c.UsedThisRound = make(map[ids.SkillID]bool)
}

// Clone returns a deep copy.
func (c SkillCooldowns) Clone() SkillCooldowns {
	out := SkillCooldowns{
		UsedThisTurn:  make(map[ids.SkillID]bool, len(c.UsedThisTurn)),
		UsedThisRound: make(map[ids.SkillID]bool, len(c.UsedThisRound)),
	}
	for k, v := range c.UsedThisTurn {
		out.UsedThisTurn[k] = v
	}
	for k, v := range c.UsedThisRound {
		out.UsedThisRound[k] = v
	}
	return out
}

// PlayerState is one player's complete mutable state: position, cards,
// crystals, combat accumulators, derived level stats, recruited units,
// skills, pending resolution, and per-turn flags.
type PlayerState struct {
	ID    ids.PlayerID
	Hero  catalog.Hero

	// Position is nil until the scenario's initial placement assigns one.
	Position *hexcoord.HexCoord

	Hand    []ids.CardID
	Deck    []ids.CardID
	Discard []ids.CardID

	Crystals *CrystalPool
	PureMana []catalog.ManaColor // earned this turn, cleared at turn end

	Accumulated AccumulatedValues

	Fame       int
	Reputation int // clamped to [-7, 7]
	Level      int

	Units []Unit

	Skills         []ids.SkillID
	SkillCooldowns SkillCooldowns
	SkillFlipState map[ids.SkillID]bool // true = flipped/used-up face for per-game skills

	SelectedTactic ids.TacticID

	Pending PendingQueue

	Modifiers ModifierSet

	Flags PlayerFlags
}

// NewPlayerState returns a freshly initialized player at level 1 with empty
// piles and a zeroed crystal pool.
func NewPlayerState(id ids.PlayerID, hero catalog.Hero) *PlayerState {
	return &PlayerState{
		ID:             id,
		Hero:           hero,
		Crystals:       NewCrystalPool(),
		Level:          1,
		SkillCooldowns: NewSkillCooldowns(),
		SkillFlipState: make(map[ids.SkillID]bool),
	}
}

// LevelStats returns the armor/hand-limit/command-slot row for the
// player's current level.
func (p *PlayerState) LevelStats() catalog.LevelStats {
	return catalog.GetLevelStats(p.Level)
}

// HandLimit is the end-of-turn hand size cap derived from level.
func (p *PlayerState) HandLimit() int {
	return p.LevelStats().HandLimit
}

// CommandSlots is the maximum ready+wounded unit count derived from level.
func (p *PlayerState) CommandSlots() int {
	return p.LevelStats().CommandSlots
}

// Armor is the base armor derived from level (before equipment/skill
// modifiers, which the combat package layers on separately).
func (p *PlayerState) Armor() int {
	return p.LevelStats().Armor
}

// ClampReputation enforces the [-7, 7] invariant; callers apply reputation
// deltas first, then call this before any other code observes Reputation.
func (p *PlayerState) ClampReputation() {
	if p.Reputation > 7 {
		p.Reputation = 7
	}
	if p.Reputation < -7 {
		p.Reputation = -7
	}
}

// GainFame applies a fame delta and recomputes Level from the new total,
// returning the levels crossed (possibly empty) for level-up-reward
// pending resolution.
func (p *PlayerState) GainFame(amount int) []int {
	if amount <= 0 {
		return nil
	}
	before := p.Fame
	p.Fame += amount
	crossed := catalog.GetLevelsCrossed(before, p.Fame)
	p.Level = catalog.GetLevelFromFame(p.Fame)
	return crossed
}

// ClearTurnAccumulators resets the per-turn point accumulators, pure mana,
// and turn-scoped flags/cooldowns — called by the dispatcher at EndTurn.
func (p *PlayerState) ClearTurnAccumulators() {
	p.Accumulated = AccumulatedValues{}
	p.PureMana = nil
	p.Flags = p.Flags.ClearTurnFlags()
	p.SkillCooldowns.ClearTurn()
	p.Modifiers.ExpireScope(ScopePlayerTurn)
}

// Clone returns a deep copy of the player's entire state.
func (p *PlayerState) Clone() *PlayerState {
	out := *p

	if p.Position != nil {
		pos := *p.Position
		out.Position = &pos
	}

	out.Hand = append([]ids.CardID(nil), p.Hand...)
	out.Deck = append([]ids.CardID(nil), p.Deck...)
	out.Discard = append([]ids.CardID(nil), p.Discard...)
	out.PureMana = append([]catalog.ManaColor(nil), p.PureMana...)

	out.Crystals = p.Crystals.Clone()

	out.Units = make([]Unit, len(p.Units))
	for i, u := range p.Units {
		out.Units[i] = u.Clone()
	}

	out.Skills = append([]ids.SkillID(nil), p.Skills...)
	out.SkillCooldowns = p.SkillCooldowns.Clone()
	out.SkillFlipState = make(map[ids.SkillID]bool, len(p.SkillFlipState))
	for k, v := range p.SkillFlipState {
		out.SkillFlipState[k] = v
	}

	out.Pending = p.Pending.Clone()
	out.Modifiers = p.Modifiers.Clone()

	return &out
}
