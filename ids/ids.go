// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package ids defines the newtyped string identifiers shared across the
// engine. Keeping each ID category as its own type (rather than passing
// bare strings) catches a misplaced enemy ID where a card ID was expected
// at compile time.
package ids

// PlayerID identifies a player within a GameState.
type PlayerID string

// CardID identifies a deed card definition (basic action, advanced action,
// spell, artifact, or wound).
type CardID string

// EnemyID identifies an enemy definition in the static catalog.
type EnemyID string

// EnemyTokenID identifies a specific drawn enemy token instance, formatted
// "{enemy_id}_{counter}".
type EnemyTokenID string

// UnitID identifies a unit definition.
type UnitID string

// SkillID identifies a hero skill definition.
type SkillID string

// TileID identifies a map tile definition.
type TileID string

// TacticID identifies a tactic definition.
type TacticID string

// ModifierID identifies an instance of an active modifier.
type ModifierID string

// CombatInstanceID identifies a specific enemy's combat-local instance.
type CombatInstanceID string

// SourceDieID identifies one of the six mana source dice by slot index.
type SourceDieID string

// ScenarioID identifies a scenario configuration.
type ScenarioID string

// UnitInstanceID identifies a specific recruited unit within a player's
// roster (distinct from UnitID, which identifies the unit's definition).
type UnitInstanceID string

// ModifierSource tags where an ActiveModifier originated, used as the
// module qualifier on the modifier's core.Ref.
type ModifierSource string

// Modifier source kinds.
const (
	ModifierSourceSkill  ModifierSource = "skill"
	ModifierSourceCard   ModifierSource = "card"
	ModifierSourceUnit   ModifierSource = "unit"
	ModifierSourceCombat ModifierSource = "combat"
)
