// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package gamectx carries combat-local lookup state through
// context.Context during effect resolution. Purpose: lets an effect
// resolving mid-combat (damage assignment, resistance checks, unit
// maintenance) query the combatants participating in the current fight —
// ready units, enemy instances — without bloating every EffectFrame with a
// full copy of CombatState.
package gamectx

import "github.com/mage-knight-digital/mkengine/ids"

// Combatant is anything the effect resolver can route damage/assignment
// decisions through during combat: the hero, a recruited unit, or a
// CombatEnemy instance. Concrete types live in the combat and state
// packages; this interface exists purely so gamectx needn't import them.
type Combatant interface {
	CombatantID() string
}

// CombatantRegistry provides access to combat-local entities by instance
// ID during effect processing. Purpose: allows effects like damage
// assignment or auto-defend to resolve "this unit" or "that enemy" without
// the effect queue carrying pointers into CombatState directly.
type CombatantRegistry interface {
	// GetCombatant retrieves a combatant by its combat-instance ID.
	// Returns nil if no such combatant is part of the current combat.
	GetCombatant(id ids.CombatInstanceID) Combatant
}

// GameContext carries the active combat's CombatantRegistry through
// context.Context for use during effect processing.
//
// This enables effects such as DamageAssignment or auto-defend to resolve
// references to ready units and enemy instances without the resolver
// needing a hard dependency on the combat package.
type GameContext struct {
	combatants CombatantRegistry
}

// GameContextConfig configures a new GameContext.
type GameContextConfig struct {
	// Combatants provides access to combat-local entities during effect
	// processing.
	Combatants CombatantRegistry
}

// NewGameContext creates a new GameContext with the specified
// configuration. If no CombatantRegistry is provided, a default empty
// registry is used (valid outside of combat, where no instance IDs ever
// resolve).
func NewGameContext(config GameContextConfig) *GameContext {
	registry := config.Combatants
	if registry == nil {
		registry = &emptyCombatantRegistry{}
	}

	return &GameContext{combatants: registry}
}

// Combatants returns the CombatantRegistry for this GameContext.
func (g *GameContext) Combatants() CombatantRegistry {
	return g.combatants
}

// emptyCombatantRegistry is a default implementation that returns nil for
// all lookups, used outside of combat.
type emptyCombatantRegistry struct{}

func (e *emptyCombatantRegistry) GetCombatant(_ ids.CombatInstanceID) Combatant {
	return nil
}
