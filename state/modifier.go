// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package state

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/mage-knight-digital/mkengine/catalog"
	"github.com/mage-knight-digital/mkengine/ids"
)

// ModifierScope names what an ActiveModifier attaches to, so the combat
// math and turn-resolution code that consult PlayerState/CombatState know
// which accumulator or lookup to adjust without inspecting Effect itself.
type ModifierScope string

// Modifier scopes.
const (
	ScopePlayerTurn   ModifierScope = "player_turn"   // expires at end of this player's turn
	ScopePlayerRound   ModifierScope = "player_round"  // expires at end of the round
	ScopeCombat        ModifierScope = "combat"        // expires when the current combat ends
	ScopePermanent      ModifierScope = "permanent"     // e.g. a skill's passive, never expires on its own
)

// ActiveModifier is one temporary or passive rule adjustment layered onto a
// player or combat — a unit's ability, a skill's passive bonus, a card's
// powered effect that outlives the turn it was played on. Source is a
// core.Ref (module "mageknight", type the originating ids.ModifierSource,
// value the skill/card/unit ID) so two modifiers from the same unit
// instance but different copies never collide, matching the teacher's
// extensible-ID convention instead of a bare string tag.
type ActiveModifier struct {
	ID     ids.ModifierID
	Source *core.Ref
	Scope  ModifierScope
	Effect catalog.EffectStep

	// RoundsRemaining is only consulted for modifiers that expire after a
	// fixed number of rounds rather than at a turn/combat boundary;
	// zero-value for scopes that have no independent countdown.
	RoundsRemaining int
}

// NewModifierSource builds the core.Ref tagging where a modifier
// originated, e.g. NewModifierSource(ids.ModifierSourceSkill, "krang_provoke").
func NewModifierSource(kind ids.ModifierSource, value string) *core.Ref {
	return core.MustNewRef(core.RefInput{Module: "mageknight", Type: string(kind), Value: value})
}

// Clone returns a deep copy. Source is an immutable *core.Ref so it is
// safe to share across copies; Effect is a value type with only slice
// fields nested inside, so a shallow struct copy plus a Children clone
// suffices.
func (m ActiveModifier) Clone() ActiveModifier {
	out := m
	out.Effect = cloneEffectStep(m.Effect)
	return out
}

func cloneEffectStep(s catalog.EffectStep) catalog.EffectStep {
	out := s
	if len(s.Children) > 0 {
		out.Children = make([]catalog.EffectStep, len(s.Children))
		for i, c := range s.Children {
			out.Children[i] = cloneEffectStep(c)
		}
	}
	return out
}

// ModifierSet is an ordered collection of ActiveModifiers with scope-based
// expiry helpers, kept ordered (rather than keyed by ID) because
// application order matters for stacking additive/multiplicative effects.
type ModifierSet struct {
	Modifiers []ActiveModifier
}

// Add appends a modifier.
func (s *ModifierSet) Add(m ActiveModifier) {
	s.Modifiers = append(s.Modifiers, m)
}

// ExpireScope removes every modifier tagged with scope, returning the
// count removed (used for logging/events at turn/round/combat boundaries).
func (s *ModifierSet) ExpireScope(scope ModifierScope) int {
	kept := s.Modifiers[:0]
	removed := 0
	for _, m := range s.Modifiers {
		if m.Scope == scope {
			removed++
			continue
		}
		kept = append(kept, m)
	}
	s.Modifiers = kept
	return removed
}

// Clone returns a deep copy.
func (s ModifierSet) Clone() ModifierSet {
	if len(s.Modifiers) == 0 {
		return ModifierSet{}
	}
	out := ModifierSet{Modifiers: make([]ActiveModifier, len(s.Modifiers))}
	for i, m := range s.Modifiers {
		out.Modifiers[i] = m.Clone()
	}
	return out
}
