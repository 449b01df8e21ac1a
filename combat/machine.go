// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package combat

import (
	"github.com/mage-knight-digital/mkengine/catalog"
	"github.com/mage-knight-digital/mkengine/state"
)

// CombatState is an alias for state.CombatState so this package's
// exported function signatures read naturally without every caller
// importing both packages under distinct names.
type CombatState = state.CombatState

// phaseOrder is the combat machine's fixed transition sequence.
var phaseOrder = []catalog.CombatPhase{
	catalog.CombatRangedSiege,
	catalog.CombatBlock,
	catalog.CombatAssignDamage,
	catalog.CombatAttack,
}

// NextPhase returns the phase after phase in the fixed sequence, and false
// once Attack has been passed (combat ends, the dispatcher tears down
// CombatState).
func NextPhase(phase catalog.CombatPhase) (catalog.CombatPhase, bool) {
	for i, p := range phaseOrder {
		if p == phase && i+1 < len(phaseOrder) {
			return phaseOrder[i+1], true
		}
	}
	return "", false
}

// AutoSkip reports whether phase should be skipped entirely for the given
// combat, because nothing in it could possibly apply. AssignDamage skips
// when no enemy has unresolved damage to assign; Attack skips once every
// enemy is already defeated or blocked. RangedSiege and Block are never
// unconditionally skippable here — whether the active player has any
// ranged/siege/block value available depends on their hand and
// accumulators, which the action enumerator checks instead.
func AutoSkip(phase catalog.CombatPhase, c *CombatState) bool {
	switch phase {
	case catalog.CombatAssignDamage:
		return !c.HasPendingDamageAssignment()
	case catalog.CombatAttack:
		return c.AllResolved()
	default:
		return false
	}
}
