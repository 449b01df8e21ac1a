// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package catalog

import "github.com/mage-knight-digital/mkengine/ids"

// dayTacticIDs and nightTacticIDs are the six tactic cards offered for
// their respective time of day, in turn-order-number order (the tactic's
// position in this slice is its priority for turn order, lowest first).
var dayTacticIDs = []ids.TacticID{
	"early_bird", "rethinking", "long_march", "mana_steal", "planning", "great_start",
}

var nightTacticIDs = []ids.TacticID{
	"the_right_moment", "from_the_dusk", "mana_search", "sparing_power", "midnight_meditation", "preparation",
}

// tacticOrder assigns each tactic ID its turn-order rank, lower acting
// earlier, matching the printed turn-order number on each tactic card.
var tacticOrder = func() map[ids.TacticID]int {
	m := make(map[ids.TacticID]int)
	for i, id := range dayTacticIDs {
		m[id] = i + 1
	}
	for i, id := range nightTacticIDs {
		m[id] = i + 1
	}
	return m
}()

// GetTacticsForTime returns the six tactic IDs offered for the given time
// of day, in turn-order-number order.
func GetTacticsForTime(t TimeOfDay) []ids.TacticID {
	var src []ids.TacticID
	if t == Night {
		src = nightTacticIDs
	} else {
		src = dayTacticIDs
	}
	out := make([]ids.TacticID, len(src))
	copy(out, src)
	return out
}

// TacticTurnOrder returns a tactic's turn-order rank (1 = acts first).
// Returns 0 if the tactic is unknown.
func TacticTurnOrder(id ids.TacticID) int {
	return tacticOrder[id]
}
