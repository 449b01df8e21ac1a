// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package action

import (
	"github.com/mage-knight-digital/mkengine/catalog"
	"github.com/mage-knight-digital/mkengine/state"
)

// enumeratePending emits the only actions legal while player.Pending.Active
// is set: it blocks every other category (cards, moves, combat, turn
// options included) until resolved. ChoicePending emits one ResolveChoice
// per option; DiscardPending emits one DiscardCard per eligible hand card;
// an UnsupportedPending emits nothing beyond the shared Undo, which the
// caller appends separately when canUndo.
func enumeratePending(player *state.PlayerState, actions *[]LegalAction) {
	switch p := player.Pending.Active.(type) {
	case state.ChoicePending:
		for i := range p.Options {
			*actions = append(*actions, ResolveChoice{ChoiceIndex: i})
		}
	case state.DiscardPending:
		for i, cardID := range player.Hand {
			if p.WoundsOnly && cardID != catalog.WoundCardID {
				continue
			}
			if p.FilterWounds && cardID == catalog.WoundCardID {
				continue
			}
			*actions = append(*actions, DiscardCard{HandIndex: i})
		}
	}
}
