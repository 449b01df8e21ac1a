// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package action

import (
	"github.com/mage-knight-digital/mkengine/catalog"
	"github.com/mage-knight-digital/mkengine/state"
)

// activatableTactics lists the tactics with an explicit once-per-round
// activated ability rather than a passive or tactics-selection-time
// effect; activating flips the tactic face down (FlagTacticFlipped),
// matching the physical game's tactic-card flip.
var activatableTactics = map[string]bool{
	"the_right_moment": true,
	"mana_search":       true,
}

// enumerateTurnOptions emits categories 12-16: ActivateTactic,
// RerollSourceDice, EndTurn, DeclareRest, CompleteRest.
func enumerateTurnOptions(g *state.GameState, player *state.PlayerState, actions *[]LegalAction) {
	if activatableTactics[string(player.SelectedTactic)] && !player.Flags.Has(state.FlagTacticFlipped) {
		if player.SelectedTactic == "mana_search" {
			enumerateSourceRerolls(g, actions)
		} else {
			*actions = append(*actions, ActivateTactic{})
		}
	}

	if player.Flags.Has(state.FlagIsResting) {
		enumerateCompleteRest(player, actions)
		return
	}

	if !player.Flags.Has(state.FlagHasRestedThisTurn) {
		*actions = append(*actions, DeclareRest{})
	}
	*actions = append(*actions, EndTurn{})
}

// enumerateSourceRerolls emits one RerollSourceDice per non-empty subset of
// size 1 or 2 of the round's Source dice, in ascending-index order.
func enumerateSourceRerolls(g *state.GameState, actions *[]LegalAction) {
	n := len(g.Source)
	for i := 0; i < n; i++ {
		*actions = append(*actions, RerollSourceDice{DieIndices: []int{i}})
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			*actions = append(*actions, RerollSourceDice{DieIndices: []int{i, j}})
		}
	}
}

// enumerateCompleteRest emits one CompleteRest per wound in hand (the card
// that rest discards), or a single no-discard CompleteRest if the hand
// holds no wounds to clear.
func enumerateCompleteRest(player *state.PlayerState, actions *[]LegalAction) {
	any := false
	for i, c := range player.Hand {
		if c != catalog.WoundCardID {
			continue
		}
		idx := i
		*actions = append(*actions, CompleteRest{DiscardHandIndex: &idx})
		any = true
	}
	if !any {
		*actions = append(*actions, CompleteRest{})
	}
}
