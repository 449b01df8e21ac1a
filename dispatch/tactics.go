// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package dispatch

import (
	"sort"

	"github.com/mage-knight-digital/mkengine/action"
	"github.com/mage-knight-digital/mkengine/catalog"
	"github.com/mage-knight-digital/mkengine/ids"
	"github.com/mage-knight-digital/mkengine/mkerr"
	"github.com/mage-knight-digital/mkengine/state"
	"github.com/mage-knight-digital/mkengine/undo"
)

// applyTacticsSelection handles the only action the enumerator offers during
// RoundTacticsSelection: picking one of the time-of-day's tactic cards. Once
// every player has picked, finalizeTurnOrder reorders the round.
func (d *Dispatcher) applyTacticsSelection(g *state.GameState, u *undo.Stack, player *state.PlayerState, act action.LegalAction) (ApplyResult, error) {
	st, ok := act.(action.SelectTactic)
	if !ok {
		return ApplyResult{}, mkerr.IllegalAction("only tactic selection is legal right now")
	}

	legal := false
	for _, t := range catalog.GetTacticsForTime(g.TimeOfDay) {
		if t == st.TacticID {
			legal = true
			break
		}
	}
	if !legal {
		return ApplyResult{}, mkerr.IllegalAction("tactic is not offered this time of day")
	}
	for _, p := range g.Players {
		if p.SelectedTactic == st.TacticID {
			return ApplyResult{}, mkerr.IllegalAction("tactic already taken")
		}
	}

	u.Save(g)
	player.SelectedTactic = st.TacticID

	g.CurrentPlayerIndex++
	if g.CurrentPlayerIndex >= len(g.Players) {
		finalizeTurnOrder(g)
	}

	g.ActionEpoch++
	return ApplyResult{}, nil
}

// finalizeTurnOrder runs once every player has a SelectedTactic: it
// physically reorders g.Players by each tactic's printed turn-order number,
// rebuilds TurnOrder from the result, and opens RoundPlayerTurns at the new
// first player.
func finalizeTurnOrder(g *state.GameState) {
	sort.SliceStable(g.Players, func(i, j int) bool {
		return catalog.TacticTurnOrder(g.Players[i].SelectedTactic) < catalog.TacticTurnOrder(g.Players[j].SelectedTactic)
	})
	order := make([]ids.PlayerID, len(g.Players))
	for i, p := range g.Players {
		order[i] = p.ID
	}
	g.TurnOrder = order
	g.CurrentPlayerIndex = 0
	g.RoundPhase = catalog.RoundPlayerTurns
}
