// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package action

import (
	"github.com/mage-knight-digital/mkengine/catalog"
	"github.com/mage-knight-digital/mkengine/state"
)

// EnumerateLegalActions returns every action playerIdx may legally take
// against g right now. The category order below is load-bearing: each
// guard either narrows to one category and returns, or falls through to
// the next, mirroring the original engine's legal_actions::mod.rs dispatch
// chain exactly so a caller can rely on a stable, minimal action set at
// every resolution state instead of a flood of simultaneously-valid moves.
func EnumerateLegalActions(g *state.GameState, playerIdx int, canUndo bool) Set {
	empty := Set{Epoch: g.ActionEpoch, PlayerIdx: playerIdx}

	if playerIdx < 0 || playerIdx >= len(g.Players) {
		return empty
	}
	if g.Phase != catalog.PhaseRound || g.GameEnded {
		return empty
	}

	// An invited, not-yet-responded player may respond to a pending
	// cooperative assault proposal even when it isn't their turn — the one
	// exception to the active-player gate below.
	if respondActions, ok := enumerateCooperativeResponse(g, playerIdx); ok {
		appendUndo(&respondActions, canUndo)
		return Set{Epoch: g.ActionEpoch, PlayerIdx: playerIdx, Actions: respondActions}
	}

	if !isActivePlayer(g, playerIdx) {
		// A cooperative-assault participant fights their own queued combat
		// out of normal turn order; they still see combat actions while
		// g.Combat belongs to them.
		if player := g.Players[playerIdx]; g.Combat != nil && g.Combat.Player == player.ID {
			var actions []LegalAction
			enumerateCombatCards(g, player, &actions)
			enumerateCombat(g.Combat, player, &actions)
			appendUndo(&actions, canUndo)
			return Set{Epoch: g.ActionEpoch, PlayerIdx: playerIdx, Actions: actions}
		}
		return empty
	}

	player := g.Players[playerIdx]
	var actions []LegalAction

	if g.RoundPhase == catalog.RoundTacticsSelection {
		enumerateTactics(g, &actions)
		appendUndo(&actions, canUndo)
		return Set{Epoch: g.ActionEpoch, PlayerIdx: playerIdx, Actions: actions}
	}

	if player.Pending.Active != nil {
		enumeratePending(player, &actions)
		appendUndo(&actions, canUndo)
		return Set{Epoch: g.ActionEpoch, PlayerIdx: playerIdx, Actions: actions}
	}

	if g.Combat != nil && g.Combat.Player == player.ID {
		enumerateCombatCards(g, player, &actions)
		enumerateCombat(g.Combat, player, &actions)
		if player.SelectedTactic == "the_right_moment" && !player.Flags.Has(state.FlagTacticFlipped) {
			actions = append(actions, ActivateTactic{})
		}
		appendUndo(&actions, canUndo)
		return Set{Epoch: g.ActionEpoch, PlayerIdx: playerIdx, Actions: actions}
	}

	enumerateNormalCards(g, player, &actions)
	enumerateMoves(g, player, &actions)
	enumerateChallenges(g, player, &actions)
	enumerateExplores(g, player, &actions)
	enumerateSites(g, player, &actions)
	enumerateCooperativeActions(g, playerIdx, player, &actions)
	enumerateTurnOptions(g, player, &actions)
	appendUndo(&actions, canUndo)

	return Set{Epoch: g.ActionEpoch, PlayerIdx: playerIdx, Actions: actions}
}

func appendUndo(actions *[]LegalAction, canUndo bool) {
	if canUndo {
		*actions = append(*actions, Undo{})
	}
}
