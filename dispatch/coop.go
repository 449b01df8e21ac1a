// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package dispatch

import (
	"github.com/mage-knight-digital/mkengine/action"
	"github.com/mage-knight-digital/mkengine/coop"
	"github.com/mage-knight-digital/mkengine/ids"
	"github.com/mage-knight-digital/mkengine/mkerr"
	"github.com/mage-knight-digital/mkengine/state"
	"github.com/mage-knight-digital/mkengine/undo"
)

// applyProposeCooperativeAssault and applyCancelCooperativeProposal save
// before calling into coop unconditionally rather than pre-validating
// twice: coop.Propose/Cancel already perform every check before mutating
// anything, so the only cost of saving first is one harmless redundant
// snapshot on the rare illegal-call path, not a correctness issue — a
// legal-action-enumerated caller never hits that path at all.

func (d *Dispatcher) applyProposeCooperativeAssault(g *state.GameState, u *undo.Stack, player *state.PlayerState, a action.ProposeCooperativeAssault) (ApplyResult, error) {
	proposerIdx := playerIndexOf(g, player.ID)
	u.Save(g)
	if err := coop.Propose(g, proposerIdx, a.HexCoord, a.InvitedPlayerIdxs, a.Distribution); err != nil {
		return ApplyResult{}, err
	}
	g.ActionEpoch++
	return ApplyResult{}, nil
}

func (d *Dispatcher) applyCancelCooperativeProposal(g *state.GameState, u *undo.Stack, player *state.PlayerState) (ApplyResult, error) {
	proposerIdx := playerIndexOf(g, player.ID)
	u.Save(g)
	if err := coop.Cancel(g, proposerIdx); err != nil {
		return ApplyResult{}, err
	}
	g.ActionEpoch++
	return ApplyResult{}, nil
}

// applyCooperativeResponse handles an invited player's accept/decline,
// bypassing the active-player gate entirely (dispatch.Apply routes here
// before that check). A full acceptance resolves the assault and installs
// the first participant's CombatState, reported via CombatStarted.
func (d *Dispatcher) applyCooperativeResponse(g *state.GameState, u *undo.Stack, playerIdx int, a action.RespondToCooperativeProposal) (ApplyResult, error) {
	if playerIdx < 0 || playerIdx >= len(g.Players) {
		return ApplyResult{}, mkerr.IllegalAction("player index out of range")
	}
	u.Save(g)
	if err := coop.Respond(g, playerIdx, a.Accept); err != nil {
		return ApplyResult{}, err
	}
	g.ActionEpoch++
	return ApplyResult{CombatStarted: g.Combat != nil}, nil
}

func playerIndexOf(g *state.GameState, id ids.PlayerID) int {
	for i, p := range g.Players {
		if p.ID == id {
			return i
		}
	}
	return -1
}
