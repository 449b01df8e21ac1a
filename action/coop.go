// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package action

import (
	"github.com/mage-knight-digital/mkengine/catalog"
	"github.com/mage-knight-digital/mkengine/coop"
	"github.com/mage-knight-digital/mkengine/state"
)

// enumerateCooperativeResponse checks whether playerIdx is an invited,
// not-yet-responded participant in the pending cooperative assault
// proposal. It runs before the active-player guard — responding to an
// invitation is the one thing a non-active player may do — so a non-nil
// second return short-circuits the rest of enumeration entirely.
func enumerateCooperativeResponse(g *state.GameState, playerIdx int) ([]LegalAction, bool) {
	p := g.PendingCooperativeAssault
	if p == nil {
		return nil, false
	}
	if !containsInt(p.InvitedPlayerIdxs, playerIdx) || containsInt(p.AcceptedPlayerIdxs, playerIdx) {
		return nil, false
	}
	return []LegalAction{
		RespondToCooperativeProposal{Accept: true},
		RespondToCooperativeProposal{Accept: false},
	}, true
}

// enumerateCooperativeActions emits category 11 for the active player: a
// Cancel if they proposed the pending assault, or (with nothing pending) a
// Propose for every adjacent unconquered city with a garrison and at least
// one eligible invitee.
func enumerateCooperativeActions(g *state.GameState, playerIdx int, player *state.PlayerState, actions *[]LegalAction) {
	if g.PendingCooperativeAssault != nil {
		if g.PendingCooperativeAssault.ProposerIdx == playerIdx {
			*actions = append(*actions, CancelCooperativeProposal{})
		}
		return
	}

	if player.Flags.Has(state.FlagHasTakenActionThisTurn) || player.Flags.Has(state.FlagRoundOrderTokenFlipped) {
		return
	}
	if player.Position == nil {
		return
	}

	for _, neighbor := range player.Position.Neighbors() {
		hex, ok := g.Map.Hexes[neighbor]
		if !ok || hex.Site == nil || hex.Site.Type != catalog.SiteCity || hex.Site.IsConquered {
			continue
		}
		garrisonSize := len(hex.Site.Garrison)
		if garrisonSize == 0 {
			continue
		}

		invitees := coop.FindEligibleInvitees(g, playerIdx, neighbor)
		if len(invitees) == 0 {
			continue
		}

		partitions, _ := coop.EnumeratePartitions(garrisonSize, len(invitees)+1)
		for _, shares := range partitions {
			dist := map[int]int{playerIdx: shares[0]}
			for i, idx := range invitees {
				dist[idx] = shares[i+1]
			}
			*actions = append(*actions, ProposeCooperativeAssault{
				HexCoord:          neighbor,
				InvitedPlayerIdxs: append([]int(nil), invitees...),
				Distribution:      dist,
			})
		}
	}
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
