// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package action

import (
	"sort"

	"github.com/mage-knight-digital/mkengine/hexcoord"
	"github.com/mage-knight-digital/mkengine/movement"
	"github.com/mage-knight-digital/mkengine/state"
)

// enumerateMoves emits a Move for each of the player's six neighboring
// hexes the player can afford and legally enter, in canonical (q, r)
// order (category 5). Suppressed entirely under mustSlowRecover, since no
// Move the player could make changes their unresolvable hand.
func enumerateMoves(g *state.GameState, player *state.PlayerState, actions *[]LegalAction) {
	if mustSlowRecover(player) || player.Position == nil {
		return
	}
	neighbors := player.Position.Neighbors()
	sort.Slice(neighbors[:], func(i, j int) bool { return hexcoord.Less(neighbors[i], neighbors[j]) })
	for _, n := range neighbors {
		entry := movement.EvaluateMoveEntry(g, player, n)
		if entry.BlockReason != nil || entry.Cost == nil {
			continue
		}
		if *entry.Cost > player.Accumulated.Move {
			continue
		}
		*actions = append(*actions, Move{Target: n, Cost: *entry.Cost})
	}
}

// enumerateChallenges emits a Challenge for every open-ground rampaging
// enemy adjacent to the player (category 5, alongside Move). Provoking one
// costs no move points, so it's offered regardless of Accumulated.Move.
func enumerateChallenges(g *state.GameState, player *state.PlayerState, actions *[]LegalAction) {
	if mustSlowRecover(player) || player.Position == nil {
		return
	}
	for _, target := range movement.EnumerateChallenges(g, player) {
		*actions = append(*actions, Challenge{Target: target})
	}
}
