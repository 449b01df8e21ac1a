// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package action

import (
	"github.com/mage-knight-digital/mkengine/hexcoord"
	"github.com/mage-knight-digital/mkengine/movement"
	"github.com/mage-knight-digital/mkengine/state"
)

// enumerateExplores emits an Explore for each direction off the player's
// current tile where a new tile could legally be placed: the player must
// stand on that direction's edge hex, the remaining tile deck must not be
// empty, and the resulting tile must not overlap ground already revealed
// (category 6).
func enumerateExplores(g *state.GameState, player *state.PlayerState, actions *[]LegalAction) {
	if mustSlowRecover(player) || player.Position == nil {
		return
	}
	if player.Accumulated.Move < exploreBaseCost {
		return
	}
	if len(g.Map.TileDeck.Countryside) == 0 && len(g.Map.TileDeck.Core) == 0 {
		return
	}
	tileCenter, ok := movement.FindTileCenter(g.Map, *player.Position)
	if !ok {
		return
	}
	for _, dir := range hexcoord.AllDirections {
		if !movement.IsPlayerNearExploreEdge(*player.Position, tileCenter, dir) {
			continue
		}
		candidate := movement.CalculateTilePlacement(tileCenter, dir)
		if movement.WouldOverlap(g.Map, candidate) {
			continue
		}
		*actions = append(*actions, Explore{Direction: dir})
	}
}
