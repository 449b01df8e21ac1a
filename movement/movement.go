// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package movement is the single authority on whether and at what cost a
// player may enter a given hex, per spec.md §4.7. Every caller that needs
// to know "can X move here" — the legal-action enumerator, the dispatcher,
// exploration spawn checks — goes through EvaluateMoveEntry rather than
// re-deriving terrain/site/occupant rules locally.
package movement

import (
	"sort"

	"github.com/mage-knight-digital/mkengine/catalog"
	"github.com/mage-knight-digital/mkengine/hexcoord"
	"github.com/mage-knight-digital/mkengine/state"
)

// BlockReason names why a hex cannot be entered by a direct Move.
type BlockReason string

// Move-entry block reasons.
const (
	BlockOffMap            BlockReason = "off_map"
	BlockRampagingEnemy     BlockReason = "rampaging_enemy"
	BlockFortifiedSite      BlockReason = "fortified_site"
	BlockImpassableTerrain  BlockReason = "impassable_terrain"
)

// MoveEntry is the result of evaluating one candidate hex: either a Cost
// (entry is legal) or a BlockReason (it is not), never both.
type MoveEntry struct {
	Cost        *int
	BlockReason *BlockReason
}

func blocked(reason BlockReason) MoveEntry {
	return MoveEntry{BlockReason: &reason}
}

func allowed(cost int) MoveEntry {
	return MoveEntry{Cost: &cost}
}

// EvaluateMoveEntry determines whether player may move directly onto
// target, and at what move-point cost. A hex holding an unattached
// rampaging enemy blocks direct entry — skirting past it (see
// EnumerateChallenges) provokes combat instead of a plain move. A site
// that requires combat to conquer blocks direct entry until conquered;
// once conquered it behaves like open terrain.
func EvaluateMoveEntry(g *state.GameState, player *state.PlayerState, target hexcoord.HexCoord) MoveEntry {
	hex, ok := g.Map.Hexes[target]
	if !ok {
		return blocked(BlockOffMap)
	}
	if catalog.IsImpassable(hex.Terrain) {
		return blocked(BlockImpassableTerrain)
	}
	if len(hex.Enemies) > 0 {
		return blocked(BlockRampagingEnemy)
	}
	if hex.Site != nil && !hex.Site.IsConquered {
		props := catalog.GetSiteProperties(hex.Site.Type)
		if props.RequiresCombatToEnter {
			return blocked(BlockFortifiedSite)
		}
	}

	cost, ok := catalog.BaseTerrainCost(hex.Terrain, g.TimeOfDay)
	if !ok {
		return blocked(BlockImpassableTerrain)
	}
	return allowed(cost)
}

// EnumerateChallenges lists every neighboring hex of player's position that
// blocks direct Move entry specifically for holding an open-ground
// rampaging enemy (BlockRampagingEnemy), in canonical (q, r) order. Each
// one is a candidate Challenge target — provoking combat in place rather
// than moving there.
func EnumerateChallenges(g *state.GameState, player *state.PlayerState) []hexcoord.HexCoord {
	if player.Position == nil {
		return nil
	}
	neighbors := player.Position.Neighbors()
	sort.Slice(neighbors[:], func(i, j int) bool { return hexcoord.Less(neighbors[i], neighbors[j]) })
	out := make([]hexcoord.HexCoord, 0, len(neighbors))
	for _, n := range neighbors {
		entry := EvaluateMoveEntry(g, player, n)
		if entry.BlockReason != nil && *entry.BlockReason == BlockRampagingEnemy {
			out = append(out, n)
		}
	}
	return out
}
