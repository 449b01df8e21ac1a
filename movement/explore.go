// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package movement

import (
	"github.com/mage-knight-digital/mkengine/hexcoord"
	"github.com/mage-knight-digital/mkengine/state"
)

// tileCenterSpan is how far apart two edge-adjacent tile centers sit, in
// multiples of a direction's unit offset. Every physical tile is the same
// seven-hex flower (a center plus its six neighbors), so two flowers that
// share an edge without overlapping sit three steps apart along the
// shared direction. This is this port's own derivation (the original
// engine's exact TILE_HEX_OFFSETS table was not available to ground
// against) but is internally consistent with the
// catalog's own flower tile layout.
const tileCenterSpan = 3

// TileFootprint returns the seven hex coordinates a tile centered at
// center occupies.
func TileFootprint(center hexcoord.HexCoord) []hexcoord.HexCoord {
	out := make([]hexcoord.HexCoord, 0, 7)
	out = append(out, center)
	for _, n := range center.Neighbors() {
		out = append(out, n)
	}
	return out
}

// FindTileCenter returns the center of whichever placed tile's footprint
// contains pos.
func FindTileCenter(m *state.MapState, pos hexcoord.HexCoord) (hexcoord.HexCoord, bool) {
	for _, t := range m.Tiles {
		for _, h := range TileFootprint(t.Center) {
			if h == pos {
				return t.Center, true
			}
		}
	}
	return hexcoord.HexCoord{}, false
}

// CalculateTilePlacement returns the center a new tile would occupy if
// placed adjacent to tileCenter in direction dir.
func CalculateTilePlacement(tileCenter hexcoord.HexCoord, dir hexcoord.Direction) hexcoord.HexCoord {
	offset := dir.Offset()
	return tileCenter.Add(hexcoord.New(offset.Q*tileCenterSpan, offset.R*tileCenterSpan))
}

// IsPlayerNearExploreEdge reports whether pos is the petal hex of
// tileCenter's flower in direction dir — the single entry point from
// which that direction's neighboring tile may be explored.
func IsPlayerNearExploreEdge(pos, tileCenter hexcoord.HexCoord, dir hexcoord.Direction) bool {
	return pos == tileCenter.Neighbor(dir)
}

// WouldOverlap reports whether placing a tile at candidateCenter would
// cover any hex already revealed on m.
func WouldOverlap(m *state.MapState, candidateCenter hexcoord.HexCoord) bool {
	for _, h := range TileFootprint(candidateCenter) {
		if _, ok := m.Hexes[h]; ok {
			return true
		}
	}
	return false
}
