// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package state

import (
	"sort"

	"github.com/mage-knight-digital/mkengine/catalog"
	"github.com/mage-knight-digital/mkengine/hexcoord"
	"github.com/mage-knight-digital/mkengine/ids"
)

// EnemyToken is one revealed instance of an enemy sitting on a hex or
// garrisoning a site, distinct from the definition it was drawn from.
type EnemyToken struct {
	TokenID    ids.EnemyTokenID
	Definition ids.EnemyID
	Revealed   bool
}

// Clone returns a copy (no reference fields).
func (t EnemyToken) Clone() EnemyToken { return t }

// SiteState is the mutable condition of a hex's site feature.
type SiteState struct {
	Type        catalog.SiteType
	IsConquered bool
	IsBurned    bool
	Owner       *ids.PlayerID
	Garrison    []EnemyToken
}

// Clone returns a deep copy.
func (s SiteState) Clone() SiteState {
	out := s
	if s.Owner != nil {
		owner := *s.Owner
		out.Owner = &owner
	}
	if len(s.Garrison) > 0 {
		out.Garrison = make([]EnemyToken, len(s.Garrison))
		for i, g := range s.Garrison {
			out.Garrison[i] = g.Clone()
		}
	}
	return out
}

// HexState is one revealed hex: its terrain, optional site, and any enemy
// tokens sitting on open ground (not garrisoned inside a site).
type HexState struct {
	Terrain catalog.Terrain
	Site    *SiteState
	Enemies []EnemyToken
}

// Clone returns a deep copy.
func (h HexState) Clone() HexState {
	out := h
	if h.Site != nil {
		site := h.Site.Clone()
		out.Site = &site
	}
	if len(h.Enemies) > 0 {
		out.Enemies = make([]EnemyToken, len(h.Enemies))
		for i, e := range h.Enemies {
			out.Enemies[i] = e.Clone()
		}
	}
	return out
}

// PlacedTile records one physical tile's placement on the board.
type PlacedTile struct {
	Center   hexcoord.HexCoord
	TileID   ids.TileID
	Rotation int // 0..5, sixths of a full turn
}

// TileDeck is the ordered draw piles for countryside and core tiles.
type TileDeck struct {
	Countryside []ids.TileID
	Core        []ids.TileID
}

// Clone returns a deep copy.
func (d TileDeck) Clone() TileDeck {
	return TileDeck{
		Countryside: append([]ids.TileID(nil), d.Countryside...),
		Core:        append([]ids.TileID(nil), d.Core...),
	}
}

// MapState is the revealed board: every hex reached by exploration, every
// tile placed, and the remaining tile draw piles.
type MapState struct {
	Hexes    map[hexcoord.HexCoord]*HexState
	Tiles    []PlacedTile
	TileDeck TileDeck
}

// NewMapState returns an empty map with no hexes or placed tiles.
func NewMapState() *MapState {
	return &MapState{Hexes: make(map[hexcoord.HexCoord]*HexState)}
}

// SortedHexKeys returns every revealed hex coordinate in canonical (q, r)
// lexicographic order — the determinism source spec.md requires for any
// operation that iterates hexes (§4 "lexicographic sort for coordinates").
func (m *MapState) SortedHexKeys() []hexcoord.HexCoord {
	keys := make([]hexcoord.HexCoord, 0, len(m.Hexes))
	for k := range m.Hexes {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return hexcoord.Less(keys[i], keys[j]) })
	return keys
}

// Clone returns a deep copy of the entire map.
func (m *MapState) Clone() *MapState {
	out := &MapState{
		Hexes:    make(map[hexcoord.HexCoord]*HexState, len(m.Hexes)),
		Tiles:    append([]PlacedTile(nil), m.Tiles...),
		TileDeck: m.TileDeck.Clone(),
	}
	for k, v := range m.Hexes {
		hex := v.Clone()
		out.Hexes[k] = &hex
	}
	return out
}
