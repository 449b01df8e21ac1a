// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package catalog

import (
	"github.com/mage-knight-digital/mkengine/hexcoord"
	"github.com/mage-knight-digital/mkengine/ids"
)

// TileHex is one of the seven hexes making up a map tile, given as a local
// offset from the tile's placement anchor (its center hex).
type TileHex struct {
	Offset  hexcoord.HexCoord
	Terrain Terrain
	Site    *SiteType
}

// TileDefinition is the static layout of one physical map tile: a center
// hex plus six petals, following the original engine's flower layout
// (see hexcoord's direction constants, grounded on the same source).
type TileDefinition struct {
	ID       ids.TileID
	IsCity   bool
	IsCore   bool // core tiles (drawn by exploration once the countryside deck is empty) vs countryside
	Hexes    []TileHex
}

var tileTable = map[ids.TileID]TileDefinition{}

// StartTileID names the single home tile every scenario places the
// players' starting position on: an all-plains flower with no site, the
// board's fixed center.
const StartTileID ids.TileID = "start_tile"

func registerTile(t TileDefinition) {
	tileTable[t.ID] = t
	tileRegistrationOrder = append(tileRegistrationOrder, t.ID)
}

// CountrysideTileIDs returns every registered countryside tile ID, in
// registration order.
func CountrysideTileIDs() []ids.TileID {
	return tileIDsWhere(func(t TileDefinition) bool { return !t.IsCore && !t.IsCity && t.ID != StartTileID })
}

// CoreTileIDs returns every registered core tile ID, in registration order.
func CoreTileIDs() []ids.TileID {
	return tileIDsWhere(func(t TileDefinition) bool { return t.IsCore })
}

// CityTileIDs returns every registered city tile ID, in registration order.
func CityTileIDs() []ids.TileID {
	return tileIDsWhere(func(t TileDefinition) bool { return t.IsCity })
}

func tileIDsWhere(pred func(TileDefinition) bool) []ids.TileID {
	out := make([]ids.TileID, 0, len(tileRegistrationOrder))
	for _, id := range tileRegistrationOrder {
		if pred(tileTable[id]) {
			out = append(out, id)
		}
	}
	return out
}

// tileRegistrationOrder preserves init()'s registration order for the
// tile-ID accessors above, since tileTable (a map) cannot by itself.
var tileRegistrationOrder []ids.TileID

// GetTileHexes returns the seven-hex layout for a tile ID.
func GetTileHexes(id ids.TileID) ([]TileHex, bool) {
	t, ok := tileTable[id]
	if !ok {
		return nil, false
	}
	out := make([]TileHex, len(t.Hexes))
	copy(out, t.Hexes)
	return out, true
}

// IsCityTile reports whether a tile ID is one of the city tiles.
func IsCityTile(id ids.TileID) bool {
	return tileTable[id].IsCity
}

func site(s SiteType) *SiteType { return &s }

func init() {
	center := hexcoord.New(0, 0)
	petal := func(d hexcoord.Direction) hexcoord.HexCoord { return center.Neighbor(d) }

	flower := func(terrains [7]Terrain, sites [7]*SiteType) []TileHex {
		offsets := append([]hexcoord.HexCoord{center}, func() []hexcoord.HexCoord {
			out := make([]hexcoord.HexCoord, 6)
			for i, d := range hexcoord.AllDirections {
				out[i] = petal(d)
			}
			return out
		}()...)
		hexes := make([]TileHex, 7)
		for i := range hexes {
			hexes[i] = TileHex{Offset: offsets[i], Terrain: terrains[i], Site: sites[i]}
		}
		return hexes
	}

	// Start tile: the fixed portal flower every game places at the map's
	// origin, open ground on all seven hexes so first placement never has
	// to reason about a site underfoot.
	registerTile(TileDefinition{
		ID: StartTileID,
		Hexes: flower(
			[7]Terrain{TerrainPlains, TerrainPlains, TerrainPlains, TerrainPlains, TerrainPlains, TerrainPlains, TerrainPlains},
			[7]*SiteType{nil, nil, nil, nil, nil, nil, nil},
		),
	})

	// Countryside tiles 1-8: a representative plains/forest/hills mix, each
	// with one notable site, matching the original engine's "one core
	// feature per countryside tile" layout.
	countryside := []struct {
		id      string
		terr    [7]Terrain
		sites   [7]*SiteType
	}{
		{"countryside_1", [7]Terrain{TerrainPlains, TerrainForest, TerrainPlains, TerrainHills, TerrainPlains, TerrainForest, TerrainPlains},
			[7]*SiteType{nil, nil, site(SiteVillage), nil, nil, nil, nil}},
		{"countryside_2", [7]Terrain{TerrainForest, TerrainForest, TerrainHills, TerrainForest, TerrainPlains, TerrainForest, TerrainForest},
			[7]*SiteType{nil, site(SiteMagicalGlade), nil, nil, nil, nil, nil}},
		{"countryside_3", [7]Terrain{TerrainHills, TerrainPlains, TerrainHills, TerrainMountain, TerrainHills, TerrainPlains, TerrainHills},
			[7]*SiteType{nil, nil, nil, site(SiteMine), nil, nil, nil}},
		{"countryside_4", [7]Terrain{TerrainPlains, TerrainWasteland, TerrainPlains, TerrainHills, TerrainPlains, TerrainWasteland, TerrainPlains},
			[7]*SiteType{nil, site(SiteKeep), nil, nil, nil, nil, nil}},
		{"countryside_5", [7]Terrain{TerrainForest, TerrainPlains, TerrainForest, TerrainLake, TerrainForest, TerrainPlains, TerrainForest},
			[7]*SiteType{nil, nil, nil, nil, site(SiteMonastery), nil, nil}},
		{"countryside_6", [7]Terrain{TerrainDesert, TerrainDesert, TerrainHills, TerrainDesert, TerrainPlains, TerrainDesert, TerrainDesert},
			[7]*SiteType{nil, nil, nil, nil, nil, site(SiteSpawningGround), nil}},
		{"countryside_7", [7]Terrain{TerrainSwamp, TerrainForest, TerrainSwamp, TerrainPlains, TerrainSwamp, TerrainForest, TerrainSwamp},
			[7]*SiteType{nil, nil, nil, nil, nil, nil, site(SiteMonsterDen)}},
		{"countryside_8", [7]Terrain{TerrainPlains, TerrainHills, TerrainPlains, TerrainForest, TerrainPlains, TerrainHills, TerrainPlains},
			[7]*SiteType{site(SiteRefugeeCamp), nil, nil, nil, nil, nil, nil}},
	}
	for _, c := range countryside {
		registerTile(TileDefinition{ID: ids.TileID(c.id), Hexes: flower(c.terr, c.sites)})
	}

	// Core tiles: the two tiles exploration draws once the countryside deck
	// is empty, each carrying a Mage Tower (a stronger threat).
	core := []struct {
		id    string
		terr  [7]Terrain
		sites [7]*SiteType
	}{
		{"core_1", [7]Terrain{TerrainHills, TerrainMountain, TerrainHills, TerrainPlains, TerrainHills, TerrainMountain, TerrainHills},
			[7]*SiteType{nil, site(SiteMageTower), nil, nil, nil, nil, nil}},
		{"core_2", [7]Terrain{TerrainForest, TerrainMountain, TerrainForest, TerrainSwamp, TerrainForest, TerrainMountain, TerrainForest},
			[7]*SiteType{nil, nil, site(SiteMageTower), nil, nil, nil, nil}},
	}
	for _, c := range core {
		registerTile(TileDefinition{ID: ids.TileID(c.id), IsCore: true, Hexes: flower(c.terr, c.sites)})
	}

	// City tile: a single City feature on the center hex, surrounded by
	// open terrain, matching first_reconnaissance's single city.
	registerTile(TileDefinition{
		ID:     "city_1",
		IsCity: true,
		Hexes: flower(
			[7]Terrain{TerrainCity, TerrainPlains, TerrainHills, TerrainPlains, TerrainForest, TerrainPlains, TerrainHills},
			[7]*SiteType{site(SiteCity), nil, nil, nil, nil, nil, nil},
		),
	})
}
