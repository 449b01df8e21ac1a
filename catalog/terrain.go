// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package catalog

// baseTerrainCost is the move-point cost to enter one hex of a given
// terrain by day, before time-of-day or modifier adjustments. Mountain and
// Lake are impassable on foot; Lake's 0 entry is never read, since
// BaseTerrainCost checks impassableTerrain before consulting this table.
var baseTerrainCost = map[Terrain]int{
	TerrainPlains:    2,
	TerrainHills:     3,
	TerrainForest:    3,
	TerrainWasteland: 4,
	TerrainDesert:    5,
	TerrainSwamp:     5,
	TerrainLake:      0,
	TerrainCity:      2,
}

// nightTerrainCost overrides baseTerrainCost for terrains whose cost
// changes after dark (spec §4.7: forest is harder to move through at
// night, desert is easier).
var nightTerrainCost = map[Terrain]int{
	TerrainForest: 5,
	TerrainDesert: 3,
}

// impassableTerrain lists terrain no hero can ever enter on foot.
var impassableTerrain = map[Terrain]bool{
	TerrainMountain: true,
	TerrainLake:     true,
}

// IsImpassable reports whether terrain can never be entered by a hero on
// foot, regardless of move points or modifiers.
func IsImpassable(t Terrain) bool {
	return impassableTerrain[t]
}

// BaseTerrainCost returns the move-point cost to enter one hex of terrain
// at the given time of day, before any active modifiers. ok is false for
// impassable terrain.
func BaseTerrainCost(t Terrain, tod TimeOfDay) (int, bool) {
	if impassableTerrain[t] {
		return 0, false
	}
	if tod == Night {
		if cost, ok := nightTerrainCost[t]; ok {
			return cost, true
		}
	}
	cost, ok := baseTerrainCost[t]
	return cost, ok
}
