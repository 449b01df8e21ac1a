// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package catalog

import "github.com/mage-knight-digital/mkengine/ids"

// UnitDefinition is the static profile of a recruitable unit.
type UnitDefinition struct {
	ID         ids.UnitID
	Name       string
	Level      int // 1 = regular, 2 = elite
	Armor      int
	Resistances []Element
	InfluenceCost int
	Abilities  []EnemyAbilityType // units reuse the same ability vocabulary (resistance keywords etc.)
}

var unitTable = map[ids.UnitID]UnitDefinition{}

func registerUnit(u UnitDefinition) {
	unitTable[u.ID] = u
}

// GetUnit looks up a unit definition by ID.
func GetUnit(id ids.UnitID) (UnitDefinition, bool) {
	u, ok := unitTable[id]
	return u, ok
}

// regularUnitPool and eliteUnitPool list every unit ID in draw order.
var regularUnitPool []ids.UnitID
var eliteUnitPool []ids.UnitID

// RegularUnitPool returns the full regular-unit draw pool.
func RegularUnitPool() []ids.UnitID {
	out := make([]ids.UnitID, len(regularUnitPool))
	copy(out, regularUnitPool)
	return out
}

// EliteUnitPool returns the full elite-unit draw pool.
func EliteUnitPool() []ids.UnitID {
	out := make([]ids.UnitID, len(eliteUnitPool))
	copy(out, eliteUnitPool)
	return out
}

func init() {
	regulars := []UnitDefinition{
		{ID: "peasants", Name: "Peasants", Level: 1, Armor: 2, InfluenceCost: 3},
		{ID: "foresters", Name: "Foresters", Level: 1, Armor: 3, InfluenceCost: 4},
		{ID: "guardian_golems", Name: "Guardian Golems", Level: 1, Armor: 4, InfluenceCost: 5},
		{ID: "utem_crossbowmen", Name: "Utem Crossbowmen", Level: 1, Armor: 3, InfluenceCost: 5},
		{ID: "utem_swordsmen", Name: "Utem Swordsmen", Level: 1, Armor: 4, InfluenceCost: 6},
		{ID: "herbalists", Name: "Herbalists", Level: 1, Armor: 2, InfluenceCost: 4},
		{ID: "illusionists", Name: "Illusionists", Level: 1, Armor: 2, InfluenceCost: 5},
		{ID: "savage_monks", Name: "Savage Monks", Level: 1, Armor: 3, InfluenceCost: 6},
	}
	for _, u := range regulars {
		registerUnit(u)
		regularUnitPool = append(regularUnitPool, u.ID)
	}

	elites := []UnitDefinition{
		{ID: "amotep_freezers", Name: "Amotep Freezers", Level: 2, Armor: 4, InfluenceCost: 8, Resistances: []Element{ElementIce}},
		{ID: "amotep_gunners", Name: "Amotep Gunners", Level: 2, Armor: 4, InfluenceCost: 8, Resistances: []Element{ElementFire}},
		{ID: "red_cape_monks", Name: "Red Cape Monks", Level: 2, Armor: 5, InfluenceCost: 9},
		{ID: "magic_familiars", Name: "Magic Familiars", Level: 2, Armor: 3, InfluenceCost: 7},
		{ID: "altem_guardians", Name: "Altem Guardians", Level: 2, Armor: 6, InfluenceCost: 10},
		{ID: "altem_mages_unit", Name: "Altem Mages", Level: 2, Armor: 4, InfluenceCost: 9},
	}
	for _, u := range elites {
		registerUnit(u)
		eliteUnitPool = append(eliteUnitPool, u.ID)
	}
}
