// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package catalog

import "github.com/mage-knight-digital/mkengine/ids"

// EnemyDefinition is the static combat profile of one enemy type: armor,
// attack values by range, resistances, and keyword abilities.
type EnemyDefinition struct {
	ID          ids.EnemyID
	Name        string
	Color       EnemyColor
	Armor       int
	Attack      int
	AttackRange AttackRange
	Element     Element
	Resistances []Element // elements this enemy halves incoming damage from
	Abilities   []EnemyAbilityType
	FameValue   int
}

var enemyTable = map[ids.EnemyID]EnemyDefinition{}

func registerEnemy(e EnemyDefinition) {
	enemyTable[e.ID] = e
}

// GetEnemy looks up an enemy definition by ID.
func GetEnemy(id ids.EnemyID) (EnemyDefinition, bool) {
	e, ok := enemyTable[id]
	return e, ok
}

// enemyPileMembership lists every enemy ID belonging to each color pile, in
// the order new tokens are drawn (top of pile first).
var enemyPileMembership = map[EnemyColor][]ids.EnemyID{}

// EnemyPile returns the full membership of a color's draw pile.
func EnemyPile(color EnemyColor) []ids.EnemyID {
	src := enemyPileMembership[color]
	out := make([]ids.EnemyID, len(src))
	copy(out, src)
	return out
}

func init() {
	type row struct {
		id, name            string
		color               EnemyColor
		armor, attack       int
		rng                 AttackRange
		elem                Element
		resist              []Element
		abilities           []EnemyAbilityType
		fame                int
	}
	rows := []row{
		{"prowlers", "Prowlers", EnemyGray, 3, 2, RangeMelee, ElementPhysical, nil, []EnemyAbilityType{AbilityElusive}, 3},
		{"diggers", "Diggers", EnemyGray, 4, 3, RangeMelee, ElementPhysical, nil, []EnemyAbilityType{AbilityBrutal}, 4},
		{"guardsmen", "Guardsmen", EnemyGray, 4, 2, RangeMelee, ElementPhysical, nil, nil, 3},
		{"thugs", "Thugs", EnemyGray, 3, 3, RangeMelee, ElementPhysical, nil, nil, 3},
		{"orc_marauders", "Orc Marauders", EnemyBrown, 5, 3, RangeMelee, ElementPhysical, nil, nil, 4},
		{"orc_summoners", "Orc Summoners", EnemyBrown, 4, 2, RangeRanged, ElementFire, nil, []EnemyAbilityType{AbilitySummon}, 5},
		{"orc_skirmishers", "Orc Skirmishers", EnemyBrown, 3, 3, RangeRanged, ElementPhysical, nil, []EnemyAbilityType{AbilitySwift}, 4},
		{"orc_butchers", "Orc Butchers", EnemyBrown, 6, 4, RangeMelee, ElementPhysical, nil, []EnemyAbilityType{AbilityBrutal}, 6},
		{"ice_golems", "Ice Golems", EnemyViolet, 6, 4, RangeMelee, ElementIce, []Element{ElementIce}, nil, 6},
		{"fire_golems", "Fire Golems", EnemyViolet, 6, 4, RangeMelee, ElementFire, []Element{ElementFire}, nil, 6},
		{"storm_dragon", "Storm Dragon", EnemyViolet, 8, 6, RangeRanged, ElementColdFire, []Element{ElementColdFire}, []EnemyAbilityType{AbilityFortified}, 9},
		{"swamp_dragon", "Swamp Dragon", EnemyViolet, 8, 6, RangeMelee, ElementColdFire, []Element{ElementColdFire}, []EnemyAbilityType{AbilityPoison}, 9},
		{"altem_guardsmen", "Altem Guardsmen", EnemyWhite, 5, 3, RangeMelee, ElementPhysical, nil, []EnemyAbilityType{AbilityFortified}, 5},
		{"altem_mages", "Altem Mages", EnemyWhite, 4, 3, RangeRanged, ElementIce, nil, []EnemyAbilityType{AbilityParalyze}, 6},
		{"werewolves", "Werewolves", EnemyGreen, 4, 3, RangeMelee, ElementPhysical, nil, []EnemyAbilityType{AbilitySwift}, 4},
		{"crypt_worms", "Crypt Worms", EnemyGreen, 5, 3, RangeMelee, ElementPhysical, nil, []EnemyAbilityType{AbilityAssassination}, 5},
		{"draconum_elder", "Elder Draconum", EnemyRed, 9, 7, RangeMelee, ElementColdFire, []Element{ElementColdFire}, []EnemyAbilityType{AbilityBrutal, AbilityFortified}, 10},
	}
	for _, r := range rows {
		registerEnemy(EnemyDefinition{
			ID: ids.EnemyID(r.id), Name: r.name, Color: r.color, Armor: r.armor, Attack: r.attack,
			AttackRange: r.rng, Element: r.elem, Resistances: r.resist, Abilities: r.abilities, FameValue: r.fame,
		})
		enemyPileMembership[r.color] = append(enemyPileMembership[r.color], ids.EnemyID(r.id))
	}
}
