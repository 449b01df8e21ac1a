// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package catalog

import "github.com/mage-knight-digital/mkengine/ids"

// ScenarioConfig is the full set of parameters a scenario fixes: map
// composition, round structure, and which rule modules are active.
type ScenarioConfig struct {
	ID                     ids.ScenarioID
	CountrysideTileCount   int
	CoreTileCount          int
	CityTileCount          int
	MapShape               MapShape
	DayRounds              int
	NightRounds            int
	TotalRounds            int
	SkillsEnabled          bool
	EliteUnitsEnabled      bool
	SpellsAvailable        bool
	AdvancedActionsAvailable bool
	FamePerTileExplored    int
	CitiesCanBeEntered     bool
	DefaultCityLevel       int
	TacticRemovalMode      TacticRemovalMode
	DummyTacticOrder       DummyTacticOrder
	EndTrigger             ScenarioEndTrigger
}

var scenarioTable = map[ids.ScenarioID]ScenarioConfig{}

func init() {
	scenarioTable["first_reconnaissance"] = ScenarioConfig{
		ID:                       "first_reconnaissance",
		CountrysideTileCount:     8,
		CoreTileCount:            2,
		CityTileCount:            1,
		MapShape:                 MapShapeWedge,
		DayRounds:                2,
		NightRounds:              2,
		TotalRounds:              4,
		SkillsEnabled:            false,
		EliteUnitsEnabled:        false,
		SpellsAvailable:          true,
		AdvancedActionsAvailable: true,
		FamePerTileExplored:      1,
		CitiesCanBeEntered:       false,
		DefaultCityLevel:         1,
		TacticRemovalMode:        TacticRemovalAllUsed,
		DummyTacticOrder:         DummyTacticAfterHumans,
		EndTrigger:               EndTriggerCityRevealed,
	}

	// FullConquest is this port's addition for multi-round, full-ruleset
	// play: skills, elite units, and city conquest all enabled, ending when
	// the round counter runs out rather than on city reveal.
	scenarioTable["full_conquest"] = ScenarioConfig{
		ID:                       "full_conquest",
		CountrysideTileCount:     12,
		CoreTileCount:            4,
		CityTileCount:            4,
		MapShape:                 MapShapeFullFour,
		DayRounds:                3,
		NightRounds:              3,
		TotalRounds:              6,
		SkillsEnabled:            true,
		EliteUnitsEnabled:        true,
		SpellsAvailable:          true,
		AdvancedActionsAvailable: true,
		FamePerTileExplored:      1,
		CitiesCanBeEntered:       true,
		DefaultCityLevel:         1,
		TacticRemovalMode:        TacticRemovalAllUsed,
		DummyTacticOrder:         DummyTacticAfterHumans,
		EndTrigger:               EndTriggerRoundsPlayed,
	}
}

// GetScenario looks up a scenario configuration by ID.
func GetScenario(id ids.ScenarioID) (ScenarioConfig, bool) {
	s, ok := scenarioTable[id]
	return s, ok
}
