// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package catalog

import "github.com/mage-knight-digital/mkengine/ids"

// SkillActivation distinguishes a skill usable once per turn/round/game
// from one that is always active (a passive modifier).
type SkillActivation string

// Skill activation modes.
const (
	SkillPassive      SkillActivation = "passive"
	SkillOncePerTurn  SkillActivation = "once_per_turn"
	SkillOncePerRound SkillActivation = "once_per_round"
)

// SkillDefinition is the static text of one hero skill.
type SkillDefinition struct {
	ID         ids.SkillID
	Hero       Hero
	Name       string
	Activation SkillActivation
	Effect     EffectStep
}

var skillTable = map[ids.SkillID]SkillDefinition{}

func registerSkill(s SkillDefinition) {
	skillTable[s.ID] = s
}

// GetSkill looks up a skill definition by ID.
func GetSkill(id ids.SkillID) (SkillDefinition, bool) {
	s, ok := skillTable[id]
	return s, ok
}

// HeroSkillPool returns every skill ID available to a hero's skill deck.
func HeroSkillPool(hero Hero) []ids.SkillID {
	var out []ids.SkillID
	for id, s := range skillTable {
		if s.Hero == hero {
			out = append(out, id)
		}
	}
	return out
}

func init() {
	pools := map[Hero][]SkillDefinition{
		HeroArythea: {
			{"arythea_mana_draw", HeroArythea, "Curse of Vulnerability", SkillOncePerTurn, EffectStep{Kind: StepGainAttack, Amount: 1}},
			{"arythea_ritual", HeroArythea, "Unity", SkillPassive, EffectStep{Kind: StepGainInfluence, Amount: 1}},
		},
		HeroTovak: {
			{"tovak_motivation", HeroTovak, "Motivation", SkillOncePerRound, EffectStep{Kind: StepGainAttack, Amount: 2}},
			{"tovak_bravery", HeroTovak, "Bravery", SkillPassive, EffectStep{Kind: StepGainBlock, Amount: 1}},
		},
		HeroGoldyx: {
			{"goldyx_mana_pull", HeroGoldyx, "Mana Pull", SkillOncePerTurn, EffectStep{Kind: StepGainCrystal, Amount: 1}},
			{"goldyx_flight", HeroGoldyx, "Flight", SkillOncePerRound, EffectStep{Kind: StepGainMove, Amount: 3}},
		},
		HeroNorowas: {
			{"norowas_inner_focus", HeroNorowas, "Inner Focus", SkillOncePerTurn, EffectStep{Kind: StepHeal, Amount: 1}},
			{"norowas_call_to_glory", HeroNorowas, "Call to Glory", SkillOncePerRound, EffectStep{Kind: StepGainReputation, Amount: 1}},
		},
		HeroWolfhawk: {
			{"wolfhawk_great_reflexes", HeroWolfhawk, "Great Reflexes", SkillOncePerTurn, EffectStep{Kind: StepGainBlock, Amount: 2}},
			{"wolfhawk_tracker", HeroWolfhawk, "Tracker", SkillPassive, EffectStep{Kind: StepGainMove, Amount: 1}},
		},
		HeroKrang: {
			{"krang_demolish", HeroKrang, "Demolish", SkillOncePerRound, EffectStep{Kind: StepGainAttack, Amount: 3, Range: RangeSiege}},
			{"krang_necromancer", HeroKrang, "Necromancer", SkillOncePerTurn, EffectStep{Kind: StepGainAttack, Amount: 2}},
		},
		HeroBraevalar: {
			{"braevalar_shapeshift", HeroBraevalar, "Shapeshift", SkillOncePerTurn, EffectStep{Kind: StepGainMove, Amount: 2}},
			{"braevalar_bear_form", HeroBraevalar, "Bear Form", SkillOncePerRound, EffectStep{Kind: StepGainAttack, Amount: 3}},
		},
	}
	for _, skills := range pools {
		for _, s := range skills {
			registerSkill(s)
		}
	}
}
