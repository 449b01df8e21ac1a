// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package catalog

import "github.com/mage-knight-digital/mkengine/ids"

// EffectStepKind discriminates an EffectStep's operation. The effect
// resolver package interprets these; catalog only carries the data so it
// never needs to import the resolver (which in turn imports catalog for
// card lookups).
type EffectStepKind string

// Effect step kinds a card's basic or powered effect can be built from.
const (
	StepGainMove      EffectStepKind = "gain_move"
	StepGainInfluence EffectStepKind = "gain_influence"
	StepGainAttack    EffectStepKind = "gain_attack"
	StepGainBlock     EffectStepKind = "gain_block"
	StepGainCrystal   EffectStepKind = "gain_crystal"
	StepHeal          EffectStepKind = "heal"
	StepDrawCard      EffectStepKind = "draw_card"
	StepLoseReputation EffectStepKind = "lose_reputation"
	StepGainReputation EffectStepKind = "gain_reputation"
	StepChoice        EffectStepKind = "choice"   // Children are alternatives, player picks one
	StepSequence      EffectStepKind = "sequence" // Children all resolve in order
	StepRerollSource  EffectStepKind = "reroll_source"
	StepTrashWound    EffectStepKind = "trash_wound"
	StepPlayAsBasic   EffectStepKind = "play_as_basic"
	StepConditional   EffectStepKind = "conditional" // Children[0] = then, Children[1] = else (optional)
	StepScaling       EffectStepKind = "scaling"      // Children[0] = base effect, multiplied by ScalingBy's evaluated factor
	StepDiscardCost   EffectStepKind = "discard_cost" // Children[0] = then effect, resolved once Amount cards are discarded
)

// ScalingFactor names what a Scaling effect step counts at push time to
// multiply its base effect's Amount.
type ScalingFactor string

// Scaling factors a card or skill's effect tree can reference.
const (
	ScaleByCrystalsOfColor ScalingFactor = "crystals_of_color" // count of ScalingColor held
	ScaleByReadyUnits      ScalingFactor = "ready_units"
	ScaleByWoundsInHand    ScalingFactor = "wounds_in_hand"
	ScaleBySpecificCard    ScalingFactor = "specific_card_count" // count of ScalingCardID across hand+deck+discard
)

// ConditionKind names the predicate a Conditional effect step evaluates
// against the resolving player before choosing Children[0] (then) or
// Children[1] (else, if present).
type ConditionKind string

// Condition kinds a card or skill's effect tree can branch on.
const (
	ConditionHasCrystalOfColor ConditionKind = "has_crystal_of_color"
	ConditionInCombat          ConditionKind = "in_combat"
	ConditionHandEmpty         ConditionKind = "hand_empty"
)

// EffectStep is one node of a card's effect tree. Amount and Element/Color
// are interpreted according to Kind; Children holds nested alternatives
// (StepChoice), a fixed sequence (StepSequence), or the then/else/base
// branches of StepConditional/StepScaling/StepDiscardCost. ScalingBy/
// ConditionOn and their accompanying fields are only meaningful for
// StepScaling/StepConditional nodes respectively; DiscardFilterWounds/
// DiscardWoundsOnly (Amount is the discard count) are only meaningful for
// StepDiscardCost.
type EffectStep struct {
	Kind     EffectStepKind
	Amount   int
	Element  Element
	Color    BasicManaColor
	Range    AttackRange
	Children []EffectStep

	ScalingBy     ScalingFactor
	ScalingColor  BasicManaColor
	ScalingCardID ids.CardID

	ConditionOn    ConditionKind
	ConditionColor BasicManaColor

	DiscardFilterWounds bool // true: wounds don't count toward Amount
	DiscardWoundsOnly   bool // true: only wounds are eligible
}

// CardDefinition is the static text of one deed card.
type CardDefinition struct {
	ID             ids.CardID
	Name           string
	Color          CardColor
	Type           DeedCardType
	PoweredBy      BasicManaColor // mana color that powers this card; Gold-color spells carry one too
	BasicEffect    EffectStep
	PoweredEffect  EffectStep
	SidewaysAs     []SidewaysAs // which sideways uses this card supports (all basic actions support all four)
	SidewaysValue  int          // 1 for basic actions
}

var cardTable = map[ids.CardID]CardDefinition{}

func registerCard(c CardDefinition) {
	cardTable[c.ID] = c
}

// GetCard looks up a card definition by ID. The bool is false if no such
// card is registered.
func GetCard(id ids.CardID) (CardDefinition, bool) {
	c, ok := cardTable[id]
	return c, ok
}

// WoundCardID is the single shared definition every wound card instance
// refers to (wounds carry no individual identity beyond their position in
// a pile).
const WoundCardID ids.CardID = "wound"

func init() {
	registerCard(CardDefinition{
		ID: WoundCardID, Name: "Wound", Color: CardColorGold, Type: DeedWound,
		BasicEffect: EffectStep{Kind: StepSequence},
	})
	registerStandardDeck()
	registerHeroCards()
	registerAdvancedActions()
	registerSpells()
}

// registerStandardDeck builds the 16-card basic action deck shared by every
// hero before their hero-specific replacement swaps (see heroReplacements).
func registerStandardDeck() {
	basic := func(id, name string, color CardColor, poweredBy BasicManaColor, basic, powered EffectStep) {
		registerCard(CardDefinition{
			ID: ids.CardID(id), Name: name, Color: color, Type: DeedBasicAction,
			PoweredBy: poweredBy, BasicEffect: basic, PoweredEffect: powered,
			SidewaysAs:    []SidewaysAs{SidewaysMove, SidewaysInfluence, SidewaysAttack, SidewaysBlock},
			SidewaysValue: 1,
		})
	}

	basic("rage", "Rage", CardColorRed, ColorRed,
		EffectStep{Kind: StepGainAttack, Amount: 2, Element: ElementPhysical},
		EffectStep{Kind: StepGainAttack, Amount: 4, Element: ElementFire})
	basic("threaten", "Threaten", CardColorRed, ColorRed,
		EffectStep{Kind: StepSequence, Children: []EffectStep{
			{Kind: StepGainInfluence, Amount: 2}, {Kind: StepLoseReputation, Amount: 1},
		}},
		EffectStep{Kind: StepSequence, Children: []EffectStep{
			{Kind: StepGainInfluence, Amount: 4}, {Kind: StepLoseReputation, Amount: 1},
		}})
	basic("swiftness", "Swiftness", CardColorBlue, ColorBlue,
		EffectStep{Kind: StepGainMove, Amount: 2},
		EffectStep{Kind: StepGainMove, Amount: 3})
	basic("mana_draw", "Mana Draw", CardColorBlue, ColorBlue,
		EffectStep{Kind: StepRerollSource, Amount: 1},
		EffectStep{Kind: StepSequence, Children: []EffectStep{
			{Kind: StepRerollSource, Amount: 1}, {Kind: StepGainCrystal, Amount: 1},
		}})
	basic("march", "March", CardColorGreen, ColorGreen,
		EffectStep{Kind: StepGainMove, Amount: 2},
		EffectStep{Kind: StepGainMove, Amount: 4})
	basic("tranquility", "Tranquility", CardColorGreen, ColorGreen,
		EffectStep{Kind: StepGainBlock, Amount: 2, Element: ElementPhysical},
		EffectStep{Kind: StepSequence, Children: []EffectStep{
			{Kind: StepGainBlock, Amount: 4, Element: ElementPhysical}, {Kind: StepDrawCard, Amount: 1},
		}})
	basic("promise", "Promise", CardColorWhite, ColorWhite,
		EffectStep{Kind: StepGainInfluence, Amount: 2},
		EffectStep{Kind: StepSequence, Children: []EffectStep{
			{Kind: StepGainInfluence, Amount: 3}, {Kind: StepGainReputation, Amount: 1},
		}})
	basic("determination", "Determination", CardColorWhite, ColorWhite,
		EffectStep{Kind: StepGainBlock, Amount: 2, Element: ElementPhysical},
		EffectStep{Kind: StepChoice, Children: []EffectStep{
			{Kind: StepGainBlock, Amount: 4, Element: ElementPhysical},
			{Kind: StepSequence, Children: []EffectStep{{Kind: StepHeal, Amount: 2}, {Kind: StepTrashWound, Amount: 1}}},
		}})

	// Concentration, Crystallize, Improvisation each appear once; Stamina
	// gets a second copy below.
	basic("stamina", "Stamina", CardColorGreen, ColorGreen,
		EffectStep{Kind: StepGainMove, Amount: 2},
		EffectStep{Kind: StepSequence, Children: []EffectStep{
			{Kind: StepGainMove, Amount: 3}, {Kind: StepTrashWound, Amount: 1},
		}})
	basic("concentration", "Concentration", CardColorBlue, ColorBlue,
		EffectStep{Kind: StepGainAttack, Amount: 3, Element: ElementPhysical, Range: RangeRanged},
		EffectStep{Kind: StepGainAttack, Amount: 5, Element: ElementFire, Range: RangeRanged})
	basic("crystallize", "Crystallize", CardColorGreen, ColorGreen,
		EffectStep{Kind: StepGainCrystal, Amount: 1},
		EffectStep{Kind: StepGainCrystal, Amount: 2})
	basic("improvisation", "Improvisation", CardColorWhite, ColorWhite,
		EffectStep{Kind: StepPlayAsBasic, Amount: 1},
		EffectStep{Kind: StepPlayAsBasic, Amount: 2})

	// march/stamina/rage/swiftness each have a second copy with a distinct ID.
	for _, dup := range []string{"rage", "swiftness", "march", "stamina"} {
		orig := cardTable[ids.CardID(dup)]
		second := orig
		second.ID = ids.CardID(dup + "_2")
		registerCard(second)
	}
}

// registerHeroCards builds each hero's unique replacement cards (one to
// three per hero). Exact
// wording is simplified to the same EffectStep vocabulary as the standard
// deck; this trades per-card flavor fidelity for full engine coverage,
// documented as a deliberate scope decision.
func registerHeroCards() {
	type heroCard struct {
		id, name string
		color    CardColor
		powered  BasicManaColor
		basic    EffectStep
		powered2 EffectStep
	}
	byHero := map[Hero][]heroCard{
		HeroArythea: {
			{"battle_versatility", "Battle Versatility", CardColorRed, ColorRed, EffectStep{Kind: StepGainAttack, Amount: 2}, EffectStep{Kind: StepGainAttack, Amount: 4}},
		},
		HeroTovak: {
			{"savage_harvesting", "Savage Harvesting", CardColorGreen, ColorGreen, EffectStep{Kind: StepGainMove, Amount: 2}, EffectStep{Kind: StepGainMove, Amount: 4}},
			{"cold_toughness", "Cold Toughness", CardColorBlue, ColorBlue, EffectStep{Kind: StepGainBlock, Amount: 2, Element: ElementIce}, EffectStep{Kind: StepGainBlock, Amount: 4, Element: ElementIce}},
		},
		HeroGoldyx: {
			{"energy_flow", "Energy Flow", CardColorGreen, ColorGreen, EffectStep{Kind: StepGainCrystal, Amount: 1}, EffectStep{Kind: StepGainCrystal, Amount: 2}},
			{"crystal_joy", "Crystal Joy", CardColorGreen, ColorGreen, EffectStep{Kind: StepGainMove, Amount: 2}, EffectStep{Kind: StepGainMove, Amount: 4}},
		},
		HeroNorowas: {
			{"noble_manners", "Noble Manners", CardColorWhite, ColorWhite, EffectStep{Kind: StepGainInfluence, Amount: 2}, EffectStep{Kind: StepGainInfluence, Amount: 4}},
			{"in_need", "In Need", CardColorWhite, ColorWhite, EffectStep{Kind: StepGainBlock, Amount: 2}, EffectStep{Kind: StepGainBlock, Amount: 4}},
		},
		HeroWolfhawk: {
			{"ambush", "Ambush", CardColorGreen, ColorGreen, EffectStep{Kind: StepGainAttack, Amount: 2, Range: RangeRanged}, EffectStep{Kind: StepGainAttack, Amount: 4, Range: RangeRanged}},
			{"agility", "Agility", CardColorBlue, ColorBlue, EffectStep{Kind: StepGainMove, Amount: 2}, EffectStep{Kind: StepGainMove, Amount: 4}},
		},
		HeroKrang: {
			{"into_the_heat", "Into the Heat", CardColorRed, ColorRed, EffectStep{Kind: StepGainAttack, Amount: 2, Element: ElementFire}, EffectStep{Kind: StepGainAttack, Amount: 4, Element: ElementFire}},
			{"bold_attack", "Bold Attack", CardColorRed, ColorRed, EffectStep{Kind: StepGainAttack, Amount: 3}, EffectStep{Kind: StepGainAttack, Amount: 5}},
			{"provoke", "Provoke", CardColorRed, ColorRed, EffectStep{Kind: StepGainInfluence, Amount: 1}, EffectStep{Kind: StepGainInfluence, Amount: 2}},
		},
		HeroBraevalar: {
			{"will_shaping", "Will-Shaping", CardColorGreen, ColorGreen, EffectStep{Kind: StepGainMove, Amount: 2}, EffectStep{Kind: StepGainMove, Amount: 4}},
			{"savage_mind", "Savage Mind", CardColorGreen, ColorGreen, EffectStep{Kind: StepGainBlock, Amount: 2}, EffectStep{Kind: StepGainBlock, Amount: 4}},
		},
	}
	for _, cards := range byHero {
		for _, hc := range cards {
			registerCard(CardDefinition{
				ID: ids.CardID(hc.id), Name: hc.name, Color: hc.color, Type: DeedBasicAction,
				PoweredBy: hc.powered, BasicEffect: hc.basic, PoweredEffect: hc.powered2,
				SidewaysAs:    []SidewaysAs{SidewaysMove, SidewaysInfluence, SidewaysAttack, SidewaysBlock},
				SidewaysValue: 1,
			})
		}
	}
}

// HeroReplacement names one standard-deck card a hero's starting deck swaps
// out for one of the hero's own cards.
type HeroReplacement struct {
	From ids.CardID
	To   ids.CardID
}

// heroReplacements lists, per hero, the standard/hero card swaps (one to
// three) used to build that hero's starting deck.
var heroReplacements = map[Hero][]HeroReplacement{
	HeroArythea: {
		{From: "rage_2", To: "battle_versatility"},
	},
	HeroTovak: {
		{From: "march_2", To: "savage_harvesting"},
		{From: "tranquility", To: "cold_toughness"},
	},
	HeroGoldyx: {
		{From: "crystallize", To: "energy_flow"},
		{From: "stamina", To: "crystal_joy"},
	},
	HeroNorowas: {
		{From: "threaten", To: "noble_manners"},
		{From: "determination", To: "in_need"},
	},
	HeroWolfhawk: {
		{From: "concentration", To: "ambush"},
		{From: "swiftness_2", To: "agility"},
	},
	HeroKrang: {
		{From: "rage", To: "into_the_heat"},
		{From: "improvisation", To: "bold_attack"},
		{From: "threaten", To: "provoke"},
	},
	HeroBraevalar: {
		{From: "march", To: "will_shaping"},
		{From: "mana_draw", To: "savage_mind"},
	},
}

// standardDeck is every card ID in the 16-card shared basic action deck,
// two copies each of rage, swiftness, march, and stamina.
var standardDeck = []ids.CardID{
	"rage", "rage_2", "threaten", "swiftness", "swiftness_2", "mana_draw",
	"march", "march_2", "tranquility", "promise", "determination",
	"stamina", "stamina_2", "concentration", "crystallize", "improvisation",
}

// startingHandSize is the number of cards dealt to a player at setup.
const startingHandSize = 5

// heroStartingCrystals is the number of starting crystals (of the hero's
// own color) every hero begins with.
const heroStartingCrystals = 3

// heroColor is the basic mana color associated with each hero, used to
// seed starting crystals.
var heroColor = map[Hero]BasicManaColor{
	HeroArythea:   ColorRed,
	HeroTovak:     ColorBlue,
	HeroGoldyx:    ColorGreen,
	HeroNorowas:   ColorWhite,
	HeroWolfhawk:  ColorGreen,
	HeroKrang:     ColorRed,
	HeroBraevalar: ColorGreen,
}

// BuildStartingDeck returns the 16-card deck for hero with its
// hero-specific replacements applied.
func BuildStartingDeck(hero Hero) []ids.CardID {
	deck := make([]ids.CardID, len(standardDeck))
	copy(deck, standardDeck)
	for _, repl := range heroReplacements[hero] {
		for i, id := range deck {
			if id == repl.From {
				deck[i] = repl.To
				break
			}
		}
	}
	return deck
}

// HeroStartingCrystals returns the color and count of crystals a hero
// begins the game with.
func HeroStartingCrystals(hero Hero) (BasicManaColor, int) {
	return heroColor[hero], heroStartingCrystals
}

// StartingHandSize returns the number of cards dealt at game setup.
func StartingHandSize() int {
	return startingHandSize
}
