// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package action

import (
	"github.com/mage-knight-digital/mkengine/catalog"
	"github.com/mage-knight-digital/mkengine/ids"
	"github.com/mage-knight-digital/mkengine/state"
)

// exploreBaseCost is the flat move-point cost to explore in any direction,
// independent of the terrain the new tile happens to reveal.
const exploreBaseCost = 2

// mustSlowRecover reports whether player is stuck with an all-wound hand
// and an empty deck to draw fresh cards from — the one state where even
// Move/Explore/card-play options are suppressed because nothing drawn
// would ever help (the original engine's identical guard in movement.rs
// and explore.rs).
func mustSlowRecover(player *state.PlayerState) bool {
	if len(player.Hand) == 0 || len(player.Deck) > 0 {
		return false
	}
	for _, c := range player.Hand {
		if c != catalog.WoundCardID {
			return false
		}
	}
	return true
}

// canAffordPowered reports whether player holds a mana token usable to pay
// for color: a permanent crystal of that color, a pure mana token of that
// color gained this turn, or (by day) a Gold token, or (by night) a Black
// token — Gold and Black are wildcards for their respective time of day.
func canAffordPowered(g *state.GameState, player *state.PlayerState, color catalog.BasicManaColor) bool {
	if player.Crystals.Count(color) > 0 {
		return true
	}
	for _, m := range player.PureMana {
		if m == catalog.ManaColor(color) {
			return true
		}
		if m == catalog.ManaGold && g.TimeOfDay == catalog.Day {
			return true
		}
		if m == catalog.ManaBlack && g.TimeOfDay == catalog.Night {
			return true
		}
	}
	return false
}

// discardCostsPayableWithHand reports whether every StepDiscardCost node
// reachable from effect can be paid against hand, recursing through the
// structural kinds (Choice/Sequence/Conditional/Scaling) the way a
// DiscardCost can be nested several effect-tree levels deep — mirroring
// the original engine's discard_costs_payable_with_hand, which walks the
// same shape before offering PlayCardPowered as a legal action.
func discardCostsPayableWithHand(effect catalog.EffectStep, hand []ids.CardID) bool {
	switch effect.Kind {
	case catalog.StepDiscardCost:
		eligible := 0
		for _, id := range hand {
			isWound := id == catalog.WoundCardID
			switch {
			case effect.DiscardWoundsOnly:
				if isWound {
					eligible++
				}
			case effect.DiscardFilterWounds:
				if !isWound {
					eligible++
				}
			default:
				eligible++
			}
		}
		if eligible < effect.Amount {
			return false
		}
		if len(effect.Children) == 0 {
			return true
		}
		return discardCostsPayableWithHand(effect.Children[0], hand)
	case catalog.StepChoice:
		for _, opt := range effect.Children {
			if discardCostsPayableWithHand(opt, hand) {
				return true
			}
		}
		return false
	case catalog.StepSequence:
		for _, step := range effect.Children {
			if discardCostsPayableWithHand(step, hand) {
				return true
			}
		}
		return false
	case catalog.StepConditional:
		if len(effect.Children) == 0 {
			return true
		}
		if discardCostsPayableWithHand(effect.Children[0], hand) {
			return true
		}
		return len(effect.Children) > 1 && discardCostsPayableWithHand(effect.Children[1], hand)
	case catalog.StepScaling:
		if len(effect.Children) == 0 {
			return true
		}
		return discardCostsPayableWithHand(effect.Children[0], hand)
	default:
		return true
	}
}

// isActivePlayer reports whether playerIdx's player is the one whose turn
// it currently is, in either round phase. Tactics selection reuses the
// same CurrentPlayerIndex/TurnOrder mechanism as normal turns rather than
// tracking a parallel selector field.
func isActivePlayer(g *state.GameState, playerIdx int) bool {
	return g.IsActivePlayer(g.Players[playerIdx].ID)
}
