// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package action

import (
	"github.com/mage-knight-digital/mkengine/catalog"
	"github.com/mage-knight-digital/mkengine/state"
)

// enumerateNormalCards emits categories 2-4 (PlayCardBasic, PlayCardPowered,
// PlayCardSideways) for a player not currently in combat. Basic and
// powered plays are legal even while resting (FAQ S3); sideways play while
// resting is restricted to Influence, and suppressed entirely once the
// player has drawn down to an unresolvable hand (mustSlowRecover).
func enumerateNormalCards(g *state.GameState, player *state.PlayerState, actions *[]LegalAction) {
	isResting := player.Flags.Has(state.FlagIsResting)

	var basics, powered, sideways []LegalAction
	for i, cardID := range player.Hand {
		def, ok := catalog.GetCard(cardID)
		if !ok {
			continue
		}
		if discardCostsPayableWithHand(def.BasicEffect, player.Hand) {
			basics = append(basics, PlayCardBasic{HandIndex: i, CardID: cardID})
		}

		if def.PoweredBy != "" && canAffordPowered(g, player, def.PoweredBy) &&
			discardCostsPayableWithHand(def.PoweredEffect, player.Hand) {
			powered = append(powered, PlayCardPowered{HandIndex: i, CardID: cardID, ManaColor: def.PoweredBy})
		}

		if mustSlowRecover(player) {
			continue
		}
		allowed := normalSidewaysUses(isResting)
		for _, as := range def.SidewaysAs {
			if containsSideways(allowed, as) {
				sideways = append(sideways, PlayCardSideways{HandIndex: i, CardID: cardID, SidewaysAs: as})
			}
		}
	}

	*actions = append(*actions, basics...)
	*actions = append(*actions, powered...)
	*actions = append(*actions, sideways...)
}

// enumerateCombatCards emits the combat card plays: basic and powered
// plays, plus sideways plays limited to Attack and Block, since those feed
// the accumulators the attack/block declarations assign from.
func enumerateCombatCards(g *state.GameState, player *state.PlayerState, actions *[]LegalAction) {
	for i, cardID := range player.Hand {
		def, ok := catalog.GetCard(cardID)
		if !ok {
			continue
		}
		if discardCostsPayableWithHand(def.BasicEffect, player.Hand) {
			*actions = append(*actions, PlayCardBasic{HandIndex: i, CardID: cardID})
		}
		if def.PoweredBy != "" && canAffordPowered(g, player, def.PoweredBy) &&
			discardCostsPayableWithHand(def.PoweredEffect, player.Hand) {
			*actions = append(*actions, PlayCardPowered{HandIndex: i, CardID: cardID, ManaColor: def.PoweredBy})
		}
		for _, as := range def.SidewaysAs {
			if as == catalog.SidewaysAttack || as == catalog.SidewaysBlock {
				*actions = append(*actions, PlayCardSideways{HandIndex: i, CardID: cardID, SidewaysAs: as})
			}
		}
	}
}

// normalSidewaysUses returns which sideways discriminants are legal
// outside combat: Influence only while resting, Move and Influence
// otherwise (Attack/Block have no target outside combat).
func normalSidewaysUses(isResting bool) []catalog.SidewaysAs {
	if isResting {
		return []catalog.SidewaysAs{catalog.SidewaysInfluence}
	}
	return []catalog.SidewaysAs{catalog.SidewaysMove, catalog.SidewaysInfluence}
}

func containsSideways(list []catalog.SidewaysAs, v catalog.SidewaysAs) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
