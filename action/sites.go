// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package action

import (
	"github.com/mage-knight-digital/mkengine/catalog"
	"github.com/mage-knight-digital/mkengine/state"
)

// siteHealCost is the flat influence cost of one healing interaction at a
// village or monastery. The tabletop's real cost escalates per heal
// attempted at the same village visit; tracking that would need a
// per-visit counter this port does not carry on PlayerState, so every
// heal costs the same.
const siteHealCost = 3

// healingSiteTypes lists the site types InteractSite's healing option is
// offered at.
var healingSiteTypes = map[catalog.SiteType]bool{
	catalog.SiteVillage:   true,
	catalog.SiteMonastery: true,
}

// recruitingSiteTypes lists the site types that expose the shared unit
// offer for recruitment.
var recruitingSiteTypes = map[catalog.SiteType]bool{
	catalog.SiteVillage:   true,
	catalog.SiteKeep:      true,
	catalog.SiteMageTower: true,
	catalog.SiteMonastery: true,
	catalog.SiteCity:      true,
}

// enumerateSites emits category 8 actions (EnterSite, InteractSite,
// RecruitUnit) for the site on the player's current hex, if any. An
// unconquered site only ever offers EnterSite — every other site action
// requires it to already be conquered (or, for village/monastery, simply
// entered without a fight).
func enumerateSites(g *state.GameState, player *state.PlayerState, actions *[]LegalAction) {
	if player.Position == nil {
		return
	}
	hex, ok := g.Map.Hexes[*player.Position]
	if !ok || hex.Site == nil {
		return
	}
	site := hex.Site

	if !site.IsConquered {
		*actions = append(*actions, EnterSite{})
		return
	}

	if healingSiteTypes[site.Type] && player.Accumulated.Influence >= siteHealCost && hasWoundInHand(player) {
		*actions = append(*actions, InteractSite{Healing: 1})
	}

	if recruitingSiteTypes[site.Type] && len(player.Units) < player.CommandSlots() {
		for i, unitID := range g.UnitOffer {
			def, ok := catalog.GetUnit(unitID)
			if !ok {
				continue
			}
			if player.Accumulated.Influence >= def.InfluenceCost {
				*actions = append(*actions, RecruitUnit{UnitID: unitID, OfferIndex: i, InfluenceCost: def.InfluenceCost})
			}
		}
	}
}

func hasWoundInHand(player *state.PlayerState) bool {
	for _, c := range player.Hand {
		if c == catalog.WoundCardID {
			return true
		}
	}
	return false
}
