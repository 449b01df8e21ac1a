// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package action_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mage-knight-digital/mkengine/action"
	"github.com/mage-knight-digital/mkengine/catalog"
	"github.com/mage-knight-digital/mkengine/ids"
	"github.com/mage-knight-digital/mkengine/rng"
	"github.com/mage-knight-digital/mkengine/state"
)

func offersPlayCardPowered(actions []action.LegalAction, cardID ids.CardID) bool {
	for _, a := range actions {
		if p, ok := a.(action.PlayCardPowered); ok && p.CardID == cardID {
			return true
		}
	}
	return false
}

func TestEnumerateLegalActionsHidesDrudgeryPoweredWhenCostUnpayable(t *testing.T) {
	p1 := state.NewPlayerState("p1", catalog.HeroArythea)
	p1.Hand = []ids.CardID{"drudgery"}
	p1.Crystals.Gain(catalog.ColorGreen, 1)

	g := &state.GameState{
		Players:   []*state.PlayerState{p1},
		TurnOrder: []ids.PlayerID{"p1"},
		Phase:     catalog.PhaseRound,
		Map:       state.NewMapState(),
		RNG:       rng.New(1),
	}

	set := action.EnumerateLegalActions(g, 0, false)
	assert.False(t, offersPlayCardPowered(set.Actions, "drudgery"))
}

func TestEnumerateLegalActionsOffersDrudgeryPoweredWithEnoughDiscardableCards(t *testing.T) {
	p1 := state.NewPlayerState("p1", catalog.HeroArythea)
	p1.Hand = []ids.CardID{"drudgery", "rage", "march"}
	p1.Crystals.Gain(catalog.ColorGreen, 1)

	g := &state.GameState{
		Players:   []*state.PlayerState{p1},
		TurnOrder: []ids.PlayerID{"p1"},
		Phase:     catalog.PhaseRound,
		Map:       state.NewMapState(),
		RNG:       rng.New(1),
	}

	set := action.EnumerateLegalActions(g, 0, false)
	assert.True(t, offersPlayCardPowered(set.Actions, "drudgery"))
}
