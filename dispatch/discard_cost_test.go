// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package dispatch_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mage-knight-digital/mkengine/action"
	"github.com/mage-knight-digital/mkengine/catalog"
	"github.com/mage-knight-digital/mkengine/dispatch"
	"github.com/mage-knight-digital/mkengine/ids"
	"github.com/mage-knight-digital/mkengine/rng"
	"github.com/mage-knight-digital/mkengine/state"
	"github.com/mage-knight-digital/mkengine/undo"
)

func drudgeryGame() *state.GameState {
	p1 := state.NewPlayerState("p1", catalog.HeroArythea)
	p1.Hand = []ids.CardID{"drudgery", "rage", "march", "wound"}
	p1.Crystals.Gain(catalog.ColorGreen, 1)

	return &state.GameState{
		Players:   []*state.PlayerState{p1},
		TurnOrder: []ids.PlayerID{"p1"},
		Phase:     catalog.PhaseRound,
		Map:       state.NewMapState(),
		RNG:       rng.New(1),
	}
}

func TestPlayCardPoweredDrudgerySuspendsOnDiscardCost(t *testing.T) {
	g := drudgeryGame()
	d := dispatch.New(nil)
	u := undo.NewStack()

	result, err := d.Apply(context.Background(), g, u, 0, action.PlayCardPowered{
		HandIndex: 0, CardID: "drudgery", ManaColor: catalog.ColorGreen,
	}, g.ActionEpoch)
	require.NoError(t, err)
	assert.Equal(t, state.PendingDiscard, result.PendingKind)

	pending, ok := g.Players[0].Pending.Active.(state.DiscardPending)
	require.True(t, ok)
	assert.Equal(t, 2, pending.Count)
	assert.True(t, pending.FilterWounds)
	assert.Equal(t, state.DiscardForEffect, pending.Purpose)

	// Hand is now {rage, march, wound} — drudgery left via discardPlayedCard.
	assert.Equal(t, []ids.CardID{"rage", "march", "wound"}, g.Players[0].Hand)
}

func TestPlayCardPoweredDrudgeryResolvesMoveAfterTwoDiscards(t *testing.T) {
	g := drudgeryGame()
	d := dispatch.New(nil)
	u := undo.NewStack()

	_, err := d.Apply(context.Background(), g, u, 0, action.PlayCardPowered{
		HandIndex: 0, CardID: "drudgery", ManaColor: catalog.ColorGreen,
	}, g.ActionEpoch)
	require.NoError(t, err)

	result, err := d.Apply(context.Background(), g, u, 0, action.DiscardCard{HandIndex: 0}, g.ActionEpoch)
	require.NoError(t, err)
	assert.Equal(t, state.PendingDiscard, result.PendingKind)

	result, err = d.Apply(context.Background(), g, u, 0, action.DiscardCard{HandIndex: 0}, g.ActionEpoch)
	require.NoError(t, err)
	assert.Equal(t, state.PendingKind(""), result.PendingKind)

	assert.Nil(t, g.Players[0].Pending.Active)
	assert.Equal(t, 4, g.Players[0].Accumulated.Move)
	assert.Equal(t, []ids.CardID{"wound"}, g.Players[0].Hand)
	assert.ElementsMatch(t, []ids.CardID{"drudgery", "rage", "march"}, g.Players[0].Discard)
}

func TestPlayCardPoweredDrudgeryWoundsDoNotCountTowardDiscardCost(t *testing.T) {
	g := drudgeryGame()
	d := dispatch.New(nil)
	u := undo.NewStack()

	_, err := d.Apply(context.Background(), g, u, 0, action.PlayCardPowered{
		HandIndex: 0, CardID: "drudgery", ManaColor: catalog.ColorGreen,
	}, g.ActionEpoch)
	require.NoError(t, err)

	// Hand is {rage, march, wound}; discarding the wound at index 2 must be
	// rejected since FilterWounds excludes it from paying the cost.
	_, err = d.Apply(context.Background(), g, u, 0, action.DiscardCard{HandIndex: 2}, g.ActionEpoch)
	assert.Error(t, err)
}
