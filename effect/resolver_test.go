// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package effect_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mage-knight-digital/mkengine/catalog"
	"github.com/mage-knight-digital/mkengine/effect"
	"github.com/mage-knight-digital/mkengine/ids"
	"github.com/mage-knight-digital/mkengine/state"
)

func TestDrainSuspendsOnDiscardCost(t *testing.T) {
	player := state.NewPlayerState("p1", catalog.HeroArythea)
	player.Hand = []ids.CardID{"rage", "march"}
	g := &state.GameState{Players: []*state.PlayerState{player}}

	step := catalog.EffectStep{
		Kind:                catalog.StepDiscardCost,
		Amount:              2,
		DiscardFilterWounds: true,
		Children:            []catalog.EffectStep{{Kind: catalog.StepGainMove, Amount: 4}},
	}
	q := effect.FromFrames([]state.EffectFrame{{Effect: step, Player: player.ID}})

	r := effect.NewResolver(nil)
	outcome, err := r.Drain(context.Background(), g, player, q)
	require.NoError(t, err)
	assert.False(t, outcome.IsComplete())
	assert.Equal(t, state.PendingDiscard, outcome.PendingKind)

	pending, ok := player.Pending.Active.(state.DiscardPending)
	require.True(t, ok)
	assert.Equal(t, 2, pending.Count)
	assert.True(t, pending.FilterWounds)
	assert.Equal(t, state.DiscardForEffect, pending.Purpose)
	require.Len(t, pending.Continuation.Remaining, 1)
	assert.Equal(t, catalog.StepGainMove, pending.Continuation.Remaining[0].Effect.Kind)
}

func TestDrainResumesThenEffectAfterDiscardCostQueueIsPreloaded(t *testing.T) {
	player := state.NewPlayerState("p1", catalog.HeroArythea)
	g := &state.GameState{Players: []*state.PlayerState{player}}

	// Simulate the dispatcher resuming a DiscardPending's continuation once
	// its Count has reached zero: the then-effect frame it preloaded drains
	// as ordinary queue work.
	q := effect.FromFrames([]state.EffectFrame{
		{Effect: catalog.EffectStep{Kind: catalog.StepGainMove, Amount: 4}, Player: player.ID},
	})

	r := effect.NewResolver(nil)
	outcome, err := r.Drain(context.Background(), g, player, q)
	require.NoError(t, err)
	assert.True(t, outcome.IsComplete())
	assert.Equal(t, 4, player.Accumulated.Move)
}
