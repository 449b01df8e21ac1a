// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package undo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mage-knight-digital/mkengine/catalog"
	"github.com/mage-knight-digital/mkengine/ids"
	"github.com/mage-knight-digital/mkengine/rng"
	"github.com/mage-knight-digital/mkengine/state"
	"github.com/mage-knight-digital/mkengine/undo"
)

func newMinimalState() *state.GameState {
	p := state.NewPlayerState(ids.PlayerID("p1"), catalog.HeroArythea)
	p.Hand = []ids.CardID{"march", "rage"}
	return &state.GameState{
		Players:   []*state.PlayerState{p},
		TurnOrder: []ids.PlayerID{p.ID},
		Phase:     catalog.PhaseRound,
		Map:       state.NewMapState(),
		RNG:       rng.New(42),
	}
}

func TestStack_FreshStackCannotUndo(t *testing.T) {
	s := undo.NewStack()
	assert.False(t, s.CanUndo())
	_, ok := s.Undo()
	assert.False(t, ok)
}

func TestStack_SaveThenUndoRestoresSnapshot(t *testing.T) {
	s := undo.NewStack()
	g := newMinimalState()
	s.Save(g)

	g.Players[0].Hand = append(g.Players[0].Hand, "swiftness")
	g.ActionEpoch++

	require.True(t, s.CanUndo())
	restored, ok := s.Undo()
	require.True(t, ok)
	assert.Equal(t, []ids.CardID{"march", "rage"}, restored.Players[0].Hand)
	assert.Equal(t, uint64(0), restored.ActionEpoch)
}

func TestStack_CheckpointClearsAndBlocksUndo(t *testing.T) {
	s := undo.NewStack()
	g := newMinimalState()
	s.Save(g)
	require.True(t, s.CanUndo())

	s.SetCheckpoint()
	assert.False(t, s.CanUndo())
	assert.Equal(t, 0, s.Depth())
}

func TestStack_SaveAfterCheckpointIsUndoableAgain(t *testing.T) {
	s := undo.NewStack()
	g := newMinimalState()
	s.SetCheckpoint()
	s.Save(g)
	assert.True(t, s.CanUndo())
}

func TestStack_MultipleSavesUndoMostRecentFirst(t *testing.T) {
	s := undo.NewStack()
	g := newMinimalState()
	s.Save(g)
	g.ActionEpoch = 1

	s.Save(g)
	g.ActionEpoch = 2

	snap, ok := s.Undo()
	require.True(t, ok)
	assert.Equal(t, uint64(1), snap.ActionEpoch)

	snap, ok = s.Undo()
	require.True(t, ok)
	assert.Equal(t, uint64(0), snap.ActionEpoch)

	assert.False(t, s.CanUndo())
}
