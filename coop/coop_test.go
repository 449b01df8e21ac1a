// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package coop_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mage-knight-digital/mkengine/catalog"
	"github.com/mage-knight-digital/mkengine/coop"
	"github.com/mage-knight-digital/mkengine/hexcoord"
	"github.com/mage-knight-digital/mkengine/ids"
	"github.com/mage-knight-digital/mkengine/rng"
	"github.com/mage-knight-digital/mkengine/state"
)

func newPlayerAt(id ids.PlayerID, pos hexcoord.HexCoord) *state.PlayerState {
	p := state.NewPlayerState(id, catalog.HeroArythea)
	p.Position = &pos
	return p
}

func cityGame(garrisonSize int) *state.GameState {
	m := state.NewMapState()
	cityHex := hexcoord.New(0, 0)
	garrison := make([]state.EnemyToken, garrisonSize)
	for i := range garrison {
		garrison[i] = state.EnemyToken{TokenID: ids.EnemyTokenID("t"), Definition: ids.EnemyID("prowlers")}
	}
	m.Hexes[cityHex] = &state.HexState{
		Site: &state.SiteState{Type: catalog.SiteCity, Garrison: garrison},
	}

	p1 := newPlayerAt("p1", hexcoord.New(1, 0))
	p2 := newPlayerAt("p2", hexcoord.New(0, 1))

	return &state.GameState{Map: m, Players: []*state.PlayerState{p1, p2}, RNG: rng.New(1)}
}

func TestFindEligibleInviteesExcludesTakenActionAndFlippedToken(t *testing.T) {
	g := cityGame(2)
	cityHex := hexcoord.New(0, 0)

	invitees := coop.FindEligibleInvitees(g, 0, cityHex)
	assert.Equal(t, []int{1}, invitees)

	g.Players[1].Flags = g.Players[1].Flags.Set(state.FlagHasTakenActionThisTurn)
	assert.Empty(t, coop.FindEligibleInvitees(g, 0, cityHex))
}

func TestEnumeratePartitionsSumsToGarrisonSize(t *testing.T) {
	partitions, truncated := coop.EnumeratePartitions(3, 2)
	assert.False(t, truncated)
	require.NotEmpty(t, partitions)
	for _, p := range partitions {
		require.Len(t, p, 2)
		assert.Equal(t, 3, p[0]+p[1])
	}
}

func TestEnumeratePartitionsTruncatesLargeGarrisons(t *testing.T) {
	_, truncated := coop.EnumeratePartitions(20, 5)
	assert.True(t, truncated)
}

func TestProposeRejectsWhenDistributionDoesNotMatchGarrison(t *testing.T) {
	g := cityGame(2)
	err := coop.Propose(g, 0, hexcoord.New(0, 0), []int{1}, map[int]int{0: 1, 1: 2})
	assert.Error(t, err)
}

func TestFullAcceptanceResolvesAssaultAndStartsProposerCombatFirst(t *testing.T) {
	g := cityGame(3)
	cityHex := hexcoord.New(0, 0)

	require.NoError(t, coop.Propose(g, 0, cityHex, []int{1}, map[int]int{0: 2, 1: 1}))
	require.NoError(t, coop.Respond(g, 1, true))

	require.NotNil(t, g.Combat)
	assert.Equal(t, ids.PlayerID("p1"), g.Combat.Player)
	assert.Len(t, g.Combat.Enemies, 2)
	require.Len(t, g.CoopQueue, 1)
	assert.Equal(t, 1, g.CoopQueue[0].PlayerIdx)

	assert.True(t, g.Players[0].Flags.Has(state.FlagRoundOrderTokenFlipped))
	assert.True(t, g.Players[1].Flags.Has(state.FlagRoundOrderTokenFlipped))

	hex := g.Map.Hexes[cityHex]
	assert.Empty(t, hex.Site.Garrison)
}

func TestDeclineCancelsProposalOutright(t *testing.T) {
	g := cityGame(2)
	cityHex := hexcoord.New(0, 0)
	require.NoError(t, coop.Propose(g, 0, cityHex, []int{1}, map[int]int{0: 1, 1: 1}))

	require.NoError(t, coop.Respond(g, 1, false))
	assert.Nil(t, g.PendingCooperativeAssault)
	assert.Nil(t, g.Combat)
}

func TestStartNextQueuedDrainsQueueAndClearsCityHex(t *testing.T) {
	g := cityGame(2)
	cityHex := hexcoord.New(0, 0)
	require.NoError(t, coop.Propose(g, 0, cityHex, []int{1}, map[int]int{0: 1, 1: 1}))
	require.NoError(t, coop.Respond(g, 1, true))

	require.NotNil(t, g.CoopCityHex)
	g.Combat = nil
	started := coop.StartNextQueued(g)
	assert.True(t, started)
	assert.Equal(t, ids.PlayerID("p2"), g.Combat.Player)

	g.Combat = nil
	started = coop.StartNextQueued(g)
	assert.False(t, started)
	assert.Nil(t, g.CoopCityHex)
}
