// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mage-knight-digital/mkengine/catalog"
	"github.com/mage-knight-digital/mkengine/hexcoord"
	"github.com/mage-knight-digital/mkengine/ids"
	"github.com/mage-knight-digital/mkengine/scoring"
	"github.com/mage-knight-digital/mkengine/state"
)

func newPlayer(id ids.PlayerID, fame, units int) *state.PlayerState {
	p := state.NewPlayerState(id, catalog.HeroArythea)
	p.Fame = fame
	for i := 0; i < units; i++ {
		p.Units = append(p.Units, state.Unit{InstanceID: ids.UnitInstanceID("u")})
	}
	return p
}

func TestCalculateFinalScoresRanksByTotalDescending(t *testing.T) {
	g := &state.GameState{
		Map: state.NewMapState(),
		Players: []*state.PlayerState{
			newPlayer("p1", 10, 0),
			newPlayer("p2", 20, 0),
			newPlayer("p3", 5, 0),
		},
	}

	scores := scoring.CalculateFinalScores(g)
	require.Len(t, scores, 3)

	byID := map[ids.PlayerID]scoring.PlayerScore{}
	for _, s := range scores {
		byID[s.PlayerID] = s
	}

	assert.Equal(t, 1, byID["p2"].Rank)
	assert.Equal(t, 2, byID["p1"].Rank)
	assert.Equal(t, 3, byID["p3"].Rank)
	assert.Equal(t, scoring.Achievement("greatest_knight"), mustOnlyKey(t, byID["p2"].Achievements))
}

func TestCalculateFinalScoresTiesShareRankAndAchievement(t *testing.T) {
	g := &state.GameState{
		Map: state.NewMapState(),
		Players: []*state.PlayerState{
			newPlayer("p1", 10, 0),
			newPlayer("p2", 10, 0),
		},
	}

	scores := scoring.CalculateFinalScores(g)
	require.Len(t, scores, 2)
	assert.Equal(t, 1, scores[0].Rank)
	assert.Equal(t, 1, scores[1].Rank)
	assert.Equal(t, 12, scores[0].Total)
	assert.Equal(t, 12, scores[1].Total)
}

func TestCalculateFinalScoresAwardsGreatestLeaderAndCityConqueror(t *testing.T) {
	p1 := newPlayer("p1", 0, 3)
	p2 := newPlayer("p2", 0, 1)

	m := state.NewMapState()
	owner := ids.PlayerID("p2")
	m.Hexes[hexcoord.New(0, 0)] = &state.HexState{
		Site: &state.SiteState{Type: catalog.SiteCity, IsConquered: true, Owner: &owner},
	}

	g := &state.GameState{Map: m, Players: []*state.PlayerState{p1, p2}}
	scores := scoring.CalculateFinalScores(g)

	byID := map[ids.PlayerID]scoring.PlayerScore{}
	for _, s := range scores {
		byID[s.PlayerID] = s
	}

	assert.Equal(t, 2, byID["p1"].Achievements[scoring.AchievementGreatestLeader])
	assert.Equal(t, 1, byID["p2"].Achievements[scoring.AchievementCityConqueror])
	assert.Equal(t, 1, byID["p2"].Total)
}

func mustOnlyKey(t *testing.T, m map[scoring.Achievement]int) scoring.Achievement {
	t.Helper()
	require.Len(t, m, 1)
	for k := range m {
		return k
	}
	return ""
}
