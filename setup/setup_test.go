// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package setup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/mage-knight-digital/mkengine/action"
	"github.com/mage-knight-digital/mkengine/catalog"
	"github.com/mage-knight-digital/mkengine/enginebus"
	"github.com/mage-knight-digital/mkengine/setup"
)

func TestNewGameRejectsUnknownScenario(t *testing.T) {
	_, err := setup.NewGame(setup.Config{
		ScenarioID:   "not_a_scenario",
		PlayerHeroes: []catalog.Hero{catalog.HeroArythea},
		Seed:         42,
	})
	assert.Error(t, err)
}

func TestNewGameRejectsNoPlayers(t *testing.T) {
	_, err := setup.NewGame(setup.Config{ScenarioID: "first_reconnaissance", Seed: 42})
	assert.Error(t, err)
}

func TestNewGameSoloArytheaDealsFiveCardHandAndOffersSixTactics(t *testing.T) {
	g, err := setup.NewGame(setup.Config{
		ScenarioID:   "first_reconnaissance",
		PlayerHeroes: []catalog.Hero{catalog.HeroArythea},
		Seed:         42,
	})
	require.NoError(t, err)

	require.Len(t, g.Players, 1)
	player := g.Players[0]
	assert.Len(t, player.Hand, 5)
	assert.Equal(t, catalog.HeroArythea, player.Hero)
	assert.NotNil(t, player.Position)
	assert.Equal(t, catalog.RoundTacticsSelection, g.RoundPhase)
	assert.Equal(t, catalog.PhaseRound, g.Phase)
	assert.Equal(t, uint32(1), g.Round)

	color, count := catalog.HeroStartingCrystals(catalog.HeroArythea)
	assert.Equal(t, count, player.Crystals.Count(color))

	actions := action.EnumerateLegalActions(g, 0, false)
	require.Len(t, actions.Actions, 6)
	for _, a := range actions.Actions {
		_, ok := a.(action.SelectTactic)
		assert.True(t, ok, "every action offered during tactics selection must be SelectTactic")
	}
	first, ok := actions.Actions[0].(action.SelectTactic)
	require.True(t, ok)
	assert.Equal(t, "early_bird", string(first.TacticID))
}

func TestNewGamePublishesGameStartedAndHeroLoaded(t *testing.T) {
	bus := events.NewBus()

	var gameStarted *enginebus.GameStarted
	_, err := bus.Subscribe(enginebus.RefGameStarted, func(e *enginebus.GameStarted) error {
		gameStarted = e
		return nil
	})
	require.NoError(t, err)

	var heroesLoaded []*enginebus.HeroLoaded
	_, err = bus.Subscribe(enginebus.RefHeroLoaded, func(e *enginebus.HeroLoaded) error {
		heroesLoaded = append(heroesLoaded, e)
		return nil
	})
	require.NoError(t, err)

	g, err := setup.NewGame(setup.Config{
		ScenarioID:   "first_reconnaissance",
		PlayerHeroes: []catalog.Hero{catalog.HeroArythea},
		Seed:         42,
		Bus:          bus,
	})
	require.NoError(t, err)

	require.NotNil(t, gameStarted)
	assert.Equal(t, g.TurnOrder, gameStarted.PlayerIDs)

	require.Len(t, heroesLoaded, 1)
	assert.Equal(t, catalog.HeroArythea, heroesLoaded[0].Hero)
	assert.Equal(t, g.Players[0].ID, heroesLoaded[0].Player)
}
