// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mage-knight-digital/mkengine/catalog"
	"github.com/mage-knight-digital/mkengine/ids"
)

func rageFamilyCount(deck []ids.CardID) int {
	count := 0
	for _, id := range deck {
		if id == "rage" || id == "rage_2" {
			count++
		}
	}
	return count
}

func TestBuildStartingDeckHasSixteenCards(t *testing.T) {
	for _, hero := range catalog.AllHeroes {
		deck := catalog.BuildStartingDeck(hero)
		assert.Lenf(t, deck, 16, "hero %s starting deck", hero)
	}
}

func TestBuildStartingDeckAryTheaReplacesOneRage(t *testing.T) {
	deck := catalog.BuildStartingDeck(catalog.HeroArythea)
	assert.Equal(t, 1, rageFamilyCount(deck))
	assert.Contains(t, deck, ids.CardID("battle_versatility"))
}

func TestBuildStartingDeckKrangReplacesThree(t *testing.T) {
	deck := catalog.BuildStartingDeck(catalog.HeroKrang)
	assert.Equal(t, 1, rageFamilyCount(deck))
	assert.Contains(t, deck, ids.CardID("into_the_heat"))
	assert.Contains(t, deck, ids.CardID("bold_attack"))
	assert.Contains(t, deck, ids.CardID("provoke"))
}

func TestDrudgeryPoweredEffectIsADiscardCost(t *testing.T) {
	def, ok := catalog.GetCard("drudgery")
	require.True(t, ok)

	powered := def.PoweredEffect
	require.Equal(t, catalog.StepDiscardCost, powered.Kind)
	assert.Equal(t, 2, powered.Amount)
	assert.True(t, powered.DiscardFilterWounds)
	require.Len(t, powered.Children, 1)
	assert.Equal(t, catalog.StepGainMove, powered.Children[0].Kind)
	assert.Equal(t, 4, powered.Children[0].Amount)
}

func TestGetCardFindsEveryStandardDeckEntry(t *testing.T) {
	for _, hero := range catalog.AllHeroes {
		for _, id := range catalog.BuildStartingDeck(hero) {
			_, ok := catalog.GetCard(id)
			require.Truef(t, ok, "card %s from hero %s starting deck", id, hero)
		}
	}
}
