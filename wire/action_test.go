// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package wire_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mage-knight-digital/mkengine/action"
	"github.com/mage-knight-digital/mkengine/catalog"
	"github.com/mage-knight-digital/mkengine/hexcoord"
	"github.com/mage-knight-digital/mkengine/wire"
)

func roundTrip(t *testing.T, a action.LegalAction) action.LegalAction {
	t.Helper()
	data, err := wire.MarshalLegalAction(a)
	require.NoError(t, err)
	decoded, err := wire.UnmarshalLegalAction(data)
	require.NoError(t, err)
	return decoded
}

func TestMarshalLegalActionUsesCamelCaseFieldsAndTypeTag(t *testing.T) {
	data, err := wire.MarshalLegalAction(action.Move{Target: hexcoord.New(2, -1), Cost: 3})
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "move", raw["type"])
	assert.Equal(t, map[string]any{"q": float64(2), "r": float64(-1)}, raw["target"])
	assert.Equal(t, float64(3), raw["cost"])
}

func TestMarshalLegalActionRendersDirectionAsSnakeCase(t *testing.T) {
	data, err := wire.MarshalLegalAction(action.Explore{Direction: hexcoord.DirSE})
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "se", raw["direction"])
}

func TestRoundTripEveryLegalActionKind(t *testing.T) {
	idx := 2
	cases := []action.LegalAction{
		action.SelectTactic{TacticID: "long_march"},
		action.PlayCardBasic{HandIndex: 1, CardID: "march"},
		action.PlayCardPowered{HandIndex: 1, CardID: "march", ManaColor: catalog.ColorGreen},
		action.PlayCardSideways{HandIndex: 1, CardID: "march", SidewaysAs: catalog.SidewaysAttack},
		action.Move{Target: hexcoord.New(1, 1), Cost: 2},
		action.Challenge{Target: hexcoord.New(1, 0)},
		action.Explore{Direction: hexcoord.DirNW},
		action.ResolveChoice{ChoiceIndex: 0},
		action.DiscardCard{HandIndex: 3},
		action.EnterSite{},
		action.InteractSite{Healing: 2},
		action.RecruitUnit{UnitID: "peasants", OfferIndex: 0, InfluenceCost: 3},
		action.ActivateTactic{},
		action.RerollSourceDice{DieIndices: []int{0, 2}},
		action.AssignAttack{EnemyInstanceID: "e1", Range: catalog.RangeMelee, Element: catalog.ElementFire, Amount: 3},
		action.AssignBlock{EnemyInstanceID: "e1", Element: catalog.ElementPhysical, Amount: 2},
		action.AutoAssignDefend{EnemyInstanceID: "e1"},
		action.EndCombatPhase{},
		action.EndTurn{},
		action.DeclareRest{},
		action.CompleteRest{DiscardHandIndex: &idx},
		action.CompleteRest{DiscardHandIndex: nil},
		action.ProposeCooperativeAssault{
			HexCoord:          hexcoord.New(0, 0),
			InvitedPlayerIdxs: []int{1, 2},
			Distribution:      map[int]int{0: 1, 1: 1, 2: 1},
		},
		action.RespondToCooperativeProposal{Accept: true},
		action.CancelCooperativeProposal{},
		action.Undo{},
	}

	for _, a := range cases {
		decoded := roundTrip(t, a)
		assert.Equal(t, a, decoded, "%T", a)
	}
}

func TestMarshalSetRoundTrips(t *testing.T) {
	set := action.Set{
		Epoch:     7,
		PlayerIdx: 1,
		Actions: []action.LegalAction{
			action.EndTurn{},
			action.Move{Target: hexcoord.New(0, 1), Cost: 1},
		},
	}

	data, err := wire.MarshalSet(set)
	require.NoError(t, err)

	decoded, err := wire.UnmarshalSet(data)
	require.NoError(t, err)
	assert.Equal(t, set, decoded)
}

func TestUnmarshalLegalActionRejectsUnknownType(t *testing.T) {
	_, err := wire.UnmarshalLegalAction([]byte(`{"type":"not_a_real_action"}`))
	assert.Error(t, err)
}
