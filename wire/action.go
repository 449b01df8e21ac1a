// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package wire is the JSON serialization boundary: it converts the
// action.LegalAction tagged union and the client.GameState projection into
// camelCase JSON with a "type" discriminator on every action and
// snake_case enum strings, and back. No transport (HTTP, WebSocket) lives
// here — only the encode/decode step a transport would call into.
package wire

import (
	"encoding/json"
	"fmt"

	"github.com/mage-knight-digital/mkengine/action"
	"github.com/mage-knight-digital/mkengine/catalog"
	"github.com/mage-knight-digital/mkengine/ids"
)

// actionEnvelope is decoded first to learn which concrete type the rest of
// the payload holds, the same two-step pattern the teacher's ID type uses
// for its own tagged string/object duality (mechanics/identifier).
type actionEnvelope struct {
	Type action.Kind `json:"type"`
}

// MarshalLegalAction encodes a to its tagged-union wire form.
func MarshalLegalAction(a action.LegalAction) ([]byte, error) {
	switch v := a.(type) {
	case action.SelectTactic:
		return json.Marshal(struct {
			Type     action.Kind  `json:"type"`
			TacticID ids.TacticID `json:"tacticId"`
		}{action.KindSelectTactic, v.TacticID})

	case action.PlayCardBasic:
		return json.Marshal(struct {
			Type      action.Kind `json:"type"`
			HandIndex int         `json:"handIndex"`
			CardID    ids.CardID  `json:"cardId"`
		}{action.KindPlayCardBasic, v.HandIndex, v.CardID})

	case action.PlayCardPowered:
		return json.Marshal(struct {
			Type      action.Kind            `json:"type"`
			HandIndex int                    `json:"handIndex"`
			CardID    ids.CardID             `json:"cardId"`
			ManaColor catalog.BasicManaColor `json:"manaColor"`
		}{action.KindPlayCardPowered, v.HandIndex, v.CardID, v.ManaColor})

	case action.PlayCardSideways:
		return json.Marshal(struct {
			Type       action.Kind      `json:"type"`
			HandIndex  int              `json:"handIndex"`
			CardID     ids.CardID       `json:"cardId"`
			SidewaysAs catalog.SidewaysAs `json:"sidewaysAs"`
		}{action.KindPlayCardSideways, v.HandIndex, v.CardID, v.SidewaysAs})

	case action.Move:
		return json.Marshal(struct {
			Type   action.Kind `json:"type"`
			Target hexWire     `json:"target"`
			Cost   int         `json:"cost"`
		}{action.KindMove, toHexWire(v.Target), v.Cost})

	case action.Challenge:
		return json.Marshal(struct {
			Type   action.Kind `json:"type"`
			Target hexWire     `json:"target"`
		}{action.KindChallenge, toHexWire(v.Target)})

	case action.Explore:
		dir, err := directionToWire(v.Direction)
		if err != nil {
			return nil, err
		}
		return json.Marshal(struct {
			Type      action.Kind `json:"type"`
			Direction string      `json:"direction"`
		}{action.KindExplore, dir})

	case action.ResolveChoice:
		return json.Marshal(struct {
			Type        action.Kind `json:"type"`
			ChoiceIndex int         `json:"choiceIndex"`
		}{action.KindResolveChoice, v.ChoiceIndex})

	case action.DiscardCard:
		return json.Marshal(struct {
			Type      action.Kind `json:"type"`
			HandIndex int         `json:"handIndex"`
		}{action.KindDiscardCard, v.HandIndex})

	case action.EnterSite:
		return json.Marshal(struct {
			Type action.Kind `json:"type"`
		}{action.KindEnterSite})

	case action.InteractSite:
		return json.Marshal(struct {
			Type    action.Kind `json:"type"`
			Healing int         `json:"healing"`
		}{action.KindInteractSite, v.Healing})

	case action.RecruitUnit:
		return json.Marshal(struct {
			Type          action.Kind `json:"type"`
			UnitID        ids.UnitID  `json:"unitId"`
			OfferIndex    int         `json:"offerIndex"`
			InfluenceCost int         `json:"influenceCost"`
		}{action.KindRecruitUnit, v.UnitID, v.OfferIndex, v.InfluenceCost})

	case action.ActivateTactic:
		return json.Marshal(struct {
			Type action.Kind `json:"type"`
		}{action.KindActivateTactic})

	case action.RerollSourceDice:
		return json.Marshal(struct {
			Type       action.Kind `json:"type"`
			DieIndices []int       `json:"dieIndices"`
		}{action.KindRerollSourceDice, v.DieIndices})

	case action.AssignAttack:
		return json.Marshal(struct {
			Type            action.Kind          `json:"type"`
			EnemyInstanceID ids.CombatInstanceID `json:"enemyInstanceId"`
			Range           catalog.AttackRange  `json:"range"`
			Element         catalog.Element      `json:"element"`
			Amount          int                  `json:"amount"`
		}{action.KindAssignAttack, v.EnemyInstanceID, v.Range, v.Element, v.Amount})

	case action.AssignBlock:
		return json.Marshal(struct {
			Type            action.Kind          `json:"type"`
			EnemyInstanceID ids.CombatInstanceID `json:"enemyInstanceId"`
			Element         catalog.Element      `json:"element"`
			Amount          int                  `json:"amount"`
		}{action.KindAssignBlock, v.EnemyInstanceID, v.Element, v.Amount})

	case action.AutoAssignDefend:
		return json.Marshal(struct {
			Type            action.Kind          `json:"type"`
			EnemyInstanceID ids.CombatInstanceID `json:"enemyInstanceId"`
		}{action.KindAutoAssignDefend, v.EnemyInstanceID})

	case action.EndCombatPhase:
		return json.Marshal(struct {
			Type action.Kind `json:"type"`
		}{action.KindEndCombatPhase})

	case action.EndTurn:
		return json.Marshal(struct {
			Type action.Kind `json:"type"`
		}{action.KindEndTurn})

	case action.DeclareRest:
		return json.Marshal(struct {
			Type action.Kind `json:"type"`
		}{action.KindDeclareRest})

	case action.CompleteRest:
		return json.Marshal(struct {
			Type             action.Kind `json:"type"`
			DiscardHandIndex *int        `json:"discardHandIndex"`
		}{action.KindCompleteRest, v.DiscardHandIndex})

	case action.ProposeCooperativeAssault:
		return json.Marshal(struct {
			Type              action.Kind `json:"type"`
			HexCoord          hexWire     `json:"hexCoord"`
			InvitedPlayerIdxs []int       `json:"invitedPlayerIdxs"`
			Distribution      map[int]int `json:"distribution"`
		}{action.KindProposeCooperativeAssault, toHexWire(v.HexCoord), v.InvitedPlayerIdxs, v.Distribution})

	case action.RespondToCooperativeProposal:
		return json.Marshal(struct {
			Type   action.Kind `json:"type"`
			Accept bool        `json:"accept"`
		}{action.KindRespondToCooperativeProposal, v.Accept})

	case action.CancelCooperativeProposal:
		return json.Marshal(struct {
			Type action.Kind `json:"type"`
		}{action.KindCancelCooperativeProposal})

	case action.Undo:
		return json.Marshal(struct {
			Type action.Kind `json:"type"`
		}{action.KindUndo})

	default:
		return nil, fmt.Errorf("wire: unknown legal action type %T", a)
	}
}

// UnmarshalLegalAction decodes a tagged-union payload produced by
// MarshalLegalAction back into a concrete action.LegalAction.
func UnmarshalLegalAction(data []byte) (action.LegalAction, error) {
	var env actionEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}

	switch env.Type {
	case action.KindSelectTactic:
		var v struct {
			TacticID ids.TacticID `json:"tacticId"`
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return action.SelectTactic{TacticID: v.TacticID}, nil

	case action.KindPlayCardBasic:
		var v struct {
			HandIndex int        `json:"handIndex"`
			CardID    ids.CardID `json:"cardId"`
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return action.PlayCardBasic{HandIndex: v.HandIndex, CardID: v.CardID}, nil

	case action.KindPlayCardPowered:
		var v struct {
			HandIndex int                    `json:"handIndex"`
			CardID    ids.CardID             `json:"cardId"`
			ManaColor catalog.BasicManaColor `json:"manaColor"`
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return action.PlayCardPowered{HandIndex: v.HandIndex, CardID: v.CardID, ManaColor: v.ManaColor}, nil

	case action.KindPlayCardSideways:
		var v struct {
			HandIndex  int                `json:"handIndex"`
			CardID     ids.CardID         `json:"cardId"`
			SidewaysAs catalog.SidewaysAs `json:"sidewaysAs"`
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return action.PlayCardSideways{HandIndex: v.HandIndex, CardID: v.CardID, SidewaysAs: v.SidewaysAs}, nil

	case action.KindMove:
		var v struct {
			Target hexWire `json:"target"`
			Cost   int     `json:"cost"`
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return action.Move{Target: v.Target.toHexCoord(), Cost: v.Cost}, nil

	case action.KindChallenge:
		var v struct {
			Target hexWire `json:"target"`
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return action.Challenge{Target: v.Target.toHexCoord()}, nil

	case action.KindExplore:
		var v struct {
			Direction string `json:"direction"`
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		dir, err := directionFromWire(v.Direction)
		if err != nil {
			return nil, err
		}
		return action.Explore{Direction: dir}, nil

	case action.KindResolveChoice:
		var v struct {
			ChoiceIndex int `json:"choiceIndex"`
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return action.ResolveChoice{ChoiceIndex: v.ChoiceIndex}, nil

	case action.KindDiscardCard:
		var v struct {
			HandIndex int `json:"handIndex"`
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return action.DiscardCard{HandIndex: v.HandIndex}, nil

	case action.KindEnterSite:
		return action.EnterSite{}, nil

	case action.KindInteractSite:
		var v struct {
			Healing int `json:"healing"`
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return action.InteractSite{Healing: v.Healing}, nil

	case action.KindRecruitUnit:
		var v struct {
			UnitID        ids.UnitID `json:"unitId"`
			OfferIndex    int        `json:"offerIndex"`
			InfluenceCost int        `json:"influenceCost"`
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return action.RecruitUnit{UnitID: v.UnitID, OfferIndex: v.OfferIndex, InfluenceCost: v.InfluenceCost}, nil

	case action.KindActivateTactic:
		return action.ActivateTactic{}, nil

	case action.KindRerollSourceDice:
		var v struct {
			DieIndices []int `json:"dieIndices"`
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return action.RerollSourceDice{DieIndices: v.DieIndices}, nil

	case action.KindAssignAttack:
		var v struct {
			EnemyInstanceID ids.CombatInstanceID `json:"enemyInstanceId"`
			Range           catalog.AttackRange  `json:"range"`
			Element         catalog.Element      `json:"element"`
			Amount          int                  `json:"amount"`
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return action.AssignAttack{EnemyInstanceID: v.EnemyInstanceID, Range: v.Range, Element: v.Element, Amount: v.Amount}, nil

	case action.KindAssignBlock:
		var v struct {
			EnemyInstanceID ids.CombatInstanceID `json:"enemyInstanceId"`
			Element         catalog.Element      `json:"element"`
			Amount          int                  `json:"amount"`
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return action.AssignBlock{EnemyInstanceID: v.EnemyInstanceID, Element: v.Element, Amount: v.Amount}, nil

	case action.KindAutoAssignDefend:
		var v struct {
			EnemyInstanceID ids.CombatInstanceID `json:"enemyInstanceId"`
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return action.AutoAssignDefend{EnemyInstanceID: v.EnemyInstanceID}, nil

	case action.KindEndCombatPhase:
		return action.EndCombatPhase{}, nil

	case action.KindEndTurn:
		return action.EndTurn{}, nil

	case action.KindDeclareRest:
		return action.DeclareRest{}, nil

	case action.KindCompleteRest:
		var v struct {
			DiscardHandIndex *int `json:"discardHandIndex"`
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return action.CompleteRest{DiscardHandIndex: v.DiscardHandIndex}, nil

	case action.KindProposeCooperativeAssault:
		var v struct {
			HexCoord          hexWire     `json:"hexCoord"`
			InvitedPlayerIdxs []int       `json:"invitedPlayerIdxs"`
			Distribution      map[int]int `json:"distribution"`
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return action.ProposeCooperativeAssault{
			HexCoord:          v.HexCoord.toHexCoord(),
			InvitedPlayerIdxs: v.InvitedPlayerIdxs,
			Distribution:      v.Distribution,
		}, nil

	case action.KindRespondToCooperativeProposal:
		var v struct {
			Accept bool `json:"accept"`
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return action.RespondToCooperativeProposal{Accept: v.Accept}, nil

	case action.KindCancelCooperativeProposal:
		return action.CancelCooperativeProposal{}, nil

	case action.KindUndo:
		return action.Undo{}, nil

	default:
		return nil, fmt.Errorf("wire: unknown legal action type %q", env.Type)
	}
}

// setWire is action.Set's wire shape: actions are pre-encoded individually
// since each carries its own "type" discriminator.
type setWire struct {
	Epoch     uint64            `json:"epoch"`
	PlayerIdx int               `json:"playerIdx"`
	Actions   []json.RawMessage `json:"actions"`
}

// MarshalSet encodes a full legal-action set.
func MarshalSet(s action.Set) ([]byte, error) {
	actions := make([]json.RawMessage, len(s.Actions))
	for i, a := range s.Actions {
		encoded, err := MarshalLegalAction(a)
		if err != nil {
			return nil, err
		}
		actions[i] = encoded
	}
	return json.Marshal(setWire{Epoch: s.Epoch, PlayerIdx: s.PlayerIdx, Actions: actions})
}

// UnmarshalSet decodes a full legal-action set.
func UnmarshalSet(data []byte) (action.Set, error) {
	var w setWire
	if err := json.Unmarshal(data, &w); err != nil {
		return action.Set{}, err
	}
	actions := make([]action.LegalAction, len(w.Actions))
	for i, raw := range w.Actions {
		decoded, err := UnmarshalLegalAction(raw)
		if err != nil {
			return action.Set{}, err
		}
		actions[i] = decoded
	}
	return action.Set{Epoch: w.Epoch, PlayerIdx: w.PlayerIdx, Actions: actions}, nil
}
