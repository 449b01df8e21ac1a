// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package wire

import (
	"encoding/json"

	"github.com/mage-knight-digital/mkengine/catalog"
	"github.com/mage-knight-digital/mkengine/client"
	"github.com/mage-knight-digital/mkengine/hexcoord"
	"github.com/mage-knight-digital/mkengine/ids"
	"github.com/mage-knight-digital/mkengine/scoring"
	"github.com/mage-knight-digital/mkengine/state"
)

type gameStateWire struct {
	Phase           catalog.GamePhase `json:"phase"`
	RoundPhase      catalog.RoundPhase `json:"roundPhase"`
	TimeOfDay       catalog.TimeOfDay `json:"timeOfDay"`
	Round           uint32            `json:"round"`
	CurrentPlayerID ids.PlayerID      `json:"currentPlayerId"`
	TurnOrder       []ids.PlayerID    `json:"turnOrder"`

	Players []playerStateWire `json:"players"`

	Map        mapStateWire    `json:"map"`
	Source     []sourceDieWire `json:"source"`
	AAOffer    offerWire       `json:"aaOffer"`
	SpellOffer offerWire       `json:"spellOffer"`
	UnitOffer  []ids.UnitID    `json:"unitOffer"`
	DeckCounts deckCountsWire  `json:"deckCounts"`

	Combat *combatStateWire `json:"combat"`

	WoundPileCount       int  `json:"woundPileCount"`
	ScenarioEndTriggered bool `json:"scenarioEndTriggered"`
	GameEnded            bool `json:"gameEnded"`
	TotalRounds          int  `json:"totalRounds"`

	DummyPlayer *dummyPlayerStateWire `json:"dummyPlayer"`

	FinalScores []playerScoreWire `json:"finalScores,omitempty"`
}

type playerScoreWire struct {
	PlayerID     ids.PlayerID   `json:"playerId"`
	BaseScore    int            `json:"baseScore"`
	Achievements map[string]int `json:"achievements"`
	Total        int            `json:"total"`
	Rank         int            `json:"rank"`
}

type mapStateWire struct {
	Hexes json.RawMessage  `json:"hexes"`
	Tiles []placedTileWire `json:"tiles"`
}

type deckCountsWire struct {
	AAOfferDeck      int `json:"aaOfferDeck"`
	SpellOfferDeck   int `json:"spellOfferDeck"`
	UnitDeck         int `json:"unitDeck"`
	TacticDeck       int `json:"tacticDeck"`
	CountrysideTiles int `json:"countrysideTiles"`
	CoreTiles        int `json:"coreTiles"`
}

type offerWire struct {
	FaceUp []ids.CardID `json:"faceUp"`
}

type sourceDieWire struct {
	ID    ids.SourceDieID  `json:"id"`
	Color catalog.ManaColor `json:"color"`
}

type playerStateWire struct {
	ID       ids.PlayerID   `json:"id"`
	Hero     catalog.Hero   `json:"hero"`
	Position *hexWire       `json:"position"`

	Hand         []ids.CardID `json:"hand,omitempty"`
	HandCount    int          `json:"handCount"`
	DeckCount    int          `json:"deckCount"`
	DiscardCount int          `json:"discardCount"`

	Crystals map[catalog.BasicManaColor]int `json:"crystals"`
	PureMana []catalog.ManaColor            `json:"pureMana"`

	Accumulated accumulatedValuesWire `json:"accumulated"`

	Fame       int `json:"fame"`
	Reputation int `json:"reputation"`
	Level      int `json:"level"`

	Units          []unitWire     `json:"units"`
	Skills         []ids.SkillID  `json:"skills"`
	SelectedTactic ids.TacticID   `json:"selectedTactic"`

	HasActedThisTurn       bool `json:"hasActedThisTurn"`
	TacticFlipped          bool `json:"tacticFlipped"`
	RoundOrderTokenFlipped bool `json:"roundOrderTokenFlipped"`
}

type unitWire struct {
	InstanceID ids.UnitInstanceID `json:"instanceId"`
	Definition ids.UnitID         `json:"definition"`
	State      catalog.UnitState  `json:"state"`
	Wounds     int                `json:"wounds"`
}

type elementalAmountsWire struct {
	Physical int `json:"physical"`
	Fire     int `json:"fire"`
	Ice      int `json:"ice"`
	ColdFire int `json:"coldFire"`
}

type accumulatedValuesWire struct {
	Move      int `json:"move"`
	Influence int `json:"influence"`

	MeleeAttack  elementalAmountsWire `json:"meleeAttack"`
	RangedAttack elementalAmountsWire `json:"rangedAttack"`
	SiegeAttack  elementalAmountsWire `json:"siegeAttack"`

	Block elementalAmountsWire `json:"block"`
}

type hexStateWire struct {
	Hex     hexWire             `json:"hex"`
	Terrain catalog.Terrain     `json:"terrain"`
	Site    *siteStateWire      `json:"site"`
	Enemies []enemyTokenWire    `json:"enemies"`
}

type siteStateWire struct {
	Type          catalog.SiteType `json:"type"`
	IsConquered   bool             `json:"isConquered"`
	IsBurned      bool             `json:"isBurned"`
	Owner         *ids.PlayerID    `json:"owner"`
	GarrisonCount int              `json:"garrisonCount"`
	Garrison      []enemyTokenWire `json:"garrison"`
}

type enemyTokenWire struct {
	TokenID    ids.EnemyTokenID         `json:"tokenId"`
	Revealed   bool                     `json:"revealed"`
	Definition *catalog.EnemyDefinition `json:"definition"`
}

type placedTileWire struct {
	Center   hexWire    `json:"center"`
	TileID   ids.TileID `json:"tileId"`
	Rotation int        `json:"rotation"`
}

type combatStateWire struct {
	Phase   catalog.CombatPhase `json:"phase"`
	Player  ids.PlayerID        `json:"player"`
	Enemies []combatEnemyWire   `json:"enemies"`

	Attacks           []attackRecordWire     `json:"attacks"`
	DamageAssignments []damageAssignmentWire `json:"damageAssignments"`
}

type combatEnemyWire struct {
	InstanceID ids.CombatInstanceID   `json:"instanceId"`
	Definition catalog.EnemyDefinition `json:"definition"`

	IsDefeated bool `json:"isDefeated"`
	IsBlocked  bool `json:"isBlocked"`

	AccumulatedAttack elementalAmountsWire `json:"accumulatedAttack"`
	AccumulatedBlock  elementalAmountsWire `json:"accumulatedBlock"`
	AttackAssigned    elementalAmountsWire `json:"attackAssigned"`
	DamageToAssign    int                  `json:"damageToAssign"`
}

type attackRecordWire struct {
	Element catalog.Element     `json:"element"`
	Range   catalog.AttackRange `json:"range"`
	Amount  int                 `json:"amount"`
}

type damageAssignmentWire struct {
	EnemyInstanceID ids.CombatInstanceID          `json:"enemyInstanceId"`
	ToHero          int                           `json:"toHero"`
	ToUnits         map[ids.UnitInstanceID]int    `json:"toUnits"`
}

type dummyPlayerStateWire struct {
	Hero         catalog.Hero                    `json:"hero"`
	DeckCount    int                             `json:"deckCount"`
	DiscardCount int                             `json:"discardCount"`
	Crystals     map[catalog.BasicManaColor]int  `json:"crystals"`
	FlipIndex    int                             `json:"flipIndex"`
}

// MarshalClientState encodes a client-visible game state to camelCase JSON,
// rendering the hex-coordinate-keyed map as a (q, r)-sorted array since a
// struct map key has no direct JSON object representation.
func MarshalClientState(cs *client.GameState) ([]byte, error) {
	hexesData, err := marshalHexKeyedMap(cs.Map.Hexes, func(h hexcoord.HexCoord, hs client.HexState) any {
		return toHexStateWire(h, hs)
	})
	if err != nil {
		return nil, err
	}
	tiles := make([]placedTileWire, len(cs.Map.Tiles))
	for i, t := range cs.Map.Tiles {
		tiles[i] = placedTileWire{Center: toHexWire(t.Center), TileID: t.TileID, Rotation: t.Rotation}
	}

	w := gameStateWire{
		Phase:           cs.Phase,
		RoundPhase:      cs.RoundPhase,
		TimeOfDay:       cs.TimeOfDay,
		Round:           cs.Round,
		CurrentPlayerID: cs.CurrentPlayerID,
		TurnOrder:       cs.TurnOrder,

		Map:        mapStateWire{Hexes: hexesData, Tiles: tiles},
		Source:     toSourceWire(cs.Source),
		AAOffer:    offerWire{FaceUp: cs.AAOffer.FaceUp},
		SpellOffer: offerWire{FaceUp: cs.SpellOffer.FaceUp},
		UnitOffer:  cs.UnitOffer,
		DeckCounts: deckCountsWire{
			AAOfferDeck:      cs.DeckCounts.AAOfferDeck,
			SpellOfferDeck:   cs.DeckCounts.SpellOfferDeck,
			UnitDeck:         cs.DeckCounts.UnitDeck,
			TacticDeck:       cs.DeckCounts.TacticDeck,
			CountrysideTiles: cs.DeckCounts.CountrysideTiles,
			CoreTiles:        cs.DeckCounts.CoreTiles,
		},

		Combat: toCombatStateWire(cs.Combat),

		WoundPileCount:       cs.WoundPileCount,
		ScenarioEndTriggered: cs.ScenarioEndTriggered,
		GameEnded:            cs.GameEnded,
		TotalRounds:          cs.TotalRounds,

		DummyPlayer: toDummyPlayerWire(cs.DummyPlayer),

		FinalScores: toFinalScoresWire(cs.FinalScores),
	}

	w.Players = make([]playerStateWire, len(cs.Players))
	for i, p := range cs.Players {
		w.Players[i] = toPlayerStateWire(p)
	}

	return json.Marshal(w)
}

func toFinalScoresWire(scores []scoring.PlayerScore) []playerScoreWire {
	if scores == nil {
		return nil
	}
	out := make([]playerScoreWire, len(scores))
	for i, s := range scores {
		achievements := make(map[string]int, len(s.Achievements))
		for a, bonus := range s.Achievements {
			achievements[string(a)] = bonus
		}
		out[i] = playerScoreWire{
			PlayerID:     s.PlayerID,
			BaseScore:    s.BaseScore,
			Achievements: achievements,
			Total:        s.Total,
			Rank:         s.Rank,
		}
	}
	return out
}

func toSourceWire(dice []state.SourceDie) []sourceDieWire {
	out := make([]sourceDieWire, len(dice))
	for i, d := range dice {
		out[i] = sourceDieWire{ID: d.ID, Color: d.Color}
	}
	return out
}

func toPlayerStateWire(p client.PlayerState) playerStateWire {
	w := playerStateWire{
		ID:                     p.ID,
		Hero:                   p.Hero,
		Hand:                   p.Hand,
		HandCount:              p.HandCount,
		DeckCount:              p.DeckCount,
		DiscardCount:           p.DiscardCount,
		Crystals:               p.Crystals,
		PureMana:               p.PureMana,
		Accumulated:            toAccumulatedWire(p.Accumulated),
		Fame:                   p.Fame,
		Reputation:             p.Reputation,
		Level:                  p.Level,
		Skills:                 p.Skills,
		SelectedTactic:         p.SelectedTactic,
		HasActedThisTurn:       p.HasActedThisTurn,
		TacticFlipped:          p.TacticFlipped,
		RoundOrderTokenFlipped: p.RoundOrderTokenFlipped,
	}
	if p.Position != nil {
		hw := toHexWire(*p.Position)
		w.Position = &hw
	}
	w.Units = make([]unitWire, len(p.Units))
	for i, u := range p.Units {
		w.Units[i] = unitWire{InstanceID: u.InstanceID, Definition: u.Definition, State: u.State, Wounds: u.Wounds}
	}
	return w
}

func toElementalWire(a state.ElementalAmounts) elementalAmountsWire {
	return elementalAmountsWire{Physical: a.Physical, Fire: a.Fire, Ice: a.Ice, ColdFire: a.ColdFire}
}

func toAccumulatedWire(a state.AccumulatedValues) accumulatedValuesWire {
	return accumulatedValuesWire{
		Move:         a.Move,
		Influence:    a.Influence,
		MeleeAttack:  toElementalWire(a.MeleeAttack),
		RangedAttack: toElementalWire(a.RangedAttack),
		SiegeAttack:  toElementalWire(a.SiegeAttack),
		Block:        toElementalWire(a.Block),
	}
}

func toHexStateWire(h hexcoord.HexCoord, hs client.HexState) hexStateWire {
	w := hexStateWire{
		Hex:     toHexWire(h),
		Terrain: hs.Terrain,
		Enemies: toEnemyTokensWire(hs.Enemies),
	}
	if hs.Site != nil {
		w.Site = &siteStateWire{
			Type:          hs.Site.Type,
			IsConquered:   hs.Site.IsConquered,
			IsBurned:      hs.Site.IsBurned,
			Owner:         hs.Site.Owner,
			GarrisonCount: hs.Site.GarrisonCount,
			Garrison:      toEnemyTokensWire(hs.Site.Garrison),
		}
	}
	return w
}

func toEnemyTokensWire(tokens []client.EnemyToken) []enemyTokenWire {
	out := make([]enemyTokenWire, len(tokens))
	for i, t := range tokens {
		out[i] = enemyTokenWire{TokenID: t.TokenID, Revealed: t.Revealed, Definition: t.Definition}
	}
	return out
}

func toCombatStateWire(c *client.CombatState) *combatStateWire {
	if c == nil {
		return nil
	}
	w := &combatStateWire{
		Phase:  c.Phase,
		Player: c.Player,
	}
	w.Enemies = make([]combatEnemyWire, len(c.Enemies))
	for i, e := range c.Enemies {
		w.Enemies[i] = combatEnemyWire{
			InstanceID:        e.InstanceID,
			Definition:        e.Definition,
			IsDefeated:        e.IsDefeated,
			IsBlocked:         e.IsBlocked,
			AccumulatedAttack: toElementalWire(e.AccumulatedAttack),
			AccumulatedBlock:  toElementalWire(e.AccumulatedBlock),
			AttackAssigned:    toElementalWire(e.AttackAssigned),
			DamageToAssign:    e.DamageToAssign,
		}
	}
	w.Attacks = make([]attackRecordWire, len(c.Attacks))
	for i, a := range c.Attacks {
		w.Attacks[i] = attackRecordWire{Element: a.Element, Range: a.Range, Amount: a.Amount}
	}
	w.DamageAssignments = make([]damageAssignmentWire, len(c.DamageAssignments))
	for i, d := range c.DamageAssignments {
		w.DamageAssignments[i] = damageAssignmentWire{EnemyInstanceID: d.EnemyInstanceID, ToHero: d.ToHero, ToUnits: d.ToUnits}
	}
	return w
}

func toDummyPlayerWire(d *client.DummyPlayerState) *dummyPlayerStateWire {
	if d == nil {
		return nil
	}
	return &dummyPlayerStateWire{
		Hero:         d.Hero,
		DeckCount:    d.DeckCount,
		DiscardCount: d.DiscardCount,
		Crystals:     d.Crystals,
		FlipIndex:    d.FlipIndex,
	}
}
