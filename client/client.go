// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package client projects a GameState into the view a single player is
// allowed to see. It hides every other player's hand contents, every
// deck/discard's contents, unrevealed enemy token identities, the dummy
// player's future flip plan, and internal engine state (the PRNG, active
// modifiers) that has no business leaving the engine. Combat enemies are
// hydrated from catalog so a client never needs its own copy of the
// static data tables.
package client

import (
	"github.com/mage-knight-digital/mkengine/catalog"
	"github.com/mage-knight-digital/mkengine/hexcoord"
	"github.com/mage-knight-digital/mkengine/ids"
	"github.com/mage-knight-digital/mkengine/scoring"
	"github.com/mage-knight-digital/mkengine/state"
)

// GameState is the filtered view of state.GameState sent to one player.
type GameState struct {
	Phase           catalog.GamePhase
	RoundPhase      catalog.RoundPhase
	TimeOfDay       catalog.TimeOfDay
	Round           uint32
	CurrentPlayerID ids.PlayerID
	TurnOrder       []ids.PlayerID

	Players []PlayerState

	Map        MapState
	Source     []state.SourceDie
	AAOffer    Offer
	SpellOffer Offer
	UnitOffer  []ids.UnitID
	DeckCounts DeckCounts

	Combat *CombatState

	WoundPileCount       int
	ScenarioEndTriggered bool
	GameEnded            bool
	TotalRounds          int

	DummyPlayer *DummyPlayerState

	// FinalScores is nil until GameEnded; scoring.CalculateFinalScores is a
	// pure function of the finished GameState, so projecting it fresh here
	// needs no field on state.GameState itself.
	FinalScores []scoring.PlayerScore
}

// DeckCounts reports the size of every pile whose contents are hidden.
type DeckCounts struct {
	AAOfferDeck      int
	SpellOfferDeck   int
	UnitDeck         int
	TacticDeck       int
	CountrysideTiles int
	CoreTiles        int
}

// Offer is a face-up card row, public in full, with its replenishing deck
// reduced to a count (see GameState.DeckCounts).
type Offer struct {
	FaceUp []ids.CardID
}

// PlayerState is one player's public view: the hero, board position,
// fame/reputation/level, recruited units and skills are visible to
// everyone. Hand cards are visible in full only to the player the
// projection is being built for; every other player sees a count.
type PlayerState struct {
	ID       ids.PlayerID
	Hero     catalog.Hero
	Position *hexcoord.HexCoord

	Hand         []ids.CardID // nil unless this is the viewing player
	HandCount    int
	DeckCount    int
	DiscardCount int

	Crystals map[catalog.BasicManaColor]int
	PureMana []catalog.ManaColor

	Accumulated state.AccumulatedValues

	Fame       int
	Reputation int
	Level      int

	Units          []state.Unit
	Skills         []ids.SkillID
	SelectedTactic ids.TacticID

	HasActedThisTurn       bool
	TacticFlipped          bool
	RoundOrderTokenFlipped bool
}

// MapState is the revealed board, with every enemy token's identity
// hidden unless the token itself says it's been revealed.
type MapState struct {
	Hexes map[hexcoord.HexCoord]HexState
	Tiles []state.PlacedTile
}

// HexState is one revealed hex's public view.
type HexState struct {
	Terrain catalog.Terrain
	Site    *SiteState
	Enemies []EnemyToken
}

// SiteState hides a garrison's contents behind a count until individual
// tokens are revealed (e.g. by starting an assault against them).
type SiteState struct {
	Type          catalog.SiteType
	IsConquered   bool
	IsBurned      bool
	Owner         *ids.PlayerID
	GarrisonCount int
	Garrison      []EnemyToken // every garrison token; Definition is set only on revealed ones
}

// EnemyToken is one enemy token's public view. Definition is populated
// only when Revealed is true; otherwise a client sees a token exists
// without learning what it is.
type EnemyToken struct {
	TokenID    ids.EnemyTokenID
	Revealed   bool
	Definition *catalog.EnemyDefinition
}

// CombatState is the current combat's public view for every player —
// combat is never private, since any player may be a cooperative-assault
// participant waiting their turn in the queue.
type CombatState struct {
	Phase   catalog.CombatPhase
	Player  ids.PlayerID
	Enemies []CombatEnemy

	Attacks           []state.AttackRecord
	DamageAssignments []state.DamageAssignment
}

// CombatEnemy is one combatant, hydrated with its static definition.
type CombatEnemy struct {
	InstanceID ids.CombatInstanceID
	Definition catalog.EnemyDefinition

	IsDefeated bool
	IsBlocked  bool

	AccumulatedAttack state.ElementalAmounts
	AccumulatedBlock  state.ElementalAmounts
	AttackAssigned    state.ElementalAmounts
	DamageToAssign    int
}

// DummyPlayerState is the solo dummy's public view: its Fame-equivalent
// resources are visible as counts, but its precomputed RoundFlips plan —
// the dummy's future actions this round — stays hidden, since revealing
// it would let a solo player plan around information the physical game
// gives them turn by turn as cards flip.
type DummyPlayerState struct {
	Hero         catalog.Hero
	DeckCount    int
	DiscardCount int
	Crystals     map[catalog.BasicManaColor]int
	FlipIndex    int
}

// ToClientState projects g into the view forPlayerID is allowed to see.
func ToClientState(g *state.GameState, forPlayerID ids.PlayerID) *GameState {
	players := make([]PlayerState, len(g.Players))
	for i, p := range g.Players {
		players[i] = toClientPlayer(p, p.ID == forPlayerID)
	}

	var currentPlayerID ids.PlayerID
	if len(g.Players) > 0 {
		currentPlayerID = g.CurrentPlayer().ID
	}

	return &GameState{
		Phase:           g.Phase,
		RoundPhase:      g.RoundPhase,
		TimeOfDay:       g.TimeOfDay,
		Round:           g.Round,
		CurrentPlayerID: currentPlayerID,
		TurnOrder:       append([]ids.PlayerID(nil), g.TurnOrder...),

		Players: players,

		Map:        toClientMap(g.Map),
		Source:     append([]state.SourceDie(nil), g.Source...),
		AAOffer:    Offer{FaceUp: append([]ids.CardID(nil), g.AAOffer.FaceUp...)},
		SpellOffer: Offer{FaceUp: append([]ids.CardID(nil), g.SpellOffer.FaceUp...)},
		UnitOffer:  append([]ids.UnitID(nil), g.UnitOffer...),
		DeckCounts: DeckCounts{
			AAOfferDeck:      len(g.AAOffer.Deck),
			SpellOfferDeck:   len(g.SpellOffer.Deck),
			UnitDeck:         len(g.UnitDeck),
			TacticDeck:       len(g.TacticDeck),
			CountrysideTiles: len(g.Map.TileDeck.Countryside),
			CoreTiles:        len(g.Map.TileDeck.Core),
		},

		Combat: toClientCombat(g.Combat),

		WoundPileCount:       g.WoundPileCount,
		ScenarioEndTriggered: g.ScenarioEndTriggered,
		GameEnded:            g.GameEnded,
		TotalRounds:          g.ScenarioConfig.TotalRounds,

		DummyPlayer: toClientDummy(g.Dummy),

		FinalScores: finalScores(g),
	}
}

func finalScores(g *state.GameState) []scoring.PlayerScore {
	if !g.GameEnded {
		return nil
	}
	return scoring.CalculateFinalScores(g)
}

func toClientPlayer(p *state.PlayerState, owner bool) PlayerState {
	cp := PlayerState{
		ID:           p.ID,
		Hero:         p.Hero,
		HandCount:    len(p.Hand),
		DeckCount:    len(p.Deck),
		DiscardCount: len(p.Discard),
		Crystals:     crystalCounts(p.Crystals),
		PureMana:     append([]catalog.ManaColor(nil), p.PureMana...),
		Accumulated:  p.Accumulated,
		Fame:         p.Fame,
		Reputation:   p.Reputation,
		Level:        p.Level,
		Units:          append([]state.Unit(nil), p.Units...),
		Skills:         append([]ids.SkillID(nil), p.Skills...),
		SelectedTactic: p.SelectedTactic,

		HasActedThisTurn:       p.Flags.Has(state.FlagHasTakenActionThisTurn),
		TacticFlipped:          p.Flags.Has(state.FlagTacticFlipped),
		RoundOrderTokenFlipped: p.Flags.Has(state.FlagRoundOrderTokenFlipped),
	}
	if p.Position != nil {
		pos := *p.Position
		cp.Position = &pos
	}
	if owner {
		cp.Hand = append([]ids.CardID(nil), p.Hand...)
	}
	return cp
}

func crystalCounts(pool *state.CrystalPool) map[catalog.BasicManaColor]int {
	out := make(map[catalog.BasicManaColor]int, len(catalog.AllBasicColors))
	for _, c := range catalog.AllBasicColors {
		out[c] = pool.Count(c)
	}
	return out
}

func toClientMap(m *state.MapState) MapState {
	out := MapState{
		Hexes: make(map[hexcoord.HexCoord]HexState, len(m.Hexes)),
		Tiles: append([]state.PlacedTile(nil), m.Tiles...),
	}
	for _, hex := range m.SortedHexKeys() {
		out.Hexes[hex] = toClientHex(m.Hexes[hex])
	}
	return out
}

func toClientHex(h *state.HexState) HexState {
	out := HexState{
		Terrain: h.Terrain,
		Enemies: toClientTokens(h.Enemies),
	}
	if h.Site != nil {
		out.Site = toClientSite(h.Site)
	}
	return out
}

func toClientSite(s *state.SiteState) *SiteState {
	out := &SiteState{
		Type:          s.Type,
		IsConquered:   s.IsConquered,
		IsBurned:      s.IsBurned,
		GarrisonCount: len(s.Garrison),
		Garrison:      toClientTokens(s.Garrison),
	}
	if s.Owner != nil {
		owner := *s.Owner
		out.Owner = &owner
	}
	return out
}

func toClientTokens(tokens []state.EnemyToken) []EnemyToken {
	if len(tokens) == 0 {
		return nil
	}
	out := make([]EnemyToken, len(tokens))
	for i, t := range tokens {
		out[i] = EnemyToken{TokenID: t.TokenID, Revealed: t.Revealed}
		if t.Revealed {
			if def, ok := catalog.GetEnemy(t.Definition); ok {
				out[i].Definition = &def
			}
		}
	}
	return out
}

func toClientCombat(c *state.CombatState) *CombatState {
	if c == nil {
		return nil
	}
	out := &CombatState{
		Phase:             c.Phase,
		Player:            c.Player,
		Attacks:           append([]state.AttackRecord(nil), c.Attacks...),
		DamageAssignments: append([]state.DamageAssignment(nil), c.DamageAssignments...),
	}
	out.Enemies = make([]CombatEnemy, len(c.Enemies))
	for i, e := range c.Enemies {
		ce := CombatEnemy{
			InstanceID:        e.InstanceID,
			IsDefeated:        e.IsDefeated,
			IsBlocked:         e.IsBlocked,
			AccumulatedAttack: e.AccumulatedAttack,
			AccumulatedBlock:  e.AccumulatedBlock,
			AttackAssigned:    e.AttackAssigned,
			DamageToAssign:    e.DamageToAssign,
		}
		if def, ok := catalog.GetEnemy(e.EnemyID); ok {
			ce.Definition = def
		}
		out.Enemies[i] = ce
	}
	return out
}

func toClientDummy(d *state.DummyPlayerState) *DummyPlayerState {
	if d == nil {
		return nil
	}
	return &DummyPlayerState{
		Hero:         d.Hero,
		DeckCount:    len(d.Deck),
		DiscardCount: len(d.Discard),
		Crystals:     crystalCounts(d.Crystals),
		FlipIndex:    d.FlipIndex,
	}
}
