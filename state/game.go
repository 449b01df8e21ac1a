// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package state

import (
	"github.com/mage-knight-digital/mkengine/catalog"
	"github.com/mage-knight-digital/mkengine/hexcoord"
	"github.com/mage-knight-digital/mkengine/ids"
	"github.com/mage-knight-digital/mkengine/rng"
)

// EnemyPile is one color's draw/discard stack of enemy tokens.
type EnemyPile struct {
	Draw    []EnemyToken
	Discard []EnemyToken
}

// Clone returns a deep copy.
func (p EnemyPile) Clone() EnemyPile {
	return EnemyPile{
		Draw:    append([]EnemyToken(nil), p.Draw...),
		Discard: append([]EnemyToken(nil), p.Discard...),
	}
}

// SourceDie is one of the six mana source dice, showing a color until
// rerolled.
type SourceDie struct {
	ID    ids.SourceDieID
	Color catalog.ManaColor
}

// DummyCardFlip is one precomputed flip in the solo dummy player's
// per-round plan: the card, whether it's a bonus flip granted by a
// matching crystal rather than one of the turn's three base flips, and
// whether it's the last flip of its turn (the point at which the engine
// should hand control back to the human and move the flipped cards to the
// dummy's discard).
type DummyCardFlip struct {
	Card      ids.CardID
	BonusFlip bool
	EndsTurn  bool
}

// DummyPlayerState is the solo dummy's precomputed state: the hero it
// borrows this game, its dwindling deck, accumulated crystals (gained
// from matching flip colors and end-of-round offer gains), and the
// current round's flip plan (simulated once at round start so no live
// RNG draw happens on the dummy's turn).
type DummyPlayerState struct {
	Hero       catalog.Hero
	Deck       []ids.CardID
	Discard    []ids.CardID
	Crystals   *CrystalPool
	RoundFlips []DummyCardFlip
	FlipIndex  int
}

// Clone returns a deep copy.
func (d *DummyPlayerState) Clone() *DummyPlayerState {
	if d == nil {
		return nil
	}
	out := *d
	out.Deck = append([]ids.CardID(nil), d.Deck...)
	out.Discard = append([]ids.CardID(nil), d.Discard...)
	out.Crystals = d.Crystals.Clone()
	out.RoundFlips = append([]DummyCardFlip(nil), d.RoundFlips...)
	return &out
}

// GameState is the engine's entire root: every player, the map, the three
// shared decks/offers, six enemy token piles, the current round/phase, and
// (solo only) the dummy player. GameState.Clone is the undo stack's entire
// contract — every reachable substructure must have a matching Clone.
type GameState struct {
	Players    []*PlayerState
	TurnOrder  []ids.PlayerID
	CurrentPlayerIndex int

	Phase      catalog.GamePhase
	RoundPhase catalog.RoundPhase
	Round      uint32
	TimeOfDay  catalog.TimeOfDay

	Map *MapState

	Source []SourceDie

	AAOffer    catalog.Offer
	SpellOffer catalog.Offer
	UnitOffer  []ids.UnitID
	UnitDeck   []ids.UnitID

	TacticDeck []ids.TacticID

	WoundPileCount int

	EnemyPiles map[catalog.EnemyColor]EnemyPile

	Combat *CombatState

	// PendingCooperativeAssault is non-nil while a multi-player garrison
	// assault proposal awaits invitee responses. CoopQueue holds accepted
	// participants still owed their combat once the current one ends.
	PendingCooperativeAssault *CooperativeProposal
	CoopQueue                 []CoopAssignment
	// CoopCityHex names the city hex a cooperative assault's queued combats
	// target, since a coop participant fights from their own adjacent hex
	// rather than standing on the city itself — resolveCombatEnd falls back
	// to the fighting player's own position when this is nil.
	CoopCityHex *hexcoord.HexCoord
	// CoopProposerID is credited with the city's conquest once every
	// participant's combat in the batch ends with their subset fully
	// defeated — the board game doesn't specify which of several joint
	// conquerors owns the resulting site, so this port assigns it to
	// whoever proposed the assault (see DESIGN.md).
	CoopProposerID ids.PlayerID
	// CoopAllDefeated starts true at an assault's resolution and is ANDed
	// with each participant's own allDefeated result as their combat ends;
	// the city only conquers once the whole batch finishes with this still
	// true.
	CoopAllDefeated bool

	// ChallengeHex names the open-ground hex a Challenge action's combat
	// targets, since the challenging player never moves onto it — without
	// this, resolveCombatEnd would have no hex to clear defeated enemies
	// from (it can't assume the fighting player's own position the way
	// site combat does).
	ChallengeHex *hexcoord.HexCoord

	ScenarioConfig        catalog.ScenarioConfig
	ScenarioEndTriggered  bool
	GameEnded             bool

	Dummy *DummyPlayerState

	RNG rng.State

	// ActionEpoch increases strictly on every state-mutating apply,
	// rejecting any action built against a stale snapshot.
	ActionEpoch uint64
}

// PlayerByID finds a player by ID.
func (g *GameState) PlayerByID(id ids.PlayerID) (*PlayerState, bool) {
	for _, p := range g.Players {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// CurrentPlayer returns the player whose slot CurrentPlayerIndex names.
func (g *GameState) CurrentPlayer() *PlayerState {
	return g.Players[g.CurrentPlayerIndex]
}

// IsActivePlayer reports whether id is the player whose normal turn it
// currently is (ignoring cooperative-assault invitations, which the
// coop package layers on top of this base check).
func (g *GameState) IsActivePlayer(id ids.PlayerID) bool {
	return g.CurrentPlayer().ID == id
}

// Clone returns a complete deep copy of the game — the sole primitive the
// undo stack relies on.
func (g *GameState) Clone() *GameState {
	out := *g

	out.Players = make([]*PlayerState, len(g.Players))
	for i, p := range g.Players {
		out.Players[i] = p.Clone()
	}
	out.TurnOrder = append([]ids.PlayerID(nil), g.TurnOrder...)

	out.Map = g.Map.Clone()

	out.Source = append([]SourceDie(nil), g.Source...)

	out.UnitOffer = append([]ids.UnitID(nil), g.UnitOffer...)
	out.UnitDeck = append([]ids.UnitID(nil), g.UnitDeck...)
	out.TacticDeck = append([]ids.TacticID(nil), g.TacticDeck...)

	out.AAOffer = catalog.Offer{
		FaceUp: append([]ids.CardID(nil), g.AAOffer.FaceUp...),
		Deck:   append([]ids.CardID(nil), g.AAOffer.Deck...),
	}
	out.SpellOffer = catalog.Offer{
		FaceUp: append([]ids.CardID(nil), g.SpellOffer.FaceUp...),
		Deck:   append([]ids.CardID(nil), g.SpellOffer.Deck...),
	}

	out.EnemyPiles = make(map[catalog.EnemyColor]EnemyPile, len(g.EnemyPiles))
	for k, v := range g.EnemyPiles {
		out.EnemyPiles[k] = v.Clone()
	}

	if g.Combat != nil {
		out.Combat = g.Combat.Clone()
	}

	out.Dummy = g.Dummy.Clone()

	out.PendingCooperativeAssault = g.PendingCooperativeAssault.Clone()
	out.CoopQueue = make([]CoopAssignment, len(g.CoopQueue))
	for i, a := range g.CoopQueue {
		out.CoopQueue[i] = a.Clone()
	}
	if g.CoopCityHex != nil {
		hex := *g.CoopCityHex
		out.CoopCityHex = &hex
	}
	if g.ChallengeHex != nil {
		hex := *g.ChallengeHex
		out.ChallengeHex = &hex
	}

	return &out
}
