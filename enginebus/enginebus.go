// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package enginebus publishes turn/combat/effect lifecycle events onto a
// github.com/KirkDiggler/rpg-toolkit/events.EventBus, the way
// rulebooks/dnd5e/combat.TurnManager broadcasts lifecycle events for
// multiplayer observers. The bus is pure observability: nothing in the
// dispatcher or enumerator reads these events back, so a nil bus is valid
// and silently drops every publish.
package enginebus

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/mage-knight-digital/mkengine/catalog"
	"github.com/mage-knight-digital/mkengine/ids"
)

const refModule = "mageknight"

func ref(eventType string) *core.Ref {
	return core.MustNewRef(core.RefInput{Module: refModule, Type: "event", Value: eventType})
}

// Refs for every lifecycle event this package emits, exposed so callers can
// Subscribe directly without constructing the Ref themselves.
var (
	RefTurnStarted     = ref("turn_started")
	RefCardPlayed      = ref("card_played")
	RefCombatEntered   = ref("combat_entered")
	RefChoiceSuspended = ref("choice_suspended")
	RefPhaseAdvanced   = ref("phase_advanced")
	RefRoundEnded      = ref("round_ended")
	RefGameStarted     = ref("game_started")
	RefHeroLoaded      = ref("hero_loaded")
)

// TurnStarted is published when a player's turn begins.
type TurnStarted struct {
	*events.BaseEvent
	Player ids.PlayerID
	Round  uint32
}

// NewTurnStarted constructs a TurnStarted event.
func NewTurnStarted(player ids.PlayerID, round uint32) *TurnStarted {
	return &TurnStarted{BaseEvent: events.NewBaseEvent(RefTurnStarted), Player: player, Round: round}
}

// CardPlayed is published whenever a card resolves (basic, powered, or
// sideways), after the effect queue has drained or suspended.
type CardPlayed struct {
	*events.BaseEvent
	Player ids.PlayerID
	Card   ids.CardID
	Mode   string // "basic", "powered", or "sideways"
}

// NewCardPlayed constructs a CardPlayed event.
func NewCardPlayed(player ids.PlayerID, card ids.CardID, mode string) *CardPlayed {
	return &CardPlayed{BaseEvent: events.NewBaseEvent(RefCardPlayed), Player: player, Card: card, Mode: mode}
}

// CombatEntered is published when a CombatState is installed.
type CombatEntered struct {
	*events.BaseEvent
	Player      ids.PlayerID
	EnemyTokens []ids.EnemyTokenID
}

// NewCombatEntered constructs a CombatEntered event.
func NewCombatEntered(player ids.PlayerID, tokens []ids.EnemyTokenID) *CombatEntered {
	return &CombatEntered{BaseEvent: events.NewBaseEvent(RefCombatEntered), Player: player, EnemyTokens: tokens}
}

// ChoiceSuspended is published when the effect resolver surfaces a pending
// choice and blocks further enumeration until it resolves.
type ChoiceSuspended struct {
	*events.BaseEvent
	Player      ids.PlayerID
	PendingKind string
}

// NewChoiceSuspended constructs a ChoiceSuspended event.
func NewChoiceSuspended(player ids.PlayerID, pendingKind string) *ChoiceSuspended {
	return &ChoiceSuspended{BaseEvent: events.NewBaseEvent(RefChoiceSuspended), Player: player, PendingKind: pendingKind}
}

// PhaseAdvanced is published whenever the combat machine or round phase
// transitions.
type PhaseAdvanced struct {
	*events.BaseEvent
	From string
	To   string
}

// NewPhaseAdvanced constructs a PhaseAdvanced event.
func NewPhaseAdvanced(from, to string) *PhaseAdvanced {
	return &PhaseAdvanced{BaseEvent: events.NewBaseEvent(RefPhaseAdvanced), From: from, To: to}
}

// RoundEnded is published at round transition, before the next round's
// setup mutations run.
type RoundEnded struct {
	*events.BaseEvent
	Round uint32
}

// NewRoundEnded constructs a RoundEnded event.
func NewRoundEnded(round uint32) *RoundEnded {
	return &RoundEnded{BaseEvent: events.NewBaseEvent(RefRoundEnded), Round: round}
}

// GameStarted is published once setup finishes building a ready-to-play
// GameState.
type GameStarted struct {
	*events.BaseEvent
	ScenarioID ids.ScenarioID
	PlayerIDs  []ids.PlayerID
}

// NewGameStarted constructs a GameStarted event.
func NewGameStarted(scenarioID ids.ScenarioID, playerIDs []ids.PlayerID) *GameStarted {
	return &GameStarted{BaseEvent: events.NewBaseEvent(RefGameStarted), ScenarioID: scenarioID, PlayerIDs: playerIDs}
}

// HeroLoaded is published once a player's starting deck, crystals, and
// skills are assembled during setup.
type HeroLoaded struct {
	*events.BaseEvent
	Player ids.PlayerID
	Hero   catalog.Hero
}

// NewHeroLoaded constructs a HeroLoaded event.
func NewHeroLoaded(player ids.PlayerID, hero catalog.Hero) *HeroLoaded {
	return &HeroLoaded{BaseEvent: events.NewBaseEvent(RefHeroLoaded), Player: player, Hero: hero}
}

// Publish sends an event on bus, silently doing nothing if bus is nil.
// Publish errors are observational only and are therefore ignored here —
// callers that need publish failures surfaced should call bus.Publish
// directly.
func Publish(bus events.EventBus, evt events.Event) {
	if bus == nil {
		return
	}
	_ = bus.Publish(evt)
}
