// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package action enumerates every legal action available to a player in
// the current GameState, per spec.md §4.5. LegalAction is the sole input
// vocabulary the dispatch package accepts; every value EnumerateLegalActions
// produces is guaranteed (by construction) to apply successfully.
package action

import (
	"github.com/mage-knight-digital/mkengine/catalog"
	"github.com/mage-knight-digital/mkengine/hexcoord"
	"github.com/mage-knight-digital/mkengine/ids"
)

// Kind is the wire-facing discriminator for a LegalAction's concrete type.
type Kind string

// Legal action kinds, grouped in the enumerator's category order.
const (
	KindSelectTactic       Kind = "select_tactic"
	KindPlayCardBasic      Kind = "play_card_basic"
	KindPlayCardPowered    Kind = "play_card_powered"
	KindPlayCardSideways   Kind = "play_card_sideways"
	KindMove               Kind = "move"
	KindChallenge          Kind = "challenge"
	KindExplore            Kind = "explore"
	KindResolveChoice      Kind = "resolve_choice"
	KindDiscardCard        Kind = "discard_card"
	KindEnterSite          Kind = "enter_site"
	KindInteractSite       Kind = "interact_site"
	KindRecruitUnit        Kind = "recruit_unit"
	KindActivateTactic     Kind = "activate_tactic"
	KindRerollSourceDice   Kind = "reroll_source_dice"
	KindAssignAttack       Kind = "assign_attack"
	KindAssignBlock        Kind = "assign_block"
	KindAutoAssignDefend   Kind = "auto_assign_defend"
	KindEndCombatPhase     Kind = "end_combat_phase"
	KindEndTurn            Kind = "end_turn"
	KindDeclareRest                  Kind = "declare_rest"
	KindCompleteRest                 Kind = "complete_rest"
	KindProposeCooperativeAssault    Kind = "propose_cooperative_assault"
	KindRespondToCooperativeProposal Kind = "respond_to_cooperative_proposal"
	KindCancelCooperativeProposal    Kind = "cancel_cooperative_proposal"
	KindUndo                         Kind = "undo"
)

// LegalAction is any concrete action value the enumerator can produce.
type LegalAction interface {
	ActionKind() Kind
}

// SelectTactic picks a tactic card during the TacticsSelection round phase.
type SelectTactic struct{ TacticID ids.TacticID }

func (SelectTactic) ActionKind() Kind { return KindSelectTactic }

// PlayCardBasic plays the card at HandIndex for its basic effect.
type PlayCardBasic struct {
	HandIndex int
	CardID    ids.CardID
}

func (PlayCardBasic) ActionKind() Kind { return KindPlayCardBasic }

// PlayCardPowered plays the card at HandIndex for its powered effect,
// spending one ManaColor to pay for it.
type PlayCardPowered struct {
	HandIndex int
	CardID    ids.CardID
	ManaColor catalog.BasicManaColor
}

func (PlayCardPowered) ActionKind() Kind { return KindPlayCardPowered }

// PlayCardSideways plays the card at HandIndex rotated, contributing a
// fixed value toward one of the four accumulators instead of its printed
// effect.
type PlayCardSideways struct {
	HandIndex  int
	CardID     ids.CardID
	SidewaysAs catalog.SidewaysAs
}

func (PlayCardSideways) ActionKind() Kind { return KindPlayCardSideways }

// Move relocates the player onto an adjacent hex at the given cost.
type Move struct {
	Target hexcoord.HexCoord
	Cost   int
}

func (Move) ActionKind() Kind { return KindMove }

// Challenge provokes combat against the rampaging enemy standing on Target,
// an open-ground hex adjacent to the player. Unlike Move, the player never
// steps onto Target — win or lose, they stay where they started; only a
// defeated enemy's removal makes Target itself enterable afterward.
type Challenge struct {
	Target hexcoord.HexCoord
}

func (Challenge) ActionKind() Kind { return KindChallenge }

// Explore places the next tile adjacent to the player's current tile in
// Direction.
type Explore struct{ Direction hexcoord.Direction }

func (Explore) ActionKind() Kind { return KindExplore }

// ResolveChoice picks option ChoiceIndex of the current Choice pending.
type ResolveChoice struct{ ChoiceIndex int }

func (ResolveChoice) ActionKind() Kind { return KindResolveChoice }

// DiscardCard discards the card at HandIndex to satisfy a DiscardPending.
type DiscardCard struct{ HandIndex int }

func (DiscardCard) ActionKind() Kind { return KindDiscardCard }

// EnterSite begins combat (or, for non-combat sites, interaction) with the
// site on the player's current hex.
type EnterSite struct{}

func (EnterSite) ActionKind() Kind { return KindEnterSite }

// InteractSite performs one healing-point interaction at a non-combat site
// (monastery, village) — Healing names how many points this instance heals.
type InteractSite struct{ Healing int }

func (InteractSite) ActionKind() Kind { return KindInteractSite }

// RecruitUnit recruits the unit at OfferIndex of the current site's unit
// offer for InfluenceCost influence.
type RecruitUnit struct {
	UnitID        ids.UnitID
	OfferIndex    int
	InfluenceCost int
}

func (RecruitUnit) ActionKind() Kind { return KindRecruitUnit }

// ActivateTactic activates the player's selected tactic's ability.
type ActivateTactic struct{}

func (ActivateTactic) ActionKind() Kind { return KindActivateTactic }

// RerollSourceDice rerolls the Source dice at DieIndices (Mana Search:
// size 1 or 2 subsets).
type RerollSourceDice struct{ DieIndices []int }

func (RerollSourceDice) ActionKind() Kind { return KindRerollSourceDice }

// AssignAttack commits Amount points of Element attack from the Range pool
// toward EnemyInstanceID.
type AssignAttack struct {
	EnemyInstanceID ids.CombatInstanceID
	Range           catalog.AttackRange
	Element         catalog.Element
	Amount          int
}

func (AssignAttack) ActionKind() Kind { return KindAssignAttack }

// AssignBlock commits Amount points of Element block toward EnemyInstanceID.
type AssignBlock struct {
	EnemyInstanceID ids.CombatInstanceID
	Element         catalog.Element
	Amount          int
}

func (AssignBlock) ActionKind() Kind { return KindAssignBlock }

// AutoAssignDefend taps ready units to cover EnemyInstanceID's unblocked
// attack automatically, the dispatcher's convenience alternative to a
// manual AssignBlock sequence.
type AutoAssignDefend struct{ EnemyInstanceID ids.CombatInstanceID }

func (AutoAssignDefend) ActionKind() Kind { return KindAutoAssignDefend }

// EndCombatPhase advances the combat state machine to its next phase.
type EndCombatPhase struct{}

func (EndCombatPhase) ActionKind() Kind { return KindEndCombatPhase }

// EndTurn ends the active player's normal turn.
type EndTurn struct{}

func (EndTurn) ActionKind() Kind { return KindEndTurn }

// DeclareRest begins the resting process for the active player's turn.
type DeclareRest struct{}

func (DeclareRest) ActionKind() Kind { return KindDeclareRest }

// CompleteRest finishes a declared rest, discarding the card at
// DiscardHandIndex (nil for the empty-hand edge case).
type CompleteRest struct{ DiscardHandIndex *int }

func (CompleteRest) ActionKind() Kind { return KindCompleteRest }

// ProposeCooperativeAssault invites InvitedPlayerIdxs to jointly assault
// the unconquered city at HexCoord, splitting its garrison per
// Distribution (keyed by player index, proposer included).
type ProposeCooperativeAssault struct {
	HexCoord          hexcoord.HexCoord
	InvitedPlayerIdxs []int
	Distribution      map[int]int
}

func (ProposeCooperativeAssault) ActionKind() Kind { return KindProposeCooperativeAssault }

// RespondToCooperativeProposal accepts or declines the pending invitation
// extended to the responding player.
type RespondToCooperativeProposal struct{ Accept bool }

func (RespondToCooperativeProposal) ActionKind() Kind { return KindRespondToCooperativeProposal }

// CancelCooperativeProposal withdraws the proposer's own pending proposal.
type CancelCooperativeProposal struct{}

func (CancelCooperativeProposal) ActionKind() Kind { return KindCancelCooperativeProposal }

// Undo reverts to the most recent undo-stack snapshot.
type Undo struct{}

func (Undo) ActionKind() Kind { return KindUndo }

// Set is the enumerator's complete, ordered output for one player at one
// state version.
type Set struct {
	Epoch     uint64
	PlayerIdx int
	Actions   []LegalAction
}
