// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package dispatch implements apply_legal_action: the single entry point
// that turns one action.LegalAction into a GameState mutation. Every value
// the dispatcher accepts must have come from action.EnumerateLegalActions
// against the same epoch — Apply re-checks epoch, phase, and active-player
// preconditions defensively, but the enumerator's guarantee is what keeps
// those checks from ever actually firing in a well-behaved caller.
package dispatch

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/mage-knight-digital/mkengine/action"
	"github.com/mage-knight-digital/mkengine/catalog"
	"github.com/mage-knight-digital/mkengine/effect"
	"github.com/mage-knight-digital/mkengine/mkerr"
	"github.com/mage-knight-digital/mkengine/state"
	"github.com/mage-knight-digital/mkengine/undo"
)

// ApplyResult summarizes what happened after one action applied, beyond the
// raw GameState mutation: whether a pending resolution now blocks further
// play, and which higher-level boundaries (combat, turn, round, game) were
// crossed. A caller re-enumerates legal actions after every Apply regardless
// of ApplyResult's contents; ApplyResult only exists to save it from having
// to diff two GameState snapshots to notice a boundary crossing.
type ApplyResult struct {
	PendingKind   state.PendingKind
	CombatStarted bool
	CombatEnded   bool
	TurnEnded     bool
	RoundEnded    bool
	GameEnded     bool
	Undone        bool
}

// Dispatcher applies legal actions against a GameState, draining the effect
// queue through Resolver and publishing lifecycle events onto Bus (nil is
// valid, see enginebus.Publish).
type Dispatcher struct {
	Resolver *effect.Resolver
	Bus      events.EventBus
}

// New returns a Dispatcher publishing onto bus.
func New(bus events.EventBus) *Dispatcher {
	return &Dispatcher{Resolver: effect.NewResolver(bus), Bus: bus}
}

// Apply validates act against g's current epoch/phase/active-player and, if
// legal, mutates g in place, pushing undo snapshots onto u according to
// act's reversibility (spec.md §4.6, §4.10).
func (d *Dispatcher) Apply(ctx context.Context, g *state.GameState, u *undo.Stack, playerIdx int, act action.LegalAction, epoch uint64) (ApplyResult, error) {
	if epoch != g.ActionEpoch {
		return ApplyResult{}, mkerr.EpochMismatch(epoch, g.ActionEpoch)
	}
	if playerIdx < 0 || playerIdx >= len(g.Players) {
		return ApplyResult{}, mkerr.IllegalAction("player index out of range")
	}
	if g.Phase != catalog.PhaseRound || g.GameEnded {
		return ApplyResult{}, mkerr.WrongPhase("game is not accepting actions")
	}

	if _, ok := act.(action.Undo); ok {
		return d.applyUndo(g, u)
	}

	player := g.Players[playerIdx]

	if resp, ok := act.(action.RespondToCooperativeProposal); ok {
		return d.applyCooperativeResponse(g, u, playerIdx, resp)
	}

	// A cooperative-assault participant owns g.Combat for the duration of
	// their queued combat regardless of whose normal turn it is.
	if g.Combat != nil && g.Combat.Player == player.ID && !g.IsActivePlayer(player.ID) {
		return d.applyCombat(ctx, g, u, player, act)
	}

	if !g.IsActivePlayer(player.ID) {
		return ApplyResult{}, mkerr.WrongPlayer(playerIdx)
	}

	if g.RoundPhase == catalog.RoundTacticsSelection {
		return d.applyTacticsSelection(g, u, player, act)
	}

	if player.Pending.Active != nil {
		return d.applyPending(ctx, g, u, player, act)
	}

	if g.Combat != nil && g.Combat.Player == player.ID {
		return d.applyCombat(ctx, g, u, player, act)
	}

	return d.applyNormalTurn(ctx, g, u, player, act)
}

// applyUndo installs the most recent undo snapshot in place of g's current
// contents. Undo itself never swaps the caller's *GameState pointer, so the
// dispatcher copies the snapshot's fields over g rather than handing the
// snapshot back for the caller to juggle.
func (d *Dispatcher) applyUndo(g *state.GameState, u *undo.Stack) (ApplyResult, error) {
	snap, ok := u.Undo()
	if !ok {
		return ApplyResult{}, mkerr.IllegalAction("nothing to undo")
	}
	*g = *snap
	return ApplyResult{Undone: true}, nil
}

// applyPending handles the two resolvable ActivePending kinds; every other
// kind rejects every action but Undo, since the enumerator emits nothing
// else for an UnsupportedPending.
func (d *Dispatcher) applyPending(ctx context.Context, g *state.GameState, u *undo.Stack, player *state.PlayerState, act action.LegalAction) (ApplyResult, error) {
	switch a := act.(type) {
	case action.ResolveChoice:
		return d.applyResolveChoice(ctx, g, u, player, a)
	case action.DiscardCard:
		return d.applyDiscardCard(ctx, g, u, player, a)
	default:
		return ApplyResult{}, mkerr.IllegalAction("a pending resolution blocks every action but discard/choice/undo")
	}
}

func (d *Dispatcher) applyResolveChoice(ctx context.Context, g *state.GameState, u *undo.Stack, player *state.PlayerState, rc action.ResolveChoice) (ApplyResult, error) {
	pending, ok := player.Pending.Active.(state.ChoicePending)
	if !ok {
		return ApplyResult{}, mkerr.IllegalAction("no active choice pending")
	}
	if rc.ChoiceIndex < 0 || rc.ChoiceIndex >= len(pending.Options) {
		return ApplyResult{}, mkerr.IllegalAction("choice index out of range")
	}

	u.Save(g)
	chosen := pending.Options[rc.ChoiceIndex]
	player.Pending.Active = nil

	outcome, err := d.Resolver.Resume(ctx, g, player, chosen, pending.Continuation)
	if err != nil {
		return ApplyResult{}, err
	}
	g.ActionEpoch++
	if !outcome.Complete {
		return ApplyResult{PendingKind: outcome.PendingKind}, nil
	}
	return ApplyResult{}, nil
}

func (d *Dispatcher) applyDiscardCard(ctx context.Context, g *state.GameState, u *undo.Stack, player *state.PlayerState, dc action.DiscardCard) (ApplyResult, error) {
	pending, ok := player.Pending.Active.(state.DiscardPending)
	if !ok {
		return ApplyResult{}, mkerr.IllegalAction("no active discard pending")
	}
	if dc.HandIndex < 0 || dc.HandIndex >= len(player.Hand) {
		return ApplyResult{}, mkerr.IllegalAction("hand index out of range")
	}
	cardID := player.Hand[dc.HandIndex]
	if pending.WoundsOnly && cardID != catalog.WoundCardID {
		return ApplyResult{}, mkerr.IllegalAction("discard must be a wound")
	}
	if pending.FilterWounds && cardID == catalog.WoundCardID {
		return ApplyResult{}, mkerr.IllegalAction("wounds are not eligible for this discard")
	}

	u.Save(g)
	player.Hand = append(player.Hand[:dc.HandIndex], player.Hand[dc.HandIndex+1:]...)
	player.Discard = append(player.Discard, cardID)

	pending.Count--
	if pending.Count > 0 {
		player.Pending.Active = pending
		g.ActionEpoch++
		return ApplyResult{PendingKind: state.PendingDiscard}, nil
	}
	player.Pending.Active = nil

	if pending.Purpose == state.DiscardForHandLimit {
		result := d.advanceTurn(g)
		g.ActionEpoch++
		return result, nil
	}

	if len(pending.Continuation.Remaining) == 0 {
		g.ActionEpoch++
		return ApplyResult{}, nil
	}
	q := effect.FromFrames(pending.Continuation.Remaining)
	outcome, err := d.Resolver.Drain(ctx, g, player, q)
	if err != nil {
		return ApplyResult{}, err
	}
	g.ActionEpoch++
	if !outcome.Complete {
		return ApplyResult{PendingKind: outcome.PendingKind}, nil
	}
	return ApplyResult{}, nil
}
