// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package state

import (
	"github.com/KirkDiggler/rpg-toolkit/pipeline"

	"github.com/mage-knight-digital/mkengine/catalog"
	"github.com/mage-knight-digital/mkengine/ids"
)

// EffectFrame is one entry of the effect resolver's work queue: a single
// node of a card/skill/unit effect tree, plus the player it resolves
// against. Frames live in package state (rather than package effect, which
// interprets them) so ActivePending's suspended continuation — itself part
// of PlayerState — never has to import the resolver.
type EffectFrame struct {
	Effect   catalog.EffectStep
	Player   ids.PlayerID
	Multiplier int // Scaling effects bake their evaluated factor in here
}

// ContinuationEntry is the remaining queue snapshot attached to a
// suspended choice, letting the resolver re-enter mid-stream once the
// choice resolves. Continuation is additionally projected into a
// pipeline.ContinuationData so any tooling built against the teacher's
// pipeline vocabulary (stage index, opaque intermediate state) can inspect
// a suspension without understanding EffectFrame directly.
type ContinuationEntry struct {
	Remaining []EffectFrame
	Snapshot  pipeline.ContinuationData
}

// PendingKind discriminates the ~20 resolution states the engine can be
// blocked on. Only Choice carries enough structure for the enumerator to
// emit ResolveChoice actions directly; the rest are recognized but
// unsupported in this port (the dispatcher's applyPending rejects every
// action but Undo with an IllegalAction error) — a redesign of the original
// engine's `panic!` on these variants into a safe rejection instead of a
// crashed turn loop.
type PendingKind string

// Pending resolution kinds, matching the original engine's
// active_pending_kind exhaustive match.
const (
	PendingChoice                     PendingKind = "choice"
	PendingDiscard                    PendingKind = "discard"
	PendingDiscardForAttack           PendingKind = "discard_for_attack"
	PendingDiscardForBonus            PendingKind = "discard_for_bonus"
	PendingDiscardForCrystal          PendingKind = "discard_for_crystal"
	PendingDecompose                  PendingKind = "decompose"
	PendingMaximalEffect               PendingKind = "maximal_effect"
	PendingBookOfWisdom                PendingKind = "book_of_wisdom"
	PendingTraining                    PendingKind = "training"
	PendingTacticDecision              PendingKind = "tactic_decision"
	PendingLevelUpReward                PendingKind = "level_up_reward"
	PendingDeepMineChoice               PendingKind = "deep_mine_choice"
	PendingGladeWoundChoice             PendingKind = "glade_wound_choice"
	PendingBannerProtectionChoice       PendingKind = "banner_protection_choice"
	PendingSourceOpeningReroll          PendingKind = "source_opening_reroll"
	PendingMeditation                   PendingKind = "meditation"
	PendingPlunderDecision              PendingKind = "plunder_decision"
	PendingUnitMaintenance              PendingKind = "unit_maintenance"
	PendingTerrainCostReduction         PendingKind = "terrain_cost_reduction"
	PendingCrystalJoyReclaim            PendingKind = "crystal_joy_reclaim"
	PendingSteadyTempoDeckPlacement     PendingKind = "steady_tempo_deck_placement"
)

// ActivePending is the single blocking resolution a player's turn can be
// waiting on at any moment — structurally enforcing the "one pending at a
// time" invariant the original design's ~20 Option fields only enforced by
// convention.
type ActivePending interface {
	PendingKind() PendingKind
}

// ChoicePending blocks on the player picking one of Options by index; the
// resolver reattaches Continuation.Remaining to the back of its queue once
// resolved.
type ChoicePending struct {
	Options      []catalog.EffectStep
	Continuation ContinuationEntry
}

// PendingKind implements ActivePending.
func (ChoicePending) PendingKind() PendingKind { return PendingChoice }

// DiscardPurpose names what happens once a DiscardPending's Count reaches
// zero: either an effect tree continuation resumes, or (hand-limit
// enforcement at end of turn) the turn itself finishes advancing.
type DiscardPurpose string

// Discard purposes.
const (
	DiscardForEffect  DiscardPurpose = "effect"
	DiscardForHandLimit DiscardPurpose = "hand_limit"
)

// DiscardPending blocks on discarding Count cards (optionally filtered to
// or away from wounds) before either Continuation resumes (DiscardForEffect)
// or the caller finishes ending the turn (DiscardForHandLimit).
type DiscardPending struct {
	Count        int
	FilterWounds bool // true: wounds don't count toward Count
	WoundsOnly   bool // true: only wounds are eligible
	Purpose      DiscardPurpose
	Continuation ContinuationEntry
}

// PendingKind implements ActivePending.
func (DiscardPending) PendingKind() PendingKind { return PendingDiscard }

// UnsupportedPending recognizes one of the remaining pending kinds the
// enumerator and dispatcher know the name of but do not yet drive to
// resolution. It always surfaces at minimum an Undo action rather than
// deadlocking the turn.
type UnsupportedPending struct {
	Kind PendingKind
}

// PendingKind implements ActivePending.
func (u UnsupportedPending) PendingKind() PendingKind { return u.Kind }

// PendingQueue is a player's resolution state: at most one ActivePending
// plus a FIFO of deferred pendings promoted once Active clears.
type PendingQueue struct {
	Active   ActivePending
	Deferred []ActivePending
}

// Clone returns a deep copy (EffectFrame slices are value types, safe to
// reslice-copy; ActivePending implementations are themselves immutable
// value/slice compositions).
func (q PendingQueue) Clone() PendingQueue {
	out := PendingQueue{Active: q.Active}
	if len(q.Deferred) > 0 {
		out.Deferred = append([]ActivePending(nil), q.Deferred...)
	}
	switch a := q.Active.(type) {
	case ChoicePending:
		out.Active = ChoicePending{
			Options:      append([]catalog.EffectStep(nil), a.Options...),
			Continuation: a.Continuation.clone(),
		}
	case DiscardPending:
		cp := a
		cp.Continuation = a.Continuation.clone()
		out.Active = cp
	}
	return out
}

func (c ContinuationEntry) clone() ContinuationEntry {
	return ContinuationEntry{
		Remaining: append([]EffectFrame(nil), c.Remaining...),
		Snapshot:  c.Snapshot,
	}
}
