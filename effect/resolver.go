// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package effect

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/KirkDiggler/rpg-toolkit/pipeline"

	"github.com/mage-knight-digital/mkengine/catalog"
	"github.com/mage-knight-digital/mkengine/enginebus"
	"github.com/mage-knight-digital/mkengine/ids"
	"github.com/mage-knight-digital/mkengine/mkerr"
	"github.com/mage-knight-digital/mkengine/rng"
	"github.com/mage-knight-digital/mkengine/state"
)

// Outcome is the result of draining a Queue: either Complete, or suspended
// with enough information to reconstruct a pipeline.ContinuationData for
// any caller that wants the teacher's stage/continuation vocabulary
// without depending on state.EffectFrame directly. Outcome intentionally
// does not assert conformance to pipeline.Result — the example snapshot's
// generic pipeline.Result[O] and its concrete executor/result types
// disagree with each other, so Outcome only borrows the shape (IsComplete,
// GetContinuation) rather than betting on which declaration is the real
// one (see DESIGN.md).
type Outcome struct {
	Complete     bool
	PendingKind  state.PendingKind
	Continuation pipeline.ContinuationData
}

// IsComplete reports whether the queue fully drained.
func (o Outcome) IsComplete() bool { return o.Complete }

// GetContinuation returns the suspension snapshot, nil if the queue
// completed.
func (o Outcome) GetContinuation() *pipeline.ContinuationData {
	if o.Complete {
		return nil
	}
	c := o.Continuation
	return &c
}

// Resolver drains effect queues against a GameState, publishing lifecycle
// events on Bus (nil is valid — enginebus.Publish no-ops).
type Resolver struct {
	Bus events.EventBus
}

// NewResolver returns a Resolver publishing onto bus.
func NewResolver(bus events.EventBus) *Resolver {
	return &Resolver{Bus: bus}
}

// Drain pops frames from q and applies or expands them until the queue is
// empty (Complete) or a Choice effect suspends it (NeedsResolution). g and
// player must belong to the same game; ctx is threaded through unchanged so
// a gamectx.GameContext set up by the caller (combat-scoped dispatch
// resolving "this enemy"/"that unit" via combat.AsRegistry) survives into
// any future effect step that needs combat-instance resolution, without
// every EffectFrame carrying one.
func (r *Resolver) Drain(ctx context.Context, g *state.GameState, player *state.PlayerState, q *Queue) (Outcome, error) {
	for {
		frame, ok := q.PopFront()
		if !ok {
			return Outcome{Complete: true}, nil
		}

		switch frame.Effect.Kind {
		case catalog.StepSequence:
			q.PushFront(childFrames(frame, frame.Effect.Children)...)

		case catalog.StepConditional:
			if len(frame.Effect.Children) == 0 {
				continue
			}
			branch := frame.Effect.Children[0]
			if !evalCondition(g, player, frame.Effect) {
				if len(frame.Effect.Children) < 2 {
					continue
				}
				branch = frame.Effect.Children[1]
			}
			q.PushFront(childFrame(frame, branch))

		case catalog.StepScaling:
			if len(frame.Effect.Children) == 0 {
				continue
			}
			factor := evalScaling(g, player, frame.Effect)
			base := frame.Effect.Children[0]
			base.Amount *= factor
			q.PushFront(childFrame(frame, base))

		case catalog.StepChoice:
			continuation := state.ContinuationEntry{
				Remaining: q.Snapshot(),
				Snapshot: pipeline.ContinuationData{
					PipelineRef: "effect_resolver",
					Stage:       0,
					Context:     map[string]any{"player": string(frame.Player)},
				},
			}
			player.Pending.Active = state.ChoicePending{
				Options:      frame.Effect.Children,
				Continuation: continuation,
			}
			enginebus.Publish(r.Bus, enginebus.NewChoiceSuspended(player.ID, string(state.PendingChoice)))
			return Outcome{
				Complete:     false,
				PendingKind:  state.PendingChoice,
				Continuation: continuation.Snapshot,
			}, nil

		case catalog.StepDiscardCost:
			remaining := q.Snapshot()
			if len(frame.Effect.Children) > 0 {
				remaining = append([]state.EffectFrame{childFrame(frame, frame.Effect.Children[0])}, remaining...)
			}
			continuation := state.ContinuationEntry{
				Remaining: remaining,
				Snapshot: pipeline.ContinuationData{
					PipelineRef: "effect_resolver",
					Stage:       0,
					Context:     map[string]any{"player": string(frame.Player)},
				},
			}
			player.Pending.Active = state.DiscardPending{
				Count:        frame.Effect.Amount,
				FilterWounds: frame.Effect.DiscardFilterWounds,
				WoundsOnly:   frame.Effect.DiscardWoundsOnly,
				Purpose:      state.DiscardForEffect,
				Continuation: continuation,
			}
			enginebus.Publish(r.Bus, enginebus.NewChoiceSuspended(player.ID, string(state.PendingDiscard)))
			return Outcome{
				Complete:     false,
				PendingKind:  state.PendingDiscard,
				Continuation: continuation.Snapshot,
			}, nil

		case catalog.StepPlayAsBasic:
			amount := frame.Effect.Amount
			if amount <= 0 {
				amount = 1
			}
			q.PushFront(childFrame(frame, catalog.EffectStep{
				Kind: catalog.StepChoice,
				Children: []catalog.EffectStep{
					{Kind: catalog.StepGainMove, Amount: amount},
					{Kind: catalog.StepGainInfluence, Amount: amount},
					{Kind: catalog.StepGainAttack, Amount: amount, Element: catalog.ElementPhysical},
					{Kind: catalog.StepGainBlock, Amount: amount, Element: catalog.ElementPhysical},
				},
			}))

		default:
			if err := applyAtomic(g, player, frame); err != nil {
				return Outcome{}, err
			}
		}
	}
}

// Resume reattaches a resolved choice's continuation to the front of a
// fresh queue, ahead of the chosen option, and drains it — the
// dispatcher's ResolveChoice handler.
func (r *Resolver) Resume(ctx context.Context, g *state.GameState, player *state.PlayerState, chosen catalog.EffectStep, continuation state.ContinuationEntry) (Outcome, error) {
	q := FromFrames(continuation.Remaining)
	q.PushFront(state.EffectFrame{Effect: chosen, Player: player.ID})
	return r.Drain(ctx, g, player, q)
}

func childFrames(parent state.EffectFrame, steps []catalog.EffectStep) []state.EffectFrame {
	out := make([]state.EffectFrame, len(steps))
	for i, s := range steps {
		out[i] = childFrame(parent, s)
	}
	return out
}

func childFrame(parent state.EffectFrame, step catalog.EffectStep) state.EffectFrame {
	return state.EffectFrame{Effect: step, Player: parent.Player}
}

func evalCondition(g *state.GameState, player *state.PlayerState, step catalog.EffectStep) bool {
	switch step.ConditionOn {
	case catalog.ConditionHasCrystalOfColor:
		return player.Crystals.Count(step.ConditionColor) > 0
	case catalog.ConditionInCombat:
		return g.Combat != nil && g.Combat.Player == player.ID
	case catalog.ConditionHandEmpty:
		return len(player.Hand) == 0
	default:
		return false
	}
}

func evalScaling(g *state.GameState, player *state.PlayerState, step catalog.EffectStep) int {
	switch step.ScalingBy {
	case catalog.ScaleByCrystalsOfColor:
		return player.Crystals.Count(step.ScalingColor)
	case catalog.ScaleByReadyUnits:
		count := 0
		for _, u := range player.Units {
			if u.State == catalog.UnitReady {
				count++
			}
		}
		return count
	case catalog.ScaleByWoundsInHand:
		return countCard(player.Hand, catalog.WoundCardID)
	case catalog.ScaleBySpecificCard:
		return countCard(player.Hand, step.ScalingCardID) +
			countCard(player.Deck, step.ScalingCardID) +
			countCard(player.Discard, step.ScalingCardID)
	default:
		return 0
	}
}

func countCard(pile []ids.CardID, id ids.CardID) int {
	count := 0
	for _, c := range pile {
		if c == id {
			count++
		}
	}
	return count
}

// applyAtomic mutates g/player in place for every non-structural
// EffectStepKind.
func applyAtomic(g *state.GameState, player *state.PlayerState, frame state.EffectFrame) error {
	step := frame.Effect
	switch step.Kind {
	case catalog.StepGainMove:
		player.Accumulated.Move += step.Amount
	case catalog.StepGainInfluence:
		player.Accumulated.Influence += step.Amount
	case catalog.StepGainAttack:
		attackPool(player, step.Range).Add(step.Element, step.Amount)
	case catalog.StepGainBlock:
		player.Accumulated.Block.Add(step.Element, step.Amount)
	case catalog.StepGainCrystal:
		player.Crystals.Gain(step.Color, step.Amount)
	case catalog.StepHeal:
		healWounds(g, player, step.Amount, true)
	case catalog.StepTrashWound:
		healWounds(g, player, step.Amount, false)
	case catalog.StepDrawCard:
		drawCards(g, player, step.Amount)
	case catalog.StepLoseReputation:
		player.Reputation -= step.Amount
		player.ClampReputation()
	case catalog.StepGainReputation:
		player.Reputation += step.Amount
		player.ClampReputation()
	case catalog.StepRerollSource:
		rerollSource(g, step.Amount)
	default:
		return mkerr.InvariantViolated("unknown effect step kind: " + string(step.Kind))
	}
	return nil
}

// attackPool returns the range-scoped attack pool an effect step with the
// given AttackRange contributes to, defaulting to melee for the zero value
// (most cards never set Range and grant a plain melee-usable attack).
func attackPool(player *state.PlayerState, r catalog.AttackRange) *state.ElementalAmounts {
	switch r {
	case catalog.RangeRanged:
		return &player.Accumulated.RangedAttack
	case catalog.RangeSiege:
		return &player.Accumulated.SiegeAttack
	default:
		return &player.Accumulated.MeleeAttack
	}
}

// healWounds removes up to n wound cards from the player's hand. When
// returnToSupply is true (Heal) the wound count rejoins the shared supply
// by way of the caller's GameState; when false (TrashWound) the card is
// simply removed from the game.
func healWounds(g *state.GameState, player *state.PlayerState, n int, returnToSupply bool) {
	removed := 0
	hand := player.Hand[:0]
	for _, c := range player.Hand {
		if removed < n && c == catalog.WoundCardID {
			removed++
			continue
		}
		hand = append(hand, c)
	}
	player.Hand = hand
	if returnToSupply {
		g.WoundPileCount += removed
	}
}

// drawCards moves up to n cards from the player's deck to their hand,
// reshuffling the discard pile into the deck (consuming RNG) if the deck
// runs out mid-draw. Drawing fewer than n cards because both piles are
// exhausted is not an error — it matches the physical game running out of
// wounds-aside cards to draw.
func drawCards(g *state.GameState, player *state.PlayerState, n int) {
	for i := 0; i < n; i++ {
		if len(player.Deck) == 0 {
			if len(player.Discard) == 0 {
				return
			}
			player.Deck = player.Discard
			player.Discard = nil
			rng.Shuffle(&g.RNG, player.Deck)
		}
		last := len(player.Deck) - 1
		player.Hand = append(player.Hand, player.Deck[last])
		player.Deck = player.Deck[:last]
	}
}

// rerollSource rerolls up to n of the shared Source dice, consuming RNG
// for each die re-rolled (Source dice show one of the six ManaColor
// values with equal weight).
func rerollSource(g *state.GameState, n int) {
	colors := []catalog.ManaColor{
		catalog.ManaRed, catalog.ManaBlue, catalog.ManaGreen,
		catalog.ManaWhite, catalog.ManaGold, catalog.ManaBlack,
	}
	if n <= 0 || n > len(g.Source) {
		n = len(g.Source)
	}
	for i := 0; i < n; i++ {
		g.Source[i].Color = colors[rng.RollIndex(&g.RNG, len(colors))]
	}
}
