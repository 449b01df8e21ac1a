// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package dispatch

import (
	"context"

	"github.com/mage-knight-digital/mkengine/action"
	"github.com/mage-knight-digital/mkengine/catalog"
	"github.com/mage-knight-digital/mkengine/effect"
	"github.com/mage-knight-digital/mkengine/enginebus"
	"github.com/mage-knight-digital/mkengine/mkerr"
	"github.com/mage-knight-digital/mkengine/state"
	"github.com/mage-knight-digital/mkengine/undo"
)

// canAffordPowered mirrors action.canAffordPowered (unexported there): a
// permanent crystal of color, a pure mana token of color gained this turn,
// or the day/night wildcard (Gold/Black) covers the cost.
func canAffordPowered(g *state.GameState, player *state.PlayerState, color catalog.BasicManaColor) bool {
	if player.Crystals.Count(color) > 0 {
		return true
	}
	for _, m := range player.PureMana {
		if m == catalog.ManaColor(color) {
			return true
		}
		if m == catalog.ManaGold && g.TimeOfDay == catalog.Day {
			return true
		}
		if m == catalog.ManaBlack && g.TimeOfDay == catalog.Night {
			return true
		}
	}
	return false
}

// spendManaFor removes one token of color from player's crystals or pure
// mana, preferring the permanent crystal (pure mana is the scarcer,
// turn-bound resource). Callers check canAffordPowered first.
func spendManaFor(g *state.GameState, player *state.PlayerState, color catalog.BasicManaColor) {
	if player.Crystals.Spend(color, 1) {
		return
	}
	for i, m := range player.PureMana {
		if m == catalog.ManaColor(color) ||
			(m == catalog.ManaGold && g.TimeOfDay == catalog.Day) ||
			(m == catalog.ManaBlack && g.TimeOfDay == catalog.Night) {
			player.PureMana = append(player.PureMana[:i], player.PureMana[i+1:]...)
			return
		}
	}
}

func containsSidewaysUse(list []catalog.SidewaysAs, v catalog.SidewaysAs) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

// discardPlayedCard moves the card at handIndex from hand to discard and
// marks the turn flags every card play sets, regardless of basic, powered,
// or sideways mode.
func discardPlayedCard(player *state.PlayerState, handIndex int) {
	cardID := player.Hand[handIndex]
	player.Hand = append(player.Hand[:handIndex], player.Hand[handIndex+1:]...)
	player.Discard = append(player.Discard, cardID)
	player.Flags = player.Flags.Set(state.FlagPlayedCardFromHandThisTurn | state.FlagHasTakenActionThisTurn)
}

// applySidewaysValue routes a sideways play's fixed value into the
// accumulator its discriminant names. Attack and Block always land in the
// physical element — sideways play has no elemental flavor of its own.
func applySidewaysValue(player *state.PlayerState, as catalog.SidewaysAs, value int) {
	switch as {
	case catalog.SidewaysMove:
		player.Accumulated.Move += value
	case catalog.SidewaysInfluence:
		player.Accumulated.Influence += value
	case catalog.SidewaysAttack:
		player.Accumulated.MeleeAttack.Add(catalog.ElementPhysical, value)
	case catalog.SidewaysBlock:
		player.Accumulated.Block.Add(catalog.ElementPhysical, value)
	}
}

func (d *Dispatcher) applyPlayCardBasic(ctx context.Context, g *state.GameState, u *undo.Stack, player *state.PlayerState, a action.PlayCardBasic) (ApplyResult, error) {
	if a.HandIndex < 0 || a.HandIndex >= len(player.Hand) {
		return ApplyResult{}, mkerr.IllegalAction("hand index out of range")
	}
	if player.Hand[a.HandIndex] != a.CardID {
		return ApplyResult{}, mkerr.IllegalAction("hand index does not match card id")
	}
	def, ok := catalog.GetCard(a.CardID)
	if !ok {
		return ApplyResult{}, mkerr.IllegalAction("unknown card id")
	}

	u.Save(g)
	discardPlayedCard(player, a.HandIndex)

	q := effect.FromFrames([]state.EffectFrame{{Effect: def.BasicEffect, Player: player.ID}})
	outcome, err := d.Resolver.Drain(ctx, g, player, q)
	if err != nil {
		return ApplyResult{}, err
	}
	enginebus.Publish(d.Bus, enginebus.NewCardPlayed(player.ID, a.CardID, "basic"))

	g.ActionEpoch++
	if !outcome.Complete {
		return ApplyResult{PendingKind: outcome.PendingKind}, nil
	}
	return ApplyResult{}, nil
}

func (d *Dispatcher) applyPlayCardPowered(ctx context.Context, g *state.GameState, u *undo.Stack, player *state.PlayerState, a action.PlayCardPowered) (ApplyResult, error) {
	if a.HandIndex < 0 || a.HandIndex >= len(player.Hand) {
		return ApplyResult{}, mkerr.IllegalAction("hand index out of range")
	}
	if player.Hand[a.HandIndex] != a.CardID {
		return ApplyResult{}, mkerr.IllegalAction("hand index does not match card id")
	}
	def, ok := catalog.GetCard(a.CardID)
	if !ok || def.PoweredBy == "" {
		return ApplyResult{}, mkerr.IllegalAction("card has no powered effect")
	}
	if !canAffordPowered(g, player, a.ManaColor) {
		return ApplyResult{}, mkerr.IllegalAction("no mana available to power this card")
	}

	u.Save(g)
	spendManaFor(g, player, a.ManaColor)
	discardPlayedCard(player, a.HandIndex)

	q := effect.FromFrames([]state.EffectFrame{{Effect: def.PoweredEffect, Player: player.ID}})
	outcome, err := d.Resolver.Drain(ctx, g, player, q)
	if err != nil {
		return ApplyResult{}, err
	}
	enginebus.Publish(d.Bus, enginebus.NewCardPlayed(player.ID, a.CardID, "powered"))

	g.ActionEpoch++
	if !outcome.Complete {
		return ApplyResult{PendingKind: outcome.PendingKind}, nil
	}
	return ApplyResult{}, nil
}

func (d *Dispatcher) applyPlayCardSideways(_ context.Context, g *state.GameState, u *undo.Stack, player *state.PlayerState, a action.PlayCardSideways) (ApplyResult, error) {
	if a.HandIndex < 0 || a.HandIndex >= len(player.Hand) {
		return ApplyResult{}, mkerr.IllegalAction("hand index out of range")
	}
	if player.Hand[a.HandIndex] != a.CardID {
		return ApplyResult{}, mkerr.IllegalAction("hand index does not match card id")
	}
	def, ok := catalog.GetCard(a.CardID)
	if !ok {
		return ApplyResult{}, mkerr.IllegalAction("unknown card id")
	}
	if !containsSidewaysUse(def.SidewaysAs, a.SidewaysAs) {
		return ApplyResult{}, mkerr.IllegalAction("card does not support this sideways use")
	}

	u.Save(g)
	discardPlayedCard(player, a.HandIndex)
	applySidewaysValue(player, a.SidewaysAs, def.SidewaysValue)
	enginebus.Publish(d.Bus, enginebus.NewCardPlayed(player.ID, a.CardID, "sideways"))

	g.ActionEpoch++
	return ApplyResult{}, nil
}
