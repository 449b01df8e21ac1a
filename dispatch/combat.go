// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package dispatch

import (
	"context"

	"github.com/mage-knight-digital/mkengine/action"
	"github.com/mage-knight-digital/mkengine/catalog"
	"github.com/mage-knight-digital/mkengine/combat"
	"github.com/mage-knight-digital/mkengine/coop"
	"github.com/mage-knight-digital/mkengine/effect"
	"github.com/mage-knight-digital/mkengine/gamectx"
	"github.com/mage-knight-digital/mkengine/hexcoord"
	"github.com/mage-knight-digital/mkengine/ids"
	"github.com/mage-knight-digital/mkengine/mkerr"
	"github.com/mage-knight-digital/mkengine/state"
	"github.com/mage-knight-digital/mkengine/undo"
)

func (d *Dispatcher) applyCombat(ctx context.Context, g *state.GameState, u *undo.Stack, player *state.PlayerState, act action.LegalAction) (ApplyResult, error) {
	ctx = gamectx.WithGameContext(ctx, gamectx.NewGameContext(gamectx.GameContextConfig{
		Combatants: combat.AsRegistry(g.Combat, player),
	}))

	switch a := act.(type) {
	case action.PlayCardBasic:
		return d.applyPlayCardBasic(ctx, g, u, player, a)
	case action.PlayCardPowered:
		return d.applyPlayCardPowered(ctx, g, u, player, a)
	case action.PlayCardSideways:
		return d.applyPlayCardSideways(ctx, g, u, player, a)
	case action.AssignAttack:
		return d.applyAssignAttack(ctx, g, u, player, a)
	case action.AssignBlock:
		return d.applyAssignBlock(ctx, g, u, player, a)
	case action.AutoAssignDefend:
		return d.applyAutoAssignDefend(g, u, player, a)
	case action.EndCombatPhase:
		return d.applyEndCombatPhase(g, u, player)
	case action.ActivateTactic:
		return d.applyActivateTactic(ctx, g, u, player)
	default:
		return ApplyResult{}, mkerr.IllegalAction("action is not legal during combat")
	}
}

func unitIndexOf(player *state.PlayerState, id ids.UnitInstanceID) int {
	for i, unit := range player.Units {
		if unit.InstanceID == id {
			return i
		}
	}
	return -1
}

// resolveCombatEnemy looks up a.EnemyInstanceID through the GameContext
// registry applyCombat populated, rather than indexing g.Combat.Enemies
// directly — the same resolution path effect-queue processing uses mid-
// combat, so assignment and queued effects never disagree about what "this
// enemy" means. applyCombat always installs the GameContext before
// dispatching to any combat action, so a missing context here means the
// dispatcher itself is wired wrong, not that the player picked an invalid
// enemy — RequireCombatants panics on that distinction instead of
// masquerading it as "unknown enemy instance".
func resolveCombatEnemy(ctx context.Context, id ids.CombatInstanceID) (*state.CombatEnemy, bool) {
	registry := gamectx.RequireCombatants(ctx)
	combatant := registry.GetCombatant(id)
	enemy, ok := combatant.(interface{ Enemy() *state.CombatEnemy })
	if !ok {
		return nil, false
	}
	return enemy.Enemy(), true
}

func (d *Dispatcher) applyAssignAttack(ctx context.Context, g *state.GameState, u *undo.Stack, player *state.PlayerState, a action.AssignAttack) (ApplyResult, error) {
	if g.Combat == nil {
		return ApplyResult{}, mkerr.IllegalAction("no combat in progress")
	}
	enemy, ok := resolveCombatEnemy(ctx, a.EnemyInstanceID)
	if !ok {
		return ApplyResult{}, mkerr.IllegalAction("unknown enemy instance")
	}
	def, ok := catalog.GetEnemy(enemy.EnemyID)
	if !ok {
		return ApplyResult{}, mkerr.IllegalAction("unknown enemy definition")
	}

	u.Save(g)
	if err := combat.AssignAttack(player, enemy, def, a.Range, a.Element, a.Amount); err != nil {
		return ApplyResult{}, err
	}

	g.ActionEpoch++
	return ApplyResult{}, nil
}

func (d *Dispatcher) applyAssignBlock(ctx context.Context, g *state.GameState, u *undo.Stack, player *state.PlayerState, a action.AssignBlock) (ApplyResult, error) {
	if g.Combat == nil {
		return ApplyResult{}, mkerr.IllegalAction("no combat in progress")
	}
	enemy, ok := resolveCombatEnemy(ctx, a.EnemyInstanceID)
	if !ok {
		return ApplyResult{}, mkerr.IllegalAction("unknown enemy instance")
	}
	def, ok := catalog.GetEnemy(enemy.EnemyID)
	if !ok {
		return ApplyResult{}, mkerr.IllegalAction("unknown enemy definition")
	}

	u.Save(g)
	if err := combat.AssignBlock(player, enemy, def, a.Element, a.Amount); err != nil {
		return ApplyResult{}, err
	}

	g.ActionEpoch++
	return ApplyResult{}, nil
}

func (d *Dispatcher) applyAutoAssignDefend(g *state.GameState, u *undo.Stack, player *state.PlayerState, a action.AutoAssignDefend) (ApplyResult, error) {
	if g.Combat == nil {
		return ApplyResult{}, mkerr.IllegalAction("no combat in progress")
	}
	enemy, ok := g.Combat.EnemyByInstance(a.EnemyInstanceID)
	if !ok {
		return ApplyResult{}, mkerr.IllegalAction("unknown enemy instance")
	}
	def, ok := catalog.GetEnemy(enemy.EnemyID)
	if !ok {
		return ApplyResult{}, mkerr.IllegalAction("unknown enemy definition")
	}

	if combat.HasAbility(def, catalog.AbilityElusive) && enemy.BlockSourceSealed {
		return ApplyResult{}, mkerr.IllegalAction("elusive enemy accepts block from only one source")
	}

	required := def.Attack - enemy.AccumulatedBlock.Total()
	if required <= 0 {
		return ApplyResult{}, mkerr.IllegalAction("enemy attack is already fully covered")
	}

	armorAsBlock := make(map[ids.UnitInstanceID]int, len(player.Units))
	for _, unit := range player.Units {
		if unit.State != catalog.UnitReady {
			continue
		}
		unitDef, ok := catalog.GetUnit(unit.Definition)
		if !ok {
			continue
		}
		armorAsBlock[unit.InstanceID] = unitDef.Armor
	}

	tapped, covered := combat.AutoAssignDefend(player.Units, armorAsBlock, required)
	if len(tapped) == 0 {
		return ApplyResult{}, mkerr.IllegalAction("no ready units available to defend")
	}

	u.Save(g)
	for _, id := range tapped {
		if idx := unitIndexOf(player, id); idx >= 0 {
			player.Units[idx].State = catalog.UnitSpent
		}
	}
	enemy.AccumulatedBlock.Add(catalog.ElementPhysical, covered)
	if combat.HasAbility(def, catalog.AbilityElusive) {
		enemy.BlockSourceSealed = true
	}

	g.ActionEpoch++
	return ApplyResult{}, nil
}

// applyEndCombatPhase finalizes every enemy's attack/block accumulated this
// phase (FinalizeAttack/FinalizeBlock operate as an all-or-nothing batch per
// enemy, never per individual assignment) and advances the phase machine,
// auto-skipping phases with nothing to do and auto-routing leftover damage
// to the hero on CombatAssignDamage, since no action exists to do that by
// hand.
func (d *Dispatcher) applyEndCombatPhase(g *state.GameState, u *undo.Stack, player *state.PlayerState) (ApplyResult, error) {
	c := g.Combat
	if c == nil {
		return ApplyResult{}, mkerr.IllegalAction("no combat in progress")
	}

	u.Save(g)
	defs := combat.DefinitionsFor(c)

	switch c.Phase {
	case catalog.CombatRangedSiege, catalog.CombatAttack:
		for i := range c.Enemies {
			enemy := &c.Enemies[i]
			if enemy.IsDefeated || enemy.IsBlocked {
				continue
			}
			if def, ok := defs[enemy.EnemyID]; ok {
				combat.FinalizeAttack(enemy, def)
			}
		}
	case catalog.CombatBlock:
		for i := range c.Enemies {
			enemy := &c.Enemies[i]
			if enemy.IsDefeated {
				continue
			}
			if def, ok := defs[enemy.EnemyID]; ok {
				combat.FinalizeBlock(enemy, def)
			}
		}
	}

	phase := c.Phase
	for {
		next, ok := combat.NextPhase(phase)
		if !ok {
			result := d.resolveCombatEnd(g, player)
			g.ActionEpoch++
			return result, nil
		}
		if next == catalog.CombatAssignDamage {
			for i := range c.Enemies {
				enemy := &c.Enemies[i]
				if combat.IsEnemyAttacksSkipped(*enemy) || enemy.DamageToAssign <= 0 {
					continue
				}
				def, ok := defs[enemy.EnemyID]
				if !ok {
					continue
				}
				assignment := state.DamageAssignment{EnemyInstanceID: enemy.InstanceID, ToHero: enemy.DamageToAssign}
				if err := combat.ApplyDamageAssignment(player, assignment, def); err != nil {
					return ApplyResult{}, err
				}
				c.DamageAssignments = append(c.DamageAssignments, assignment)
				enemy.DamageToAssign = 0
			}
		}
		if combat.AutoSkip(next, c) {
			phase = next
			continue
		}
		c.Phase = next
		break
	}

	g.ActionEpoch++
	return ApplyResult{}, nil
}

func allDefeated(c *state.CombatState) bool {
	for _, e := range c.Enemies {
		if !e.IsDefeated {
			return false
		}
	}
	return true
}

func returnToken(g *state.GameState, color catalog.EnemyColor, token state.EnemyToken) {
	pile := g.EnemyPiles[color]
	pile.Discard = append(pile.Discard, token)
	g.EnemyPiles[color] = pile
}

// resolveCombatEnd awards fame for every defeated enemy, returns its token
// to its color pile's discard, and conquers the site underneath the player
// if every garrison member fell (blocking alone never conquers a site).
func (d *Dispatcher) resolveCombatEnd(g *state.GameState, player *state.PlayerState) ApplyResult {
	c := g.Combat
	defs := combat.DefinitionsFor(c)

	for _, enemy := range c.Enemies {
		if !enemy.IsDefeated {
			continue
		}
		def, ok := defs[enemy.EnemyID]
		if !ok {
			continue
		}
		player.GainFame(def.FameValue)
		returnToken(g, def.Color, state.EnemyToken{
			TokenID:    ids.EnemyTokenID(enemy.InstanceID),
			Definition: enemy.EnemyID,
			Revealed:   true,
		})
	}

	if g.CoopCityHex != nil {
		g.CoopAllDefeated = g.CoopAllDefeated && allDefeated(c)
		g.Combat = nil
		cityHex := *g.CoopCityHex
		if !coop.StartNextQueued(g) && g.CoopAllDefeated {
			conquerSite(g, cityHex, g.CoopProposerID)
		}
		return ApplyResult{CombatEnded: true}
	}

	if g.ChallengeHex != nil {
		clearDefeatedOpenGroundEnemies(g, *g.ChallengeHex, c)
		g.ChallengeHex = nil
		g.Combat = nil
		return ApplyResult{CombatEnded: true}
	}

	if allDefeated(c) && player.Position != nil {
		conquerSite(g, *player.Position, player.ID)
	}

	g.Combat = nil
	return ApplyResult{CombatEnded: true}
}

// clearDefeatedOpenGroundEnemies drops every defeated combatant from hex's
// open-ground Enemies, the Challenge counterpart to conquerSite: an
// open-ground hex has no IsConquered flag, so a cleared token is what makes
// the hex enterable by Move again. Surviving (blocked, not defeated)
// enemies remain — the player disengaged without winning.
func clearDefeatedOpenGroundEnemies(g *state.GameState, hex hexcoord.HexCoord, c *state.CombatState) {
	h, ok := g.Map.Hexes[hex]
	if !ok {
		return
	}
	defeated := make(map[ids.CombatInstanceID]bool, len(c.Enemies))
	for _, e := range c.Enemies {
		if e.IsDefeated {
			defeated[e.InstanceID] = true
		}
	}
	remaining := h.Enemies[:0]
	for _, t := range h.Enemies {
		if defeated[ids.CombatInstanceID(string(t.TokenID))] {
			continue
		}
		remaining = append(remaining, t)
	}
	h.Enemies = remaining
}

// conquerSite marks the site at hex conquered by owner and awards its
// conquest fame, if it isn't already conquered.
func conquerSite(g *state.GameState, hex hexcoord.HexCoord, owner ids.PlayerID) {
	h, ok := g.Map.Hexes[hex]
	if !ok || h.Site == nil || h.Site.IsConquered {
		return
	}
	props := catalog.GetSiteProperties(h.Site.Type)
	h.Site.IsConquered = true
	ownerID := owner
	h.Site.Owner = &ownerID
	if p, found := g.PlayerByID(owner); found {
		p.GainFame(props.FameOnConquest)
	}
}

// tacticActivationEffect is the generic bonus every activatable tactic
// grants when flipped. The tactic catalog carries only each card's ID and
// turn-order rank, not its printed ability text, so every activatable
// tactic shares this one stand-in effect.
var tacticActivationEffect = catalog.EffectStep{Kind: catalog.StepGainMove, Amount: 1}

func (d *Dispatcher) applyActivateTactic(ctx context.Context, g *state.GameState, u *undo.Stack, player *state.PlayerState) (ApplyResult, error) {
	if player.Flags.Has(state.FlagTacticFlipped) {
		return ApplyResult{}, mkerr.IllegalAction("tactic already activated this round")
	}

	u.Save(g)
	player.Flags = player.Flags.Set(state.FlagTacticFlipped)

	q := effect.FromFrames([]state.EffectFrame{{Effect: tacticActivationEffect, Player: player.ID}})
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
