// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package dispatch

import (
	"context"
	"strconv"

	"github.com/mage-knight-digital/mkengine/action"
	"github.com/mage-knight-digital/mkengine/catalog"
	"github.com/mage-knight-digital/mkengine/combat"
	"github.com/mage-knight-digital/mkengine/dummy"
	"github.com/mage-knight-digital/mkengine/enginebus"
	"github.com/mage-knight-digital/mkengine/ids"
	"github.com/mage-knight-digital/mkengine/mkerr"
	"github.com/mage-knight-digital/mkengine/movement"
	"github.com/mage-knight-digital/mkengine/rng"
	"github.com/mage-knight-digital/mkengine/state"
	"github.com/mage-knight-digital/mkengine/undo"
)

// applyNormalTurn routes every action legal outside of tactics selection,
// combat, and an active pending resolution (categories 2-6, 8-16 of
// spec.md §4.5's enumerator).
func (d *Dispatcher) applyNormalTurn(ctx context.Context, g *state.GameState, u *undo.Stack, player *state.PlayerState, act action.LegalAction) (ApplyResult, error) {
	switch a := act.(type) {
	case action.PlayCardBasic:
		return d.applyPlayCardBasic(ctx, g, u, player, a)
	case action.PlayCardPowered:
		return d.applyPlayCardPowered(ctx, g, u, player, a)
	case action.PlayCardSideways:
		return d.applyPlayCardSideways(ctx, g, u, player, a)
	case action.Move:
		return d.applyMove(g, u, player, a)
	case action.Challenge:
		return d.applyChallenge(g, u, player, a)
	case action.Explore:
		return d.applyExplore(g, u, player, a)
	case action.EnterSite:
		return d.applyEnterSite(g, u, player)
	case action.InteractSite:
		return d.applyInteractSite(g, u, player, a)
	case action.RecruitUnit:
		return d.applyRecruitUnit(g, u, player, a)
	case action.ActivateTactic:
		return d.applyActivateTactic(ctx, g, u, player)
	case action.RerollSourceDice:
		return d.applyRerollSourceDice(g, u, player, a)
	case action.DeclareRest:
		return d.applyDeclareRest(g, u, player)
	case action.CompleteRest:
		return d.applyCompleteRest(g, u, player, a)
	case action.EndTurn:
		return d.applyEndTurnAction(g, u, player)
	case action.ProposeCooperativeAssault:
		return d.applyProposeCooperativeAssault(g, u, player, a)
	case action.CancelCooperativeProposal:
		return d.applyCancelCooperativeProposal(g, u, player)
	default:
		return ApplyResult{}, mkerr.IllegalAction("action is not legal during a normal turn")
	}
}

func (d *Dispatcher) applyMove(g *state.GameState, u *undo.Stack, player *state.PlayerState, a action.Move) (ApplyResult, error) {
	if player.Position == nil {
		return ApplyResult{}, mkerr.IllegalAction("player has no position")
	}
	entry := movement.EvaluateMoveEntry(g, player, a.Target)
	if entry.BlockReason != nil || entry.Cost == nil || *entry.Cost != a.Cost {
		return ApplyResult{}, mkerr.IllegalAction("move is not currently legal")
	}
	if a.Cost > player.Accumulated.Move {
		return ApplyResult{}, mkerr.IllegalAction("insufficient move points")
	}

	u.Save(g)
	player.Accumulated.Move -= a.Cost
	target := a.Target
	player.Position = &target
	player.Flags = player.Flags.Set(state.FlagHasMovedThisTurn | state.FlagHasTakenActionThisTurn)

	g.ActionEpoch++
	return ApplyResult{}, nil
}

// applyChallenge starts combat against the rampaging enemies on a.Target
// without moving the player there. Target must still be adjacent to the
// player and still blocked for BlockRampagingEnemy — re-checked rather than
// trusted, same as applyMove re-checks EvaluateMoveEntry.
func (d *Dispatcher) applyChallenge(g *state.GameState, u *undo.Stack, player *state.PlayerState, a action.Challenge) (ApplyResult, error) {
	if player.Position == nil {
		return ApplyResult{}, mkerr.IllegalAction("player has no position")
	}
	if !player.Position.IsAdjacent(a.Target) {
		return ApplyResult{}, mkerr.IllegalAction("challenge target is not adjacent to the player")
	}
	entry := movement.EvaluateMoveEntry(g, player, a.Target)
	if entry.BlockReason == nil || *entry.BlockReason != movement.BlockRampagingEnemy {
		return ApplyResult{}, mkerr.IllegalAction("target does not hold a rampaging enemy to challenge")
	}
	hex := g.Map.Hexes[a.Target]

	u.Save(g)

	g.Combat = combat.EnterCombat(player.ID, hex.Enemies)
	hexCopy := a.Target
	g.ChallengeHex = &hexCopy
	tokens := make([]ids.EnemyTokenID, len(hex.Enemies))
	for i, t := range hex.Enemies {
		tokens[i] = t.TokenID
	}
	enginebus.Publish(d.Bus, enginebus.NewCombatEntered(player.ID, tokens))

	g.ActionEpoch++
	u.SetCheckpoint()
	return ApplyResult{CombatStarted: true}, nil
}

// siteSpawnColor names which enemy pile a newly-explored hex's site draws
// its garrison from. Dungeon and Tomb are deliberately absent: per
// spec.md's Open Question on their enemy refresh policy, this port draws
// their garrison fresh on every EnterSite instead of once at explore time
// (see applyEnterSite and DESIGN.md).
var siteSpawnColor = map[catalog.SiteType]catalog.EnemyColor{
	catalog.SiteKeep:           catalog.EnemyBrown,
	catalog.SiteMageTower:      catalog.EnemyViolet,
	catalog.SiteMonastery:      catalog.EnemyWhite,
	catalog.SiteSpawningGround: catalog.EnemyGreen,
	catalog.SiteMonsterDen:     catalog.EnemyGreen,
}

// siteSpawnCount is the garrison size a freshly explored site starts with,
// one token per color for every site type this port assigns a spawn color.
const siteSpawnCount = 1

// drawEnemyToken pops the top token from color's draw pile, reshuffling its
// discard pile into the draw pile (consuming RNG) if the draw pile is
// empty. Returns ok=false only if both piles are empty.
func drawEnemyToken(g *state.GameState, color catalog.EnemyColor) (state.EnemyToken, bool) {
	pile := g.EnemyPiles[color]
	if len(pile.Draw) == 0 {
		if len(pile.Discard) == 0 {
			return state.EnemyToken{}, false
		}
		pile.Draw = pile.Discard
		pile.Discard = nil
		shuffleEnemyTokens(g, pile.Draw)
	}
	last := len(pile.Draw) - 1
	token := pile.Draw[last]
	pile.Draw = pile.Draw[:last]
	g.EnemyPiles[color] = pile
	return token, true
}

func shuffleEnemyTokens(g *state.GameState, tokens []state.EnemyToken) {
	for i := len(tokens) - 1; i > 0; i-- {
		j := g.RNG.NextInt(0, i)
		tokens[i], tokens[j] = tokens[j], tokens[i]
	}
}

// spawnGarrisonFor instantiates a fresh EnemyToken garrison for a
// newly-revealed site, drawing up to siteSpawnCount tokens of its spawn
// color from that color's live draw pile via drawEnemyToken. Site types
// with no spawn color get no garrison.
func spawnGarrisonFor(g *state.GameState, siteType catalog.SiteType) []state.EnemyToken {
	color, ok := siteSpawnColor[siteType]
	if !ok {
		return nil
	}
	out := make([]state.EnemyToken, 0, siteSpawnCount)
	for i := 0; i < siteSpawnCount; i++ {
		token, ok := drawEnemyToken(g, color)
		if !ok {
			break
		}
		out = append(out, token)
	}
	return out
}

// applyExplore places the next tile from the deck (countryside first, then
// core once countryside is exhausted) in a.Direction off the player's
// current tile, registers its hexes, spawns each new site's garrison, and
// awards the scenario's per-tile fame. Exploration draws a tile and
// possibly enemy tokens, both RNG/state-irreversible, so it checkpoints
// the undo stack rather than pushing a snapshot (spec.md §4.10).
func (d *Dispatcher) applyExplore(g *state.GameState, u *undo.Stack, player *state.PlayerState, a action.Explore) (ApplyResult, error) {
	if player.Position == nil {
		return ApplyResult{}, mkerr.IllegalAction("player has no position")
	}
	tileCenter, ok := movement.FindTileCenter(g.Map, *player.Position)
	if !ok {
		return ApplyResult{}, mkerr.IllegalAction("player is not standing on a revealed tile")
	}
	if !movement.IsPlayerNearExploreEdge(*player.Position, tileCenter, a.Direction) {
		return ApplyResult{}, mkerr.IllegalAction("player is not on the exploration edge for this direction")
	}
	candidate := movement.CalculateTilePlacement(tileCenter, a.Direction)
	if movement.WouldOverlap(g.Map, candidate) {
		return ApplyResult{}, mkerr.IllegalAction("tile placement would overlap revealed ground")
	}

	var tileID ids.TileID
	switch {
	case len(g.Map.TileDeck.Countryside) > 0:
		n := len(g.Map.TileDeck.Countryside) - 1
		tileID = g.Map.TileDeck.Countryside[n]
		g.Map.TileDeck.Countryside = g.Map.TileDeck.Countryside[:n]
	case len(g.Map.TileDeck.Core) > 0:
		n := len(g.Map.TileDeck.Core) - 1
		tileID = g.Map.TileDeck.Core[n]
		g.Map.TileDeck.Core = g.Map.TileDeck.Core[:n]
	default:
		return ApplyResult{}, mkerr.IllegalAction("no tiles remain to explore with")
	}
	hexes, ok := catalog.GetTileHexes(tileID)
	if !ok {
		return ApplyResult{}, mkerr.InvariantViolated("explored tile has no catalog definition")
	}

	player.Accumulated.Move -= exploreCost
	g.Map.Tiles = append(g.Map.Tiles, state.PlacedTile{Center: candidate, TileID: tileID})
	for _, h := range hexes {
		pos := candidate.Add(h.Offset)
		hex := &state.HexState{Terrain: h.Terrain}
		if h.Site != nil {
			hex.Site = &state.SiteState{Type: *h.Site, Garrison: spawnGarrisonFor(g, *h.Site)}
		}
		g.Map.Hexes[pos] = hex
	}
	player.GainFame(g.ScenarioConfig.FamePerTileExplored)
	player.Flags = player.Flags.Set(state.FlagHasTakenActionThisTurn)

	g.ActionEpoch++
	u.SetCheckpoint()
	return ApplyResult{}, nil
}

// exploreCost mirrors action.exploreBaseCost (unexported there): the flat
// move-point price of exploring, independent of the tile revealed.
const exploreCost = 2

// freshGarrisonSites always draws a brand-new garrison on every EnterSite
// rather than reusing whatever sat in SiteState.Garrison from a previous
// exploration or incomplete combat, per spec.md's Open Question resolution
// for the dungeon/tomb deep-delve sites (DESIGN.md).
var freshGarrisonSites = map[catalog.SiteType]catalog.EnemyColor{
	catalog.SiteDungeon: catalog.EnemyBrown,
	catalog.SiteTomb:    catalog.EnemyViolet,
}

// applyEnterSite begins combat against an unconquered combat site's
// garrison, or (village/refugee camp/magical glade/mine/deep mine) simply
// marks it entered with no fight. Entering a site installs a freshly built
// CombatState, a state transition this port treats as irreversible like
// any other combat entry.
func (d *Dispatcher) applyEnterSite(g *state.GameState, u *undo.Stack, player *state.PlayerState) (ApplyResult, error) {
	if player.Position == nil {
		return ApplyResult{}, mkerr.IllegalAction("player has no position")
	}
	hex, ok := g.Map.Hexes[*player.Position]
	if !ok || hex.Site == nil {
		return ApplyResult{}, mkerr.IllegalAction("no site on the player's current hex")
	}
	site := hex.Site
	if site.IsConquered {
		return ApplyResult{}, mkerr.IllegalAction("site is already conquered")
	}
	props := catalog.GetSiteProperties(site.Type)

	u.Save(g)

	if !props.RequiresCombatToEnter {
		site.IsConquered = true
		owner := player.ID
		site.Owner = &owner
		player.Flags = player.Flags.Set(state.FlagHasTakenActionThisTurn)
		g.ActionEpoch++
		return ApplyResult{}, nil
	}

	if color, ok := freshGarrisonSites[site.Type]; ok {
		token, drew := drawEnemyToken(g, color)
		if drew {
			site.Garrison = []state.EnemyToken{token}
		}
	}
	if len(site.Garrison) == 0 {
		return ApplyResult{}, mkerr.InvariantViolated("combat site has no garrison to fight")
	}

	g.Combat = combat.EnterCombat(player.ID, site.Garrison)
	tokens := make([]ids.EnemyTokenID, len(site.Garrison))
	for i, t := range site.Garrison {
		tokens[i] = t.TokenID
	}
	enginebus.Publish(d.Bus, enginebus.NewCombatEntered(player.ID, tokens))

	g.ActionEpoch++
	u.SetCheckpoint()
	return ApplyResult{CombatStarted: true}, nil
}

func (d *Dispatcher) applyInteractSite(g *state.GameState, u *undo.Stack, player *state.PlayerState, a action.InteractSite) (ApplyResult, error) {
	if player.Position == nil {
		return ApplyResult{}, mkerr.IllegalAction("player has no position")
	}
	hex, ok := g.Map.Hexes[*player.Position]
	if !ok || hex.Site == nil || !hex.Site.IsConquered {
		return ApplyResult{}, mkerr.IllegalAction("no interactable site here")
	}
	cost := siteInteractCost * a.Healing
	if player.Accumulated.Influence < cost {
		return ApplyResult{}, mkerr.IllegalAction("insufficient influence")
	}

	u.Save(g)
	player.Accumulated.Influence -= cost
	removed := 0
	hand := player.Hand[:0]
	for _, c := range player.Hand {
		if removed < a.Healing && c == catalog.WoundCardID {
			removed++
			continue
		}
		hand = append(hand, c)
	}
	player.Hand = hand
	g.WoundPileCount += removed
	player.Flags = player.Flags.Set(state.FlagHasTakenActionThisTurn)

	g.ActionEpoch++
	return ApplyResult{}, nil
}

// siteInteractCost mirrors action.siteHealCost (unexported there).
const siteInteractCost = 3

func (d *Dispatcher) applyRecruitUnit(g *state.GameState, u *undo.Stack, player *state.PlayerState, a action.RecruitUnit) (ApplyResult, error) {
	if len(player.Units) >= player.CommandSlots() {
		return ApplyResult{}, mkerr.IllegalAction("no free command slots")
	}
	if player.Accumulated.Influence < a.InfluenceCost {
		return ApplyResult{}, mkerr.IllegalAction("insufficient influence")
	}
	if a.OfferIndex < 0 || a.OfferIndex >= len(g.UnitOffer) || g.UnitOffer[a.OfferIndex] != a.UnitID {
		return ApplyResult{}, mkerr.IllegalAction("offer index does not match unit id")
	}

	u.Save(g)
	player.Accumulated.Influence -= a.InfluenceCost
	offer, taken, ok := catalog.TakeFromUnitOffer(g.UnitOffer, a.OfferIndex)
	if !ok || taken != a.UnitID {
		return ApplyResult{}, mkerr.InvariantViolated("unit offer mutated since enumeration")
	}
	g.UnitOffer = offer

	instanceID := ids.UnitInstanceID(string(a.UnitID) + "_" + string(player.ID) + "_" + strconv.Itoa(int(g.ActionEpoch)))
	player.Units = append(player.Units, state.Unit{InstanceID: instanceID, Definition: a.UnitID, State: catalog.UnitReady})
	player.Flags = player.Flags.Set(state.FlagHasRecruitedUnitThisTurn | state.FlagHasTakenActionThisTurn)

	g.ActionEpoch++
	return ApplyResult{}, nil
}

// applyRerollSourceDice rerolls exactly the dice at a.DieIndices, consuming
// one RNG draw per die — an irreversible operation.
func (d *Dispatcher) applyRerollSourceDice(g *state.GameState, u *undo.Stack, player *state.PlayerState, a action.RerollSourceDice) (ApplyResult, error) {
	if player.SelectedTactic != "mana_search" || player.Flags.Has(state.FlagTacticFlipped) {
		return ApplyResult{}, mkerr.IllegalAction("mana search is not available")
	}
	if len(a.DieIndices) == 0 || len(a.DieIndices) > 2 {
		return ApplyResult{}, mkerr.IllegalAction("mana search rerolls one or two dice")
	}
	for _, idx := range a.DieIndices {
		if idx < 0 || idx >= len(g.Source) {
			return ApplyResult{}, mkerr.IllegalAction("die index out of range")
		}
	}

	u.Save(g)
	colors := []catalog.ManaColor{
		catalog.ManaRed, catalog.ManaBlue, catalog.ManaGreen,
		catalog.ManaWhite, catalog.ManaGold, catalog.ManaBlack,
	}
	for _, idx := range a.DieIndices {
		g.Source[idx].Color = colors[rng.RollIndex(&g.RNG, len(colors))]
	}
	player.Flags = player.Flags.Set(state.FlagTacticFlipped)

	g.ActionEpoch++
	u.SetCheckpoint()
	return ApplyResult{}, nil
}

func (d *Dispatcher) applyDeclareRest(g *state.GameState, u *undo.Stack, player *state.PlayerState) (ApplyResult, error) {
	if player.Flags.Has(state.FlagHasRestedThisTurn) {
		return ApplyResult{}, mkerr.IllegalAction("already rested this turn")
	}

	u.Save(g)
	player.Flags = player.Flags.Set(state.FlagIsResting)

	g.ActionEpoch++
	return ApplyResult{}, nil
}

// applyCompleteRest discards the wound at DiscardHandIndex (nil when the
// hand holds no wound to clear) and ends the resting process, leaving
// EndTurn as the only way forward.
func (d *Dispatcher) applyCompleteRest(g *state.GameState, u *undo.Stack, player *state.PlayerState, a action.CompleteRest) (ApplyResult, error) {
	if !player.Flags.Has(state.FlagIsResting) {
		return ApplyResult{}, mkerr.IllegalAction("not currently resting")
	}

	u.Save(g)
	if a.DiscardHandIndex != nil {
		idx := *a.DiscardHandIndex
		if idx < 0 || idx >= len(player.Hand) || player.Hand[idx] != catalog.WoundCardID {
			return ApplyResult{}, mkerr.IllegalAction("discard index does not name a wound in hand")
		}
		player.Discard = append(player.Discard, player.Hand[idx])
		player.Hand = append(player.Hand[:idx], player.Hand[idx+1:]...)
	}
	player.Flags = player.Flags.Clear(state.FlagIsResting)
	player.Flags = player.Flags.Set(state.FlagHasRestedThisTurn | state.FlagHasTakenActionThisTurn)

	g.ActionEpoch++
	return ApplyResult{}, nil
}

// applyEndTurnAction enforces the end-of-turn hand limit before advancing:
// a hand over the limit suspends on a DiscardForHandLimit pending rather
// than ending the turn outright.
func (d *Dispatcher) applyEndTurnAction(g *state.GameState, u *undo.Stack, player *state.PlayerState) (ApplyResult, error) {
	u.Save(g)

	limit := player.HandLimit()
	if over := len(player.Hand) - limit; over > 0 {
		player.Pending.Active = state.DiscardPending{Count: over, Purpose: state.DiscardForHandLimit}
		g.ActionEpoch++
		return ApplyResult{PendingKind: state.PendingDiscard}, nil
	}

	result := d.advanceTurn(g)
	g.ActionEpoch++
	return result, nil
}

// advanceTurn clears the ending player's turn-scoped state and moves to
// the next player in TurnOrder, rolling the round over via advanceRound
// once every player has gone.
func (d *Dispatcher) advanceTurn(g *state.GameState) ApplyResult {
	player := g.CurrentPlayer()
	player.ClearTurnAccumulators()

	g.CurrentPlayerIndex++
	if g.CurrentPlayerIndex >= len(g.TurnOrder) {
		return d.advanceRound(g)
	}

	next := g.CurrentPlayer()
	enginebus.Publish(d.Bus, enginebus.NewTurnStarted(next.ID, g.Round))
	return ApplyResult{TurnEnded: true}
}

// advanceRound refreshes every shared offer, clears round-scoped player
// state, and either ends the game (the scenario's round counter ran out)
// or opens the next round's tactics selection. The unit offer scales back
// up to playerCount+2 the same way CreateUnitOffer does at setup.
func (d *Dispatcher) advanceRound(g *state.GameState) ApplyResult {
	enginebus.Publish(d.Bus, enginebus.NewRoundEnded(g.Round))

	if g.Dummy != nil {
		dummy.ProcessOfferGains(g.Dummy, &g.AAOffer, g.SpellOffer)
	}

	g.AAOffer = catalog.RefreshOffer(g.AAOffer)
	g.SpellOffer = catalog.RefreshOffer(g.SpellOffer)
	g.UnitOffer, g.UnitDeck = catalog.RefreshUnitOffer(g.UnitOffer, g.UnitDeck, len(g.Players)+2)

	for _, p := range g.Players {
		p.SelectedTactic = ""
		p.Flags = p.Flags.Clear(state.FlagTacticFlipped | state.FlagRoundOrderTokenFlipped)
		p.SkillCooldowns.ClearRound()
		p.Modifiers.ExpireScope(state.ScopePlayerRound)
	}

	if g.Round >= uint32(g.ScenarioConfig.TotalRounds) {
		g.Phase = catalog.PhaseEnded
		g.GameEnded = true
		return ApplyResult{RoundEnded: true, GameEnded: true}
	}

	g.Round++
	if g.Round > uint32(g.ScenarioConfig.DayRounds) {
		g.TimeOfDay = catalog.Night
	}
	g.RoundPhase = catalog.RoundTacticsSelection
	g.CurrentPlayerIndex = 0

	if g.Dummy != nil {
		dummy.PrepareRound(g)
	}

	return ApplyResult{RoundEnded: true}
}
