// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package setup builds a fresh GameState for a scenario, matching the
// original engine's createGameWithPlayers flow: shuffle every deck, deal
// starting hands and crystals, place the board's starting tile, seed the
// enemy piles and offers, and (solo mode) stand up a dummy player, all
// against one deterministic RNG stream so two setups given the same seed
// and player list are byte-identical.
package setup

import (
	"sort"
	"strconv"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/KirkDiggler/rpg-toolkit/game"

	"github.com/mage-knight-digital/mkengine/catalog"
	"github.com/mage-knight-digital/mkengine/dummy"
	"github.com/mage-knight-digital/mkengine/enginebus"
	"github.com/mage-knight-digital/mkengine/hexcoord"
	"github.com/mage-knight-digital/mkengine/ids"
	"github.com/mage-knight-digital/mkengine/mkerr"
	"github.com/mage-knight-digital/mkengine/rng"
	"github.com/mage-knight-digital/mkengine/state"
)

// sourceDieCount is fixed at six regardless of player count — ids.go's
// SourceDieID doc comment ("one of the six mana source dice") fixes this
// as an engine constant, not a scenario parameter.
const sourceDieCount = 6

// sourceDiePalette is the six faces a Source die can show, the same
// palette applyRerollSourceDice draws from.
var sourceDiePalette = []catalog.ManaColor{
	catalog.ManaRed, catalog.ManaBlue, catalog.ManaGreen,
	catalog.ManaWhite, catalog.ManaGold, catalog.ManaBlack,
}

// Config names one new game: which scenario, which hero each human player
// plays (in turn-order-selection order — actual turn order is decided by
// tactic selection, not this slice's order), the RNG seed, and whether a
// solo dummy player joins.
type Config struct {
	ScenarioID   ids.ScenarioID
	PlayerHeroes []catalog.Hero
	Seed         uint32
	WithDummy    bool

	// Bus receives a GameStarted event once setup finishes. Nil is valid —
	// enginebus.Publish no-ops, matching every other package's treatment of
	// observability as optional.
	Bus events.EventBus
}

// NewGame builds a complete, ready-to-play GameState: RoundPhase is
// RoundTacticsSelection, every player has a dealt hand and starting
// crystals, and every shared deck/offer/pile is shuffled and ready.
func NewGame(cfg Config) (*state.GameState, error) {
	if len(cfg.PlayerHeroes) == 0 {
		return nil, mkerr.IllegalAction("a game needs at least one player")
	}
	scenario, ok := catalog.GetScenario(cfg.ScenarioID)
	if !ok {
		return nil, mkerr.IllegalAction("unknown scenario id")
	}

	r := rng.New(cfg.Seed)

	g := &state.GameState{
		Phase:      catalog.PhaseRound,
		RoundPhase: catalog.RoundTacticsSelection,
		Round:      1,
		TimeOfDay:  catalog.Day,
		Map:        state.NewMapState(),
		ScenarioConfig: scenario,
	}

	placeStartTile(g)
	buildTileDecks(g, scenario, &r)
	buildSource(g, &r)
	buildEnemyPiles(g, &r)
	buildOffers(g, scenario, &r)
	g.TacticDeck = catalog.GetTacticsForTime(g.TimeOfDay)

	// gctx bundles the scenario's rules with bus access so buildPlayer's
	// hero-loading step can reach event publication without its own bus
	// parameter — the same Context[T]-wraps-data-plus-infrastructure shape
	// the event-driven packages already use.
	gctx := game.NewContext(cfg.Bus, scenario)

	for i, hero := range cfg.PlayerHeroes {
		player := buildPlayer(ids.PlayerID(playerSlot(i)), hero, gctx, &r)
		g.Players = append(g.Players, player)
		g.TurnOrder = append(g.TurnOrder, player.ID)
	}

	if cfg.WithDummy {
		used := make([]catalog.Hero, len(cfg.PlayerHeroes))
		copy(used, cfg.PlayerHeroes)
		hero := dummy.SelectHero(used, &r)
		g.Dummy = dummy.CreatePlayer(hero, &r)
		g.TurnOrder = insertDummyIntoTurnOrder(g.TurnOrder, scenario.DummyTacticOrder)
	}

	g.RNG = r
	enginebus.Publish(gctx.EventBus, enginebus.NewGameStarted(cfg.ScenarioID, g.TurnOrder))
	return g, nil
}

func playerSlot(i int) string {
	return "p" + strconv.Itoa(i+1)
}

// insertDummyIntoTurnOrder places the dummy's slot at the end of TurnOrder
// (DummyTacticAfterHumans, the only ordering mode this port's scenarios
// use). The slot lasts only until the first tactics selection completes:
// finalizeTurnOrder rebuilds TurnOrder from g.Players alone, so the dummy
// has no TurnOrder slot during player turns.
func insertDummyIntoTurnOrder(order []ids.PlayerID, mode catalog.DummyTacticOrder) []ids.PlayerID {
	switch mode {
	case catalog.DummyTacticAfterHumans:
		return append(order, dummy.PlayerID)
	default:
		return append(order, dummy.PlayerID)
	}
}

// placeStartTile plants the fixed home tile at the map's origin with no
// garrison on any of its hexes (it carries no sites).
func placeStartTile(g *state.GameState) {
	center := hexcoord.New(0, 0)
	hexes, _ := catalog.GetTileHexes(catalog.StartTileID)
	g.Map.Tiles = append(g.Map.Tiles, state.PlacedTile{Center: center, TileID: catalog.StartTileID})
	for _, h := range hexes {
		g.Map.Hexes[center.Add(h.Offset)] = &state.HexState{Terrain: h.Terrain}
	}
}

// buildTileDecks shuffles the countryside and core tile pools, clamped to
// the scenario's configured counts (a scenario may ask for more tiles
// than the catalog has registered; the deck simply uses every tile it
// has). City tiles are placed by scenario-specific setup rather than
// drawn through exploration, so they are not staged into TileDeck here.
func buildTileDecks(g *state.GameState, scenario catalog.ScenarioConfig, r *rng.State) {
	countryside := catalog.CountrysideTileIDs()
	rng.Shuffle(r, countryside)
	if scenario.CountrysideTileCount < len(countryside) {
		countryside = countryside[:scenario.CountrysideTileCount]
	}

	core := catalog.CoreTileIDs()
	rng.Shuffle(r, core)
	if scenario.CoreTileCount < len(core) {
		core = core[:scenario.CoreTileCount]
	}

	g.Map.TileDeck = state.TileDeck{Countryside: countryside, Core: core}
}

func buildSource(g *state.GameState, r *rng.State) {
	g.Source = make([]state.SourceDie, sourceDieCount)
	for i := range g.Source {
		g.Source[i] = state.SourceDie{
			ID:    ids.SourceDieID(playerSlot(i)),
			Color: sourceDiePalette[rng.RollIndex(r, len(sourceDiePalette))],
		}
	}
}

// buildEnemyPiles shuffles every color's full catalog membership into a
// fresh draw pile.
func buildEnemyPiles(g *state.GameState, r *rng.State) {
	g.EnemyPiles = make(map[catalog.EnemyColor]state.EnemyPile, len(catalog.AllEnemyColors))
	for _, color := range catalog.AllEnemyColors {
		members := catalog.EnemyPile(color)
		tokens := make([]state.EnemyToken, len(members))
		for i, enemyID := range members {
			tokens[i] = state.EnemyToken{
				TokenID:    ids.EnemyTokenID(string(enemyID) + "_" + strconv.Itoa(i+1)),
				Definition: enemyID,
			}
		}
		rng.Shuffle(r, tokens)
		g.EnemyPiles[color] = state.EnemyPile{Draw: tokens}
	}
}

func buildOffers(g *state.GameState, scenario catalog.ScenarioConfig, r *rng.State) {
	if scenario.AdvancedActionsAvailable {
		deck := catalog.AllAdvancedActionIDs()
		rng.Shuffle(r, deck)
		g.AAOffer = catalog.CreateAAOffer(deck)
	}
	if scenario.SpellsAvailable {
		deck := catalog.AllSpellIDs()
		rng.Shuffle(r, deck)
		g.SpellOffer = catalog.CreateSpellOffer(deck)
	}

	pool := catalog.RegularUnitPool()
	if scenario.EliteUnitsEnabled {
		pool = append(pool, catalog.EliteUnitPool()...)
	}
	rng.Shuffle(r, pool)
	g.UnitOffer, g.UnitDeck = catalog.CreateUnitOffer(pool, len(g.Players)+2)
}

// buildPlayer deals a shuffled starting deck, a five-card opening hand,
// starting crystals, and (when the scenario enables skills) the hero's two
// starting skills, placed at the board's origin. gctx carries the scenario
// rules plus bus access, publishing HeroLoaded once the hero's starting
// deck and skills are in place.
func buildPlayer(id ids.PlayerID, hero catalog.Hero, gctx game.Context[catalog.ScenarioConfig], r *rng.State) *state.PlayerState {
	scenario := gctx.Data
	player := state.NewPlayerState(id, hero)

	deck := catalog.BuildStartingDeck(hero)
	rng.Shuffle(r, deck)

	handSize := catalog.StartingHandSize()
	if handSize > len(deck) {
		handSize = len(deck)
	}
	player.Hand = append([]ids.CardID(nil), deck[:handSize]...)
	player.Deck = append([]ids.CardID(nil), deck[handSize:]...)

	color, count := catalog.HeroStartingCrystals(hero)
	player.Crystals.Gain(color, count)

	if scenario.SkillsEnabled {
		skills := catalog.HeroSkillPool(hero)
		sort.Slice(skills, func(i, j int) bool { return skills[i] < skills[j] })
		player.Skills = skills
	}

	origin := hexcoord.New(0, 0)
	player.Position = &origin

	enginebus.Publish(gctx.EventBus, enginebus.NewHeroLoaded(id, hero))
	return player
}
