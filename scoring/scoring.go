// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scoring computes end-game scores from a finished GameState. It is
// a pure function over state: nothing here mutates the game, draws from the
// RNG, or talks to any presentation layer — turning a PlayerScore slice into
// a leaderboard display is outside this package.
package scoring

import (
	"sort"

	"github.com/mage-knight-digital/mkengine/catalog"
	"github.com/mage-knight-digital/mkengine/ids"
	"github.com/mage-knight-digital/mkengine/state"
)

// Achievement is one named end-game bonus.
type Achievement string

const (
	// AchievementGreatestKnight rewards the player(s) with the highest Fame.
	AchievementGreatestKnight Achievement = "greatest_knight"
	// AchievementGreatestLeader rewards the player(s) who recruited the most units.
	AchievementGreatestLeader Achievement = "greatest_leader"
	// AchievementCityConqueror awards a bonus per city the player conquered.
	AchievementCityConqueror Achievement = "city_conqueror"
)

const achievementBonus = 2
const cityConquestBonus = 1

// PlayerScore is one player's final tally: the fame-derived base score,
// the bonus each achievement contributed, the summed total, and the
// player's rank (competition ranking — tied totals share a rank, and the
// next distinct total skips the tied positions).
type PlayerScore struct {
	PlayerID     ids.PlayerID
	BaseScore    int
	Achievements map[Achievement]int
	Total        int
	Rank         int
}

// CalculateFinalScores tallies every human player's final score. The solo
// dummy player never competes for rank and is excluded.
func CalculateFinalScores(g *state.GameState) []PlayerScore {
	scores := make([]PlayerScore, len(g.Players))
	for i, p := range g.Players {
		scores[i] = PlayerScore{
			PlayerID:     p.ID,
			BaseScore:    p.Fame,
			Achievements: map[Achievement]int{},
		}
	}

	awardTiedMax(scores, g.Players, AchievementGreatestKnight, func(p *state.PlayerState) int { return p.Fame })
	awardTiedMax(scores, g.Players, AchievementGreatestLeader, func(p *state.PlayerState) int { return len(p.Units) })
	awardCityConquests(scores, g)

	for i := range scores {
		total := scores[i].BaseScore
		for _, bonus := range scores[i].Achievements {
			total += bonus
		}
		scores[i].Total = total
	}

	assignRanks(scores)
	return scores
}

// awardTiedMax grants achievementBonus to every player tied for the
// highest value of metric (ties share the achievement rather than
// splitting it, matching the board game's tied-achievement rule).
func awardTiedMax(scores []PlayerScore, players []*state.PlayerState, a Achievement, metric func(*state.PlayerState) int) {
	if len(players) == 0 {
		return
	}
	best := metric(players[0])
	for _, p := range players[1:] {
		if v := metric(p); v > best {
			best = v
		}
	}
	if best <= 0 {
		return
	}
	for i, p := range players {
		if metric(p) == best {
			scores[i].Achievements[a] = achievementBonus
		}
	}
}

// awardCityConquests grants cityConquestBonus per conquered city a player
// owns on the board.
func awardCityConquests(scores []PlayerScore, g *state.GameState) {
	byOwner := make(map[ids.PlayerID]int)
	for _, hex := range g.Map.Hexes {
		if hex.Site == nil || hex.Site.Type != catalog.SiteCity || !hex.Site.IsConquered || hex.Site.Owner == nil {
			continue
		}
		byOwner[*hex.Site.Owner]++
	}
	for i, s := range scores {
		if n := byOwner[s.PlayerID]; n > 0 {
			scores[i].Achievements[AchievementCityConqueror] = n * cityConquestBonus
		}
	}
}

// assignRanks sorts by descending total (stable on input order for exact
// ties) and assigns competition ranking: equal totals share a rank, and
// the next distinct total's rank accounts for every player ahead of it.
func assignRanks(scores []PlayerScore) {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return scores[order[a]].Total > scores[order[b]].Total })

	for pos, idx := range order {
		if pos > 0 && scores[order[pos-1]].Total == scores[idx].Total {
			scores[idx].Rank = scores[order[pos-1]].Rank
		} else {
			scores[idx].Rank = pos + 1
		}
	}
}
