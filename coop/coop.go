// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package coop implements the cooperative-assault proposal/response/cancel
// flow: a player adjacent to an unconquered city may invite other players
// also adjacent to it to split its garrison and assault it together. Every
// invitee must accept before the assault goes forward; one decline cancels
// the whole proposal.
package coop

import (
	"github.com/mage-knight-digital/mkengine/catalog"
	"github.com/mage-knight-digital/mkengine/combat"
	"github.com/mage-knight-digital/mkengine/hexcoord"
	"github.com/mage-knight-digital/mkengine/mkerr"
	"github.com/mage-knight-digital/mkengine/rng"
	"github.com/mage-knight-digital/mkengine/state"
)

// maxPartitions caps how many garrison distributions EnumeratePartitions
// returns. A six-enemy garrison split five ways already has over two
// hundred valid distributions; nothing downstream needs an exhaustive set
// merely to offer legal Propose actions, so enumeration stops early and
// reports the cut via its truncated return rather than silently returning
// a partial set indistinguishable from a complete one.
const maxPartitions = 64

// FindEligibleInvitees returns every other player index adjacent to hex
// who hasn't yet taken an action this turn and whose Round Order token
// isn't already flipped — the same eligibility a proposer itself must meet
// to propose in the first place.
func FindEligibleInvitees(g *state.GameState, proposerIdx int, hex hexcoord.HexCoord) []int {
	var invitees []int
	for idx, p := range g.Players {
		if idx == proposerIdx {
			continue
		}
		if !eligible(p, hex) {
			continue
		}
		invitees = append(invitees, idx)
	}
	return invitees
}

func eligible(p *state.PlayerState, hex hexcoord.HexCoord) bool {
	if p.Position == nil || !p.Position.IsAdjacent(hex) {
		return false
	}
	if p.Flags.Has(state.FlagHasTakenActionThisTurn) || p.Flags.Has(state.FlagRoundOrderTokenFlipped) {
		return false
	}
	return true
}

// EnumeratePartitions returns every way to split garrisonSize enemies
// across slotCount participants (each share a nonnegative count, shares
// summing to garrisonSize), capped at maxPartitions.
func EnumeratePartitions(garrisonSize, slotCount int) (partitions [][]int, truncated bool) {
	if slotCount <= 0 {
		return nil, false
	}
	var cur []int
	var rec func(remaining, slotsLeft int)
	rec = func(remaining, slotsLeft int) {
		if truncated {
			return
		}
		if slotsLeft == 1 {
			if len(partitions) >= maxPartitions {
				truncated = true
				return
			}
			row := append(append([]int(nil), cur...), remaining)
			partitions = append(partitions, row)
			return
		}
		for share := 0; share <= remaining; share++ {
			cur = append(cur, share)
			rec(remaining-share, slotsLeft-1)
			cur = cur[:len(cur)-1]
			if truncated {
				return
			}
		}
	}
	rec(garrisonSize, slotCount)
	return partitions, truncated
}

// cityGarrison returns the garrison defending the unconquered city at hex.
func cityGarrison(g *state.GameState, hex hexcoord.HexCoord) ([]state.EnemyToken, error) {
	h, ok := g.Map.Hexes[hex]
	if !ok || h.Site == nil || h.Site.Type != catalog.SiteCity {
		return nil, mkerr.IllegalAction("no city at the given hex")
	}
	if h.Site.IsConquered {
		return nil, mkerr.IllegalAction("city is already conquered")
	}
	if len(h.Site.Garrison) == 0 {
		return nil, mkerr.IllegalAction("city has no garrison to assault")
	}
	return h.Site.Garrison, nil
}

// Propose opens a cooperative assault proposal against the city at hex,
// inviting invited with distribution naming how many garrison enemies
// each participant (proposer included, keyed by its own player index)
// would receive if everyone accepts.
func Propose(g *state.GameState, proposerIdx int, hex hexcoord.HexCoord, invited []int, distribution map[int]int) error {
	if g.PendingCooperativeAssault != nil {
		return mkerr.IllegalAction("a cooperative assault proposal is already pending")
	}
	garrison, err := cityGarrison(g, hex)
	if err != nil {
		return err
	}
	if len(invited) == 0 {
		return mkerr.IllegalAction("cooperative assault needs at least one invitee")
	}

	total := distribution[proposerIdx]
	for _, idx := range invited {
		total += distribution[idx]
	}
	if total != len(garrison) {
		return mkerr.IllegalAction("distribution does not account for every garrison enemy")
	}

	g.PendingCooperativeAssault = &state.CooperativeProposal{
		ProposerIdx:       proposerIdx,
		HexCoord:          hex,
		InvitedPlayerIdxs: append([]int(nil), invited...),
		Distribution:      cloneDistribution(distribution),
	}
	return nil
}

// Cancel withdraws proposerIdx's own pending proposal.
func Cancel(g *state.GameState, proposerIdx int) error {
	p := g.PendingCooperativeAssault
	if p == nil || p.ProposerIdx != proposerIdx {
		return mkerr.IllegalAction("no cancellable cooperative assault proposal")
	}
	g.PendingCooperativeAssault = nil
	return nil
}

// Respond records playerIdx's accept/decline of the pending proposal. A
// decline cancels the proposal outright. Once every invitee has accepted,
// the assault resolves immediately: every participant's Round Order token
// flips and the garrison is queued for each participant's own combat.
func Respond(g *state.GameState, playerIdx int, accept bool) error {
	p := g.PendingCooperativeAssault
	if p == nil || !containsInt(p.InvitedPlayerIdxs, playerIdx) || containsInt(p.AcceptedPlayerIdxs, playerIdx) {
		return mkerr.IllegalAction("no pending cooperative assault invitation for this player")
	}
	if !accept {
		g.PendingCooperativeAssault = nil
		return nil
	}

	p.AcceptedPlayerIdxs = append(p.AcceptedPlayerIdxs, playerIdx)
	if len(p.AcceptedPlayerIdxs) < len(p.InvitedPlayerIdxs) {
		return nil
	}
	return resolve(g, p)
}

// resolve flips every participant's Round Order token, shuffles the city's
// garrison, splits it per the proposal's distribution (a participant with
// a zero share gets no queue entry), and starts the first queued combat —
// the proposer's own unless its share is zero. StartNextQueued carries the
// rest forward as each combat ends.
func resolve(g *state.GameState, p *state.CooperativeProposal) error {
	garrison, err := cityGarrison(g, p.HexCoord)
	if err != nil {
		g.PendingCooperativeAssault = nil
		return err
	}
	shuffled := append([]state.EnemyToken(nil), garrison...)
	rng.Shuffle(&g.RNG, shuffled)

	participants := append([]int{p.ProposerIdx}, p.InvitedPlayerIdxs...)
	var queue []state.CoopAssignment
	offset := 0
	for _, idx := range participants {
		n := p.Distribution[idx]
		if n > len(shuffled)-offset {
			n = len(shuffled) - offset
		}
		if n > 0 {
			queue = append(queue, state.CoopAssignment{
				PlayerIdx: idx,
				Enemies:   append([]state.EnemyToken(nil), shuffled[offset:offset+n]...),
			})
			offset += n
		}

		g.Players[idx].Flags = g.Players[idx].Flags.Set(state.FlagRoundOrderTokenFlipped)
	}

	hex := g.Map.Hexes[p.HexCoord]
	hex.Site.Garrison = nil

	cityHex := p.HexCoord
	g.PendingCooperativeAssault = nil
	g.CoopQueue = queue
	g.CoopCityHex = &cityHex
	g.CoopProposerID = g.Players[p.ProposerIdx].ID
	g.CoopAllDefeated = true
	StartNextQueued(g)
	return nil
}

// StartNextQueued pops the next queued participant, if any, and installs
// their CombatState as g.Combat. Called once when a proposal resolves and
// again by the dispatcher every time a cooperative participant's combat
// ends, until the queue drains.
func StartNextQueued(g *state.GameState) bool {
	if len(g.CoopQueue) == 0 {
		g.CoopCityHex = nil
		return false
	}
	next := g.CoopQueue[0]
	g.CoopQueue = g.CoopQueue[1:]
	player := g.Players[next.PlayerIdx]
	g.Combat = combat.EnterCombat(player.ID, next.Enemies)
	return true
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

func cloneDistribution(d map[int]int) map[int]int {
	out := make(map[int]int, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}
