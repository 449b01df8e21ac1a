// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package state

import "github.com/mage-knight-digital/mkengine/hexcoord"

// CooperativeProposal is a pending invitation to jointly assault the city
// at HexCoord: who proposed it, which other players are invited, which of
// those invitees have accepted so far, and how the garrison would split
// across every participant (proposer included) if the proposal goes
// through. A proposal resolves the instant every invitee has responded —
// one decline cancels the whole thing, matching the board game's
// all-or-nothing cooperative assault rule.
type CooperativeProposal struct {
	ProposerIdx        int
	HexCoord           hexcoord.HexCoord
	InvitedPlayerIdxs  []int
	AcceptedPlayerIdxs []int
	Distribution       map[int]int // playerIdx -> garrison enemies assigned
}

// Clone returns a deep copy.
func (p *CooperativeProposal) Clone() *CooperativeProposal {
	if p == nil {
		return nil
	}
	out := *p
	out.InvitedPlayerIdxs = append([]int(nil), p.InvitedPlayerIdxs...)
	out.AcceptedPlayerIdxs = append([]int(nil), p.AcceptedPlayerIdxs...)
	out.Distribution = make(map[int]int, len(p.Distribution))
	for k, v := range p.Distribution {
		out.Distribution[k] = v
	}
	return &out
}

// CoopAssignment is one accepted cooperative-assault participant's still-
// owed combat: their player index and the garrison subset assigned to
// them. GameState holds at most one active CombatState, so accepted
// participants fight their subset one after another (queued here) rather
// than simultaneously — see DESIGN.md.
type CoopAssignment struct {
	PlayerIdx int
	Enemies   []EnemyToken
}

// Clone returns a deep copy.
func (a CoopAssignment) Clone() CoopAssignment {
	out := a
	out.Enemies = make([]EnemyToken, len(a.Enemies))
	for i, e := range a.Enemies {
		out.Enemies[i] = e.Clone()
	}
	return out
}
