// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package action

import (
	"sort"

	"github.com/mage-knight-digital/mkengine/catalog"
	"github.com/mage-knight-digital/mkengine/ids"
	"github.com/mage-knight-digital/mkengine/state"
)

// enumerateTactics emits one SelectTactic per still-available tactic, in
// lexicographic ID order (category 1).
func enumerateTactics(g *state.GameState, actions *[]LegalAction) {
	available := catalog.GetTacticsForTime(g.TimeOfDay)
	taken := make(map[ids.TacticID]bool)
	for _, p := range g.Players {
		if p.SelectedTactic != "" {
			taken[p.SelectedTactic] = true
		}
	}
	var remaining []ids.TacticID
	for _, t := range available {
		if !taken[t] {
			remaining = append(remaining, t)
		}
	}
	sort.Slice(remaining, func(i, j int) bool { return remaining[i] < remaining[j] })
	for _, t := range remaining {
		*actions = append(*actions, SelectTactic{TacticID: t})
	}
}
