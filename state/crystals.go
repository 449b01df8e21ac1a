// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package state

import (
	"github.com/KirkDiggler/rpg-toolkit/mechanics/resources"

	"github.com/mage-knight-digital/mkengine/catalog"
)

// maxCrystalsPerColor is the per-color crystal cap (spec §3: 0..=3).
const maxCrystalsPerColor = 3

// maxTotalCrystals is the hard cap across all four colors (spec §3:
// sum(crystals) <= 9 — excess gains are lost, not an error).
const maxTotalCrystals = 9

// CrystalPool holds a player's basic-color crystal counts in
// resources.Counter cells (capped 0..=3 each), the way the teacher tracks
// any small per-owner consumable count rather than a hand-rolled map.
type CrystalPool struct {
	pool *resources.Pool
}

// NewCrystalPool creates an empty crystal pool with all four basic colors
// registered at zero.
func NewCrystalPool() *CrystalPool {
	p := resources.NewPool()
	for _, c := range catalog.AllBasicColors {
		p.AddCounter(resources.NewCounter(string(c), maxCrystalsPerColor))
	}
	return &CrystalPool{pool: p}
}

// Count returns the current crystal count of one color.
func (c *CrystalPool) Count(color catalog.BasicManaColor) int {
	counter, ok := c.pool.GetCounter(string(color))
	if !ok {
		return 0
	}
	return counter.Count
}

// Total returns the sum of all four colors.
func (c *CrystalPool) Total() int {
	total := 0
	for _, color := range catalog.AllBasicColors {
		total += c.Count(color)
	}
	return total
}

// Gain adds n crystals of color, clamped to the per-color cap and to the
// sum(crystals) <= 9 hard cap (spec §3 invariant) — any excess is simply
// lost, not an error.
func (c *CrystalPool) Gain(color catalog.BasicManaColor, n int) {
	if n <= 0 {
		return
	}
	counter, ok := c.pool.GetCounter(string(color))
	if !ok {
		return
	}
	room := maxCrystalsPerColor - counter.Count
	if room <= 0 {
		return
	}
	if n > room {
		n = room
	}
	if remaining := maxTotalCrystals - c.Total(); n > remaining {
		n = remaining
	}
	if n > 0 {
		_ = counter.IncrementBy(n)
	}
}

// Spend removes n crystals of color. Returns false (no-op) if fewer than n
// are available — callers must check affordability before spending.
func (c *CrystalPool) Spend(color catalog.BasicManaColor, n int) bool {
	if n <= 0 {
		return true
	}
	counter, ok := c.pool.GetCounter(string(color))
	if !ok || counter.Count < n {
		return false
	}
	counter.DecrementBy(n)
	return true
}

// Clone returns a deep copy of the pool.
func (c *CrystalPool) Clone() *CrystalPool {
	out := NewCrystalPool()
	for _, color := range catalog.AllBasicColors {
		if n := c.Count(color); n > 0 {
			out.Gain(color, n)
		}
	}
	return out
}
