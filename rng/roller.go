// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package rng

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// Roller adapts a deterministic State to the dice.Roller interface so
// catalog code that wants "roll me a number" can depend on the library's
// abstraction rather than calling NextInt directly. dice.CryptoRoller
// cannot be used here — its crypto/rand source breaks the replay contract —
// so this is our own Roller implementation, not a swap of the interface.
type Roller struct {
	state *State
}

// AsRoller wraps a *State as a dice.Roller.
func AsRoller(s *State) *Roller {
	return &Roller{state: s}
}

var _ dice.Roller = (*Roller)(nil)

// Roll returns a deterministic value from 1 to size inclusive.
func (r *Roller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, fmt.Errorf("rng: invalid die size %d", size)
	}
	return r.state.NextInt(1, size), nil
}

// RollN rolls count dice of the given size, in order.
func (r *Roller) RollN(count, size int) ([]int, error) {
	if size <= 0 {
		return nil, fmt.Errorf("rng: invalid die size %d", size)
	}
	if count < 0 {
		return nil, fmt.Errorf("rng: invalid die count %d", count)
	}
	out := make([]int, count)
	for i := 0; i < count; i++ {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// RollIndex picks a uniform index in [0, n) by rolling an n-sided die
// through AsRoller and shifting the 1..n result down by one. Call sites
// that want "pick one of n options" — a Source die showing one of six
// ManaColor faces, for instance — go through this instead of NextInt
// directly, so the dice.Roller abstraction is the one path any "roll me a
// number" request actually takes. NextInt(1, n)-1 and NextInt(0, n-1)
// consume the generator identically (same span, same counter advance), so
// this never shifts an existing golden value's RNG stream.
func RollIndex(s *State, n int) int {
	if n <= 0 {
		return 0
	}
	v, err := AsRoller(s).Roll(n)
	if err != nil {
		return 0
	}
	return v - 1
}
