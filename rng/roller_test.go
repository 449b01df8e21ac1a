// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRollerRollIsWithinRange(t *testing.T) {
	s := New(7)
	r := AsRoller(s)
	for i := 0; i < 50; i++ {
		v, err := r.Roll(6)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 6)
	}
}

func TestRollerRollRejectsNonPositiveSize(t *testing.T) {
	r := AsRoller(New(1))
	_, err := r.Roll(0)
	assert.Error(t, err)
}

func TestRollerRollNReturnsCountValues(t *testing.T) {
	r := AsRoller(New(3))
	vs, err := r.RollN(5, 10)
	require.NoError(t, err)
	assert.Len(t, vs, 5)
	for _, v := range vs {
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 10)
	}
}

func TestRollerRollNRejectsNegativeCount(t *testing.T) {
	r := AsRoller(New(1))
	_, err := r.RollN(-1, 6)
	assert.Error(t, err)
}
