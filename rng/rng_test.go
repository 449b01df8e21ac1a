// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextFloat64GoldenValues(t *testing.T) {
	want := []float64{
		0.99981109, 0.83618023, 0.03719551, 0.06007404, 0.62949687,
		0.84521397, 0.37396136, 0.54259625, 0.14702515, 0.21419446,
	}
	s := New(42)
	for i, w := range want {
		got := s.NextFloat64()
		assert.InDelta(t, w, got, 1e-8, "output %d", i)
	}
}

func TestNextIntGolden(t *testing.T) {
	s := New(42)
	got := s.NextInt(0, 5)
	assert.Equal(t, 5, got)
	assert.Equal(t, uint32(1), s.Counter)
}

func TestShuffleGolden(t *testing.T) {
	s := New(42)
	slice := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	Shuffle(s, slice)
	assert.Equal(t, []int{2, 6, 5, 1, 4, 3, 8, 0, 7, 9}, slice)
	assert.Equal(t, uint32(9), s.Counter)
}

func TestShuffleEmptyAndSingleConsumeNoCounter(t *testing.T) {
	s := New(1)
	empty := []int{}
	Shuffle(s, empty)
	assert.Equal(t, uint32(0), s.Counter)

	single := []int{7}
	Shuffle(s, single)
	assert.Equal(t, uint32(0), s.Counter)
	assert.Equal(t, []int{7}, single)
}

func TestShuffleIsPermutation(t *testing.T) {
	s := New(99)
	slice := make([]int, 20)
	for i := range slice {
		slice[i] = i
	}
	Shuffle(s, slice)

	seen := make(map[int]bool, 20)
	for _, v := range slice {
		seen[v] = true
	}
	assert.Len(t, seen, 20)
}

func TestRollIndexMatchesNextIntZeroBased(t *testing.T) {
	s := New(42)
	got := RollIndex(s, 6)
	assert.Equal(t, 5, got)
	assert.Equal(t, uint32(1), s.Counter)
}

func TestRollIndexZeroWidthReturnsZeroWithoutConsumingCounter(t *testing.T) {
	s := New(1)
	assert.Equal(t, 0, RollIndex(s, 0))
	assert.Equal(t, uint32(0), s.Counter)
}

func TestDeterminismSameSeedSameStream(t *testing.T) {
	a := New(7)
	b := New(7)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.NextFloat64(), b.NextFloat64())
	}
}
