// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package undo implements the snapshot-based undo stack of spec.md §4.10:
// a stack of full GameState clones pushed at reversibility boundaries, and
// a checkpoint barrier that clears the stack after any irreversible
// operation (RNG consumption, tile reveal, combat entry, end of turn).
// This replaces the original engine's closure-based rollback (recorded
// rollback lambdas per step) with plain deep clones — simpler to reason
// about for nested effects, acceptable given the small state size and
// per-turn cadence (see DESIGN.md).
package undo

import "github.com/mage-knight-digital/mkengine/state"

// Stack is the dispatcher's undo history for one game. It is not part of
// GameState itself (undoing is a property of the session driving the
// engine, not of the replayable state), so the dispatcher carries one
// alongside the GameState pointer it guards.
type Stack struct {
	snapshots    []*state.GameState
	checkpointed bool
}

// NewStack returns an empty, checkpointed stack (nothing to undo before
// the first reversible action is applied).
func NewStack() *Stack {
	return &Stack{checkpointed: true}
}

// Save pushes a deep clone of g. Called by the dispatcher before applying
// any reversible action, so g must be the pre-action state.
func (s *Stack) Save(g *state.GameState) {
	s.snapshots = append(s.snapshots, g.Clone())
	s.checkpointed = false
}

// SetCheckpoint clears the stack and raises the checkpoint barrier,
// called by the dispatcher after any irreversible action (explore, enemy
// token draw, combat entry, end turn, source reroll).
func (s *Stack) SetCheckpoint() {
	s.snapshots = nil
	s.checkpointed = true
}

// Clear resets the stack to its initial empty-and-checkpointed state.
func (s *Stack) Clear() {
	s.snapshots = nil
	s.checkpointed = true
}

// CanUndo reports whether Undo would succeed: the checkpoint barrier is
// not raised and at least one snapshot is on the stack.
func (s *Stack) CanUndo() bool {
	return !s.checkpointed && len(s.snapshots) > 0
}

// Undo pops and returns the most recent snapshot. The caller installs the
// returned state as the new current GameState; Undo itself never mutates
// the caller's state pointer. Returns ok=false if CanUndo() is false.
func (s *Stack) Undo() (*state.GameState, bool) {
	if !s.CanUndo() {
		return nil, false
	}
	n := len(s.snapshots) - 1
	snap := s.snapshots[n]
	s.snapshots[n] = nil
	s.snapshots = s.snapshots[:n]
	return snap, true
}

// Depth returns the number of snapshots currently on the stack, exposed
// for tests and client-state projection's "can undo" flag.
func (s *Stack) Depth() int {
	return len(s.snapshots)
}
