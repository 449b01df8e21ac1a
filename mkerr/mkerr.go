// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package mkerr maps the engine's five ApplyError variants onto
// rpgerr's structured, metadata-carrying error type instead of inventing a
// parallel error-code vocabulary.
package mkerr

import (
	"github.com/KirkDiggler/rpg-toolkit/rpgerr"
)

// EpochMismatch signals the caller enumerated actions against a state
// version that has since changed — it must re-enumerate before retrying.
func EpochMismatch(expected, got uint64) *rpgerr.Error {
	return rpgerr.New(rpgerr.CodeConflictingState, "action epoch mismatch: state has moved on",
		rpgerr.WithMeta("expected_epoch", expected),
		rpgerr.WithMeta("actual_epoch", got),
	)
}

// WrongPhase signals the action was submitted outside the game/round phase
// it requires — the enumerator should have filtered it out.
func WrongPhase(reason string) *rpgerr.Error {
	return rpgerr.New(rpgerr.CodeTimingRestriction, reason)
}

// WrongPlayer signals the action was submitted by a player who is not the
// active player (and not an invited cooperative-assault responder).
func WrongPlayer(playerIdx int) *rpgerr.Error {
	return rpgerr.New(rpgerr.CodeNotAllowed, "player is not active",
		rpgerr.WithMeta("player_idx", playerIdx),
	)
}

// IllegalAction signals a dispatcher-level sanity check failed. This
// indicates the enumerator under-constrained its own guard — a bug, not a
// normal rejection — but the caller can recover by re-enumerating.
func IllegalAction(reason string) *rpgerr.Error {
	return rpgerr.New(rpgerr.CodeInvalidState, reason)
}

// InvariantViolated is fatal: the state has become internally
// inconsistent. Callers should treat this as an abort-level condition.
func InvariantViolated(detail string) *rpgerr.Error {
	return rpgerr.New(rpgerr.CodeInternal, "invariant violated: "+detail)
}

// Code re-exports rpgerr.Code so callers needn't import rpgerr directly
// just to inspect a returned error's category.
type Code = rpgerr.Code

// CodeOf extracts the structured code from an error, CodeUnknown if it is
// not an *rpgerr.Error.
func CodeOf(err error) Code {
	return rpgerr.GetCode(err)
}
