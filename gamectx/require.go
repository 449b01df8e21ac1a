// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package gamectx

import "context"

// gameContextKey is the key type for storing GameContext in context.Context.
type gameContextKey struct{}

// WithGameContext wraps a context.Context with the provided GameContext.
//
// Example:
//
//	gameCtx := gamectx.NewGameContext(gamectx.GameContextConfig{
//	    Combatants: combat.AsRegistry(combatState, player),
//	})
//	ctx = gamectx.WithGameContext(ctx, gameCtx)
func WithGameContext(ctx context.Context, gameCtx *GameContext) context.Context {
	return context.WithValue(ctx, gameContextKey{}, gameCtx)
}

// Combatants retrieves the CombatantRegistry from the context. Returns the
// registry and true if found, nil and false otherwise.
//
// Example:
//
//	if registry, ok := gamectx.Combatants(ctx); ok {
//	    target := registry.GetCombatant(instanceID)
//	    // ... route damage to target
//	}
func Combatants(ctx context.Context) (CombatantRegistry, bool) {
	if gameCtx, ok := ctx.Value(gameContextKey{}).(*GameContext); ok && gameCtx != nil {
		return gameCtx.Combatants(), true
	}
	return nil, false
}

// RequireCombatants retrieves the CombatantRegistry from the context.
// Panics if no GameContext is present in the context.
//
// Use Combatants() instead if a missing context is a valid scenario (e.g.
// effects that can run both in and out of combat).
func RequireCombatants(ctx context.Context) CombatantRegistry {
	registry, ok := Combatants(ctx)
	if !ok {
		panic("RequireCombatants: no GameContext found in context")
	}
	return registry
}
