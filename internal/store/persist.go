// Package store implements the two state owners of the application: the
// expense store and the project store. Each owns its collections, applies
// mutations sequentially, and recomputes derived views from current state.
//
// Both stores start with built-in seed data behind a hydration gate: until
// Hydrate has run, derivations return empty results and mutations are
// rejected with ErrNotHydrated. Hydrate replaces the seed data with the
// content of the store's durable slot when one exists, and flips the gate
// exactly once. After every mutation the owning collections are written
// back to the slot; those writes are fire-and-forget and never fail the
// mutation.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
)

var (
	// ErrNotFound is returned by mutations addressing an unknown identifier.
	// Callers wanting idempotent deletes may ignore it.
	ErrNotFound = errors.New("record not found")

	// ErrNotHydrated is returned by mutations invoked before Hydrate.
	ErrNotHydrated = errors.New("store not hydrated")
)

// Persister is the durable-slot port the stores write through. A nil
// Persister is valid and leaves the store purely in-memory.
type Persister interface {
	// Load returns the slot's payload, or ok=false when the slot has never
	// been written.
	Load(ctx context.Context, name string) (data []byte, ok bool, err error)

	// Save replaces the slot's payload.
	Save(ctx context.Context, name string, data []byte) error
}

// persistSlot marshals payload and writes it to the named slot. Failures
// are logged and dropped: the in-memory mutation already happened and the
// next successful save catches the slot up.
func persistSlot(ctx context.Context, p Persister, name string, payload any) {
	if p == nil {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to encode slot payload", "slot", name, "error", err)
		return
	}
	if err := p.Save(ctx, name, data); err != nil {
		slog.WarnContext(ctx, "Failed to persist slot", "slot", name, "error", err)
	}
}
