// Copyright (c) 2026 The Jukebot Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry

import "sync"

// Context is a pending poll context: models.RatingContext or
// models.BattleContext. Callers type-switch on the resolved value.
type Context any

// Registry maps transport-issued poll IDs to the context the poll was
// opened for. Entries live for the process lifetime: polls accept repeated
// answers and vote changes, so Resolve never removes. The map is shared by
// concurrently running handlers, hence the lock.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Context
}

func New() *Registry {
	return &Registry{entries: make(map[string]Context)}
}

// Register stores ctx under pollID. Poll IDs are unique for the process
// lifetime (the transport generates them), so collisions overwrite.
func (r *Registry) Register(pollID string, ctx Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[pollID] = ctx
}

// Resolve looks a poll ID up without consuming the entry. A missing entry
// means the poll predates this process or was never ours; callers treat
// that as "ignore", not as an error.
func (r *Registry) Resolve(pollID string) (Context, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ctx, ok := r.entries[pollID]
	return ctx, ok
}

// Len reports the number of pending contexts.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
