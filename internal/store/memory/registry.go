// Package memory implements the in-memory activity registry backing the
// signup service. State lives for the process lifetime only.
package memory

import (
	"context"
	"slices"
	"sync"

	"example.com/signup/internal/domain"
)

// Registry is a mutex-guarded in-memory roster store.
type Registry struct {
	mu         sync.RWMutex
	activities domain.Registry
}

// NewRegistry builds a Registry holding a private copy of seed.
func NewRegistry(seed domain.Registry) *Registry {
	activities := make(domain.Registry, len(seed))
	for name, activity := range seed {
		activity.Participants = slices.Clone(activity.Participants)
		activities[name] = activity
	}
	return &Registry{activities: activities}
}

// List returns a copy of the registry that callers may retain and mutate
// without affecting the store.
func (r *Registry) List(ctx context.Context) (domain.Registry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(domain.Registry, len(r.activities))
	for name, activity := range r.activities {
		activity.Participants = slices.Clone(activity.Participants)
		out[name] = activity
	}
	return out, nil
}

// Signup appends email to the named activity's roster. Capacity is
// advertised but not checked, matching the product's current behaviour.
func (r *Registry) Signup(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return domain.ErrActivityNotFound
	}
	if slices.Contains(activity.Participants, email) {
		return domain.ErrAlreadyRegistered
	}

	activity.Participants = append(activity.Participants, email)
	r.activities[name] = activity
	return nil
}

// Unregister removes email from the named activity's roster, preserving the
// order of the remaining participants.
func (r *Registry) Unregister(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return domain.ErrActivityNotFound
	}
	idx := slices.Index(activity.Participants, email)
	if idx < 0 {
		return domain.ErrNotRegistered
	}

	activity.Participants = slices.Delete(activity.Participants, idx, idx+1)
	r.activities[name] = activity
	return nil
}
