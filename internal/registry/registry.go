// Package registry holds the set of activities a user can track.
package registry

import (
	"fmt"
	"strings"
	"sync"

	"github.com/alexanderramin/activitylog/internal/domain"
)

// Registry is an append-only, case-insensitive set of activities.
type Registry struct {
	mu    sync.RWMutex
	items []domain.ActivityKind
	index map[string]int
}

// New creates a registry seeded with the given activities. Seeds that
// collide with an earlier title are dropped.
func New(seed ...domain.ActivityKind) *Registry {
	r := &Registry{index: make(map[string]int)}
	for _, a := range seed {
		_, _ = r.Append(a.Title, a.Icon)
	}
	return r
}

// NewDefault creates a registry holding the built-in activities.
func NewDefault() *Registry {
	return New(domain.BuiltinActivities()...)
}

// Find looks an activity up by title, ignoring case and surrounding spaces.
func (r *Registry) Find(title string) (domain.ActivityKind, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[strings.ToLower(strings.TrimSpace(title))]
	if !ok {
		return domain.ActivityKind{}, false
	}
	return r.items[i], true
}

// Append adds an activity. Title and icon are trimmed; a blank icon becomes
// domain.FallbackIcon. Blank or already-registered titles are rejected.
func (r *Registry) Append(title, icon string) (domain.ActivityKind, error) {
	a := domain.ActivityKind{
		Title: strings.TrimSpace(title),
		Icon:  strings.TrimSpace(icon),
	}
	if a.Title == "" {
		return domain.ActivityKind{}, domain.ErrEmptyTitle
	}
	if a.Icon == "" {
		a.Icon = domain.FallbackIcon
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.index[a.Key()]; exists {
		return domain.ActivityKind{}, fmt.Errorf("%q: %w", a.Title, domain.ErrDuplicateActivity)
	}
	r.index[a.Key()] = len(r.items)
	r.items = append(r.items, a)
	return a, nil
}

// List returns the activities in insertion order.
func (r *Registry) List() []domain.ActivityKind {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.ActivityKind, len(r.items))
	copy(out, r.items)
	return out
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
