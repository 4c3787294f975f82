package pipeline

import (
	"context"
	"sort"
	"sync"
)

// Registry tracks in-flight enrichment runs by case id so they can be
// cancelled and enumerated. One run per case at a time.
type Registry struct {
	mu   sync.Mutex
	runs map[string]context.CancelFunc
}

// NewRegistry creates an empty run registry.
func NewRegistry() *Registry {
	return &Registry{runs: make(map[string]context.CancelFunc)}
}

// Register records a run's cancel function. Returns false when a run for
// the case is already in flight.
func (r *Registry) Register(caseID string, cancel context.CancelFunc) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.runs[caseID]; exists {
		return false
	}
	r.runs[caseID] = cancel
	return true
}

// Unregister removes a finished run.
func (r *Registry) Unregister(caseID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.runs, caseID)
}

// Cancel cancels an in-flight run. Returns false when no run is active
// for the case.
func (r *Registry) Cancel(caseID string) bool {
	r.mu.Lock()
	cancel, ok := r.runs[caseID]
	r.mu.Unlock()
	if !ok {
		return false
	}
	cancel()
	return true
}

// Active returns the case ids with runs in flight, sorted.
func (r *Registry) Active() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(r.runs))
	for id := range r.runs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
