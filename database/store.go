package database

import (
	"sync"

	"commuterhub/models"
)

// StateStore is the synchronous state container holding the profile, the
// reservation ledger, and the resource catalog. Writes are observed by the
// next State() call with no propagation delay.
//
// The assistant reads the ledger and commits within a single turn. Nothing
// here enforces cross-writer locking: the design assumes the assistant's
// commit step is the sole mutation path while a turn is in flight. Store
// implementations only guarantee that a single Update call runs its mutator
// atomically.
type StateStore interface {
	State() models.AppState
	Update(mutator func(models.AppState) models.AppState)
}

// MemoryStateStore keeps the application state in memory. It is the default
// store for tests and redis/mongo-less runs.
type MemoryStateStore struct {
	mu    sync.Mutex
	state models.AppState
}

// NewMemoryStateStore creates a store seeded with the given state.
func NewMemoryStateStore(initial models.AppState) *MemoryStateStore {
	return &MemoryStateStore{state: initial}
}

// DefaultResources is the static resource catalog of the commuter hub.
func DefaultResources() []models.Resource {
	return []models.Resource{
		{ID: "1", Name: "Commuter Lockers", Description: "Day-use lockers in the Commuter Space (73 Tremont St).", Location: "73 Tremont St"},
		{ID: "2", Name: "Group Study Room A", Description: "Mildred F. Sawyer Library — 2 hrs max.", Location: "Mildred F. Sawyer Library"},
		{ID: "3", Name: "Group Study Room B", Description: "Mildred F. Sawyer Library — whiteboard + screen.", Location: "Mildred F. Sawyer Library"},
		{ID: "4", Name: "Bike / E-scooter Rack", Description: "Secured racks at 20 Summerset St.", Location: "20 Summerset St"},
	}
}

func (s *MemoryStateStore) State() models.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneState(s.state)
}

func (s *MemoryStateStore) Update(mutator func(models.AppState) models.AppState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = mutator(cloneState(s.state))
}

// cloneState copies the slices so callers cannot alias the stored ledger.
func cloneState(st models.AppState) models.AppState {
	out := st
	out.Reservations = make([]models.Reservation, len(st.Reservations))
	copy(out.Reservations, st.Reservations)
	out.Resources = make([]models.Resource, len(st.Resources))
	copy(out.Resources, st.Resources)
	return out
}
