package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ruangtenang/backend/internal/model/emergency"
)

// EmergencyStore keeps emergency-contact requests. Requests arrive
// unresolved and are only ever flipped to resolved by an operator.
type EmergencyStore struct {
	mu       sync.RWMutex
	requests map[string]emergency.Request
	order    []string
}

func NewEmergencyStore() *EmergencyStore {
	return &EmergencyStore{requests: make(map[string]emergency.Request)}
}

// Create stores a request with a fresh id, creation time and IsResolved
// forced to false.
func (s *EmergencyStore) Create(r emergency.Request) (emergency.Request, error) {
	r.ID = uuid.NewString()
	r.IsResolved = false
	r.CreatedAt = time.Now().UTC()

	s.mu.Lock()
	s.requests[r.ID] = r
	s.order = append(s.order, r.ID)
	s.mu.Unlock()

	return r, nil
}

// Get retrieves a request by generated id.
func (s *EmergencyStore) Get(id string) (emergency.Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.requests[id]
	if !ok {
		return emergency.Request{}, ErrNotFound
	}
	return r, nil
}

// All returns every request, most recent first.
func (s *EmergencyStore) All() ([]emergency.Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]emergency.Request, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		all = append(all, s.requests[s.order[i]])
	}
	return all, nil
}

// Resolve marks the identified request as handled.
func (s *EmergencyStore) Resolve(id string) (emergency.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.requests[id]
	if !ok {
		return emergency.Request{}, ErrNotFound
	}

	r.IsResolved = true
	s.requests[id] = r
	return r, nil
}
