package store

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ruangtenang/backend/internal/model/stress"
)

// StressStore keeps completed assessments. Records are immutable after
// Create; insertion order is tracked so Recent stays deterministic when
// completion times collide.
type StressStore struct {
	mu          sync.RWMutex
	assessments map[string]stress.Assessment
	order       []string
}

func NewStressStore() *StressStore {
	return &StressStore{assessments: make(map[string]stress.Assessment)}
}

// Create stores an assessment with a fresh id and completion time. The
// derived score and level are the caller's responsibility and are stored
// as given.
func (s *StressStore) Create(a stress.Assessment) (stress.Assessment, error) {
	a.ID = uuid.NewString()
	a.CompletedAt = time.Now().UTC()

	s.mu.Lock()
	s.assessments[a.ID] = a
	s.order = append(s.order, a.ID)
	s.mu.Unlock()

	return a, nil
}

// Get retrieves an assessment by generated id.
func (s *StressStore) Get(id string) (stress.Assessment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.assessments[id]
	if !ok {
		return stress.Assessment{}, ErrNotFound
	}
	return a, nil
}

// Recent returns up to limit assessments across all sessions, newest first.
// An empty store yields an empty slice, not an error.
func (s *StressStore) Recent(limit int) ([]stress.Assessment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Walk insertion order backwards so a stable sort keeps the later
	// submission first when completion times collide.
	all := make([]stress.Assessment, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		all = append(all, s.assessments[s.order[i]])
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CompletedAt.After(all[j].CompletedAt)
	})

	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

// BySessionKey returns assessments linked to one correlation key, in
// completion order.
func (s *StressStore) BySessionKey(sessionKey string) ([]stress.Assessment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]stress.Assessment, 0)
	for _, id := range s.order {
		if a := s.assessments[id]; a.SessionKey == sessionKey {
			matched = append(matched, a)
		}
	}
	return matched, nil
}
