package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/ruangtenang/backend/internal/model/user"
)

// UserStore keeps account records in memory. Usernames are unique; records
// are never mutated or deleted after creation.
type UserStore struct {
	mu         sync.RWMutex
	users      map[string]user.User
	byUsername map[string]string
}

func NewUserStore() *UserStore {
	return &UserStore{
		users:      make(map[string]user.User),
		byUsername: make(map[string]string),
	}
}

// Create assigns a fresh id and stores the record. The username must not be
// in use.
func (s *UserStore) Create(u user.User) (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byUsername[u.Username]; taken {
		return user.User{}, ErrDuplicateUsername
	}

	u.ID = uuid.NewString()
	s.users[u.ID] = u
	s.byUsername[u.Username] = u.ID
	return u, nil
}

// Get retrieves a user by generated id.
func (s *UserStore) Get(id string) (user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return user.User{}, ErrNotFound
	}
	return u, nil
}

// GetByUsername retrieves a user by unique username.
func (s *UserStore) GetByUsername(username string) (user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byUsername[username]
	if !ok {
		return user.User{}, ErrNotFound
	}
	return s.users[id], nil
}
