package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ruangtenang/backend/internal/model/chat"
)

// ChatSessionStore keeps sessions keyed by generated id, with a secondary
// index from the client correlation key to session ids. The key is not
// unique-enforced; when duplicates exist, lookups resolve to the most
// recently created session (the index is appended in creation order and read
// from the tail).
type ChatSessionStore struct {
	mu       sync.RWMutex
	sessions map[string]chat.Session
	byKey    map[string][]string
}

func NewChatSessionStore() *ChatSessionStore {
	return &ChatSessionStore{
		sessions: make(map[string]chat.Session),
		byKey:    make(map[string][]string),
	}
}

// Create stores a new session with a fresh id and start time.
func (s *ChatSessionStore) Create(sessionKey string, messages []chat.Message) (chat.Session, error) {
	session := chat.Session{
		ID:         uuid.NewString(),
		SessionKey: sessionKey,
		Messages:   append([]chat.Message(nil), messages...),
		StartedAt:  time.Now().UTC(),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.byKey[sessionKey] = append(s.byKey[sessionKey], session.ID)
	s.mu.Unlock()

	return copySession(session), nil
}

// Get retrieves a session by generated id.
func (s *ChatSessionStore) Get(id string) (chat.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return chat.Session{}, ErrNotFound
	}
	return copySession(session), nil
}

// GetBySessionKey retrieves the most recently created session bearing the
// client correlation key.
func (s *ChatSessionStore) GetBySessionKey(sessionKey string) (chat.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.byKey[sessionKey]
	if len(ids) == 0 {
		return chat.Session{}, ErrNotFound
	}
	return copySession(s.sessions[ids[len(ids)-1]]), nil
}

// UpdateMessages replaces the transcript of the identified session.
func (s *ChatSessionStore) UpdateMessages(id string, messages []chat.Message) (chat.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return chat.Session{}, ErrNotFound
	}

	session.Messages = append([]chat.Message(nil), messages...)
	s.sessions[id] = session
	return copySession(session), nil
}

// End marks the identified session as ended at the given time.
func (s *ChatSessionStore) End(id string, at time.Time) (chat.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return chat.Session{}, ErrNotFound
	}

	ended := at.UTC()
	session.EndedAt = &ended
	s.sessions[id] = session
	return copySession(session), nil
}

// copySession detaches the transcript slice so callers cannot mutate stored
// state through the returned value.
func copySession(session chat.Session) chat.Session {
	session.Messages = append([]chat.Message(nil), session.Messages...)
	return session
}
