package chat

import (
	"context"
	"errors"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/ruangtenang/backend/internal/model/chat"
	"github.com/ruangtenang/backend/internal/store"
)

var (
	ErrSessionKeyRequired = errors.New("session id is required")
	ErrMessageRequired    = errors.New("message is required")
	ErrSessionNotFound    = errors.New("chat session not found")
)

// Service encapsulates the supportive-chat flows. Replies are drawn uniformly
// at random from the affirmation corpus; the random source is injected so
// tests can pin the selection.
type Service struct {
	sessions *store.ChatSessionStore

	randMu sync.Mutex
	rand   *rand.Rand
}

// NewService builds a chat service over the given session store. A nil rng
// falls back to a time-seeded source.
func NewService(sessions *store.ChatSessionStore, rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{sessions: sessions, rand: rng}
}

// Start provisions a session whose transcript opens with the system greeting.
func (s *Service) Start(_ context.Context, sessionKey string) (chat.Session, error) {
	if strings.TrimSpace(sessionKey) == "" {
		return chat.Session{}, ErrSessionKeyRequired
	}

	now := time.Now().UTC()
	greeting := chat.Message{
		ID:        strconv.FormatInt(now.UnixMilli(), 10),
		Text:      chat.Greeting,
		IsUser:    false,
		Timestamp: now,
	}

	return s.sessions.Create(sessionKey, []chat.Message{greeting})
}

// Respond appends the visitor message and one random affirmation to the
// session matching the correlation key, persisting the grown transcript. It
// returns the affirmation text alongside the full transcript.
func (s *Service) Respond(_ context.Context, sessionKey, text string) (string, []chat.Message, error) {
	if strings.TrimSpace(sessionKey) == "" {
		return "", nil, ErrSessionKeyRequired
	}
	if strings.TrimSpace(text) == "" {
		return "", nil, ErrMessageRequired
	}

	session, err := s.sessions.GetBySessionKey(sessionKey)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", nil, ErrSessionNotFound
		}
		return "", nil, err
	}

	now := time.Now().UTC()
	transcript := append(session.Messages, chat.Message{
		ID:        strconv.FormatInt(now.UnixMilli(), 10),
		Text:      text,
		IsUser:    true,
		Timestamp: now,
	})

	affirmation := s.pickAffirmation()
	transcript = append(transcript, chat.Message{
		ID:        strconv.FormatInt(now.UnixMilli()+1, 10),
		Text:      affirmation,
		IsUser:    false,
		Timestamp: now,
	})

	updated, err := s.sessions.UpdateMessages(session.ID, transcript)
	if err != nil {
		return "", nil, err
	}
	return affirmation, updated.Messages, nil
}

// End marks the matching session as ended. An unknown key is a no-op: the
// client fires this on page close and cannot act on a failure, so the origin
// behavior of never erroring is kept. The returned pointer is nil when no
// session matched.
func (s *Service) End(_ context.Context, sessionKey string) (*chat.Session, error) {
	if strings.TrimSpace(sessionKey) == "" {
		return nil, ErrSessionKeyRequired
	}

	session, err := s.sessions.GetBySessionKey(sessionKey)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	ended, err := s.sessions.End(session.ID, time.Now())
	if err != nil {
		return nil, err
	}
	return &ended, nil
}

// pickAffirmation draws one corpus entry uniformly at random. rand.Rand is
// not safe for concurrent use, hence the lock.
func (s *Service) pickAffirmation() string {
	s.randMu.Lock()
	defer s.randMu.Unlock()
	return chat.Affirmations[s.rand.Intn(len(chat.Affirmations))]
}
