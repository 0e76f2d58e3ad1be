package chat

import "time"

// Session captures an anonymous support conversation. SessionKey is the
// client-chosen correlation key; it is not unique-enforced, so lookups by key
// resolve to the most recently created session bearing it.
type Session struct {
	ID         string     `json:"id"`
	SessionKey string     `json:"sessionId"`
	Messages   []Message  `json:"messages"`
	StartedAt  time.Time  `json:"startedAt"`
	EndedAt    *time.Time `json:"endedAt"`
}
