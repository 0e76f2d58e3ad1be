package chat

import "time"

// Message is a single turn in a session transcript. IsUser distinguishes
// visitor-authored turns from system affirmations.
type Message struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	IsUser    bool      `json:"isUser"`
	Timestamp time.Time `json:"timestamp"`
}
