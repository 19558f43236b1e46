package event

import "time"

const (
	TypeMatchCreated = "match_created"
	TypeChatMessage  = "chat_message"
)

// Recipient addresses one participant: a candidate by candidate id or an
// employer by company id.
type Recipient struct {
	Role string `json:"role"`
	ID   string `json:"id"`
}

func (r Recipient) Key() string {
	return r.Role + ":" + r.ID
}

type Event struct {
	Type       string      `json:"type"`
	Recipients []Recipient `json:"recipients"`
	Payload    any         `json:"payload"`
	OccurredAt time.Time   `json:"occurred_at"`
}
