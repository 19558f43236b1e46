package chat

import (
	"time"

	"github.com/google/uuid"
)

type Sender string

const (
	SenderCandidate Sender = "candidate"
	SenderEmployer  Sender = "employer"
)

func (s Sender) Valid() bool {
	return s == SenderCandidate || s == SenderEmployer
}

// Message is one entry of a match's thread. Messages are never edited or
// removed once stored.
type Message struct {
	ID        uuid.UUID
	MatchID   uuid.UUID
	Sender    Sender
	Text      string
	CreatedAt time.Time
}
