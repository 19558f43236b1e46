package memory

import (
	"context"
	"sync"
	"time"

	"jobswipe/internal/domain/chat"
	"jobswipe/internal/domain/match"

	"github.com/google/uuid"
)

// ChatRepository keeps one slice per thread; appends under the lock keep
// slice order equal to arrival order.
type ChatRepository struct {
	mu      sync.RWMutex
	matches match.Repository
	threads map[uuid.UUID][]chat.Message
	last    time.Time
	now     func() time.Time
}

// NewChatRepository takes the match registry so that appends to unknown
// matches are refused, as the foreign key does in postgres.
func NewChatRepository(matches match.Repository) *ChatRepository {
	return &ChatRepository{
		matches: matches,
		threads: map[uuid.UUID][]chat.Message{},
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (r *ChatRepository) Append(ctx context.Context, msg chat.Message) (chat.Message, error) {
	if r.matches != nil {
		if _, err := r.matches.Get(ctx, msg.MatchID); err != nil {
			return chat.Message{}, chat.ErrUnknownMatch
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	ts := r.now()
	if ts.Before(r.last) {
		ts = r.last
	}
	r.last = ts
	msg.CreatedAt = ts

	r.threads[msg.MatchID] = append(r.threads[msg.MatchID], msg)
	return msg, nil
}

func (r *ChatRepository) List(_ context.Context, matchID uuid.UUID) ([]chat.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	src := r.threads[matchID]
	out := make([]chat.Message, len(src))
	copy(out, src)
	return out, nil
}
