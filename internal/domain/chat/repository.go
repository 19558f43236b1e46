package chat

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrUnknownMatch is returned by Append when the thread's match does not exist.
var ErrUnknownMatch = errors.New("chat: unknown match")

// Repository is an append-only store of thread messages.
type Repository interface {
	// Append stores msg and returns it with its persisted CreatedAt.
	Append(ctx context.Context, msg Message) (Message, error)
	// List returns the thread ordered by CreatedAt, ties in insertion order.
	List(ctx context.Context, matchID uuid.UUID) ([]Message, error)
}
