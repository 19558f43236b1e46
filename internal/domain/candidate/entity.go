package candidate

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("candidate not found")

type Candidate struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

type Repository interface {
	GetByID(ctx context.Context, id string) (Candidate, error)
	Upsert(ctx context.Context, c Candidate) error
}
