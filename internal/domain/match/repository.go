package match

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("match not found")

// Repository is the match registry. Create must be an atomic insert-if-absent
// on (VacancyID, CandidateID): when a match already exists for the pair the
// stored one is returned with created=false and nothing is written.
type Repository interface {
	Create(ctx context.Context, m Match) (Match, bool, error)
	Get(ctx context.Context, id uuid.UUID) (Match, error)
	FindByPair(ctx context.Context, vacancyID, candidateID string) (Match, error)

	// List methods order by CreatedAt ascending.
	ListForCandidate(ctx context.Context, candidateID string) ([]Match, error)
	ListForEmployer(ctx context.Context, vacancyIDs ...string) ([]Match, error)
}
