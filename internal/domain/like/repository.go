package like

import "context"

// Repository is the like store. Record methods are insert-if-absent and
// report whether a new row was written; duplicates are not errors.
type Repository interface {
	RecordCandidateLike(ctx context.Context, candidateID, vacancyID string) (bool, error)
	RecordEmployerLike(ctx context.Context, vacancyID, candidateID string) (bool, error)

	ListCandidateLikes(ctx context.Context, candidateID string) ([]CandidateLike, error)
	// ListEmployerLikes returns likes for the given vacancies, or every
	// employer like when vacancyIDs is empty.
	ListEmployerLikes(ctx context.Context, vacancyIDs ...string) ([]EmployerLike, error)

	HasCandidateLike(ctx context.Context, candidateID, vacancyID string) (bool, error)
	HasEmployerLike(ctx context.Context, vacancyID, candidateID string) (bool, error)

	DeleteCandidateLike(ctx context.Context, candidateID, vacancyID string) (bool, error)
	DeleteEmployerLike(ctx context.Context, vacancyID, candidateID string) (bool, error)
}
