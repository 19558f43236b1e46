package repository

import (
	"context"
	"errors"
	"fmt"

	"jobswipe/internal/database"
	"jobswipe/internal/domain/candidate"
)

type PostgresCandidateRepository struct {
	db database.DB
}

func NewPostgresCandidateRepository(db database.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

func (r *PostgresCandidateRepository) GetByID(ctx context.Context, id string) (candidate.Candidate, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, created_at FROM candidates WHERE id = $1`, id)

	var c candidate.Candidate
	if err := row.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return candidate.Candidate{}, candidate.ErrNotFound
		}
		return candidate.Candidate{}, fmt.Errorf("get candidate: %w", err)
	}
	return c, nil
}

func (r *PostgresCandidateRepository) Upsert(ctx context.Context, c candidate.Candidate) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO candidates (id, name) VALUES ($1, $2)
		 ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name`,
		c.ID, c.Name,
	)
	if err != nil {
		return fmt.Errorf("upsert candidate: %w", err)
	}
	return nil
}
