package repository

import (
	"context"
	"fmt"

	"jobswipe/internal/database"
	"jobswipe/internal/domain/like"
)

type PostgresLikeRepository struct {
	db database.DB
}

func NewPostgresLikeRepository(db database.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

func (r *PostgresLikeRepository) RecordCandidateLike(ctx context.Context, candidateID, vacancyID string) (bool, error) {
	n, err := r.db.Exec(ctx,
		`INSERT INTO likes_candidate (candidate_id, vacancy_id)
		 VALUES ($1, $2)
		 ON CONFLICT (candidate_id, vacancy_id) DO NOTHING`,
		candidateID, vacancyID,
	)
	if err != nil {
		return false, fmt.Errorf("record candidate like: %w", err)
	}
	return n > 0, nil
}

func (r *PostgresLikeRepository) RecordEmployerLike(ctx context.Context, vacancyID, candidateID string) (bool, error) {
	n, err := r.db.Exec(ctx,
		`INSERT INTO likes_employer (vacancy_id, candidate_id)
		 VALUES ($1, $2)
		 ON CONFLICT (vacancy_id, candidate_id) DO NOTHING`,
		vacancyID, candidateID,
	)
	if err != nil {
		return false, fmt.Errorf("record employer like: %w", err)
	}
	return n > 0, nil
}

func (r *PostgresLikeRepository) ListCandidateLikes(ctx context.Context, candidateID string) ([]like.CandidateLike, error) {
	rows, err := r.db.Query(ctx,
		`SELECT candidate_id, vacancy_id, created_at
		 FROM likes_candidate
		 WHERE candidate_id = $1
		 ORDER BY created_at ASC, vacancy_id ASC`,
		candidateID,
	)
	if err != nil {
		return nil, fmt.Errorf("list candidate likes: %w", err)
	}
	defer rows.Close()

	out := make([]like.CandidateLike, 0)
	for rows.Next() {
		var l like.CandidateLike
		if err := rows.Scan(&l.CandidateID, &l.VacancyID, &l.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresLikeRepository) ListEmployerLikes(ctx context.Context, vacancyIDs ...string) ([]like.EmployerLike, error) {
	q := `SELECT vacancy_id, candidate_id, created_at FROM likes_employer`
	args := []any{}
	if len(vacancyIDs) > 0 {
		q += ` WHERE vacancy_id = ANY($1)`
		args = append(args, vacancyIDs)
	}
	q += ` ORDER BY created_at ASC, vacancy_id ASC, candidate_id ASC`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list employer likes: %w", err)
	}
	defer rows.Close()

	out := make([]like.EmployerLike, 0)
	for rows.Next() {
		var l like.EmployerLike
		if err := rows.Scan(&l.VacancyID, &l.CandidateID, &l.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresLikeRepository) HasCandidateLike(ctx context.Context, candidateID, vacancyID string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM likes_candidate WHERE candidate_id = $1 AND vacancy_id = $2)`,
		candidateID, vacancyID,
	)
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("has candidate like: %w", err)
	}
	return exists, nil
}

func (r *PostgresLikeRepository) HasEmployerLike(ctx context.Context, vacancyID, candidateID string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM likes_employer WHERE vacancy_id = $1 AND candidate_id = $2)`,
		vacancyID, candidateID,
	)
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("has employer like: %w", err)
	}
	return exists, nil
}

func (r *PostgresLikeRepository) DeleteCandidateLike(ctx context.Context, candidateID, vacancyID string) (bool, error) {
	n, err := r.db.Exec(ctx,
		`DELETE FROM likes_candidate WHERE candidate_id = $1 AND vacancy_id = $2`,
		candidateID, vacancyID,
	)
	if err != nil {
		return false, fmt.Errorf("delete candidate like: %w", err)
	}
	return n > 0, nil
}

func (r *PostgresLikeRepository) DeleteEmployerLike(ctx context.Context, vacancyID, candidateID string) (bool, error) {
	n, err := r.db.Exec(ctx,
		`DELETE FROM likes_employer WHERE vacancy_id = $1 AND candidate_id = $2`,
		vacancyID, candidateID,
	)
	if err != nil {
		return false, fmt.Errorf("delete employer like: %w", err)
	}
	return n > 0, nil
}
