package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jobswipe/internal/database"
	"jobswipe/internal/domain/match"

	"github.com/google/uuid"
)

const matchColumns = `id, vacancy_id, candidate_id, candidate_name, vacancy_title, company, created_at`

type PostgresMatchRepository struct {
	db database.DB
}

func NewPostgresMatchRepository(db database.DB) *PostgresMatchRepository {
	return &PostgresMatchRepository{db: db}
}

// Create relies on the (vacancy_id, candidate_id) unique constraint so that
// concurrent reconcilers can never produce two rows for one pair. The loser of
// the race falls through to reading the winner's row.
func (r *PostgresMatchRepository) Create(ctx context.Context, m match.Match) (match.Match, bool, error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO matches (`+matchColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (vacancy_id, candidate_id) DO NOTHING
		 RETURNING `+matchColumns,
		m.ID, m.VacancyID, m.CandidateID, m.CandidateName, m.VacancyTitle, m.Company, m.CreatedAt,
	)
	created, err := scanMatch(row)
	if err == nil {
		return created, true, nil
	}
	if !errors.Is(err, match.ErrNotFound) {
		return match.Match{}, false, fmt.Errorf("insert match: %w", err)
	}

	existing, err := r.FindByPair(ctx, m.VacancyID, m.CandidateID)
	if err != nil {
		return match.Match{}, false, err
	}
	return existing, false, nil
}

func (r *PostgresMatchRepository) Get(ctx context.Context, id uuid.UUID) (match.Match, error) {
	row := r.db.QueryRow(ctx, `SELECT `+matchColumns+` FROM matches WHERE id = $1`, id)
	m, err := scanMatch(row)
	if err != nil && !errors.Is(err, match.ErrNotFound) {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	return m, err
}

func (r *PostgresMatchRepository) FindByPair(ctx context.Context, vacancyID, candidateID string) (match.Match, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+matchColumns+` FROM matches WHERE vacancy_id = $1 AND candidate_id = $2`,
		vacancyID, candidateID,
	)
	m, err := scanMatch(row)
	if err != nil && !errors.Is(err, match.ErrNotFound) {
		return match.Match{}, fmt.Errorf("find match: %w", err)
	}
	return m, err
}

func (r *PostgresMatchRepository) ListForCandidate(ctx context.Context, candidateID string) ([]match.Match, error) {
	return r.list(ctx,
		`SELECT `+matchColumns+` FROM matches WHERE candidate_id = $1 ORDER BY created_at ASC, id ASC`,
		candidateID,
	)
}

func (r *PostgresMatchRepository) ListForEmployer(ctx context.Context, vacancyIDs ...string) ([]match.Match, error) {
	if len(vacancyIDs) == 0 {
		return []match.Match{}, nil
	}
	return r.list(ctx,
		`SELECT `+matchColumns+` FROM matches WHERE vacancy_id = ANY($1) ORDER BY created_at ASC, id ASC`,
		vacancyIDs,
	)
}

func (r *PostgresMatchRepository) list(ctx context.Context, query string, args ...any) ([]match.Match, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	defer rows.Close()

	out := make([]match.Match, 0)
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanMatch(row database.Row) (match.Match, error) {
	var m match.Match
	if err := row.Scan(&m.ID, &m.VacancyID, &m.CandidateID, &m.CandidateName, &m.VacancyTitle, &m.Company, &m.CreatedAt); err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return match.Match{}, match.ErrNotFound
		}
		return match.Match{}, err
	}
	return m, nil
}
