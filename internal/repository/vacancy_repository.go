package repository

import (
	"context"
	"errors"
	"fmt"

	"jobswipe/internal/database"
	"jobswipe/internal/domain/vacancy"
)

type PostgresVacancyRepository struct {
	db database.DB
}

func NewPostgresVacancyRepository(db database.DB) *PostgresVacancyRepository {
	return &PostgresVacancyRepository{db: db}
}

func (r *PostgresVacancyRepository) GetByID(ctx context.Context, id string) (vacancy.Vacancy, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, company_id, company, title, created_at FROM vacancies WHERE id = $1`,
		id,
	)

	var v vacancy.Vacancy
	if err := row.Scan(&v.ID, &v.CompanyID, &v.Company, &v.Title, &v.CreatedAt); err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return vacancy.Vacancy{}, vacancy.ErrNotFound
		}
		return vacancy.Vacancy{}, fmt.Errorf("get vacancy: %w", err)
	}
	return v, nil
}

func (r *PostgresVacancyRepository) ListByCompany(ctx context.Context, companyID string) ([]vacancy.Vacancy, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, company_id, company, title, created_at
		 FROM vacancies
		 WHERE company_id = $1
		 ORDER BY created_at ASC, id ASC`,
		companyID,
	)
	if err != nil {
		return nil, fmt.Errorf("list vacancies: %w", err)
	}
	defer rows.Close()

	out := make([]vacancy.Vacancy, 0)
	for rows.Next() {
		var v vacancy.Vacancy
		if err := rows.Scan(&v.ID, &v.CompanyID, &v.Company, &v.Title, &v.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresVacancyRepository) Upsert(ctx context.Context, v vacancy.Vacancy) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO vacancies (id, company_id, company, title)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (id) DO UPDATE SET
			company_id = EXCLUDED.company_id,
			company = EXCLUDED.company,
			title = EXCLUDED.title`,
		v.ID, v.CompanyID, v.Company, v.Title,
	)
	if err != nil {
		return fmt.Errorf("upsert vacancy: %w", err)
	}
	return nil
}
