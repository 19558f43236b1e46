package seeder

import (
	"context"

	"jobswipe/internal/domain/candidate"
	"jobswipe/internal/domain/vacancy"
)

// Catalog is the write side the seeders fill. Both storage drivers provide it.
type Catalog struct {
	Vacancies  vacancy.Repository
	Candidates candidate.Repository
}

type Seeder interface {
	Name() string
	Run(ctx context.Context, cat Catalog) error
}

func Defaults() []Seeder {
	return []Seeder{
		VacanciesSeeder{},
		CandidatesSeeder{},
	}
}
