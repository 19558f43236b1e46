package vacancy

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("vacancy not found")

type Vacancy struct {
	ID        string
	CompanyID string
	Company   string
	Title     string
	CreatedAt time.Time
}

type Repository interface {
	GetByID(ctx context.Context, id string) (Vacancy, error)
	ListByCompany(ctx context.Context, companyID string) ([]Vacancy, error)
	Upsert(ctx context.Context, v Vacancy) error
}
