package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"jobswipe/internal/domain/candidate"
	"jobswipe/internal/domain/vacancy"
)

type VacancyRepository struct {
	mu    sync.RWMutex
	items map[string]vacancy.Vacancy
}

func NewVacancyRepository(items ...vacancy.Vacancy) *VacancyRepository {
	r := &VacancyRepository{items: map[string]vacancy.Vacancy{}}
	for _, v := range items {
		_ = r.Upsert(context.Background(), v)
	}
	return r
}

func (r *VacancyRepository) GetByID(_ context.Context, id string) (vacancy.Vacancy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.items[id]
	if !ok {
		return vacancy.Vacancy{}, vacancy.ErrNotFound
	}
	return v, nil
}

func (r *VacancyRepository) ListByCompany(_ context.Context, companyID string) ([]vacancy.Vacancy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]vacancy.Vacancy, 0)
	for _, v := range r.items {
		if v.CompanyID == companyID {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *VacancyRepository) Upsert(_ context.Context, v vacancy.Vacancy) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.items[v.ID]; ok {
		v.CreatedAt = prev.CreatedAt
	}
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now().UTC()
	}
	r.items[v.ID] = v
	return nil
}

type CandidateRepository struct {
	mu    sync.RWMutex
	items map[string]candidate.Candidate
}

func NewCandidateRepository(items ...candidate.Candidate) *CandidateRepository {
	r := &CandidateRepository{items: map[string]candidate.Candidate{}}
	for _, c := range items {
		_ = r.Upsert(context.Background(), c)
	}
	return r
}

func (r *CandidateRepository) GetByID(_ context.Context, id string) (candidate.Candidate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.items[id]
	if !ok {
		return candidate.Candidate{}, candidate.ErrNotFound
	}
	return c, nil
}

func (r *CandidateRepository) Upsert(_ context.Context, c candidate.Candidate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.items[c.ID]; ok {
		c.CreatedAt = prev.CreatedAt
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	r.items[c.ID] = c
	return nil
}
