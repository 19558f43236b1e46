// Package memory holds mutex-guarded in-process implementations of the
// domain repositories. They back the memory storage driver and the tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"jobswipe/internal/domain/like"
)

type pair struct {
	a, b string
}

type LikeRepository struct {
	mu        sync.RWMutex
	candidate map[pair]like.CandidateLike
	employer  map[pair]like.EmployerLike
	seq       int64
	order     map[pair]int64
	now       func() time.Time
}

func NewLikeRepository() *LikeRepository {
	return &LikeRepository{
		candidate: map[pair]like.CandidateLike{},
		employer:  map[pair]like.EmployerLike{},
		order:     map[pair]int64{},
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (r *LikeRepository) RecordCandidateLike(_ context.Context, candidateID, vacancyID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := pair{"c:" + candidateID, vacancyID}
	if _, ok := r.candidate[k]; ok {
		return false, nil
	}
	r.seq++
	r.order[k] = r.seq
	r.candidate[k] = like.CandidateLike{CandidateID: candidateID, VacancyID: vacancyID, CreatedAt: r.now()}
	return true, nil
}

func (r *LikeRepository) RecordEmployerLike(_ context.Context, vacancyID, candidateID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := pair{"e:" + vacancyID, candidateID}
	if _, ok := r.employer[k]; ok {
		return false, nil
	}
	r.seq++
	r.order[k] = r.seq
	r.employer[k] = like.EmployerLike{VacancyID: vacancyID, CandidateID: candidateID, CreatedAt: r.now()}
	return true, nil
}

func (r *LikeRepository) ListCandidateLikes(_ context.Context, candidateID string) ([]like.CandidateLike, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	type row struct {
		seq int64
		l   like.CandidateLike
	}
	rows := make([]row, 0)
	for k, l := range r.candidate {
		if l.CandidateID == candidateID {
			rows = append(rows, row{seq: r.order[k], l: l})
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].seq < rows[j].seq })

	out := make([]like.CandidateLike, 0, len(rows))
	for _, it := range rows {
		out = append(out, it.l)
	}
	return out, nil
}

func (r *LikeRepository) ListEmployerLikes(_ context.Context, vacancyIDs ...string) ([]like.EmployerLike, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filter := make(map[string]struct{}, len(vacancyIDs))
	for _, id := range vacancyIDs {
		filter[id] = struct{}{}
	}

	type row struct {
		seq int64
		l   like.EmployerLike
	}
	rows := make([]row, 0)
	for k, l := range r.employer {
		if len(filter) > 0 {
			if _, ok := filter[l.VacancyID]; !ok {
				continue
			}
		}
		rows = append(rows, row{seq: r.order[k], l: l})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].seq < rows[j].seq })

	out := make([]like.EmployerLike, 0, len(rows))
	for _, it := range rows {
		out = append(out, it.l)
	}
	return out, nil
}

func (r *LikeRepository) HasCandidateLike(_ context.Context, candidateID, vacancyID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.candidate[pair{"c:" + candidateID, vacancyID}]
	return ok, nil
}

func (r *LikeRepository) HasEmployerLike(_ context.Context, vacancyID, candidateID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.employer[pair{"e:" + vacancyID, candidateID}]
	return ok, nil
}

func (r *LikeRepository) DeleteCandidateLike(_ context.Context, candidateID, vacancyID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := pair{"c:" + candidateID, vacancyID}
	if _, ok := r.candidate[k]; !ok {
		return false, nil
	}
	delete(r.candidate, k)
	delete(r.order, k)
	return true, nil
}

func (r *LikeRepository) DeleteEmployerLike(_ context.Context, vacancyID, candidateID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := pair{"e:" + vacancyID, candidateID}
	if _, ok := r.employer[k]; !ok {
		return false, nil
	}
	delete(r.employer, k)
	delete(r.order, k)
	return true, nil
}
