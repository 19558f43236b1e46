package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"jobswipe/internal/domain/match"

	"github.com/google/uuid"
)

type MatchRepository struct {
	mu     sync.RWMutex
	byID   map[uuid.UUID]match.Match
	byPair map[match.Key]uuid.UUID
	seq    map[uuid.UUID]int64
	next   int64
	now    func() time.Time
}

func NewMatchRepository() *MatchRepository {
	return &MatchRepository{
		byID:   map[uuid.UUID]match.Match{},
		byPair: map[match.Key]uuid.UUID{},
		seq:    map[uuid.UUID]int64{},
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Create checks and inserts under one write lock, which is what makes it an
// atomic insert-if-absent.
func (r *MatchRepository) Create(_ context.Context, m match.Match) (match.Match, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.byPair[m.Key()]; ok {
		return r.byID[id], false, nil
	}

	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = r.now()
	}
	r.next++
	r.byID[m.ID] = m
	r.byPair[m.Key()] = m.ID
	r.seq[m.ID] = r.next
	return m, true, nil
}

func (r *MatchRepository) Get(_ context.Context, id uuid.UUID) (match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.byID[id]
	if !ok {
		return match.Match{}, match.ErrNotFound
	}
	return m, nil
}

func (r *MatchRepository) FindByPair(_ context.Context, vacancyID, candidateID string) (match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byPair[match.Key{VacancyID: vacancyID, CandidateID: candidateID}]
	if !ok {
		return match.Match{}, match.ErrNotFound
	}
	return r.byID[id], nil
}

func (r *MatchRepository) ListForCandidate(_ context.Context, candidateID string) ([]match.Match, error) {
	return r.filter(func(m match.Match) bool { return m.CandidateID == candidateID }), nil
}

func (r *MatchRepository) ListForEmployer(_ context.Context, vacancyIDs ...string) ([]match.Match, error) {
	set := make(map[string]struct{}, len(vacancyIDs))
	for _, id := range vacancyIDs {
		set[id] = struct{}{}
	}
	return r.filter(func(m match.Match) bool {
		_, ok := set[m.VacancyID]
		return ok
	}), nil
}

// Count returns the number of stored matches.
func (r *MatchRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

func (r *MatchRepository) filter(keep func(match.Match) bool) []match.Match {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0)
	for _, m := range r.byID {
		if keep(m) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return r.seq[out[i].ID] < r.seq[out[j].ID]
	})
	return out
}
