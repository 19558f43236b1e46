package repository

import (
	"context"
	"sort"
	"strings"
	"time"

	"jobswipe/internal/domain/match"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// JSONCache is the subset of the redis cache the match lists need.
// Generation and Bump version a key so a fill can detect an invalidation that
// happened while it was loading.
type JSONCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Generation(ctx context.Context, key string) (int64, error)
	Bump(ctx context.Context, key string) error
}

// CachedMatchRepository caches the per-participant match lists. Matches are
// never mutated, so only Create needs to invalidate. A fill that overlaps a
// Create drops what it wrote.
type CachedMatchRepository struct {
	next  match.Repository
	cache JSONCache
	ttl   time.Duration
	log   *zap.Logger
}

func NewCachedMatchRepository(next match.Repository, cache JSONCache, ttl time.Duration, log *zap.Logger) *CachedMatchRepository {
	if log == nil {
		log = zap.NewNop()
	}
	return &CachedMatchRepository{next: next, cache: cache, ttl: ttl, log: log}
}

func CandidateMatchesKey(candidateID string) string {
	return "matches:candidate:" + candidateID
}

func EmployerMatchesKey(vacancyIDs []string) string {
	ids := append([]string(nil), vacancyIDs...)
	sort.Strings(ids)
	return "matches:vacancy:" + strings.Join(ids, ",")
}

func (r *CachedMatchRepository) Create(ctx context.Context, m match.Match) (match.Match, bool, error) {
	out, created, err := r.next.Create(ctx, m)
	if err != nil || !created {
		return out, created, err
	}
	r.invalidate(ctx, CandidateMatchesKey(out.CandidateID))
	r.invalidate(ctx, EmployerMatchesKey([]string{out.VacancyID}))
	return out, created, nil
}

func (r *CachedMatchRepository) Get(ctx context.Context, id uuid.UUID) (match.Match, error) {
	return r.next.Get(ctx, id)
}

func (r *CachedMatchRepository) FindByPair(ctx context.Context, vacancyID, candidateID string) (match.Match, error) {
	return r.next.FindByPair(ctx, vacancyID, candidateID)
}

func (r *CachedMatchRepository) ListForCandidate(ctx context.Context, candidateID string) ([]match.Match, error) {
	return r.cached(ctx, CandidateMatchesKey(candidateID), func() ([]match.Match, error) {
		return r.next.ListForCandidate(ctx, candidateID)
	})
}

// ListForEmployer is only cached for single-vacancy lookups; multi-vacancy
// keys cannot be invalidated precisely.
func (r *CachedMatchRepository) ListForEmployer(ctx context.Context, vacancyIDs ...string) ([]match.Match, error) {
	if len(vacancyIDs) != 1 {
		return r.next.ListForEmployer(ctx, vacancyIDs...)
	}
	return r.cached(ctx, EmployerMatchesKey(vacancyIDs), func() ([]match.Match, error) {
		return r.next.ListForEmployer(ctx, vacancyIDs...)
	})
}

func (r *CachedMatchRepository) cached(ctx context.Context, key string, load func() ([]match.Match, error)) ([]match.Match, error) {
	if r.cache == nil {
		return load()
	}

	var hit []match.Match
	ok, err := r.cache.GetJSON(ctx, key, &hit)
	if err != nil {
		r.log.Debug("match cache read failed", zap.String("key", key), zap.Error(err))
	}
	if ok && err == nil {
		return hit, nil
	}

	gen, genErr := r.cache.Generation(ctx, key)

	out, err := load()
	if err != nil {
		return nil, err
	}

	if genErr != nil {
		r.log.Debug("match cache generation read failed", zap.String("key", key), zap.Error(genErr))
		return out, nil
	}
	if err := r.cache.SetJSON(ctx, key, out, r.ttl); err != nil {
		r.log.Debug("match cache write failed", zap.String("key", key), zap.Error(err))
		return out, nil
	}

	// A create committed during load may already have invalidated the key.
	now, err := r.cache.Generation(ctx, key)
	if err != nil || now != gen {
		if err := r.cache.Delete(ctx, key); err != nil {
			r.log.Warn("match cache stale fill not dropped", zap.String("key", key), zap.Error(err))
		}
	}
	return out, nil
}

func (r *CachedMatchRepository) invalidate(ctx context.Context, key string) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Bump(ctx, key); err != nil {
		r.log.Warn("match cache generation bump failed", zap.String("key", key), zap.Error(err))
	}
	if err := r.cache.Delete(ctx, key); err != nil {
		r.log.Warn("match cache invalidation failed", zap.String("key", key), zap.Error(err))
	}
}
