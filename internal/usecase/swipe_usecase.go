package usecase

import (
	"context"
	"errors"

	"jobswipe/internal/domain"
	"jobswipe/internal/domain/candidate"
	"jobswipe/internal/domain/like"
	"jobswipe/internal/domain/match"
	"jobswipe/internal/domain/matching"
	"jobswipe/internal/domain/vacancy"

	"go.uber.org/zap"
)

// LikeResult reports what a swipe did. LikeCreated is false for a repeated
// like; Match is set whenever the pair is (or already was) mutual.
type LikeResult struct {
	LikeCreated  bool
	Match        *match.Match
	MatchCreated bool
}

type SwipeUsecase interface {
	LikeVacancy(ctx context.Context, candidateID, vacancyID string) (LikeResult, error)
	LikeCandidate(ctx context.Context, companyID, vacancyID, candidateID string) (LikeResult, error)

	ListCandidateLikes(ctx context.Context, candidateID string) ([]string, error)
	ListEmployerLikes(ctx context.Context, companyID string) ([]like.EmployerLike, error)

	WithdrawVacancyLike(ctx context.Context, candidateID, vacancyID string) error
	WithdrawCandidateLike(ctx context.Context, companyID, vacancyID, candidateID string) error
}

type Swipe struct {
	likes      like.Repository
	vacancies  vacancy.Repository
	candidates candidate.Repository
	reconciler *Reconciler
	notifier   Notifier
	log        *zap.Logger
}

func NewSwipeUsecase(
	likes like.Repository,
	vacancies vacancy.Repository,
	candidates candidate.Repository,
	reconciler *Reconciler,
	notifier Notifier,
	log *zap.Logger,
) *Swipe {
	if log == nil {
		log = zap.NewNop()
	}
	return &Swipe{
		likes:      likes,
		vacancies:  vacancies,
		candidates: candidates,
		reconciler: reconciler,
		notifier:   notifier,
		log:        log,
	}
}

// LikeVacancy records a candidate's like on vacancyID and reconciles it. Either
// side's id of a mapped opening is accepted; the like is stored under the
// candidate-side id.
func (u *Swipe) LikeVacancy(ctx context.Context, candidateID, vacancyID string) (LikeResult, error) {
	if !domain.ValidID(candidateID) || !domain.ValidID(vacancyID) {
		return LikeResult{}, ErrInvalidInput
	}
	vacancyID = matching.CandidateKey(u.reconciler.Mapper(), vacancyID)

	v, err := u.vacancy(ctx, matching.EmployerKey(u.reconciler.Mapper(), vacancyID))
	if err != nil {
		return LikeResult{}, err
	}
	if err := u.candidateExists(ctx, candidateID); err != nil {
		return LikeResult{}, err
	}

	created, err := u.likes.RecordCandidateLike(ctx, candidateID, vacancyID)
	if err != nil {
		u.log.Error("record candidate like failed", zap.String("candidate_id", candidateID), zap.Error(err))
		return LikeResult{}, ErrInternal
	}

	out, err := u.reconciler.AfterCandidateLike(ctx, candidateID, vacancyID)
	if err != nil {
		return LikeResult{}, err
	}
	u.announce(ctx, out, v.CompanyID)

	return LikeResult{LikeCreated: created, Match: out.Match, MatchCreated: out.Created}, nil
}

// LikeCandidate records an employer's like on candidateID for one of the
// company's own vacancies and reconciles it.
func (u *Swipe) LikeCandidate(ctx context.Context, companyID, vacancyID, candidateID string) (LikeResult, error) {
	if !domain.ValidID(companyID) || !domain.ValidID(vacancyID) || !domain.ValidID(candidateID) {
		return LikeResult{}, ErrInvalidInput
	}
	vacancyID = matching.EmployerKey(u.reconciler.Mapper(), vacancyID)

	v, err := u.ownedVacancy(ctx, companyID, vacancyID)
	if err != nil {
		return LikeResult{}, err
	}
	if err := u.candidateExists(ctx, candidateID); err != nil {
		return LikeResult{}, err
	}

	created, err := u.likes.RecordEmployerLike(ctx, vacancyID, candidateID)
	if err != nil {
		u.log.Error("record employer like failed", zap.String("vacancy_id", vacancyID), zap.Error(err))
		return LikeResult{}, ErrInternal
	}

	out, err := u.reconciler.AfterEmployerLike(ctx, vacancyID, candidateID)
	if err != nil {
		return LikeResult{}, err
	}
	u.announce(ctx, out, v.CompanyID)

	return LikeResult{LikeCreated: created, Match: out.Match, MatchCreated: out.Created}, nil
}

func (u *Swipe) ListCandidateLikes(ctx context.Context, candidateID string) ([]string, error) {
	if !domain.ValidID(candidateID) {
		return nil, ErrInvalidInput
	}
	items, err := u.likes.ListCandidateLikes(ctx, candidateID)
	if err != nil {
		u.log.Error("list candidate likes failed", zap.Error(err))
		return nil, ErrInternal
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.VacancyID)
	}
	return out, nil
}

// ListEmployerLikes returns the likes the company gave across its vacancies.
func (u *Swipe) ListEmployerLikes(ctx context.Context, companyID string) ([]like.EmployerLike, error) {
	if !domain.ValidID(companyID) {
		return nil, ErrInvalidInput
	}
	ids, err := companyVacancyIDs(ctx, u.vacancies, companyID)
	if err != nil {
		u.log.Error("list company vacancies failed", zap.Error(err))
		return nil, ErrInternal
	}
	if len(ids) == 0 {
		return []like.EmployerLike{}, nil
	}
	items, err := u.likes.ListEmployerLikes(ctx, ids...)
	if err != nil {
		u.log.Error("list employer likes failed", zap.Error(err))
		return nil, ErrInternal
	}
	return items, nil
}

// WithdrawVacancyLike removes the like only; an existing match is kept.
func (u *Swipe) WithdrawVacancyLike(ctx context.Context, candidateID, vacancyID string) error {
	if !domain.ValidID(candidateID) || !domain.ValidID(vacancyID) {
		return ErrInvalidInput
	}
	vacancyID = matching.CandidateKey(u.reconciler.Mapper(), vacancyID)
	removed, err := u.likes.DeleteCandidateLike(ctx, candidateID, vacancyID)
	if err != nil {
		u.log.Error("delete candidate like failed", zap.Error(err))
		return ErrInternal
	}
	if !removed {
		return ErrNotFound
	}
	return nil
}

// WithdrawCandidateLike removes the like only; an existing match is kept.
func (u *Swipe) WithdrawCandidateLike(ctx context.Context, companyID, vacancyID, candidateID string) error {
	if !domain.ValidID(companyID) || !domain.ValidID(vacancyID) || !domain.ValidID(candidateID) {
		return ErrInvalidInput
	}
	vacancyID = matching.EmployerKey(u.reconciler.Mapper(), vacancyID)
	if _, err := u.ownedVacancy(ctx, companyID, vacancyID); err != nil {
		return err
	}
	removed, err := u.likes.DeleteEmployerLike(ctx, vacancyID, candidateID)
	if err != nil {
		u.log.Error("delete employer like failed", zap.Error(err))
		return ErrInternal
	}
	if !removed {
		return ErrNotFound
	}
	return nil
}

func (u *Swipe) announce(ctx context.Context, out MatchOutcome, companyID string) {
	if !out.Created || out.Match == nil {
		return
	}
	publish(ctx, u.notifier, u.log, matchCreatedEvent(*out.Match, companyID))
}

func (u *Swipe) vacancy(ctx context.Context, id string) (vacancy.Vacancy, error) {
	v, err := u.vacancies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, vacancy.ErrNotFound) {
			return vacancy.Vacancy{}, ErrVacancyNotFound
		}
		u.log.Error("get vacancy failed", zap.String("vacancy_id", id), zap.Error(err))
		return vacancy.Vacancy{}, ErrInternal
	}
	return v, nil
}

func (u *Swipe) ownedVacancy(ctx context.Context, companyID, vacancyID string) (vacancy.Vacancy, error) {
	v, err := u.vacancy(ctx, vacancyID)
	if err != nil {
		return vacancy.Vacancy{}, err
	}
	if v.CompanyID != companyID {
		return vacancy.Vacancy{}, ErrForbidden
	}
	return v, nil
}

func (u *Swipe) candidateExists(ctx context.Context, candidateID string) error {
	if _, err := u.candidates.GetByID(ctx, candidateID); err != nil {
		if errors.Is(err, candidate.ErrNotFound) {
			return ErrCandidateNotFound
		}
		u.log.Error("get candidate failed", zap.String("candidate_id", candidateID), zap.Error(err))
		return ErrInternal
	}
	return nil
}

func companyVacancyIDs(ctx context.Context, vacancies vacancy.Repository, companyID string) ([]string, error) {
	items, err := vacancies.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(items))
	for _, v := range items {
		ids = append(ids, v.ID)
	}
	return ids, nil
}
