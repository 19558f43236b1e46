package usecase

import (
	"context"
	"errors"

	"jobswipe/internal/domain/candidate"
	"jobswipe/internal/domain/like"
	"jobswipe/internal/domain/match"
	"jobswipe/internal/domain/matching"
	"jobswipe/internal/domain/vacancy"

	"go.uber.org/zap"
)

type TryMatchInput struct {
	CandidateVacancyID string
	EmployerVacancyID  string
	CandidateID        string
	CandidateName      string
	VacancyTitle       string
	Company            string
}

// MatchOutcome is the result of a reconciliation. Match is nil when the likes
// are not (yet) reciprocal; Created is false when the match already existed.
type MatchOutcome struct {
	Match   *match.Match
	Created bool
}

// Reconciler is the only writer of matches. It must run after every like,
// from either side, because either side can complete the pair.
type Reconciler struct {
	likes      like.Repository
	matches    match.Repository
	vacancies  vacancy.Repository
	candidates candidate.Repository
	mapper     matching.VacancyMapper
	log        *zap.Logger
}

func NewReconciler(
	likes like.Repository,
	matches match.Repository,
	vacancies vacancy.Repository,
	candidates candidate.Repository,
	mapper matching.VacancyMapper,
	log *zap.Logger,
) *Reconciler {
	if mapper == nil {
		mapper = matching.IdentityMapper{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Reconciler{
		likes:      likes,
		matches:    matches,
		vacancies:  vacancies,
		candidates: candidates,
		mapper:     mapper,
		log:        log,
	}
}

func (r *Reconciler) Mapper() matching.VacancyMapper {
	return r.mapper
}

// TryMatch creates the match for a reciprocal pair, or returns the existing
// one. Non-reciprocal input yields an empty outcome and no error.
func (r *Reconciler) TryMatch(ctx context.Context, in TryMatchInput) (MatchOutcome, error) {
	if !matching.Reciprocal(r.mapper, in.CandidateVacancyID, in.EmployerVacancyID) {
		return MatchOutcome{}, nil
	}
	if in.CandidateID == "" {
		return MatchOutcome{}, ErrInvalidInput
	}

	m, created, err := r.matches.Create(ctx, match.Match{
		VacancyID:     in.EmployerVacancyID,
		CandidateID:   in.CandidateID,
		CandidateName: in.CandidateName,
		VacancyTitle:  in.VacancyTitle,
		Company:       in.Company,
	})
	if err != nil {
		r.log.Error("create match failed",
			zap.String("vacancy_id", in.EmployerVacancyID),
			zap.String("candidate_id", in.CandidateID),
			zap.Error(err),
		)
		return MatchOutcome{}, ErrInternal
	}

	if created {
		r.log.Info("match created",
			zap.String("match_id", m.ID.String()),
			zap.String("vacancy_id", m.VacancyID),
			zap.String("candidate_id", m.CandidateID),
		)
	}
	return MatchOutcome{Match: &m, Created: created}, nil
}

// AfterCandidateLike reconciles a candidate's like on the vacancy id the
// candidate saw.
func (r *Reconciler) AfterCandidateLike(ctx context.Context, candidateID, candidateVacancyID string) (MatchOutcome, error) {
	employerVacancyID := r.mapper.EmployerSide(candidateVacancyID)

	ok, err := r.likes.HasEmployerLike(ctx, employerVacancyID, candidateID)
	if err != nil {
		r.log.Error("reciprocal lookup failed", zap.String("candidate_id", candidateID), zap.Error(err))
		return MatchOutcome{}, ErrInternal
	}
	if !ok {
		return MatchOutcome{}, nil
	}
	return r.reconcile(ctx, candidateID, candidateVacancyID, employerVacancyID)
}

// AfterEmployerLike reconciles an employer's like on its own vacancy id.
func (r *Reconciler) AfterEmployerLike(ctx context.Context, employerVacancyID, candidateID string) (MatchOutcome, error) {
	candidateVacancyID := r.mapper.CandidateSide(employerVacancyID)

	ok, err := r.likes.HasCandidateLike(ctx, candidateID, candidateVacancyID)
	if err != nil {
		r.log.Error("reciprocal lookup failed", zap.String("vacancy_id", employerVacancyID), zap.Error(err))
		return MatchOutcome{}, ErrInternal
	}
	if !ok {
		return MatchOutcome{}, nil
	}
	return r.reconcile(ctx, candidateID, candidateVacancyID, employerVacancyID)
}

func (r *Reconciler) reconcile(ctx context.Context, candidateID, candidateVacancyID, employerVacancyID string) (MatchOutcome, error) {
	v, err := r.vacancies.GetByID(ctx, employerVacancyID)
	if err != nil {
		if errors.Is(err, vacancy.ErrNotFound) {
			return MatchOutcome{}, ErrVacancyNotFound
		}
		return MatchOutcome{}, ErrInternal
	}
	c, err := r.candidates.GetByID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, candidate.ErrNotFound) {
			return MatchOutcome{}, ErrCandidateNotFound
		}
		return MatchOutcome{}, ErrInternal
	}

	return r.TryMatch(ctx, TryMatchInput{
		CandidateVacancyID: candidateVacancyID,
		EmployerVacancyID:  employerVacancyID,
		CandidateID:        candidateID,
		CandidateName:      c.Name,
		VacancyTitle:       v.Title,
		Company:            v.Company,
	})
}
