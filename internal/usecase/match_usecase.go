package usecase

import (
	"context"
	"errors"

	"jobswipe/internal/domain"
	"jobswipe/internal/domain/match"
	"jobswipe/internal/domain/vacancy"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MatchUsecase interface {
	// ListMatches returns the actor's matches. Employers may narrow the list
	// to one of their vacancies with vacancyID.
	ListMatches(ctx context.Context, actor Actor, vacancyID string) ([]match.Match, error)
	GetMatch(ctx context.Context, actor Actor, matchID uuid.UUID) (match.Match, error)
}

type Matches struct {
	matches   match.Repository
	vacancies vacancy.Repository
	log       *zap.Logger
}

func NewMatchUsecase(matches match.Repository, vacancies vacancy.Repository, log *zap.Logger) *Matches {
	if log == nil {
		log = zap.NewNop()
	}
	return &Matches{matches: matches, vacancies: vacancies, log: log}
}

func (u *Matches) ListMatches(ctx context.Context, actor Actor, vacancyID string) ([]match.Match, error) {
	if !actor.valid() {
		return nil, ErrUnauthorized
	}

	var (
		items []match.Match
		err   error
	)
	switch actor.Role {
	case RoleCandidate:
		items, err = u.matches.ListForCandidate(ctx, actor.ID)
	default:
		var ids []string
		if vacancyID != "" {
			if !domain.ValidID(vacancyID) {
				return nil, ErrInvalidInput
			}
			if _, err := u.ownedVacancy(ctx, actor.ID, vacancyID); err != nil {
				return nil, err
			}
			ids = []string{vacancyID}
		} else {
			ids, err = companyVacancyIDs(ctx, u.vacancies, actor.ID)
			if err != nil {
				u.log.Error("list company vacancies failed", zap.Error(err))
				return nil, ErrInternal
			}
			if len(ids) == 0 {
				return []match.Match{}, nil
			}
		}
		items, err = u.matches.ListForEmployer(ctx, ids...)
	}
	if err != nil {
		u.log.Error("list matches failed", zap.String("role", actor.Role), zap.Error(err))
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Matches) GetMatch(ctx context.Context, actor Actor, matchID uuid.UUID) (match.Match, error) {
	m, _, err := u.participantMatch(ctx, actor, matchID)
	return m, err
}

func (u *Matches) exists(ctx context.Context, matchID uuid.UUID) error {
	if _, err := u.matches.Get(ctx, matchID); err != nil {
		if errors.Is(err, match.ErrNotFound) {
			return ErrMatchNotFound
		}
		u.log.Error("get match failed", zap.String("match_id", matchID.String()), zap.Error(err))
		return ErrInternal
	}
	return nil
}

// participantMatch loads the match and checks the actor takes part in it. The
// owning company id is returned for event addressing.
func (u *Matches) participantMatch(ctx context.Context, actor Actor, matchID uuid.UUID) (match.Match, string, error) {
	if !actor.valid() {
		return match.Match{}, "", ErrUnauthorized
	}
	if matchID == uuid.Nil {
		return match.Match{}, "", ErrInvalidInput
	}

	m, err := u.matches.Get(ctx, matchID)
	if err != nil {
		if errors.Is(err, match.ErrNotFound) {
			return match.Match{}, "", ErrMatchNotFound
		}
		u.log.Error("get match failed", zap.String("match_id", matchID.String()), zap.Error(err))
		return match.Match{}, "", ErrInternal
	}

	v, err := u.vacancies.GetByID(ctx, m.VacancyID)
	if err != nil {
		if errors.Is(err, vacancy.ErrNotFound) {
			return match.Match{}, "", ErrVacancyNotFound
		}
		u.log.Error("get vacancy failed", zap.String("vacancy_id", m.VacancyID), zap.Error(err))
		return match.Match{}, "", ErrInternal
	}

	switch actor.Role {
	case RoleCandidate:
		if m.CandidateID != actor.ID {
			return match.Match{}, "", ErrForbidden
		}
	case RoleEmployer:
		if v.CompanyID != actor.ID {
			return match.Match{}, "", ErrForbidden
		}
	}
	return m, v.CompanyID, nil
}

func (u *Matches) ownedVacancy(ctx context.Context, companyID, vacancyID string) (vacancy.Vacancy, error) {
	v, err := u.vacancies.GetByID(ctx, vacancyID)
	if err != nil {
		if errors.Is(err, vacancy.ErrNotFound) {
			return vacancy.Vacancy{}, ErrVacancyNotFound
		}
		u.log.Error("get vacancy failed", zap.String("vacancy_id", vacancyID), zap.Error(err))
		return vacancy.Vacancy{}, ErrInternal
	}
	if v.CompanyID != companyID {
		return vacancy.Vacancy{}, ErrForbidden
	}
	return v, nil
}
