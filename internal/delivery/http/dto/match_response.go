package dto

import (
	"time"

	"jobswipe/internal/domain/match"

	"github.com/google/uuid"
)

type MatchResponse struct {
	ID            uuid.UUID `json:"id"`
	VacancyID     string    `json:"vacancy_id"`
	CandidateID   string    `json:"candidate_id"`
	CandidateName string    `json:"candidate_name"`
	VacancyTitle  string    `json:"vacancy_title"`
	Company       string    `json:"company"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewMatchResponse(m match.Match) MatchResponse {
	return MatchResponse{
		ID:            m.ID,
		VacancyID:     m.VacancyID,
		CandidateID:   m.CandidateID,
		CandidateName: m.CandidateName,
		VacancyTitle:  m.VacancyTitle,
		Company:       m.Company,
		CreatedAt:     m.CreatedAt,
	}
}

func NewMatchListResponse(items []match.Match) []MatchResponse {
	out := make([]MatchResponse, 0, len(items))
	for _, m := range items {
		out = append(out, NewMatchResponse(m))
	}
	return out
}
