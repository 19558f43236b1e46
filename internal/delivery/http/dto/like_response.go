package dto

import (
	"time"

	"jobswipe/internal/domain/like"
)

// LikeResponse answers a swipe. Match is null until the pair is mutual.
type LikeResponse struct {
	LikeCreated  bool           `json:"like_created"`
	Matched      bool           `json:"matched"`
	MatchCreated bool           `json:"match_created"`
	Match        *MatchResponse `json:"match"`
}

type CandidateLikesResponse struct {
	VacancyIDs []string `json:"vacancy_ids"`
}

type EmployerLikeResponse struct {
	VacancyID   string    `json:"vacancy_id"`
	CandidateID string    `json:"candidate_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewEmployerLikeListResponse(items []like.EmployerLike) []EmployerLikeResponse {
	out := make([]EmployerLikeResponse, 0, len(items))
	for _, it := range items {
		out = append(out, EmployerLikeResponse{
			VacancyID:   it.VacancyID,
			CandidateID: it.CandidateID,
			CreatedAt:   it.CreatedAt,
		})
	}
	return out
}
