package like

import "time"

// CandidateLike records a candidate swiping right on a vacancy.
type CandidateLike struct {
	CandidateID string
	VacancyID   string
	CreatedAt   time.Time
}

// EmployerLike records an employer swiping right on a candidate for one of
// its vacancies.
type EmployerLike struct {
	VacancyID   string
	CandidateID string
	CreatedAt   time.Time
}
