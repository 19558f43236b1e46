package match

import (
	"time"

	"github.com/google/uuid"
)

// Match is a confirmed mutual interest between a candidate and a vacancy.
// Display fields are denormalized at creation time and never updated.
type Match struct {
	ID            uuid.UUID
	VacancyID     string
	CandidateID   string
	CandidateName string
	VacancyTitle  string
	Company       string
	CreatedAt     time.Time
}

type Key struct {
	VacancyID   string
	CandidateID string
}

func (m Match) Key() Key {
	return Key{VacancyID: m.VacancyID, CandidateID: m.CandidateID}
}
