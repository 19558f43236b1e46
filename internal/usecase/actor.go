package usecase

import (
	"jobswipe/internal/domain"
	"jobswipe/internal/domain/chat"
	"jobswipe/internal/domain/event"
)

const (
	RoleCandidate = "candidate"
	RoleEmployer  = "employer"
)

// Actor is the authenticated caller as supplied by the session layer. For an
// employer ID is the company id.
type Actor struct {
	Role string
	ID   string
}

func (a Actor) valid() bool {
	return (a.Role == RoleCandidate || a.Role == RoleEmployer) && domain.ValidID(a.ID)
}

// Sender is the role recorded on messages this actor writes.
func (a Actor) Sender() chat.Sender {
	return chat.Sender(a.Role)
}

func candidateRecipient(candidateID string) event.Recipient {
	return event.Recipient{Role: RoleCandidate, ID: candidateID}
}

func employerRecipient(companyID string) event.Recipient {
	return event.Recipient{Role: RoleEmployer, ID: companyID}
}
