package usecase

import (
	"context"
	"errors"
	"time"

	"jobswipe/internal/domain/chat"
	"jobswipe/internal/domain/event"
	"jobswipe/internal/domain/match"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Notifier interface {
	Publish(ctx context.Context, evt event.Event) error
}

// MultiNotifier fans an event out to every notifier and joins their errors.
type MultiNotifier []Notifier

func (m MultiNotifier) Publish(ctx context.Context, evt event.Event) error {
	var errs []error
	for _, n := range m {
		if n == nil {
			continue
		}
		if err := n.Publish(ctx, evt); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type MatchPayload struct {
	MatchID       uuid.UUID `json:"match_id"`
	VacancyID     string    `json:"vacancy_id"`
	CandidateID   string    `json:"candidate_id"`
	CandidateName string    `json:"candidate_name"`
	VacancyTitle  string    `json:"vacancy_title"`
	Company       string    `json:"company"`
	CreatedAt     time.Time `json:"created_at"`
}

type MessagePayload struct {
	MessageID uuid.UUID `json:"message_id"`
	MatchID   uuid.UUID `json:"match_id"`
	Sender    string    `json:"sender"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

func matchCreatedEvent(m match.Match, companyID string) event.Event {
	return event.Event{
		Type:       event.TypeMatchCreated,
		Recipients: []event.Recipient{candidateRecipient(m.CandidateID), employerRecipient(companyID)},
		Payload: MatchPayload{
			MatchID:       m.ID,
			VacancyID:     m.VacancyID,
			CandidateID:   m.CandidateID,
			CandidateName: m.CandidateName,
			VacancyTitle:  m.VacancyTitle,
			Company:       m.Company,
			CreatedAt:     m.CreatedAt,
		},
		OccurredAt: time.Now().UTC(),
	}
}

func chatMessageEvent(msg chat.Message, candidateID, companyID string) event.Event {
	return event.Event{
		Type:       event.TypeChatMessage,
		Recipients: []event.Recipient{candidateRecipient(candidateID), employerRecipient(companyID)},
		Payload: MessagePayload{
			MessageID: msg.ID,
			MatchID:   msg.MatchID,
			Sender:    string(msg.Sender),
			Text:      msg.Text,
			CreatedAt: msg.CreatedAt,
		},
		OccurredAt: time.Now().UTC(),
	}
}

// publish never fails the caller; delivery problems are only logged.
func publish(ctx context.Context, n Notifier, log *zap.Logger, evt event.Event) {
	if n == nil {
		return
	}
	if err := n.Publish(ctx, evt); err != nil {
		log.Warn("event publish failed", zap.String("type", evt.Type), zap.Error(err))
	}
}
