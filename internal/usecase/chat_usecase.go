package usecase

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"jobswipe/internal/domain/chat"
	"jobswipe/internal/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const DefaultMaxMessageLength = 2000

type ChatUsecase interface {
	// Append is the raw thread contract: it validates text and the match but
	// not who is writing.
	Append(ctx context.Context, matchID uuid.UUID, sender chat.Sender, text string) (chat.Message, error)
	List(ctx context.Context, matchID uuid.UUID) ([]chat.Message, error)

	// Post and Thread are the participant-checked variants used by the API.
	// The sender of a posted message is always the actor's role.
	Post(ctx context.Context, actor Actor, matchID uuid.UUID, text string) (chat.Message, error)
	Thread(ctx context.Context, actor Actor, matchID uuid.UUID) ([]chat.Message, error)
}

type Chat struct {
	messages chat.Repository
	matches  *Matches
	notifier Notifier
	maxLen   int
	log      *zap.Logger
}

func NewChatUsecase(messages chat.Repository, matches *Matches, notifier Notifier, maxLen int, log *zap.Logger) *Chat {
	if maxLen <= 0 {
		maxLen = DefaultMaxMessageLength
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Chat{messages: messages, matches: matches, notifier: notifier, maxLen: maxLen, log: log}
}

func (u *Chat) Append(ctx context.Context, matchID uuid.UUID, sender chat.Sender, text string) (chat.Message, error) {
	text, err := u.validate(matchID, sender, text)
	if err != nil {
		return chat.Message{}, err
	}

	if err := u.matches.exists(ctx, matchID); err != nil {
		return chat.Message{}, err
	}
	return u.store(ctx, matchID, sender, text)
}

func (u *Chat) List(ctx context.Context, matchID uuid.UUID) ([]chat.Message, error) {
	if matchID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	if err := u.matches.exists(ctx, matchID); err != nil {
		return nil, err
	}
	return u.list(ctx, matchID)
}

func (u *Chat) Post(ctx context.Context, actor Actor, matchID uuid.UUID, text string) (chat.Message, error) {
	if !actor.valid() {
		return chat.Message{}, ErrUnauthorized
	}
	text, err := u.validate(matchID, actor.Sender(), text)
	if err != nil {
		return chat.Message{}, err
	}

	m, companyID, err := u.matches.participantMatch(ctx, actor, matchID)
	if err != nil {
		return chat.Message{}, err
	}

	msg, err := u.store(ctx, matchID, actor.Sender(), text)
	if err != nil {
		return chat.Message{}, err
	}
	u.log.Debug("message posted",
		zap.String("match_id", matchID.String()),
		zap.String("sender", string(msg.Sender)),
		zap.String("preview", logger.Truncate(msg.Text, 40)),
	)
	publish(ctx, u.notifier, u.log, chatMessageEvent(msg, m.CandidateID, companyID))
	return msg, nil
}

func (u *Chat) Thread(ctx context.Context, actor Actor, matchID uuid.UUID) ([]chat.Message, error) {
	if _, _, err := u.matches.participantMatch(ctx, actor, matchID); err != nil {
		return nil, err
	}
	return u.list(ctx, matchID)
}

func (u *Chat) validate(matchID uuid.UUID, sender chat.Sender, text string) (string, error) {
	if matchID == uuid.Nil || !sender.Valid() {
		return "", ErrInvalidInput
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyMessage
	}
	if utf8.RuneCountInString(text) > u.maxLen {
		return "", ErrMessageTooLong
	}
	return text, nil
}

func (u *Chat) store(ctx context.Context, matchID uuid.UUID, sender chat.Sender, text string) (chat.Message, error) {
	msg, err := u.messages.Append(ctx, chat.Message{
		ID:      uuid.New(),
		MatchID: matchID,
		Sender:  sender,
		Text:    text,
	})
	if err != nil {
		if errors.Is(err, chat.ErrUnknownMatch) {
			return chat.Message{}, ErrMatchNotFound
		}
		u.log.Error("append message failed", zap.String("match_id", matchID.String()), zap.Error(err))
		return chat.Message{}, ErrInternal
	}
	return msg, nil
}

func (u *Chat) list(ctx context.Context, matchID uuid.UUID) ([]chat.Message, error) {
	items, err := u.messages.List(ctx, matchID)
	if err != nil {
		u.log.Error("list messages failed", zap.String("match_id", matchID.String()), zap.Error(err))
		return nil, ErrInternal
	}
	return items, nil
}
