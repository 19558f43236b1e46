package repository

import (
	"context"
	"fmt"

	"jobswipe/internal/database"
	"jobswipe/internal/database/postgres"
	"jobswipe/internal/domain/chat"

	"github.com/google/uuid"
)

type PostgresChatRepository struct {
	db database.DB
}

func NewPostgresChatRepository(db database.DB) *PostgresChatRepository {
	return &PostgresChatRepository{db: db}
}

// Append lets the database stamp created_at with clock_timestamp() so that
// ordering follows commit-time arrival, with seq breaking ties.
func (r *PostgresChatRepository) Append(ctx context.Context, msg chat.Message) (chat.Message, error) {
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO chat_messages (id, match_id, sender, body)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at`,
		msg.ID, msg.MatchID, string(msg.Sender), msg.Text,
	)
	if err := row.Scan(&msg.CreatedAt); err != nil {
		if postgres.IsForeignKeyViolation(err) {
			return chat.Message{}, chat.ErrUnknownMatch
		}
		return chat.Message{}, fmt.Errorf("append message: %w", err)
	}
	return msg, nil
}

func (r *PostgresChatRepository) List(ctx context.Context, matchID uuid.UUID) ([]chat.Message, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, match_id, sender, body, created_at
		 FROM chat_messages
		 WHERE match_id = $1
		 ORDER BY created_at ASC, seq ASC`,
		matchID,
	)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	out := make([]chat.Message, 0)
	for rows.Next() {
		var m chat.Message
		var sender string
		if err := rows.Scan(&m.ID, &m.MatchID, &sender, &m.Text, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.Sender = chat.Sender(sender)
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
