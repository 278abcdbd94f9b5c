package repository

import (
	"context"
	"errors"
	"time"

	"jobtalk/internal/database"

	"github.com/google/uuid"
)

var ErrConversationNotFound = errors.New("conversation not found")

// ConversationMessage is one archived chat turn. The archive is a durable
// write-behind copy of the session transcript; the live transcript lives in
// the session store.
type ConversationMessage struct {
	ID          uuid.UUID
	SessionID   string
	Sender      string
	Text        string
	ActionLabel string
	ActionPath  string
	CreatedAt   time.Time
}

type ConversationRepository interface {
	SaveMessage(ctx context.Context, m ConversationMessage) error
	ListBySession(ctx context.Context, sessionID string, limit int) ([]ConversationMessage, error)
	DeleteBySession(ctx context.Context, sessionID string) error
}

type PostgresConversationRepository struct {
	db database.DB
}

func NewPostgresConversationRepository(db database.DB) *PostgresConversationRepository {
	return &PostgresConversationRepository{db: db}
}

// EnsureSchema creates the archive table when it does not exist yet.
func (r *PostgresConversationRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS conversation_messages (
			id UUID PRIMARY KEY,
			session_id TEXT NOT NULL,
			sender TEXT NOT NULL,
			text TEXT NOT NULL,
			action_label TEXT NOT NULL DEFAULT '',
			action_path TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx,
		`CREATE INDEX IF NOT EXISTS idx_conversation_messages_session
		 ON conversation_messages (session_id, created_at)`)
	return err
}

func (r *PostgresConversationRepository) SaveMessage(ctx context.Context, m ConversationMessage) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO conversation_messages (id, session_id, sender, text, action_label, action_path, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO NOTHING`,
		m.ID, m.SessionID, m.Sender, m.Text, m.ActionLabel, m.ActionPath, m.CreatedAt,
	)
	return err
}

func (r *PostgresConversationRepository) ListBySession(ctx context.Context, sessionID string, limit int) ([]ConversationMessage, error) {
	if limit <= 0 {
		limit = 200
	}
	rows, err := r.db.Query(ctx,
		`SELECT id, session_id, sender, text, action_label, action_path, created_at
		 FROM conversation_messages
		 WHERE session_id = $1
		 ORDER BY created_at ASC
		 LIMIT $2`,
		sessionID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ConversationMessage, 0)
	for rows.Next() {
		var m ConversationMessage
		if err := rows.Scan(&m.ID, &m.SessionID, &m.Sender, &m.Text, &m.ActionLabel, &m.ActionPath, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresConversationRepository) DeleteBySession(ctx context.Context, sessionID string) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM conversation_messages WHERE session_id = $1`, sessionID)
	return err
}

var _ ConversationRepository = (*PostgresConversationRepository)(nil)
