package sqlxrepos

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/academiahq/academia/core/assistant"
)

type chatRepository struct {
	db *sqlx.DB
}

var _ assistant.Repository = (*chatRepository)(nil) // interface compliance check

func NewChatRepository(db *sqlx.DB) *chatRepository {
	return &chatRepository{db: db}
}

func (repo chatRepository) GetMessages(ctx context.Context, userID string) ([]assistant.ChatMessage, error) {
	msgs := make([]assistant.ChatMessage, 0)
	err := repo.db.SelectContext(ctx, &msgs, `
		SELECT role, content, timestamp FROM chat_message
		WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, errors.Wrap(err, "querying chat messages")
	}
	return msgs, nil
}

// AppendTurn inserts the user message and its assistant reply in one
// transaction so a half-written turn never survives.
func (repo chatRepository) AppendTurn(ctx context.Context, userID string, userMsg, assistantMsg assistant.ChatMessage) error {
	tx, err := repo.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "beginning turn transaction")
	}
	defer func() { _ = tx.Rollback() }()

	const q = `INSERT INTO chat_message (user_id, role, content, timestamp) VALUES ($1, $2, $3, $4)`
	if _, err = tx.ExecContext(ctx, q, userID, userMsg.Role, userMsg.Content, userMsg.Timestamp); err != nil {
		return errors.Wrap(err, "inserting user message")
	}
	if _, err = tx.ExecContext(ctx, q, userID, assistantMsg.Role, assistantMsg.Content, assistantMsg.Timestamp); err != nil {
		return errors.Wrap(err, "inserting assistant message")
	}
	return errors.Wrap(tx.Commit(), "committing turn")
}

func (repo chatRepository) ClearMessages(ctx context.Context, userID string) error {
	if _, err := repo.db.ExecContext(ctx, `DELETE FROM chat_message WHERE user_id = $1`, userID); err != nil {
		return errors.Wrap(err, "clearing chat messages")
	}
	return nil
}
