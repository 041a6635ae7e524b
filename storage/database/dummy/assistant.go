package dummydb

import (
	"context"

	"github.com/academiahq/academia/core/assistant"
)

type chatRepository struct {
	db *chatTable
}

var _ assistant.Repository = (*chatRepository)(nil) // interface compliance check

func NewChatRepository(db *DB) *chatRepository {
	return &chatRepository{db: db.chat}
}

func (repo *chatRepository) GetMessages(ctx context.Context, userID string) ([]assistant.ChatMessage, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	msgs := make([]assistant.ChatMessage, len(repo.db.table[userID]))
	copy(msgs, repo.db.table[userID])
	return msgs, nil
}

func (repo *chatRepository) AppendTurn(ctx context.Context, userID string, userMsg, assistantMsg assistant.ChatMessage) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.table[userID] = append(repo.db.table[userID], userMsg, assistantMsg)
	return nil
}

func (repo *chatRepository) ClearMessages(ctx context.Context, userID string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	delete(repo.db.table, userID)
	return nil
}
