package dummydb

import (
	"context"

	"github.com/academiahq/academia/core/focus"
)

type focusRepository struct {
	db *focusTable
}

var _ focus.Repository = (*focusRepository)(nil) // interface compliance check

func NewFocusRepository(db *DB) *focusRepository {
	return &focusRepository{db: db.focus}
}

func (repo *focusRepository) CreateSession(ctx context.Context, userID string, session focus.Session) (focus.Session, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.table[userID] = append(repo.db.table[userID], session)
	return session, nil
}

func (repo *focusRepository) QueryUserSessions(ctx context.Context, userID string) ([]focus.Session, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	sessions := make([]focus.Session, len(repo.db.table[userID]))
	copy(sessions, repo.db.table[userID])
	return sessions, nil
}
