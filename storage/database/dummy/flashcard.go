package dummydb

import (
	"context"

	"github.com/academiahq/academia/core/flashcard"
)

type flashcardRepository struct {
	db *flashcardTable
}

var _ flashcard.Repository = (*flashcardRepository)(nil) // interface compliance check

func NewFlashcardRepository(db *DB) *flashcardRepository {
	return &flashcardRepository{db: db.flashcard}
}

func (repo *flashcardRepository) CreateCard(ctx context.Context, userID string, card flashcard.Flashcard) (flashcard.Flashcard, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.table[userID] = append(repo.db.table[userID], card)
	return card, nil
}

func (repo *flashcardRepository) QueryUserCards(ctx context.Context, userID string) ([]flashcard.Flashcard, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	cards := make([]flashcard.Flashcard, len(repo.db.table[userID]))
	copy(cards, repo.db.table[userID])
	return cards, nil
}

func (repo *flashcardRepository) DeleteCard(ctx context.Context, userID, id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	cards := repo.db.table[userID]
	for i, c := range cards {
		if c.ID == id {
			repo.db.table[userID] = append(cards[:i], cards[i+1:]...)
			return nil
		}
	}
	return flashcard.ErrNotFound
}
