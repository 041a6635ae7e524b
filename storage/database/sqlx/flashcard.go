package sqlxrepos

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/academiahq/academia/core/flashcard"
)

type flashcardRepository struct {
	db *sqlx.DB
}

var _ flashcard.Repository = (*flashcardRepository)(nil) // interface compliance check

func NewFlashcardRepository(db *sqlx.DB) *flashcardRepository {
	return &flashcardRepository{db: db}
}

func (repo flashcardRepository) CreateCard(ctx context.Context, userID string, card flashcard.Flashcard) (flashcard.Flashcard, error) {
	_, err := repo.db.ExecContext(ctx, `
		INSERT INTO flashcard (id, user_id, front, back, category, level)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		card.ID, userID, card.Front, card.Back, card.Category, card.Level)
	if err != nil {
		return flashcard.Flashcard{}, errors.Wrap(err, "inserting flashcard")
	}
	return card, nil
}

func (repo flashcardRepository) QueryUserCards(ctx context.Context, userID string) ([]flashcard.Flashcard, error) {
	cards := []flashcard.Flashcard{}
	err := repo.db.SelectContext(ctx, &cards, `
		SELECT id, front, back, category, level FROM flashcard
		WHERE user_id = $1 ORDER BY category, front`, userID)
	if err != nil {
		return nil, errors.Wrap(err, "querying flashcards")
	}
	return cards, nil
}

func (repo flashcardRepository) DeleteCard(ctx context.Context, userID, id string) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM flashcard WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return errors.Wrap(err, "deleting flashcard")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return flashcard.ErrNotFound
	}
	return nil
}
