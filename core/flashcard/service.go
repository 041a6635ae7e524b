package flashcard

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("flashcard not found")

type (
	Repository interface {
		CreateCard(ctx context.Context, userID string, card Flashcard) (Flashcard, error)
		QueryUserCards(ctx context.Context, userID string) ([]Flashcard, error)
		DeleteCard(ctx context.Context, userID, id string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, userID string, nf NewFlashcard) (Flashcard, error) {
	card := Flashcard{
		ID:       uuid.New().String(),
		Front:    nf.Front,
		Back:     nf.Back,
		Category: nf.Category,
		Level:    nf.Level,
	}
	return svc.repo.CreateCard(ctx, userID, card)
}

func (svc *Service) Query(ctx context.Context, userID string) ([]Flashcard, error) {
	return svc.repo.QueryUserCards(ctx, userID)
}

func (svc *Service) Delete(ctx context.Context, userID, id string) error {
	return svc.repo.DeleteCard(ctx, userID, id)
}
