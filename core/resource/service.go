package resource

import (
	"context"

	"github.com/google/uuid"
)

type (
	Repository interface {
		CreateResource(ctx context.Context, userID string, res StudyResource) (StudyResource, error)
		QueryUserResources(ctx context.Context, userID string) ([]StudyResource, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, userID string, nr NewStudyResource) (StudyResource, error) {
	res := StudyResource{
		ID:    uuid.New().String(),
		Title: nr.Title,
		URL:   nr.URL,
		Type:  nr.Type,
	}
	return svc.repo.CreateResource(ctx, userID, res)
}

func (svc *Service) Query(ctx context.Context, userID string) ([]StudyResource, error) {
	return svc.repo.QueryUserResources(ctx, userID)
}
