package roadmap

import (
	"context"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("career roadmap not found")

type (
	Repository interface {
		// SaveRoadmap upserts the user's single roadmap.
		SaveRoadmap(ctx context.Context, userID string, rm CareerRoadmap) (CareerRoadmap, error)
		GetRoadmap(ctx context.Context, userID string) (CareerRoadmap, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Generate builds the roadmap and persists it as the user's current one.
func (svc *Service) Generate(ctx context.Context, userID string, gr GenerateRoadmap) (CareerRoadmap, error) {
	return svc.repo.SaveRoadmap(ctx, userID, Generate(gr.Degree, gr.TargetJob, gr.Timeline))
}

func (svc *Service) Get(ctx context.Context, userID string) (CareerRoadmap, error) {
	return svc.repo.GetRoadmap(ctx, userID)
}
