package focus

import (
	"context"
	"time"
)

type (
	Repository interface {
		CreateSession(ctx context.Context, userID string, session Session) (Session, error)
		QueryUserSessions(ctx context.Context, userID string) ([]Session, error)
	}

	Service struct {
		repo Repository

		nowFunc func() time.Time // mockable
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo, nowFunc: time.Now}
}

func (svc *Service) Create(ctx context.Context, userID string, ns NewSession) (Session, error) {
	session := Session{
		DurationMinutes: ns.DurationMinutes,
		Timestamp:       svc.nowFunc().UTC(),
	}
	return svc.repo.CreateSession(ctx, userID, session)
}

func (svc *Service) Query(ctx context.Context, userID string) ([]Session, error) {
	return svc.repo.QueryUserSessions(ctx, userID)
}

func (svc *Service) Metrics(ctx context.Context, userID string) (Metrics, error) {
	sessions, err := svc.repo.QueryUserSessions(ctx, userID)
	if err != nil {
		return Metrics{}, err
	}
	return ComputeMetrics(sessions, svc.nowFunc()), nil
}
