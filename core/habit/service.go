package habit

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("habit not found")

type (
	Repository interface {
		CreateHabit(ctx context.Context, userID string, habit Habit) (Habit, error)
		QueryUserHabits(ctx context.Context, userID string) ([]Habit, error)
		GetHabitByID(ctx context.Context, userID, id string) (Habit, error)
		UpdateHabitDays(ctx context.Context, userID, id string, days []string) (Habit, error)
		DeleteHabit(ctx context.Context, userID, id string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, userID string, nh NewHabit) (Habit, error) {
	habit := Habit{
		ID:            uuid.New().String(),
		Name:          nh.Name,
		Icon:          nh.Icon,
		Color:         nh.Color,
		CompletedDays: []string{},
	}
	return svc.repo.CreateHabit(ctx, userID, habit)
}

func (svc *Service) Query(ctx context.Context, userID string) ([]Habit, error) {
	return svc.repo.QueryUserHabits(ctx, userID)
}

// Toggle flips membership of date in the habit's completed days.
func (svc *Service) Toggle(ctx context.Context, userID, id, date string) (Habit, error) {
	habit, err := svc.repo.GetHabitByID(ctx, userID, id)
	if err != nil {
		return Habit{}, err
	}

	if habit.MarkedOn(date) {
		days := make([]string, 0, len(habit.CompletedDays)-1)
		for _, d := range habit.CompletedDays {
			if d != date {
				days = append(days, d)
			}
		}
		habit.CompletedDays = days
	} else {
		habit.CompletedDays = append(habit.CompletedDays, date)
	}
	return svc.repo.UpdateHabitDays(ctx, userID, id, habit.CompletedDays)
}

func (svc *Service) Delete(ctx context.Context, userID, id string) error {
	return svc.repo.DeleteHabit(ctx, userID, id)
}
