package dummydb

import (
	"context"

	"github.com/academiahq/academia/core/habit"
)

type habitRepository struct {
	db *habitTable
}

var _ habit.Repository = (*habitRepository)(nil) // interface compliance check

func NewHabitRepository(db *DB) *habitRepository {
	return &habitRepository{db: db.habit}
}

func (repo *habitRepository) CreateHabit(ctx context.Context, userID string, h habit.Habit) (habit.Habit, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.table[userID] = append(repo.db.table[userID], h)
	return h, nil
}

func (repo *habitRepository) QueryUserHabits(ctx context.Context, userID string) ([]habit.Habit, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	habits := make([]habit.Habit, len(repo.db.table[userID]))
	copy(habits, repo.db.table[userID])
	return habits, nil
}

func (repo *habitRepository) GetHabitByID(ctx context.Context, userID, id string) (habit.Habit, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, h := range repo.db.table[userID] {
		if h.ID == id {
			return h, nil
		}
	}
	return habit.Habit{}, habit.ErrNotFound
}

func (repo *habitRepository) UpdateHabitDays(ctx context.Context, userID, id string, days []string) (habit.Habit, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	habits := repo.db.table[userID]
	for i, h := range habits {
		if h.ID == id {
			h.CompletedDays = days
			habits[i] = h
			return h, nil
		}
	}
	return habit.Habit{}, habit.ErrNotFound
}

func (repo *habitRepository) DeleteHabit(ctx context.Context, userID, id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	habits := repo.db.table[userID]
	for i, h := range habits {
		if h.ID == id {
			repo.db.table[userID] = append(habits[:i], habits[i+1:]...)
			return nil
		}
	}
	return habit.ErrNotFound
}
