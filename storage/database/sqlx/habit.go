package sqlxrepos

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/academiahq/academia/core/habit"
)

type habitRow struct {
	ID            string         `db:"id"`
	Name          string         `db:"name"`
	Icon          string         `db:"icon"`
	Color         string         `db:"color"`
	CompletedDays pq.StringArray `db:"completed_days"`
}

func (r habitRow) toHabit() habit.Habit {
	return habit.Habit{
		ID:            r.ID,
		Name:          r.Name,
		Icon:          r.Icon,
		Color:         r.Color,
		CompletedDays: []string(r.CompletedDays),
	}
}

type habitRepository struct {
	db *sqlx.DB
}

var _ habit.Repository = (*habitRepository)(nil) // interface compliance check

func NewHabitRepository(db *sqlx.DB) *habitRepository {
	return &habitRepository{db: db}
}

func (repo habitRepository) CreateHabit(ctx context.Context, userID string, h habit.Habit) (habit.Habit, error) {
	_, err := repo.db.ExecContext(ctx, `
		INSERT INTO habit (id, user_id, name, icon, color, completed_days)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		h.ID, userID, h.Name, h.Icon, h.Color, pq.StringArray(h.CompletedDays))
	if err != nil {
		return habit.Habit{}, errors.Wrap(err, "inserting habit")
	}
	return h, nil
}

func (repo habitRepository) QueryUserHabits(ctx context.Context, userID string) ([]habit.Habit, error) {
	var rows []habitRow
	err := repo.db.SelectContext(ctx, &rows, `
		SELECT id, name, icon, color, completed_days FROM habit
		WHERE user_id = $1 ORDER BY name`, userID)
	if err != nil {
		return nil, errors.Wrap(err, "querying habits")
	}
	habits := make([]habit.Habit, 0, len(rows))
	for _, r := range rows {
		habits = append(habits, r.toHabit())
	}
	return habits, nil
}

func (repo habitRepository) GetHabitByID(ctx context.Context, userID, id string) (habit.Habit, error) {
	var row habitRow
	err := repo.db.GetContext(ctx, &row, `
		SELECT id, name, icon, color, completed_days FROM habit
		WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return habit.Habit{}, trapNoRowsErr(err, habit.ErrNotFound, "getting habit")
	}
	return row.toHabit(), nil
}

func (repo habitRepository) UpdateHabitDays(ctx context.Context, userID, id string, days []string) (habit.Habit, error) {
	res, err := repo.db.ExecContext(ctx, `
		UPDATE habit SET completed_days = $3 WHERE user_id = $1 AND id = $2`,
		userID, id, pq.StringArray(days))
	if err != nil {
		return habit.Habit{}, errors.Wrap(err, "updating habit days")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return habit.Habit{}, habit.ErrNotFound
	}
	return repo.GetHabitByID(ctx, userID, id)
}

func (repo habitRepository) DeleteHabit(ctx context.Context, userID, id string) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM habit WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return errors.Wrap(err, "deleting habit")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return habit.ErrNotFound
	}
	return nil
}
