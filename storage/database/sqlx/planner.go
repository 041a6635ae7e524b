package sqlxrepos

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/academiahq/academia/core/planner"
)

type taskRow struct {
	ID        int       `db:"id"`
	Subject   string    `db:"subject"`
	Topic     string    `db:"topic"`
	Deadline  time.Time `db:"deadline"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}

func (r taskRow) toTask() planner.StudyTask {
	return planner.StudyTask{
		ID:        r.ID,
		Subject:   r.Subject,
		Topic:     r.Topic,
		Deadline:  r.Deadline,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
	}
}

type taskRepository struct {
	db *sqlx.DB
}

var _ planner.Repository = (*taskRepository)(nil) // interface compliance check

func NewTaskRepository(db *sqlx.DB) *taskRepository {
	return &taskRepository{db: db}
}

func (repo taskRepository) CreateTask(ctx context.Context, userID string, task planner.StudyTask) (planner.StudyTask, error) {
	err := repo.db.GetContext(ctx, &task.ID, `
		INSERT INTO study_task (user_id, subject, topic, deadline, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		userID, task.Subject, task.Topic, task.Deadline, task.Status, task.CreatedAt)
	if err != nil {
		return planner.StudyTask{}, errors.Wrap(err, "inserting study task")
	}
	return task, nil
}

func (repo taskRepository) QueryUserTasks(ctx context.Context, userID string) ([]planner.StudyTask, error) {
	var rows []taskRow
	err := repo.db.SelectContext(ctx, &rows, `
		SELECT id, subject, topic, deadline, status, created_at FROM study_task
		WHERE user_id = $1 ORDER BY deadline`, userID)
	if err != nil {
		return nil, errors.Wrap(err, "querying study tasks")
	}
	tasks := make([]planner.StudyTask, 0, len(rows))
	for _, r := range rows {
		tasks = append(tasks, r.toTask())
	}
	return tasks, nil
}

func (repo taskRepository) GetTaskByID(ctx context.Context, userID string, id int) (planner.StudyTask, error) {
	var row taskRow
	err := repo.db.GetContext(ctx, &row, `
		SELECT id, subject, topic, deadline, status, created_at FROM study_task
		WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return planner.StudyTask{}, trapNoRowsErr(err, planner.ErrNotFound, "getting study task")
	}
	return row.toTask(), nil
}

func (repo taskRepository) UpdateTask(ctx context.Context, userID string, task planner.StudyTask) (planner.StudyTask, error) {
	res, err := repo.db.ExecContext(ctx, `
		UPDATE study_task SET subject = $3, topic = $4, deadline = $5, status = $6
		WHERE user_id = $1 AND id = $2`,
		userID, task.ID, task.Subject, task.Topic, task.Deadline, task.Status)
	if err != nil {
		return planner.StudyTask{}, errors.Wrap(err, "updating study task")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return planner.StudyTask{}, planner.ErrNotFound
	}
	return task, nil
}

func (repo taskRepository) DeleteTask(ctx context.Context, userID string, id int) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM study_task WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return errors.Wrap(err, "deleting study task")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return planner.ErrNotFound
	}
	return nil
}
