package dummydb

import (
	"context"
	"sort"

	"github.com/academiahq/academia/core/planner"
)

var taskPKCount int

type taskRepository struct {
	db *taskTable
}

var _ planner.Repository = (*taskRepository)(nil) // interface compliance check

func NewTaskRepository(db *DB) *taskRepository {
	return &taskRepository{db: db.task}
}

func (repo *taskRepository) CreateTask(ctx context.Context, userID string, task planner.StudyTask) (planner.StudyTask, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	taskPKCount++
	task.ID = taskPKCount
	repo.db.table[task.ID] = &taskRecord{userID: userID, task: task}
	return task, nil
}

func (repo *taskRepository) QueryUserTasks(ctx context.Context, userID string) ([]planner.StudyTask, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	tasks := make([]planner.StudyTask, 0)
	for _, rec := range repo.db.table {
		if rec.userID == userID {
			tasks = append(tasks, rec.task)
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].Deadline.Before(tasks[j].Deadline) })
	return tasks, nil
}

func (repo *taskRepository) GetTaskByID(ctx context.Context, userID string, id int) (planner.StudyTask, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if rec, ok := repo.db.table[id]; ok && rec.userID == userID {
		return rec.task, nil
	}
	return planner.StudyTask{}, planner.ErrNotFound
}

func (repo *taskRepository) UpdateTask(ctx context.Context, userID string, task planner.StudyTask) (planner.StudyTask, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if rec, ok := repo.db.table[task.ID]; ok && rec.userID == userID {
		rec.task = task
		return task, nil
	}
	return planner.StudyTask{}, planner.ErrNotFound
}

func (repo *taskRepository) DeleteTask(ctx context.Context, userID string, id int) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if rec, ok := repo.db.table[id]; ok && rec.userID == userID {
		delete(repo.db.table, id)
		return nil
	}
	return planner.ErrNotFound
}
