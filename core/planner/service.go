package planner

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("study task not found")

type (
	Repository interface {
		CreateTask(ctx context.Context, userID string, task StudyTask) (StudyTask, error)
		// QueryUserTasks returns the user's tasks ordered by deadline ascending.
		QueryUserTasks(ctx context.Context, userID string) ([]StudyTask, error)
		GetTaskByID(ctx context.Context, userID string, id int) (StudyTask, error)
		UpdateTask(ctx context.Context, userID string, task StudyTask) (StudyTask, error)
		DeleteTask(ctx context.Context, userID string, id int) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, userID string, nt NewStudyTask) (StudyTask, error) {
	task := StudyTask{
		Subject:   nt.Subject,
		Topic:     nt.Topic,
		Deadline:  nt.Deadline,
		Status:    nt.Status,
		CreatedAt: time.Now().UTC(),
	}
	return svc.repo.CreateTask(ctx, userID, task)
}

func (svc *Service) Query(ctx context.Context, userID string) ([]StudyTask, error) {
	return svc.repo.QueryUserTasks(ctx, userID)
}

func (svc *Service) GetByID(ctx context.Context, userID string, id int) (StudyTask, error) {
	return svc.repo.GetTaskByID(ctx, userID, id)
}

func (svc *Service) Update(ctx context.Context, userID string, orig StudyTask, ut UpdateStudyTask) (StudyTask, error) {
	orig.Subject = ut.Subject
	orig.Topic = ut.Topic
	orig.Deadline = ut.Deadline
	orig.Status = ut.Status
	return svc.repo.UpdateTask(ctx, userID, orig)
}

func (svc *Service) Delete(ctx context.Context, userID string, id int) error {
	return svc.repo.DeleteTask(ctx, userID, id)
}

func (svc *Service) Summary(ctx context.Context, userID string) (TaskSummary, error) {
	tasks, err := svc.repo.QueryUserTasks(ctx, userID)
	if err != nil {
		return TaskSummary{}, err
	}
	return Summarize(tasks), nil
}

// GeneratePlan builds study tasks from a syllabus and persists them all under
// the given subject.
func (svc *Service) GeneratePlan(ctx context.Context, userID, subject, syllabus string, start, end time.Time) ([]StudyTask, error) {
	planned, err := BuildPlan(syllabus, start, end)
	if err != nil {
		return nil, err
	}

	tasks := make([]StudyTask, 0, len(planned))
	for _, p := range planned {
		task, err := svc.repo.CreateTask(ctx, userID, StudyTask{
			Subject:   subject,
			Topic:     p.Topic,
			Deadline:  p.Deadline,
			Status:    StatusPending,
			CreatedAt: time.Now().UTC(),
		})
		if err != nil {
			return nil, errors.Wrap(err, "persisting planned task")
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}
