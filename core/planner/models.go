package planner

import (
	"time"

	"github.com/academiahq/academia/core"
)

// Task statuses
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

var Statuses = []string{StatusPending, StatusCompleted}

type StudyTask struct {
	ID        int       `json:"id"`
	Subject   string    `json:"subject"`
	Topic     string    `json:"topic"`
	Deadline  time.Time `json:"deadline"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"` // UTC
}

// NewStudyTask contains information needed to create a StudyTask.
type NewStudyTask struct {
	Subject  string    `json:"subject" validate:"required"`
	Topic    string    `json:"topic" validate:"required"`
	Deadline time.Time `json:"deadline" validate:"required"`
	Status   string    `json:"status" validate:"omitempty,taskstatus"`
}

func (nt *NewStudyTask) Validate() error {
	nt.Subject = core.CleanString(nt.Subject)
	nt.Topic = core.CleanString(nt.Topic)
	nt.Status = core.CleanString(nt.Status, true /* lower */)
	if nt.Status == "" {
		nt.Status = StatusPending
	}
	return core.Validate.Struct(nt)
}

// UpdateStudyTask defines what may be modified on an existing StudyTask.
type UpdateStudyTask struct {
	Subject  string    `json:"subject"`
	Topic    string    `json:"topic"`
	Deadline time.Time `json:"deadline"`
	Status   string    `json:"status" validate:"omitempty,taskstatus"`
}

func (ut *UpdateStudyTask) Validate(orig StudyTask) error {
	if subj := core.CleanString(ut.Subject); subj != "" {
		ut.Subject = subj
	} else {
		ut.Subject = orig.Subject
	}
	if topic := core.CleanString(ut.Topic); topic != "" {
		ut.Topic = topic
	} else {
		ut.Topic = orig.Topic
	}
	if ut.Deadline.IsZero() {
		ut.Deadline = orig.Deadline
	}
	ut.Status = core.CleanString(ut.Status, true /* lower */)
	if ut.Status == "" {
		ut.Status = orig.Status
	}
	return core.Validate.Struct(ut)
}

type TaskSummary struct {
	TotalTasks           int     `json:"total_tasks"`
	CompletedTasks       int     `json:"completed_tasks"`
	CompletionPercentage float64 `json:"completion_percentage"`
}

// Summarize computes completion stats over a user's tasks.
func Summarize(tasks []StudyTask) TaskSummary {
	var completed int
	for _, t := range tasks {
		if t.Status == StatusCompleted {
			completed++
		}
	}
	summary := TaskSummary{TotalTasks: len(tasks), CompletedTasks: completed}
	if len(tasks) > 0 {
		summary.CompletionPercentage = float64(completed) / float64(len(tasks)) * 100
	}
	return summary
}
