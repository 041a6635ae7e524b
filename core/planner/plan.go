package planner

import (
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"
)

var (
	ErrEmptySyllabus = errors.New("syllabus text cannot be empty")
	ErrInvalidRange  = errors.New("end date must be after start date")

	topicSeparatorRegex = regexp.MustCompile(`[,;\n]+`)
)

// PlannedTopic is one syllabus topic assigned a study deadline.
type PlannedTopic struct {
	Topic    string    `json:"topic"`
	Deadline time.Time `json:"deadline"`
}

// BuildPlan splits a raw syllabus into topics and distributes them evenly
// across the days between start and end. Topics are split on commas,
// semicolons and newlines.
func BuildPlan(syllabus string, start, end time.Time) ([]PlannedTopic, error) {
	if strings.TrimSpace(syllabus) == "" {
		return nil, ErrEmptySyllabus
	}

	dayStart := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	dayEnd := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 0, end.Location())
	if !dayEnd.After(dayStart) {
		return nil, ErrInvalidRange
	}
	days := int(dayEnd.Sub(dayStart).Hours()/24) + 1

	var topics []string
	for _, t := range topicSeparatorRegex.Split(syllabus, -1) {
		if t = strings.TrimSpace(t); t != "" {
			topics = append(topics, t)
		}
	}
	if len(topics) == 0 {
		return nil, ErrEmptySyllabus
	}

	perDay := (len(topics) + days - 1) / days
	if perDay < 1 {
		perDay = 1
	}

	planned := make([]PlannedTopic, 0, len(topics))
	day := 0
	for i := 0; i < len(topics); i += perDay {
		deadline := dayStart.AddDate(0, 0, day)
		batch := topics[i:min(i+perDay, len(topics))]
		for _, topic := range batch {
			planned = append(planned, PlannedTopic{Topic: topic, Deadline: deadline})
		}
		day++
	}
	return planned, nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
