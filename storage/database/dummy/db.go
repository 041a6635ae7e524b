package dummydb

import (
	"sync"

	"github.com/academiahq/academia/core/assistant"
	"github.com/academiahq/academia/core/flashcard"
	"github.com/academiahq/academia/core/focus"
	"github.com/academiahq/academia/core/habit"
	"github.com/academiahq/academia/core/planner"
	"github.com/academiahq/academia/core/resource"
	"github.com/academiahq/academia/core/roadmap"
	"github.com/academiahq/academia/core/user"
)

type (
	DB struct {
		user      *userTable
		chat      *chatTable
		task      *taskTable
		focus     *focusTable
		habit     *habitTable
		flashcard *flashcardTable
		resource  *resourceTable
		roadmap   *roadmapTable
	}

	userTable struct {
		sync.RWMutex
		table map[string]*user.User
	}

	chatTable struct {
		sync.RWMutex
		table map[string][]assistant.ChatMessage // keyed by user ID
	}

	taskTable struct {
		sync.RWMutex
		table map[int]*taskRecord
	}

	taskRecord struct {
		userID string
		task   planner.StudyTask
	}

	focusTable struct {
		sync.RWMutex
		table map[string][]focus.Session // keyed by user ID
	}

	habitTable struct {
		sync.RWMutex
		table map[string][]habit.Habit // keyed by user ID
	}

	flashcardTable struct {
		sync.RWMutex
		table map[string][]flashcard.Flashcard // keyed by user ID
	}

	resourceTable struct {
		sync.RWMutex
		table map[string][]resource.StudyResource // keyed by user ID
	}

	roadmapTable struct {
		sync.RWMutex
		table map[string]roadmap.CareerRoadmap // keyed by user ID
	}
)

func Open() (*DB, error) {
	db := &DB{
		user:      &userTable{table: make(map[string]*user.User)},
		chat:      &chatTable{table: make(map[string][]assistant.ChatMessage)},
		task:      &taskTable{table: make(map[int]*taskRecord)},
		focus:     &focusTable{table: make(map[string][]focus.Session)},
		habit:     &habitTable{table: make(map[string][]habit.Habit)},
		flashcard: &flashcardTable{table: make(map[string][]flashcard.Flashcard)},
		resource:  &resourceTable{table: make(map[string][]resource.StudyResource)},
		roadmap:   &roadmapTable{table: make(map[string]roadmap.CareerRoadmap)},
	}
	return db, nil
}
