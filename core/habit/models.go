package habit

import "github.com/academiahq/academia/core"

type Habit struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Icon          string   `json:"icon"`
	Color         string   `json:"color"`
	CompletedDays []string `json:"completed_days"` // YYYY-MM-DD
}

// MarkedOn reports whether the habit was completed on the given day.
func (h *Habit) MarkedOn(date string) bool {
	for _, d := range h.CompletedDays {
		if d == date {
			return true
		}
	}
	return false
}

// NewHabit contains information needed to create a Habit.
type NewHabit struct {
	Name  string `json:"name" validate:"required"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

func (nh *NewHabit) Validate() error {
	nh.Name = core.CleanString(nh.Name)
	return core.Validate.Struct(nh)
}

// ToggleHabit carries the day being flipped.
type ToggleHabit struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

func (th *ToggleHabit) Validate() error {
	th.Date = core.CleanString(th.Date)
	return core.Validate.Struct(th)
}
