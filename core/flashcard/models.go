package flashcard

import "github.com/academiahq/academia/core"

// Difficulty levels
const (
	LevelEasy   = 0
	LevelMedium = 1
	LevelHard   = 2
)

type Flashcard struct {
	ID       string `json:"id"`
	Front    string `json:"front"`
	Back     string `json:"back"`
	Category string `json:"category"`
	Level    int    `json:"level"`
}

// NewFlashcard contains information needed to create a Flashcard.
type NewFlashcard struct {
	Front    string `json:"front" validate:"required"`
	Back     string `json:"back" validate:"required"`
	Category string `json:"category"`
	Level    int    `json:"level" validate:"min=0,max=2"`
}

func (nf *NewFlashcard) Validate() error {
	nf.Front = core.CleanString(nf.Front)
	nf.Back = core.CleanString(nf.Back)
	nf.Category = core.CleanString(nf.Category)
	return core.Validate.Struct(nf)
}
