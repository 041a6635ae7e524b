package resource

import "github.com/academiahq/academia/core"

type StudyResource struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Type  string `json:"type"` // PDF, Video, Link
}

// NewStudyResource contains information needed to save a StudyResource.
type NewStudyResource struct {
	Title string `json:"title" validate:"required"`
	URL   string `json:"url" validate:"required,url"`
	Type  string `json:"type"`
}

func (nr *NewStudyResource) Validate() error {
	nr.Title = core.CleanString(nr.Title)
	nr.URL = core.CleanString(nr.URL)
	nr.Type = core.CleanString(nr.Type)
	return core.Validate.Struct(nr)
}
