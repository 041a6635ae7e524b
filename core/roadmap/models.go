package roadmap

import "github.com/academiahq/academia/core"

type CareerRoadmap struct {
	Degree             string   `json:"degree"`
	TargetJob          string   `json:"target_job"`
	Timeline           string   `json:"timeline"`
	SkillRoadmap       []string `json:"skill_roadmap"`
	RecommendedTools   []string `json:"recommended_tools"`
	ProjectSuggestions []string `json:"project_suggestions"`
	InternshipPath     []string `json:"internship_path"`
}

// GenerateRoadmap contains the inputs to roadmap generation.
type GenerateRoadmap struct {
	Degree    string `json:"degree" validate:"required"`
	TargetJob string `json:"target_job" validate:"required"`
	Timeline  string `json:"timeline" validate:"required"`
}

func (gr *GenerateRoadmap) Validate() error {
	gr.Degree = core.CleanString(gr.Degree)
	gr.TargetJob = core.CleanString(gr.TargetJob)
	gr.Timeline = core.CleanString(gr.Timeline)
	return core.Validate.Struct(gr)
}
