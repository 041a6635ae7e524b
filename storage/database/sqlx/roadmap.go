package sqlxrepos

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/academiahq/academia/core/roadmap"
)

type roadmapRow struct {
	Degree             string         `db:"degree"`
	TargetJob          string         `db:"target_job"`
	Timeline           string         `db:"timeline"`
	SkillRoadmap       pq.StringArray `db:"skill_roadmap"`
	RecommendedTools   pq.StringArray `db:"recommended_tools"`
	ProjectSuggestions pq.StringArray `db:"project_suggestions"`
	InternshipPath     pq.StringArray `db:"internship_path"`
}

func (r roadmapRow) toRoadmap() roadmap.CareerRoadmap {
	return roadmap.CareerRoadmap{
		Degree:             r.Degree,
		TargetJob:          r.TargetJob,
		Timeline:           r.Timeline,
		SkillRoadmap:       []string(r.SkillRoadmap),
		RecommendedTools:   []string(r.RecommendedTools),
		ProjectSuggestions: []string(r.ProjectSuggestions),
		InternshipPath:     []string(r.InternshipPath),
	}
}

type roadmapRepository struct {
	db *sqlx.DB
}

var _ roadmap.Repository = (*roadmapRepository)(nil) // interface compliance check

func NewRoadmapRepository(db *sqlx.DB) *roadmapRepository {
	return &roadmapRepository{db: db}
}

func (repo roadmapRepository) SaveRoadmap(ctx context.Context, userID string, rm roadmap.CareerRoadmap) (roadmap.CareerRoadmap, error) {
	_, err := repo.db.ExecContext(ctx, `
		INSERT INTO career_roadmap
			(user_id, degree, target_job, timeline, skill_roadmap, recommended_tools, project_suggestions, internship_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id) DO UPDATE SET
			degree = EXCLUDED.degree,
			target_job = EXCLUDED.target_job,
			timeline = EXCLUDED.timeline,
			skill_roadmap = EXCLUDED.skill_roadmap,
			recommended_tools = EXCLUDED.recommended_tools,
			project_suggestions = EXCLUDED.project_suggestions,
			internship_path = EXCLUDED.internship_path`,
		userID, rm.Degree, rm.TargetJob, rm.Timeline,
		pq.StringArray(rm.SkillRoadmap), pq.StringArray(rm.RecommendedTools),
		pq.StringArray(rm.ProjectSuggestions), pq.StringArray(rm.InternshipPath))
	if err != nil {
		return roadmap.CareerRoadmap{}, errors.Wrap(err, "upserting career roadmap")
	}
	return rm, nil
}

func (repo roadmapRepository) GetRoadmap(ctx context.Context, userID string) (roadmap.CareerRoadmap, error) {
	var row roadmapRow
	err := repo.db.GetContext(ctx, &row, `
		SELECT degree, target_job, timeline, skill_roadmap, recommended_tools, project_suggestions, internship_path
		FROM career_roadmap WHERE user_id = $1`, userID)
	if err != nil {
		return roadmap.CareerRoadmap{}, trapNoRowsErr(err, roadmap.ErrNotFound, "getting career roadmap")
	}
	return row.toRoadmap(), nil
}
