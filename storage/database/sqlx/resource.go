package sqlxrepos

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/academiahq/academia/core/resource"
)

type resourceRepository struct {
	db *sqlx.DB
}

var _ resource.Repository = (*resourceRepository)(nil) // interface compliance check

func NewResourceRepository(db *sqlx.DB) *resourceRepository {
	return &resourceRepository{db: db}
}

func (repo resourceRepository) CreateResource(ctx context.Context, userID string, res resource.StudyResource) (resource.StudyResource, error) {
	_, err := repo.db.ExecContext(ctx, `
		INSERT INTO study_resource (id, user_id, title, url, type)
		VALUES ($1, $2, $3, $4, $5)`,
		res.ID, userID, res.Title, res.URL, res.Type)
	if err != nil {
		return resource.StudyResource{}, errors.Wrap(err, "inserting study resource")
	}
	return res, nil
}

func (repo resourceRepository) QueryUserResources(ctx context.Context, userID string) ([]resource.StudyResource, error) {
	resources := []resource.StudyResource{}
	err := repo.db.SelectContext(ctx, &resources, `
		SELECT id, title, url, type FROM study_resource
		WHERE user_id = $1 ORDER BY title`, userID)
	if err != nil {
		return nil, errors.Wrap(err, "querying study resources")
	}
	return resources, nil
}
