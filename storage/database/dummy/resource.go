package dummydb

import (
	"context"

	"github.com/academiahq/academia/core/resource"
)

type resourceRepository struct {
	db *resourceTable
}

var _ resource.Repository = (*resourceRepository)(nil) // interface compliance check

func NewResourceRepository(db *DB) *resourceRepository {
	return &resourceRepository{db: db.resource}
}

func (repo *resourceRepository) CreateResource(ctx context.Context, userID string, res resource.StudyResource) (resource.StudyResource, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.table[userID] = append(repo.db.table[userID], res)
	return res, nil
}

func (repo *resourceRepository) QueryUserResources(ctx context.Context, userID string) ([]resource.StudyResource, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	resources := make([]resource.StudyResource, len(repo.db.table[userID]))
	copy(resources, repo.db.table[userID])
	return resources, nil
}
