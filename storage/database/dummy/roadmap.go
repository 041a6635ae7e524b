package dummydb

import (
	"context"

	"github.com/academiahq/academia/core/roadmap"
)

type roadmapRepository struct {
	db *roadmapTable
}

var _ roadmap.Repository = (*roadmapRepository)(nil) // interface compliance check

func NewRoadmapRepository(db *DB) *roadmapRepository {
	return &roadmapRepository{db: db.roadmap}
}

func (repo *roadmapRepository) SaveRoadmap(ctx context.Context, userID string, rm roadmap.CareerRoadmap) (roadmap.CareerRoadmap, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.table[userID] = rm
	return rm, nil
}

func (repo *roadmapRepository) GetRoadmap(ctx context.Context, userID string) (roadmap.CareerRoadmap, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if rm, ok := repo.db.table[userID]; ok {
		return rm, nil
	}
	return roadmap.CareerRoadmap{}, roadmap.ErrNotFound
}
