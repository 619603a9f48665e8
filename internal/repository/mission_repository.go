package repository

import (
	"context"

	"english_quest_backend/internal/model"
	"english_quest_backend/internal/seed"
	"english_quest_backend/internal/util"
)

type MissionRepository struct {
	missions *collection[[]model.Mission]
}

func NewMissionRepository(ctx context.Context, store KVStore) (*MissionRepository, error) {
	c, err := loadCollection(ctx, store, util.KeyMissions, seed.Missions)
	if err != nil {
		return nil, err
	}
	return &MissionRepository{missions: c}, nil
}

func (r *MissionRepository) List() []model.Mission {
	var out []model.Mission
	r.missions.read(func(missions []model.Mission) {
		out = append([]model.Mission(nil), missions...)
	})
	return out
}

// Modify runs fn over the whole mission list atomically.
func (r *MissionRepository) Modify(ctx context.Context, fn func(missions []model.Mission) error) error {
	return r.missions.update(ctx, func(missions *[]model.Mission) error {
		return fn(*missions)
	})
}

func (r *MissionRepository) Reset(ctx context.Context) error {
	return r.missions.replace(ctx, seed.Missions())
}
