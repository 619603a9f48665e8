package service

import (
	"context"

	"english_quest_backend/internal/repository"
)

type PreferenceService struct {
	PreferenceRepo *repository.PreferenceRepository
}

func NewPreferenceService(repo *repository.PreferenceRepository) *PreferenceService {
	return &PreferenceService{PreferenceRepo: repo}
}

func (s *PreferenceService) Theme() string {
	return s.PreferenceRepo.Theme()
}

func (s *PreferenceService) SetTheme(ctx context.Context, theme string) error {
	return s.PreferenceRepo.SetTheme(ctx, theme)
}
