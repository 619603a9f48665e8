package repository

import (
	"context"

	"english_quest_backend/internal/util"
)

type PreferenceRepository struct {
	theme *collection[string]
}

func NewPreferenceRepository(ctx context.Context, store KVStore) (*PreferenceRepository, error) {
	c, err := loadCollection(ctx, store, util.KeyTheme, func() string { return util.ThemeLight })
	if err != nil {
		return nil, err
	}
	return &PreferenceRepository{theme: c}, nil
}

func (r *PreferenceRepository) Theme() string {
	var theme string
	r.theme.read(func(t string) { theme = t })
	if theme != util.ThemeDark {
		return util.ThemeLight
	}
	return theme
}

func (r *PreferenceRepository) SetTheme(ctx context.Context, theme string) error {
	if theme != util.ThemeLight && theme != util.ThemeDark {
		return util.ErrInvalidTheme
	}
	return r.theme.replace(ctx, theme)
}

func (r *PreferenceRepository) Reset(ctx context.Context) error {
	return r.theme.replace(ctx, util.ThemeLight)
}
