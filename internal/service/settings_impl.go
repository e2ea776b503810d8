package service

import (
	"context"

	"github.com/mariekevos/gmatrix/internal/repository"
)

type settingsService struct {
	settings repository.SettingsRepo
}

func NewSettings(settings repository.SettingsRepo) Settings {
	return &settingsService{settings: settings}
}

// LastSelection returns the remembered profile and level from the previous
// run. Lookup failures degrade to empty defaults.
func (s *settingsService) LastSelection(ctx context.Context) (string, string) {
	profile, err := s.settings.Get(ctx, repository.SettingLastProfile)
	if err != nil {
		return "", ""
	}
	level, err := s.settings.Get(ctx, repository.SettingLastLevel)
	if err != nil {
		return profile, ""
	}
	return profile, level
}
