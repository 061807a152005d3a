package app

import (
	"context"

	"github.com/Gustavoleal1194/Projeto2025-API-sub002/internal/domain"
)

type SettingsRepository interface {
	Get(ctx context.Context) (domain.Config, error)
	Update(ctx context.Context, cfg domain.Config) error
}

// SettingsService exposes the single settings row that backs every policy
// decision. It also satisfies ConfigSource for the circulation service.
type SettingsService struct {
	repo SettingsRepository
}

func NewSettingsService(repo SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

func (s *SettingsService) Params(ctx context.Context) (domain.Config, error) {
	return s.repo.Get(ctx)
}

func (s *SettingsService) Update(ctx context.Context, cfg domain.Config) (domain.Config, error) {
	if err := cfg.Validate(); err != nil {
		return domain.Config{}, err
	}
	if err := s.repo.Update(ctx, cfg); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}
