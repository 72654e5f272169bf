package gameconfig

import (
	"context"
	"errors"

	"github.com/oridashi/scrollhunt/internal/model"
	"github.com/oridashi/scrollhunt/internal/storage"
)

// Service manages the shared game configuration
type Service struct {
	storage storage.Storage
}

// New creates a new game config service
func New(storage storage.Storage) *Service {
	return &Service{storage: storage}
}

// Get returns the current game config
func (s *Service) Get(ctx context.Context) (*model.GameConfig, error) {
	return s.storage.GetGameConfig(ctx)
}

// Set validates and stores the game config. Intended for the operator, before
// players register; every elapsed-time computation keys off GameOpenTime.
func (s *Service) Set(ctx context.Context, cfg *model.GameConfig) error {
	if cfg.GameOpenTime.IsZero() || cfg.MaxPoints <= 0 || cfg.PointDecayPerMinute < 0 {
		return model.ErrInvalidConfig
	}
	return s.storage.SaveGameConfig(ctx, cfg)
}

// SetIfUnset stores the config only when none exists yet. Used to seed the
// config from the environment without clobbering an operator's later edits.
func (s *Service) SetIfUnset(ctx context.Context, cfg *model.GameConfig) error {
	_, err := s.storage.GetGameConfig(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, model.ErrConfigNotSet) {
		return err
	}
	return s.Set(ctx, cfg)
}
