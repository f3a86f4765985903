package services

import (
	"context"

	"github.com/vytor/eligesaludable/internal/errors"
	"github.com/vytor/eligesaludable/internal/logger"
	"github.com/vytor/eligesaludable/internal/models"
	"github.com/vytor/eligesaludable/internal/repository"
)

// LevelService handles level content lookups
type LevelService interface {
	ListLevels(ctx context.Context) ([]models.Level, error)
	FoodsForLevel(ctx context.Context, level string) ([]models.LevelFood, error)
}

type levelService struct {
	levelRepo repository.LevelRepository
}

// NewLevelService creates a new LevelService
func NewLevelService(levelRepo repository.LevelRepository) LevelService {
	return &levelService{levelRepo: levelRepo}
}

func (s *levelService) ListLevels(ctx context.Context) ([]models.Level, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing levels")

	levels, err := s.levelRepo.List(ctx)
	if err != nil {
		log.Error("failed to list levels: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return levels, nil
}

// FoodsForLevel returns the level's foods. An unknown level and a level with
// no mapped foods are both reported as not found.
func (s *levelService) FoodsForLevel(ctx context.Context, level string) ([]models.LevelFood, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting foods for level: %s", level)

	foods, err := s.levelRepo.Foods(ctx, level)
	if err != nil {
		log.Error("failed to get level foods: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if len(foods) == 0 {
		return nil, errors.NewNotFoundMessage("Nivel no encontrado")
	}
	return foods, nil
}
