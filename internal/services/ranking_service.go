package services

import (
	"context"

	"github.com/vytor/eligesaludable/internal/errors"
	"github.com/vytor/eligesaludable/internal/logger"
	"github.com/vytor/eligesaludable/internal/models"
	"github.com/vytor/eligesaludable/internal/repository"
)

// TopLimit is the size of both the player ranking and the podium.
const TopLimit = 10

// RankingService handles leaderboard reads
type RankingService interface {
	PlayerRanking(ctx context.Context) ([]models.RankingEntry, error)
	Podium(ctx context.Context) ([]models.PodiumEntry, error)
}

type rankingService struct {
	playerRepo  repository.PlayerRepository
	summaryRepo repository.SummaryRepository
}

// NewRankingService creates a new RankingService
func NewRankingService(playerRepo repository.PlayerRepository, summaryRepo repository.SummaryRepository) RankingService {
	return &rankingService{
		playerRepo:  playerRepo,
		summaryRepo: summaryRepo,
	}
}

func (s *rankingService) PlayerRanking(ctx context.Context) ([]models.RankingEntry, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting player ranking")

	ranking, err := s.playerRepo.Top(ctx, TopLimit)
	if err != nil {
		log.Error("failed to get player ranking: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return ranking, nil
}

func (s *rankingService) Podium(ctx context.Context) ([]models.PodiumEntry, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting podium")

	podium, err := s.summaryRepo.Podium(ctx, TopLimit)
	if err != nil {
		log.Error("failed to get podium: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return podium, nil
}
