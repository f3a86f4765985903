package services

import (
	"context"
	"strings"

	"github.com/vytor/eligesaludable/internal/errors"
	"github.com/vytor/eligesaludable/internal/logger"
	"github.com/vytor/eligesaludable/internal/models"
	"github.com/vytor/eligesaludable/internal/repository"
)

// PlayerService handles player registration
type PlayerService interface {
	Register(ctx context.Context, name string) (*models.Player, error)
	Get(ctx context.Context, id int64) (*models.Player, error)
}

type playerService struct {
	playerRepo repository.PlayerRepository
}

// NewPlayerService creates a new PlayerService
func NewPlayerService(playerRepo repository.PlayerRepository) PlayerService {
	return &playerService{playerRepo: playerRepo}
}

// Register creates a new player. Names are not unique.
func (s *playerService) Register(ctx context.Context, name string) (*models.Player, error) {
	log := logger.FromContext(ctx)
	name = strings.TrimSpace(name)
	log.Debug("registering player: nombre=%s", name)

	if name == "" {
		return nil, errors.NewValidationError("nombre", "cannot be empty")
	}

	player, err := s.playerRepo.Create(ctx, name)
	if err != nil {
		log.Error("failed to register player: %v", err)
		return nil, errors.NewInternalError(err)
	}

	log.Info("player registered: id=%d", player.ID)
	return player, nil
}

func (s *playerService) Get(ctx context.Context, id int64) (*models.Player, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting player: id=%d", id)

	player, err := s.playerRepo.Get(ctx, id)
	if err != nil {
		log.Error("failed to get player: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if player == nil {
		return nil, errors.NewNotFoundMessage("Jugador no encontrado")
	}
	return player, nil
}
