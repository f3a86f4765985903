package repository

import (
	"context"

	"github.com/vytor/eligesaludable/internal/models"
)

// PlayerRepository handles jugador data access
type PlayerRepository interface {
	Create(ctx context.Context, name string) (*models.Player, error)
	Get(ctx context.Context, id int64) (*models.Player, error)
	Top(ctx context.Context, limit int) ([]models.RankingEntry, error)
}
