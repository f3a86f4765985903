package repository

import (
	"context"

	"github.com/vytor/eligesaludable/internal/models"
)

// LevelRepository handles read-only access to levels and their food catalogue
type LevelRepository interface {
	List(ctx context.Context) ([]models.Level, error)
	// Foods returns the foods mapped to level. The level is matched as given;
	// an unknown level yields an empty slice.
	Foods(ctx context.Context, level string) ([]models.LevelFood, error)
}
