package repository

import (
	"context"

	"github.com/vytor/eligesaludable/internal/models"
)

// SummaryRepository handles resumen_resultados reads
type SummaryRepository interface {
	GetBySession(ctx context.Context, sessionID int64) (*models.ResultSummary, error)
	Podium(ctx context.Context, limit int) ([]models.PodiumEntry, error)
}
