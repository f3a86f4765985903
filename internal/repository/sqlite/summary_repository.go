package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vytor/eligesaludable/internal/logger"
	"github.com/vytor/eligesaludable/internal/models"
	"github.com/vytor/eligesaludable/internal/repository"
)

type summaryRepository struct {
	db *sql.DB
}

// NewSummaryRepository creates a new SummaryRepository implementation
func NewSummaryRepository(db *sql.DB) repository.SummaryRepository {
	return &summaryRepository{db: db}
}

func (r *summaryRepository) GetBySession(ctx context.Context, sessionID int64) (*models.ResultSummary, error) {
	log := logger.FromContext(ctx).WithPrefix("summary_repo")
	log.Debug("getting summary: partida_id=%d", sessionID)

	var s models.ResultSummary
	err := r.db.QueryRowContext(ctx, `
SELECT id, jugador_id, jugador_nombre, partida_id, nivel_maximo, puntuacion_total, vidas_perdidas,
       efectividad_porcentaje, posicion, duracion_segundos, creado_en
FROM resumen_resultados
WHERE partida_id = ?
`, sessionID).Scan(&s.ID, &s.PlayerID, &s.PlayerName, &s.SessionID, &s.MaxLevel, &s.TotalScore, &s.LivesLost,
		&s.AccuracyPct, &s.Position, &s.DurationSeconds, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("summary not found: partida_id=%d", sessionID)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get summary: %v", err)
		return nil, err
	}
	return &s, nil
}

// Podium ranks stored summaries live by score; ties share a position and
// the earlier summary is listed first.
func (r *summaryRepository) Podium(ctx context.Context, limit int) ([]models.PodiumEntry, error) {
	log := logger.FromContext(ctx).WithPrefix("summary_repo")
	if limit <= 0 {
		limit = 10
	}
	log.Debug("listing podium: limit=%d", limit)

	rows, err := query(ctx, r.db, sqlBuilder.
		Select("jugador_nombre", "puntuacion_total", "RANK() OVER (ORDER BY puntuacion_total DESC) AS posicion").
		From("resumen_resultados").
		OrderBy("posicion ASC", "id ASC").
		Limit(uint64(limit)))
	if err != nil {
		log.Error("failed to query podium: %v", err)
		return nil, err
	}
	defer rows.Close()

	podium := []models.PodiumEntry{}
	for rows.Next() {
		var e models.PodiumEntry
		if err := rows.Scan(&e.Name, &e.Score, &e.Position); err != nil {
			log.Error("failed to scan podium row: %v", err)
			return nil, err
		}
		podium = append(podium, e)
	}
	return podium, rows.Err()
}
