package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/vytor/eligesaludable/internal/logger"
	"github.com/vytor/eligesaludable/internal/models"
	"github.com/vytor/eligesaludable/internal/repository"
)

type playerRepository struct {
	db *sql.DB
}

// NewPlayerRepository creates a new PlayerRepository implementation
func NewPlayerRepository(db *sql.DB) repository.PlayerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) Create(ctx context.Context, name string) (*models.Player, error) {
	log := logger.FromContext(ctx).WithPrefix("player_repo")
	log.Debug("creating player: nombre=%s", name)

	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `INSERT INTO jugador (nombre, creado_en) VALUES (?, ?)`, name, now)
	if err != nil {
		log.Error("failed to insert player: %v", err)
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get player id: %v", err)
		return nil, err
	}
	log.Debug("player created: id=%d", id)
	return &models.Player{ID: id, Name: name, CreatedAt: now}, nil
}

func (r *playerRepository) Get(ctx context.Context, id int64) (*models.Player, error) {
	log := logger.FromContext(ctx).WithPrefix("player_repo")
	log.Debug("getting player: id=%d", id)

	var p models.Player
	err := r.db.QueryRowContext(ctx, `
SELECT id, nombre, puntuacion_maxima, creado_en
FROM jugador
WHERE id = ?
`, id).Scan(&p.ID, &p.Name, &p.MaxScore, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("player not found: id=%d", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get player: %v", err)
		return nil, err
	}
	return &p, nil
}

func (r *playerRepository) Top(ctx context.Context, limit int) ([]models.RankingEntry, error) {
	log := logger.FromContext(ctx).WithPrefix("player_repo")
	if limit <= 0 {
		limit = 10
	}
	log.Debug("listing top %d players", limit)

	rows, err := query(ctx, r.db, sqlBuilder.
		Select("id", "nombre", "puntuacion_maxima").
		From("jugador").
		OrderBy("puntuacion_maxima DESC", "id ASC").
		Limit(uint64(limit)))
	if err != nil {
		log.Error("failed to query ranking: %v", err)
		return nil, err
	}
	defer rows.Close()

	ranking := []models.RankingEntry{}
	for rows.Next() {
		var e models.RankingEntry
		if err := rows.Scan(&e.ID, &e.Name, &e.MaxScore); err != nil {
			log.Error("failed to scan ranking row: %v", err)
			return nil, err
		}
		ranking = append(ranking, e)
	}
	return ranking, rows.Err()
}
