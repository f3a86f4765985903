package sqlite

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/eligesaludable/internal/logger"
	"github.com/vytor/eligesaludable/internal/models"
	"github.com/vytor/eligesaludable/internal/repository"
)

type levelRepository struct {
	db *sql.DB
}

// NewLevelRepository creates a new LevelRepository implementation
func NewLevelRepository(db *sql.DB) repository.LevelRepository {
	return &levelRepository{db: db}
}

func (r *levelRepository) List(ctx context.Context) ([]models.Level, error) {
	log := logger.FromContext(ctx).WithPrefix("level_repo")
	log.Debug("listing levels")

	rows, err := query(ctx, r.db, sqlBuilder.
		Select("n.id", "n.nombre", "n.descripcion", "COUNT(na.alimento_id)").
		From("nivel n").
		LeftJoin("nivel_alimento na ON na.nivel_id = n.id").
		GroupBy("n.id", "n.nombre", "n.descripcion").
		OrderBy("n.id"))
	if err != nil {
		log.Error("failed to list levels: %v", err)
		return nil, err
	}
	defer rows.Close()

	levels := []models.Level{}
	for rows.Next() {
		var l models.Level
		if err := rows.Scan(&l.ID, &l.Name, &l.Description, &l.FoodCount); err != nil {
			log.Error("failed to scan level row: %v", err)
			return nil, err
		}
		levels = append(levels, l)
	}
	return levels, rows.Err()
}

func (r *levelRepository) Foods(ctx context.Context, level string) ([]models.LevelFood, error) {
	log := logger.FromContext(ctx).WithPrefix("level_repo")
	log.Debug("listing foods for level: %s", level)

	// nivel_id has INTEGER affinity, so a numeric string like "2" matches.
	rows, err := query(ctx, r.db, sqlBuilder.
		Select("a.id", "a.nombre", "a.categoria", "a.imagen", "na.es_correcto").
		From("alimento a").
		Join("nivel_alimento na ON na.alimento_id = a.id").
		Where(squirrel.Eq{"na.nivel_id": level}).
		OrderBy("a.id"))
	if err != nil {
		log.Error("failed to list level foods: %v", err)
		return nil, err
	}
	defer rows.Close()

	foods := []models.LevelFood{}
	for rows.Next() {
		var f models.LevelFood
		if err := rows.Scan(&f.ID, &f.Name, &f.Category, &f.Image, &f.Correct); err != nil {
			log.Error("failed to scan level food row: %v", err)
			return nil, err
		}
		foods = append(foods, f)
	}
	log.Debug("found %d foods for level %s", len(foods), level)
	return foods, rows.Err()
}
