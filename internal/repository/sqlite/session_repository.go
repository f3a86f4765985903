package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/eligesaludable/internal/logger"
	"github.com/vytor/eligesaludable/internal/models"
	"github.com/vytor/eligesaludable/internal/repository"
	"github.com/vytor/eligesaludable/internal/scoring"
)

// unknownPlayerName is stored in summaries of sessions whose player row is missing.
const unknownPlayerName = "Desconocido"

type sessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new SessionRepository implementation
func NewSessionRepository(db *sql.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, playerID int64, lives int, startedAt time.Time) (*models.Session, error) {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("creating session: jugador_id=%d, vidas=%d", playerID, lives)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO partida (jugador_id, fecha_inicio, vidas_iniciales, vidas_restantes)
VALUES (?, ?, ?, ?)
`, playerID, startedAt, lives, lives)
	if err != nil {
		log.Error("failed to insert session: %v", err)
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get session id: %v", err)
		return nil, err
	}
	log.Debug("session created: id=%d", id)
	return &models.Session{
		ID:             id,
		PlayerID:       playerID,
		StartedAt:      startedAt,
		InitialLives:   lives,
		RemainingLives: lives,
	}, nil
}

func (r *sessionRepository) Get(ctx context.Context, id int64) (*models.Session, error) {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("getting session: id=%d", id)

	s, err := getSession(ctx, r.db, id)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("session not found: id=%d", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get session: %v", err)
		return nil, err
	}
	return s, nil
}

func getSession(ctx context.Context, q queryer, id int64) (*models.Session, error) {
	var s models.Session
	var endedAt sql.NullTime
	err := q.QueryRowContext(ctx, `
SELECT id, jugador_id, fecha_inicio, fecha_fin, nivel_maximo_alcanzado, puntuacion_total, vidas_iniciales, vidas_restantes
FROM partida
WHERE id = ?
`, id).Scan(&s.ID, &s.PlayerID, &s.StartedAt, &endedAt, &s.MaxLevel, &s.TotalScore, &s.InitialLives, &s.RemainingLives)
	if err != nil {
		return nil, err
	}
	if endedAt.Valid {
		s.EndedAt = &endedAt.Time
	}
	return &s, nil
}

func (r *sessionRepository) RecordAnswer(ctx context.Context, a models.Answer) (*models.AnswerResult, error) {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("recording answer: partida_id=%d, nivel_id=%d, alimento_id=%d, puntos=%d", a.SessionID, a.LevelID, a.FoodID, a.Points)

	createdAt := a.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	var result models.AnswerResult
	err := tx(ctx, r.db, func(tx *sql.Tx) error {
		var endedAt sql.NullTime
		err := tx.QueryRowContext(ctx, `SELECT fecha_fin FROM partida WHERE id = ?`, a.SessionID).Scan(&endedAt)
		if errors.Is(err, sql.ErrNoRows) {
			return repository.ErrNotFound
		}
		if err != nil {
			return err
		}
		if endedAt.Valid {
			return repository.ErrSessionClosed
		}

		if _, err := tx.ExecContext(ctx, `
INSERT INTO respuesta (partida_id, nivel_id, alimento_id, correcta, tiempo_segundos, puntos_obtenidos, creado_en)
VALUES (?, ?, ?, ?, ?, ?, ?)
`, a.SessionID, a.LevelID, a.FoodID, a.Correct, a.ElapsedSeconds, a.Points, createdAt); err != nil {
			log.Error("failed to insert answer: %v", err)
			return err
		}

		// The increment happens in the database, never read-modify-write.
		err = tx.QueryRowContext(ctx, `
UPDATE partida
SET puntuacion_total = puntuacion_total + ?,
    nivel_maximo_alcanzado = MAX(nivel_maximo_alcanzado, ?),
    vidas_restantes = CASE WHEN ? THEN vidas_restantes ELSE MAX(vidas_restantes - 1, 0) END
WHERE id = ? AND fecha_fin IS NULL
RETURNING puntuacion_total, vidas_restantes
`, a.Points, a.LevelID, a.Correct, a.SessionID).Scan(&result.TotalScore, &result.RemainingLives)
		if errors.Is(err, sql.ErrNoRows) {
			return repository.ErrSessionClosed
		}
		if err != nil {
			log.Error("failed to apply answer to session: %v", err)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.Points = a.Points
	log.Debug("answer recorded: partida_id=%d, total=%d, vidas=%d", a.SessionID, result.TotalScore, result.RemainingLives)
	return &result, nil
}

func (r *sessionRepository) Finalize(ctx context.Context, id int64, maxLevel int, at time.Time) (*models.ResultSummary, error) {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("finalizing session: id=%d, nivel_maximo=%d", id, maxLevel)

	var summary models.ResultSummary
	err := tx(ctx, r.db, func(tx *sql.Tx) error {
		s, err := getSession(ctx, tx, id)
		if errors.Is(err, sql.ErrNoRows) {
			return repository.ErrNotFound
		}
		if err != nil {
			return err
		}
		if !s.Active() {
			return repository.ErrSessionClosed
		}

		res, err := tx.ExecContext(ctx, `
UPDATE partida
SET fecha_fin = ?, nivel_maximo_alcanzado = MAX(nivel_maximo_alcanzado, ?)
WHERE id = ? AND fecha_fin IS NULL
`, at, maxLevel, id)
		if err != nil {
			log.Error("failed to close session: %v", err)
			return err
		}
		if n, err := res.RowsAffected(); err != nil {
			return err
		} else if n == 0 {
			return repository.ErrSessionClosed
		}

		if _, err := tx.ExecContext(ctx, `
UPDATE jugador SET puntuacion_maxima = MAX(puntuacion_maxima, ?) WHERE id = ?
`, s.TotalScore, s.PlayerID); err != nil {
			log.Error("failed to update player max score: %v", err)
			return err
		}

		name := unknownPlayerName
		err = tx.QueryRowContext(ctx, `SELECT nombre FROM jugador WHERE id = ?`, s.PlayerID).Scan(&name)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return err
		}

		var total, correct int
		if err := tx.QueryRowContext(ctx, `
SELECT COUNT(*), COALESCE(SUM(correcta), 0) FROM respuesta WHERE partida_id = ?
`, id).Scan(&total, &correct); err != nil {
			log.Error("failed to count answers: %v", err)
			return err
		}

		// Evaluated after fecha_fin is set so the session ranks itself.
		ranked := sqlBuilder.
			Select("id", "RANK() OVER (ORDER BY puntuacion_total DESC) AS posicion").
			From("partida").
			Where("fecha_fin IS NOT NULL")
		row, err := queryRow(ctx, tx, sqlBuilder.
			Select("posicion").
			FromSelect(ranked, "ranked").
			Where(squirrel.Eq{"id": id}))
		if err != nil {
			return err
		}
		var position int
		if err := row.Scan(&position); err != nil {
			log.Error("failed to rank session: %v", err)
			return err
		}

		duration := int(at.Sub(s.StartedAt) / time.Second)
		if duration < 0 {
			duration = 0
		}

		summary = models.ResultSummary{
			PlayerID:        s.PlayerID,
			PlayerName:      name,
			SessionID:       id,
			MaxLevel:        max(s.MaxLevel, maxLevel),
			TotalScore:      s.TotalScore,
			LivesLost:       scoring.LivesLost(s.InitialLives, s.RemainingLives),
			AccuracyPct:     scoring.Accuracy(correct, total),
			Position:        position,
			DurationSeconds: duration,
			CreatedAt:       at,
		}
		ins, err := tx.ExecContext(ctx, `
INSERT INTO resumen_resultados
(jugador_id, jugador_nombre, partida_id, nivel_maximo, puntuacion_total, vidas_perdidas, efectividad_porcentaje, posicion, duracion_segundos, creado_en)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, summary.PlayerID, summary.PlayerName, summary.SessionID, summary.MaxLevel, summary.TotalScore,
			summary.LivesLost, summary.AccuracyPct, summary.Position, summary.DurationSeconds, summary.CreatedAt)
		if err != nil {
			log.Error("failed to insert summary: %v", err)
			return err
		}
		summary.ID, err = ins.LastInsertId()
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Info("session finalized: id=%d, puntuacion=%d, posicion=%d", id, summary.TotalScore, summary.Position)
	return &summary, nil
}
