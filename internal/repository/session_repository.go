package repository

import (
	"context"
	"time"

	"github.com/vytor/eligesaludable/internal/models"
)

// SessionRepository handles partida data access. RecordAnswer and Finalize
// each run in a single transaction.
type SessionRepository interface {
	Create(ctx context.Context, playerID int64, lives int, startedAt time.Time) (*models.Session, error)
	Get(ctx context.Context, id int64) (*models.Session, error)
	// RecordAnswer inserts the answer and applies its points to the session
	// atomically. Returns ErrNotFound or ErrSessionClosed.
	RecordAnswer(ctx context.Context, answer models.Answer) (*models.AnswerResult, error)
	// Finalize closes an active session at the given instant and writes its
	// summary. Returns ErrNotFound or ErrSessionClosed.
	Finalize(ctx context.Context, id int64, maxLevel int, at time.Time) (*models.ResultSummary, error)
}
