package services

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/vytor/eligesaludable/internal/errors"
	"github.com/vytor/eligesaludable/internal/logger"
	"github.com/vytor/eligesaludable/internal/models"
	"github.com/vytor/eligesaludable/internal/repository"
	"github.com/vytor/eligesaludable/internal/scoring"
)

const (
	msgSessionNotFound = "Partida no encontrada"
	msgSessionClosed   = "Partida ya finalizada"
)

// SessionService handles the game session lifecycle: start, answers and
// finalization.
type SessionService interface {
	// Start opens a session for playerID. lives <= 0 selects scoring.DefaultLives.
	Start(ctx context.Context, playerID int64, lives int) (*models.Session, error)
	Get(ctx context.Context, id int64) (*models.Session, error)
	SubmitAnswer(ctx context.Context, answer models.Answer) (*models.AnswerResult, error)
	// Finalize closes the session and stores its summary. Finalizing an
	// already closed session succeeds without recomputing anything.
	Finalize(ctx context.Context, id int64, maxLevel int) (*models.FinalizeResult, error)
}

type sessionService struct {
	sessionRepo repository.SessionRepository
	summaryRepo repository.SummaryRepository
	now         func() time.Time
}

// NewSessionService creates a new SessionService
func NewSessionService(sessionRepo repository.SessionRepository, summaryRepo repository.SummaryRepository) SessionService {
	return &sessionService{
		sessionRepo: sessionRepo,
		summaryRepo: summaryRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *sessionService) Start(ctx context.Context, playerID int64, lives int) (*models.Session, error) {
	log := logger.FromContext(ctx)
	if lives <= 0 {
		lives = scoring.DefaultLives
	}
	log.Debug("starting session: jugador_id=%d, vidas=%d", playerID, lives)

	session, err := s.sessionRepo.Create(ctx, playerID, lives, s.now())
	if err != nil {
		log.Error("failed to start session: %v", err)
		return nil, errors.NewInternalError(err)
	}

	log.Info("session started: id=%d, jugador_id=%d", session.ID, playerID)
	return session, nil
}

func (s *sessionService) Get(ctx context.Context, id int64) (*models.Session, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting session: id=%d", id)

	session, err := s.sessionRepo.Get(ctx, id)
	if err != nil {
		log.Error("failed to get session: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if session == nil {
		return nil, errors.NewNotFoundMessage(msgSessionNotFound)
	}
	return session, nil
}

func (s *sessionService) SubmitAnswer(ctx context.Context, answer models.Answer) (*models.AnswerResult, error) {
	log := logger.FromContext(ctx)

	answer.Points = scoring.Points(answer.Correct, answer.ElapsedSeconds)
	answer.CreatedAt = s.now()
	log.Debug("submitting answer: partida_id=%d, correcta=%t, tiempo=%.2f, puntos=%d",
		answer.SessionID, answer.Correct, answer.ElapsedSeconds, answer.Points)

	result, err := s.sessionRepo.RecordAnswer(ctx, answer)
	switch {
	case stderrors.Is(err, repository.ErrNotFound):
		return nil, errors.NewNotFoundMessage(msgSessionNotFound)
	case stderrors.Is(err, repository.ErrSessionClosed):
		log.Warn("answer rejected, session closed: partida_id=%d", answer.SessionID)
		return nil, errors.NewConflictError(msgSessionClosed)
	case err != nil:
		log.Error("failed to record answer: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return result, nil
}

func (s *sessionService) Finalize(ctx context.Context, id int64, maxLevel int) (*models.FinalizeResult, error) {
	log := logger.FromContext(ctx)
	log.Debug("finalizing session: id=%d, nivel_maximo=%d", id, maxLevel)

	if maxLevel < 0 {
		return nil, errors.NewValidationError("nivel_maximo", "cannot be negative")
	}

	summary, err := s.sessionRepo.Finalize(ctx, id, maxLevel, s.now())
	switch {
	case stderrors.Is(err, repository.ErrNotFound):
		return nil, errors.NewNotFoundMessage(msgSessionNotFound)
	case stderrors.Is(err, repository.ErrSessionClosed):
		log.Info("session already finalized: id=%d", id)
		existing, err := s.summaryRepo.GetBySession(ctx, id)
		if err != nil {
			log.Error("failed to get existing summary: %v", err)
			return nil, errors.NewInternalError(err)
		}
		return &models.FinalizeResult{Summary: existing, AlreadyFinalized: true}, nil
	case err != nil:
		log.Error("failed to finalize session: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return &models.FinalizeResult{Summary: summary}, nil
}
