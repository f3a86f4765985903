package services_test

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vytor/eligesaludable/internal/errors"
	"github.com/vytor/eligesaludable/internal/models"
	"github.com/vytor/eligesaludable/internal/repository"
	"github.com/vytor/eligesaludable/internal/services"
	"github.com/vytor/eligesaludable/internal/testutil/mocks"
)

func newSessionService() (services.SessionService, *mocks.MockSessionRepository, *mocks.MockSummaryRepository) {
	sessions := new(mocks.MockSessionRepository)
	summaries := new(mocks.MockSummaryRepository)
	return services.NewSessionService(sessions, summaries), sessions, summaries
}

func TestStart_DefaultLives(t *testing.T) {
	svc, sessions, _ := newSessionService()
	sessions.On("Create", mock.Anything, int64(7), 3, mock.AnythingOfType("time.Time")).
		Return(&models.Session{ID: 1, PlayerID: 7, InitialLives: 3, RemainingLives: 3}, nil)

	session, err := svc.Start(context.Background(), 7, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), session.ID)
	sessions.AssertExpectations(t)
}

func TestStart_CustomLives(t *testing.T) {
	svc, sessions, _ := newSessionService()
	sessions.On("Create", mock.Anything, int64(7), 5, mock.Anything).
		Return(&models.Session{ID: 2, InitialLives: 5, RemainingLives: 5}, nil)

	session, err := svc.Start(context.Background(), 7, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, session.RemainingLives)
}

func TestGet_NotFound(t *testing.T) {
	svc, sessions, _ := newSessionService()
	sessions.On("Get", mock.Anything, int64(9)).Return(nil, nil)

	_, err := svc.Get(context.Background(), 9)
	assert.True(t, errors.HasCode(err, errors.ErrCodeNotFound))
}

func TestSubmitAnswer_ComputesPoints(t *testing.T) {
	svc, sessions, _ := newSessionService()
	sessions.On("RecordAnswer", mock.Anything, mock.MatchedBy(func(a models.Answer) bool {
		return a.SessionID == 1 && a.Points == 90 && !a.CreatedAt.IsZero()
	})).Return(&models.AnswerResult{Points: 90, TotalScore: 90, RemainingLives: 3}, nil)

	res, err := svc.SubmitAnswer(context.Background(), models.Answer{SessionID: 1, LevelID: 1, FoodID: 1, Correct: true, ElapsedSeconds: 10.7})
	require.NoError(t, err)
	assert.Equal(t, 90, res.Points)
	sessions.AssertExpectations(t)
}

func TestSubmitAnswer_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{"unknown session", repository.ErrNotFound, errors.ErrCodeNotFound},
		{"closed session", repository.ErrSessionClosed, errors.ErrCodeConflict},
		{"database failure", stderrors.New("database is locked"), errors.ErrCodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, sessions, _ := newSessionService()
			sessions.On("RecordAnswer", mock.Anything, mock.Anything).Return(nil, tt.err)

			_, err := svc.SubmitAnswer(context.Background(), models.Answer{SessionID: 1})
			assert.True(t, errors.HasCode(err, tt.code), "got %v", err)
		})
	}
}

func TestFinalize_Success(t *testing.T) {
	svc, sessions, summaries := newSessionService()
	summary := &models.ResultSummary{ID: 1, SessionID: 4, TotalScore: 100, Position: 1}
	sessions.On("Finalize", mock.Anything, int64(4), 2, mock.AnythingOfType("time.Time")).Return(summary, nil)

	res, err := svc.Finalize(context.Background(), 4, 2)
	require.NoError(t, err)
	assert.False(t, res.AlreadyFinalized)
	assert.Equal(t, summary, res.Summary)
	summaries.AssertNotCalled(t, "GetBySession", mock.Anything, mock.Anything)
}

func TestFinalize_AlreadyFinalizedIsNoop(t *testing.T) {
	svc, sessions, summaries := newSessionService()
	existing := &models.ResultSummary{ID: 1, SessionID: 4, CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
	sessions.On("Finalize", mock.Anything, int64(4), 2, mock.Anything).Return(nil, repository.ErrSessionClosed)
	summaries.On("GetBySession", mock.Anything, int64(4)).Return(existing, nil)

	res, err := svc.Finalize(context.Background(), 4, 2)
	require.NoError(t, err)
	assert.True(t, res.AlreadyFinalized)
	assert.Equal(t, existing, res.Summary)
}

func TestFinalize_NotFound(t *testing.T) {
	svc, sessions, _ := newSessionService()
	sessions.On("Finalize", mock.Anything, int64(4), 0, mock.Anything).Return(nil, repository.ErrNotFound)

	_, err := svc.Finalize(context.Background(), 4, 0)
	appErr := errors.AsAppError(err)
	assert.Equal(t, errors.ErrCodeNotFound, appErr.Code)
	assert.Equal(t, "Partida no encontrada", appErr.Message)
}

func TestFinalize_NegativeLevel(t *testing.T) {
	svc, sessions, _ := newSessionService()

	_, err := svc.Finalize(context.Background(), 4, -1)
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))
	sessions.AssertNotCalled(t, "Finalize", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
