package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/eligesaludable/internal/models"
)

// MockSessionRepository is a mock implementation of repository.SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, playerID int64, lives int, startedAt time.Time) (*models.Session, error) {
	args := m.Called(ctx, playerID, lives, startedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionRepository) Get(ctx context.Context, id int64) (*models.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionRepository) RecordAnswer(ctx context.Context, answer models.Answer) (*models.AnswerResult, error) {
	args := m.Called(ctx, answer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AnswerResult), args.Error(1)
}

func (m *MockSessionRepository) Finalize(ctx context.Context, id int64, maxLevel int, at time.Time) (*models.ResultSummary, error) {
	args := m.Called(ctx, id, maxLevel, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ResultSummary), args.Error(1)
}
