package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/eligesaludable/internal/models"
)

// MockSummaryRepository is a mock implementation of repository.SummaryRepository
type MockSummaryRepository struct {
	mock.Mock
}

func (m *MockSummaryRepository) GetBySession(ctx context.Context, sessionID int64) (*models.ResultSummary, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ResultSummary), args.Error(1)
}

func (m *MockSummaryRepository) Podium(ctx context.Context, limit int) ([]models.PodiumEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PodiumEntry), args.Error(1)
}
