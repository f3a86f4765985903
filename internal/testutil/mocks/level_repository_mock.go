package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/eligesaludable/internal/models"
)

// MockLevelRepository is a mock implementation of repository.LevelRepository
type MockLevelRepository struct {
	mock.Mock
}

func (m *MockLevelRepository) List(ctx context.Context) ([]models.Level, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Level), args.Error(1)
}

func (m *MockLevelRepository) Foods(ctx context.Context, level string) ([]models.LevelFood, error) {
	args := m.Called(ctx, level)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LevelFood), args.Error(1)
}
