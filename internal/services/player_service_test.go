package services_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vytor/eligesaludable/internal/errors"
	"github.com/vytor/eligesaludable/internal/models"
	"github.com/vytor/eligesaludable/internal/services"
	"github.com/vytor/eligesaludable/internal/testutil/mocks"
)

func TestRegister_TrimsName(t *testing.T) {
	repo := new(mocks.MockPlayerRepository)
	repo.On("Create", mock.Anything, "Ana").Return(&models.Player{ID: 1, Name: "Ana"}, nil)

	player, err := services.NewPlayerService(repo).Register(context.Background(), "  Ana ")
	require.NoError(t, err)
	assert.Equal(t, int64(1), player.ID)
	assert.Equal(t, "Ana", player.Name)
	repo.AssertExpectations(t)
}

func TestRegister_EmptyName(t *testing.T) {
	repo := new(mocks.MockPlayerRepository)

	_, err := services.NewPlayerService(repo).Register(context.Background(), "   ")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_RepositoryFailure(t *testing.T) {
	repo := new(mocks.MockPlayerRepository)
	repo.On("Create", mock.Anything, "Ana").Return(nil, stderrors.New("disk I/O error"))

	_, err := services.NewPlayerService(repo).Register(context.Background(), "Ana")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInternal))
}

func TestGetPlayer(t *testing.T) {
	repo := new(mocks.MockPlayerRepository)
	repo.On("Get", mock.Anything, int64(3)).Return(&models.Player{ID: 3, Name: "Ana", MaxScore: 120}, nil)
	repo.On("Get", mock.Anything, int64(4)).Return(nil, nil)
	svc := services.NewPlayerService(repo)

	player, err := svc.Get(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 120, player.MaxScore)

	_, err = svc.Get(context.Background(), 4)
	appErr := errors.AsAppError(err)
	assert.Equal(t, errors.ErrCodeNotFound, appErr.Code)
	assert.Equal(t, "Jugador no encontrado", appErr.Message)
}
