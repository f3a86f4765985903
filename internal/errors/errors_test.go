package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/eligesaludable/internal/errors"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		err    *errors.AppError
		code   string
		status int
	}{
		{"not found", errors.NewNotFoundMessage("Nivel no encontrado"), errors.ErrCodeNotFound, http.StatusNotFound},
		{"validation", errors.NewValidationError("nombre", "required"), errors.ErrCodeValidation, http.StatusBadRequest},
		{"bad request", errors.NewBadRequestError("malformed JSON body"), errors.ErrCodeBadRequest, http.StatusBadRequest},
		{"conflict", errors.NewConflictError("session already finalized"), errors.ErrCodeConflict, http.StatusConflict},
		{"too many", errors.NewTooManyRequestsError(), errors.ErrCodeTooManyRequests, http.StatusTooManyRequests},
		{"internal", errors.NewInternalError(fmt.Errorf("boom")), errors.ErrCodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.status, tt.err.Status)
			assert.NotEmpty(t, tt.err.Message)
		})
	}
}

func TestNotFoundMessage(t *testing.T) {
	custom := errors.NewNotFoundMessage("Nivel no encontrado")
	assert.Equal(t, "Nivel no encontrado", custom.Message)
	assert.Equal(t, http.StatusNotFound, custom.Status)
}

func TestInternalErrorHidesCause(t *testing.T) {
	cause := fmt.Errorf("database is locked")
	err := errors.NewInternalError(cause)

	assert.Equal(t, "internal server error", err.Message)
	assert.Contains(t, err.Error(), "database is locked")
	assert.True(t, stderrors.Is(err, cause))
}

func TestAsAppError(t *testing.T) {
	nf := errors.NewNotFoundMessage("Partida no encontrada")
	wrapped := fmt.Errorf("handler: %w", nf)

	got := errors.AsAppError(wrapped)
	require.NotNil(t, got)
	assert.Same(t, nf, got)

	plain := errors.AsAppError(fmt.Errorf("plain"))
	assert.Equal(t, errors.ErrCodeInternal, plain.Code)
}

func TestHasCode(t *testing.T) {
	assert.True(t, errors.HasCode(errors.NewConflictError("x"), errors.ErrCodeConflict))
	assert.False(t, errors.HasCode(errors.NewConflictError("x"), errors.ErrCodeNotFound))
	assert.False(t, errors.HasCode(fmt.Errorf("plain"), errors.ErrCodeInternal))
}
