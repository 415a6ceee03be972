package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/flashdeck/internal/errors"
)

func TestAppError_ErrorIncludesCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := errors.NewInternalError(cause)

	assert.Equal(t, "INTERNAL_ERROR: internal server error (disk full)", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusInternalServerError, err.Status)
}

func TestAs_FindsWrappedAppError(t *testing.T) {
	wrapped := fmt.Errorf("import: %w", errors.NewNoValidCardsError(nil))

	appErr, ok := errors.As(wrapped)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeNoValidCards, appErr.Code)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.Status)
}

func TestAs_PlainError(t *testing.T) {
	_, ok := errors.As(stderrors.New("plain"))
	assert.False(t, ok)
}

func TestNotFoundMessage(t *testing.T) {
	err := errors.NewNotFoundError("card", 42)
	assert.Equal(t, "card not found: 42", err.Message)
	assert.Equal(t, errors.ErrCodeNotFound, err.Code)
}
