package errorx

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_New(t *testing.T) {
	err := New(BadRequest, "Page size must be between 1 and %d", 100)
	require.Equal(t, "Page size must be between 1 and 100", err.Error())
	require.Equal(t, BadRequest, err.Code)
}

func Test_As(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", New(NotFound, "Not found user profile"))

	errx := Error{}
	require.True(t, errors.As(wrapped, &errx))
	require.Equal(t, NotFound, errx.Code)
}

func Test_StatusCode(t *testing.T) {
	require.Equal(t, http.StatusBadRequest, StatusCode(BadRequest))
	require.Equal(t, http.StatusNotFound, StatusCode(NotFound))
	require.Equal(t, http.StatusConflict, StatusCode(AlreadyExists))
	require.Equal(t, http.StatusPreconditionFailed, StatusCode(PreconditionFailed))
	require.Equal(t, http.StatusServiceUnavailable, StatusCode(Unavailable))
	require.Equal(t, http.StatusInternalServerError, StatusCode(Internal))
	require.Equal(t, http.StatusInternalServerError, StatusCode(Code(999999)))
}
