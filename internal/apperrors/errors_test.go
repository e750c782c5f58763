package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIs_MatchesByCode(t *testing.T) {
	err := fmt.Errorf("register: %w", AlreadyExists("User already exists"))

	assert.True(t, errors.Is(err, ErrAlreadyExists))
	assert.False(t, errors.Is(err, ErrInvalidCredentials))
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{Validation("bad", nil), http.StatusBadRequest},
		{AlreadyExists("dup"), http.StatusConflict},
		{InvalidCredentials("nope"), http.StatusUnauthorized},
		{Unauthorized("no token"), http.StatusUnauthorized},
		{NotFound("missing"), http.StatusNotFound},
		{Internal("boom", errors.New("io")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusOf(tt.err), tt.err.Error())
	}
}

func TestInternal_WrapsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := Internal("failed to save account", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to save account: disk full", err.Error())
}
