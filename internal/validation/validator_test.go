package validation

import (
	"testing"

	"netflix-backend/internal/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password,omitempty" validate:"required,min=6"`
}

func TestValidate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(signup{Name: "Test", Email: "test@example.com", Password: "secret1"}))

	err := v.Validate(signup{Email: "not-an-email", Password: "123"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Validation failed: email must be a valid email address; name is required; password must be at least 6 characters", appErr.Message)
	assert.Equal(t, map[string]string{
		"name":     "is required",
		"email":    "must be a valid email address",
		"password": "must be at least 6 characters",
	}, appErr.Details)
}
