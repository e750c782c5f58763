package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"netflix-backend/internal/apperrors"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorResponse(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
		state   string
		details bool
	}{
		{"validation", apperrors.Validation("Validation failed", map[string]string{"q": "is required"}), fiber.StatusBadRequest, "Validation failed", "error", true},
		{"wrapped conflict", fmt.Errorf("register: %w", apperrors.AlreadyExists("User already exists")), fiber.StatusConflict, "User already exists", "error", false},
		{"unauthorized", apperrors.Unauthorized("Not authenticated"), fiber.StatusUnauthorized, "Not authenticated", "error", false},
		{"not found", apperrors.NotFound("Category not found"), fiber.StatusNotFound, "Category not found", "error", false},
		{"internal hides cause", apperrors.Internal("failed to load session", errors.New("store down")), fiber.StatusInternalServerError, "Internal Server Error", "fail", false},
		{"plain error", errors.New("boom"), fiber.StatusInternalServerError, "Internal Server Error", "fail", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return AppErrorResponse(c, tt.err)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, apperrors.StatusOf(tt.err), resp.StatusCode)

			var body StandardResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.status, body.Code)
			assert.Equal(t, tt.state, body.Status)
			assert.Equal(t, tt.message, body.Message)
			assert.Equal(t, tt.details, body.Data != nil)
		})
	}
}
