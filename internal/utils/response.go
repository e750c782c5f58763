package utils

import (
	"errors"

	"netflix-backend/internal/apperrors"
	"netflix-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// StandardResponse represents the standard API response format
type StandardResponse struct {
	Success bool        `json:"success"`
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// CatalogMeta tells clients whether movies came from the search API or the fallback catalog
type CatalogMeta struct {
	Source    models.Provenance `json:"source" example:"live"`
	Reason    string            `json:"reason,omitempty" example:"fetch failed"`
	Container string            `json:"container,omitempty" example:"Search"`
	Count     int               `json:"count" example:"10"`
}

// NewCatalogMeta builds response meta from a movie list
func NewCatalogMeta(list models.MovieList) CatalogMeta {
	return CatalogMeta{
		Source:    list.Source,
		Reason:    list.Reason,
		Container: list.Container,
		Count:     len(list.Movies),
	}
}

// SuccessResponse sends a success response
func SuccessResponse(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(StandardResponse{
		Success: true,
		Status:  "success",
		Code:    code,
		Message: message,
		Data:    data,
	})
}

// SuccessWithMetaResponse sends a success response with meta
func SuccessWithMetaResponse(c *fiber.Ctx, code int, message string, data interface{}, meta interface{}) error {
	return c.Status(code).JSON(StandardResponse{
		Success: true,
		Status:  "success",
		Code:    code,
		Message: message,
		Data:    data,
		Meta:    meta,
	})
}

// ErrorResponse sends an error response
func ErrorResponse(c *fiber.Ctx, code int, message string) error {
	return ErrorWithDataResponse(c, code, message, nil)
}

// ErrorWithDataResponse sends an error response with additional data
func ErrorWithDataResponse(c *fiber.Ctx, code int, message string, data interface{}) error {
	status := "error"
	if code >= 500 {
		status = "fail"
	}
	return c.Status(code).JSON(StandardResponse{
		Success: false,
		Status:  status,
		Code:    code,
		Message: message,
		Data:    data,
	})
}

// AppErrorResponse translates a domain error into its status and message.
// Internal errors never expose their cause.
func AppErrorResponse(c *fiber.Ctx, err error) error {
	status := apperrors.StatusOf(err)
	var appErr *apperrors.Error
	if status >= fiber.StatusInternalServerError || !errors.As(err, &appErr) {
		return ErrorResponse(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if appErr.Details != nil {
		return ErrorWithDataResponse(c, status, appErr.Message, appErr.Details)
	}
	return ErrorResponse(c, status, appErr.Message)
}
