package handlers

import (
	"netflix-backend/internal/middleware"
	"netflix-backend/internal/services"
	"netflix-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	service services.AuthService
	logger  *logrus.Logger
}

func NewAuthHandler(service services.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger,
	}
}

// Register godoc
// @Summary Register a user
// @Description Create an account and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration details"
// @Success 201 {object} utils.StandardResponse "User registered"
// @Failure 400 {object} utils.StandardResponse "Validation failed"
// @Failure 409 {object} utils.StandardResponse "User already exists"
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	result, err := h.service.Register(c.UserContext(), services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.logger.WithError(err).WithField("email", req.Email).Warn("Registration failed")
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "User registered successfully", result)
}

// Login godoc
// @Summary Log in
// @Description Check credentials and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} utils.StandardResponse "Login successful"
// @Failure 400 {object} utils.StandardResponse "Validation failed"
// @Failure 401 {object} utils.StandardResponse "Invalid email or password"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	result, err := h.service.Login(c.UserContext(), services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Login successful", result)
}

// Me godoc
// @Summary Current user
// @Description Return the profile of the authenticated user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.StandardResponse "Current user"
// @Failure 401 {object} utils.StandardResponse "Not authenticated"
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Not authenticated")
	}

	profile, err := h.service.CurrentUser(c.UserContext(), claims.UserID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "User retrieved successfully", profile)
}

// Logout godoc
// @Summary Log out
// @Description End the session of the authenticated user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.StandardResponse "Logged out"
// @Failure 401 {object} utils.StandardResponse "Not authenticated"
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Not authenticated")
	}

	if err := h.service.Logout(c.UserContext(), claims.UserID); err != nil {
		h.logger.WithError(err).WithField("userId", claims.UserID).Error("Failed to log out")
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Logged out successfully", nil)
}
