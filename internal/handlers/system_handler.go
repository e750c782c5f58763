package handlers

import (
	"context"
	"time"

	"netflix-backend/internal/config"
	"netflix-backend/internal/storage"
	"netflix-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type SystemHandler struct {
	store     storage.Store
	config    config.ServerConfig
	driver    string
	startedAt time.Time
	logger    *logrus.Logger
}

func NewSystemHandler(store storage.Store, cfg *config.Config, logger *logrus.Logger) *SystemHandler {
	return &SystemHandler{
		store:     store,
		config:    cfg.Server,
		driver:    cfg.Store.Driver,
		startedAt: time.Now(),
		logger:    logger,
	}
}

// Root godoc
// @Summary API status
// @Description Reports that the API is running
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *SystemHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success":     true,
		"message":     "Netflix Backend API Running",
		"version":     h.config.Version,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": h.config.Environment,
	})
}

// Health godoc
// @Summary Health check
// @Description Reports uptime and blob store health
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (h *SystemHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
	defer cancel()

	status, storeStatus, code := "ok", "healthy", fiber.StatusOK
	if err := h.store.Ping(ctx); err != nil {
		h.logger.WithError(err).Warn("Store health check failed")
		status, storeStatus, code = "degraded", "unhealthy", fiber.StatusServiceUnavailable
	}

	return c.Status(code).JSON(fiber.Map{
		"success":   code == fiber.StatusOK,
		"status":    status,
		"service":   "netflix-backend",
		"version":   h.config.Version,
		"uptime":    time.Since(h.startedAt).Seconds(),
		"store":     fiber.Map{"driver": h.driver, "status": storeStatus},
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// NotFound answers any route that matched nothing.
func (h *SystemHandler) NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"success": false,
		"message": "Route not found",
		"path":    c.OriginalURL(),
	})
}

// ErrorHandler is the fiber error handler for errors returned by handlers.
func ErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal Server Error"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
		}

		log.WithError(err).WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
			"status": code,
		}).Error("Request error")

		return utils.ErrorResponse(c, code, message)
	}
}
