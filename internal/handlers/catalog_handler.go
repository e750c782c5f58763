package handlers

import (
	"context"
	"errors"

	"netflix-backend/internal/middleware"
	"netflix-backend/internal/models"
	"netflix-backend/internal/services"
	"netflix-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CatalogHandler struct {
	catalog services.CatalogService
	history services.HistoryService
	logger  *logrus.Logger
}

func NewCatalogHandler(catalog services.CatalogService, history services.HistoryService, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		history: history,
		logger:  logger,
	}
}

// GetRows godoc
// @Summary List browse rows
// @Description List the home screen rows and the search term behind each
// @Tags catalog
// @Produce json
// @Success 200 {object} utils.StandardResponse "Rows"
// @Router /api/v1/catalog/rows [get]
func (h *CatalogHandler) GetRows(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, "Rows retrieved successfully", h.catalog.Categories())
}

// GetRow godoc
// @Summary Movies for one row
// @Description Search the row's term; meta.source tells live data from the fallback catalog
// @Tags catalog
// @Produce json
// @Param slug path string true "Row slug" Enums(trending, action, comedy, drama, horror, romance, sci-fi, thriller)
// @Success 200 {object} utils.StandardResponse{data=RowResponse,meta=utils.CatalogMeta} "Row movies"
// @Failure 404 {object} utils.StandardResponse "Category not found"
// @Router /api/v1/catalog/rows/{slug} [get]
func (h *CatalogHandler) GetRow(c *fiber.Ctx) error {
	slug := c.Params("slug")
	category, ok := h.catalog.Category(slug)
	if !ok {
		return utils.AppErrorResponse(c, services.ErrCategoryNotFound)
	}

	list, err := h.catalog.Row(c.UserContext(), slug)
	if err != nil {
		return h.catalogError(c, err, logrus.Fields{"slug": slug})
	}

	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Row retrieved successfully",
		RowResponse{Category: category, Movies: list.Movies}, utils.NewCatalogMeta(list))
}

// GetBanner godoc
// @Summary Banner movie
// @Description One random movie for the home screen banner
// @Tags catalog
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=models.Movie,meta=utils.CatalogMeta} "Banner movie"
// @Router /api/v1/catalog/banner [get]
func (h *CatalogHandler) GetBanner(c *fiber.Ctx) error {
	list, err := h.catalog.Banner(c.UserContext())
	if err != nil {
		return h.catalogError(c, err, nil)
	}

	var movie *models.Movie
	if len(list.Movies) > 0 {
		movie = &list.Movies[0]
	}
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Banner retrieved successfully", movie, utils.NewCatalogMeta(list))
}

// Search godoc
// @Summary Search movies
// @Description Free-text movie search. Authenticated callers get the term added to their recent searches.
// @Tags catalog
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {object} utils.StandardResponse{data=[]models.Movie,meta=utils.CatalogMeta} "Search results"
// @Failure 400 {object} utils.StandardResponse "Search term is required"
// @Router /api/v1/catalog/search [get]
func (h *CatalogHandler) Search(c *fiber.Ctx) error {
	term := c.Query("q")

	list, err := h.catalog.Search(c.UserContext(), term)
	if err != nil {
		return h.catalogError(c, err, logrus.Fields{"term": term})
	}

	if claims := middleware.GetClaims(c); claims != nil {
		if _, err := h.history.Record(c.UserContext(), claims.UserID, term); err != nil {
			h.logger.WithError(err).WithField("userId", claims.UserID).Warn("Failed to record recent search")
		}
	}

	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Search completed successfully", list.Movies, utils.NewCatalogMeta(list))
}

// GetMovie godoc
// @Summary Movie details
// @Description Look up one title by its IMDb id
// @Tags catalog
// @Produce json
// @Param id path string true "IMDb id" example(tt0848228)
// @Success 200 {object} utils.StandardResponse{data=models.Movie,meta=utils.CatalogMeta} "Movie details"
// @Router /api/v1/catalog/movies/{id} [get]
func (h *CatalogHandler) GetMovie(c *fiber.Ctx) error {
	id := c.Params("id")

	list, err := h.catalog.Details(c.UserContext(), id)
	if err != nil {
		return h.catalogError(c, err, logrus.Fields{"id": id})
	}

	if list.IsFallback() {
		return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Movie unavailable, showing suggestions", list.Movies, utils.NewCatalogMeta(list))
	}
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Movie retrieved successfully", list.Movies[0], utils.NewCatalogMeta(list))
}

// GetRecentSearches godoc
// @Summary Recent searches
// @Description The caller's last searches, newest first
// @Tags history
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.StandardResponse{data=RecentSearchesResponse} "Recent searches"
// @Failure 401 {object} utils.StandardResponse "Not authenticated"
// @Router /api/v1/me/recent-searches [get]
func (h *CatalogHandler) GetRecentSearches(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Not authenticated")
	}

	terms, err := h.history.List(c.UserContext(), claims.UserID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to load recent searches")
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Recent searches retrieved successfully", RecentSearchesResponse{Terms: terms})
}

// ClearRecentSearches godoc
// @Summary Clear recent searches
// @Tags history
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.StandardResponse "Recent searches cleared"
// @Failure 401 {object} utils.StandardResponse "Not authenticated"
// @Router /api/v1/me/recent-searches [delete]
func (h *CatalogHandler) ClearRecentSearches(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Not authenticated")
	}

	if err := h.history.Clear(c.UserContext(), claims.UserID); err != nil {
		h.logger.WithError(err).Error("Failed to clear recent searches")
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Recent searches cleared", nil)
}

func (h *CatalogHandler) catalogError(c *fiber.Ctx, err error, fields logrus.Fields) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		h.logger.WithFields(fields).Info("Catalog request cancelled")
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, "Request cancelled")
	}
	return utils.AppErrorResponse(c, err)
}
