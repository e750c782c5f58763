package services

import (
	"context"
	"net/url"
	"strings"

	"netflix-backend/internal/apperrors"
	"netflix-backend/internal/config"
	"netflix-backend/internal/models"
	"netflix-backend/internal/normalizer"

	"github.com/sirupsen/logrus"
)

var ErrCategoryNotFound = apperrors.NotFound("Category not found")

// categories is the home page row table, in display order.
var categories = []models.Category{
	{Slug: "trending", Title: "Trending Now", Term: "marvel"},
	{Slug: "action", Title: "Action Movies", Term: "action"},
	{Slug: "comedy", Title: "Comedy Movies", Term: "comedy"},
	{Slug: "drama", Title: "Drama Movies", Term: "drama"},
	{Slug: "horror", Title: "Horror Movies", Term: "horror"},
	{Slug: "romance", Title: "Romance Movies", Term: "romance"},
	{Slug: "sci-fi", Title: "Sci-Fi Movies", Term: "science fiction"},
	{Slug: "thriller", Title: "Thriller Movies", Term: "thriller"},
}

type CatalogService interface {
	Categories() []models.Category
	Category(slug string) (models.Category, bool)
	Row(ctx context.Context, slug string) (models.MovieList, error)
	Search(ctx context.Context, term string) (models.MovieList, error)
	Banner(ctx context.Context) (models.MovieList, error)
	Details(ctx context.Context, id string) (models.MovieList, error)
}

type catalogService struct {
	client     SearchClient
	normalizer *normalizer.Normalizer
	config     config.SearchConfig
	logger     *logrus.Logger
}

func NewCatalogService(client SearchClient, norm *normalizer.Normalizer, cfg config.SearchConfig, logger *logrus.Logger) CatalogService {
	return &catalogService{
		client:     client,
		normalizer: norm,
		config:     cfg,
		logger:     logger,
	}
}

func (s *catalogService) Categories() []models.Category {
	out := make([]models.Category, len(categories))
	copy(out, categories)
	return out
}

func (s *catalogService) Category(slug string) (models.Category, bool) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	for _, c := range categories {
		if c.Slug == slug {
			return c, true
		}
	}
	return models.Category{}, false
}

func (s *catalogService) Row(ctx context.Context, slug string) (models.MovieList, error) {
	category, ok := s.Category(slug)
	if !ok {
		return models.MovieList{}, ErrCategoryNotFound
	}
	return s.search(ctx, category.Term)
}

func (s *catalogService) Search(ctx context.Context, term string) (models.MovieList, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return models.MovieList{}, apperrors.Validation("Search term is required", map[string]string{"q": "is required"})
	}
	return s.search(ctx, term)
}

func (s *catalogService) Banner(ctx context.Context) (models.MovieList, error) {
	list, err := s.search(ctx, s.config.BannerTerm)
	if err != nil {
		return models.MovieList{}, err
	}

	movie, ok := s.normalizer.Pick(list.Movies)
	if !ok {
		return list, nil
	}
	list.Movies = []models.Movie{movie}
	return list, nil
}

func (s *catalogService) Details(ctx context.Context, id string) (models.MovieList, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return models.MovieList{}, apperrors.Validation("Movie id is required", map[string]string{"id": "is required"})
	}

	payload, err := s.client.Fetch(ctx, "/", url.Values{"i": {id}})
	if ctxErr := ctx.Err(); ctxErr != nil {
		return models.MovieList{}, ctxErr
	}
	if err == nil {
		payload = wrapSingle(payload)
	}
	return s.resolve(payload, err, logrus.Fields{"id": id}), nil
}

func (s *catalogService) search(ctx context.Context, term string) (models.MovieList, error) {
	params := url.Values{"s": {term}}
	if s.config.ResultType != "" {
		params.Set("type", s.config.ResultType)
	}

	payload, err := s.client.Fetch(ctx, "/", params)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return models.MovieList{}, ctxErr
	}
	return s.resolve(payload, err, logrus.Fields{"term": term}), nil
}

func (s *catalogService) resolve(payload any, fetchErr error, fields logrus.Fields) models.MovieList {
	list := s.normalizer.Resolve(payload, fetchErr)
	if list.IsFallback() {
		entry := s.logger.WithFields(fields).WithField("reason", list.Reason)
		if fetchErr != nil {
			entry = entry.WithError(fetchErr)
		}
		entry.Warn("Serving fallback catalog")
	}
	return list
}

// wrapSingle turns a single-title lookup into a one-element list. Lookups the
// API rejected are returned as-is so they yield no records.
func wrapSingle(payload any) any {
	obj, ok := payload.(map[string]any)
	if !ok {
		return payload
	}
	if response, ok := obj["Response"].(string); ok && strings.EqualFold(response, "False") {
		return obj
	}
	return []any{obj}
}
