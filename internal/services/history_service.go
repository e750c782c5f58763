package services

import (
	"context"
	"strings"

	"netflix-backend/internal/apperrors"
	"netflix-backend/internal/repository"
)

// HistoryService keeps each user's most recent search terms.
type HistoryService interface {
	Record(ctx context.Context, userID, term string) ([]string, error)
	List(ctx context.Context, userID string) ([]string, error)
	Clear(ctx context.Context, userID string) error
}

type historyService struct {
	repo repository.AccountRepository
}

func NewHistoryService(repo repository.AccountRepository) HistoryService {
	return &historyService{repo: repo}
}

func (s *historyService) Record(ctx context.Context, userID, term string) ([]string, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, apperrors.Validation("Search term is required", map[string]string{"q": "is required"})
	}
	terms, err := s.repo.PushRecentSearch(ctx, userID, term)
	if err != nil {
		return nil, apperrors.Internal("failed to record search", err)
	}
	return terms, nil
}

func (s *historyService) List(ctx context.Context, userID string) ([]string, error) {
	terms, err := s.repo.RecentSearches(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("failed to load recent searches", err)
	}
	return terms, nil
}

func (s *historyService) Clear(ctx context.Context, userID string) error {
	if err := s.repo.ClearRecentSearches(ctx, userID); err != nil {
		return apperrors.Internal("failed to clear recent searches", err)
	}
	return nil
}
