package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"netflix-backend/internal/models"
	"netflix-backend/internal/storage"
)

const (
	accountPrefix      = "account:"
	sessionPrefix      = "session:"
	recentSearchPrefix = "recent_searches:"
	MaxRecentSearches  = 10
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountExists   = errors.New("account already exists")
	ErrSessionNotFound = errors.New("session not found")
)

type AccountRepository interface {
	// Accounts
	CreateAccount(ctx context.Context, account *models.Account) error
	FindAccountByEmail(ctx context.Context, email string) (*models.Account, error)
	FindAccountByID(ctx context.Context, id string) (*models.Account, error)
	ListAccounts(ctx context.Context) ([]models.Account, error)

	// Sessions
	SaveSession(ctx context.Context, session *models.Session) error
	FindSession(ctx context.Context, userID string) (*models.Session, error)
	DeleteSession(ctx context.Context, userID string) error

	// Recent searches
	PushRecentSearch(ctx context.Context, userID, term string) ([]string, error)
	RecentSearches(ctx context.Context, userID string) ([]string, error)
	ClearRecentSearches(ctx context.Context, userID string) error
}

type accountRepository struct {
	store storage.Store
	// mu serialises read-modify-write sequences within this process.
	mu sync.Mutex
}

func NewAccountRepository(store storage.Store) AccountRepository {
	return &accountRepository{store: store}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func accountKey(email string) string { return accountPrefix + NormalizeEmail(email) }
func sessionKey(userID string) string { return sessionPrefix + userID }
func recentKey(userID string) string { return recentSearchPrefix + userID }

func (r *accountRepository) CreateAccount(ctx context.Context, account *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := accountKey(account.Email)
	_, err := r.store.Get(ctx, key)
	switch {
	case err == nil:
		return ErrAccountExists
	case !errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("failed to check account: %w", err)
	}

	return r.put(ctx, key, account)
}

func (r *accountRepository) FindAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	var account models.Account
	if err := r.get(ctx, accountKey(email), &account); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) FindAccountByID(ctx context.Context, id string) (*models.Account, error) {
	accounts, err := r.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		if accounts[i].ID == id {
			return &accounts[i], nil
		}
	}
	return nil, ErrAccountNotFound
}

func (r *accountRepository) ListAccounts(ctx context.Context) ([]models.Account, error) {
	entries, err := r.store.List(ctx, accountPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	accounts := make([]models.Account, 0, len(entries))
	for _, entry := range entries {
		var account models.Account
		if err := json.Unmarshal(entry.Value, &account); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", entry.Key, err)
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}

func (r *accountRepository) SaveSession(ctx context.Context, session *models.Session) error {
	return r.put(ctx, sessionKey(session.UserID), session)
}

func (r *accountRepository) FindSession(ctx context.Context, userID string) (*models.Session, error) {
	var session models.Session
	if err := r.get(ctx, sessionKey(userID), &session); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (r *accountRepository) DeleteSession(ctx context.Context, userID string) error {
	return r.store.Delete(ctx, sessionKey(userID))
}

func (r *accountRepository) PushRecentSearch(ctx context.Context, userID, term string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, err := r.RecentSearches(ctx, userID)
	if err != nil {
		return nil, err
	}

	next := make([]string, 0, MaxRecentSearches)
	next = append(next, term)
	for _, existing := range current {
		if existing == term {
			continue
		}
		if len(next) == MaxRecentSearches {
			break
		}
		next = append(next, existing)
	}

	if err := r.put(ctx, recentKey(userID), next); err != nil {
		return nil, err
	}
	return next, nil
}

func (r *accountRepository) RecentSearches(ctx context.Context, userID string) ([]string, error) {
	terms := make([]string, 0)
	if err := r.get(ctx, recentKey(userID), &terms); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return []string{}, nil
		}
		return nil, err
	}
	return terms, nil
}

func (r *accountRepository) ClearRecentSearches(ctx context.Context, userID string) error {
	return r.store.Delete(ctx, recentKey(userID))
}

func (r *accountRepository) get(ctx context.Context, key string, dst any) error {
	data, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

func (r *accountRepository) put(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := r.store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
