package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"netflix-backend/internal/models"
	"netflix-backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo() (AccountRepository, *storage.MemoryStore) {
	store := storage.NewMemoryStore()
	return NewAccountRepository(store), store
}

func TestCreateAccount(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo()

	account := &models.Account{ID: "u1", Name: "Test User", Email: "test@example.com", PasswordHash: "h"}
	require.NoError(t, repo.CreateAccount(ctx, account))

	found, err := repo.FindAccountByEmail(ctx, "  TEST@example.com ")
	require.NoError(t, err)
	assert.Equal(t, "u1", found.ID)

	err = repo.CreateAccount(ctx, &models.Account{ID: "u2", Email: "Test@Example.com"})
	assert.ErrorIs(t, err, ErrAccountExists)

	accounts, err := repo.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "u1", accounts[0].ID)
}

func TestCreateAccount_ConcurrentSameEmail(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo()

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs <- repo.CreateAccount(ctx, &models.Account{ID: fmt.Sprintf("u%d", i), Email: "race@example.com"})
		}(i)
	}
	wg.Wait()
	close(errs)

	created := 0
	for err := range errs {
		if err == nil {
			created++
		} else {
			assert.ErrorIs(t, err, ErrAccountExists)
		}
	}
	assert.Equal(t, 1, created)
}

func TestFindAccount_Missing(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo()

	_, err := repo.FindAccountByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrAccountNotFound)

	_, err = repo.FindAccountByID(ctx, "nope")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestFindAccountByID(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo()

	require.NoError(t, repo.CreateAccount(ctx, &models.Account{ID: "a", Email: "a@example.com"}))
	require.NoError(t, repo.CreateAccount(ctx, &models.Account{ID: "b", Email: "b@example.com"}))

	found, err := repo.FindAccountByID(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "b@example.com", found.Email)
}

func TestSessions(t *testing.T) {
	ctx := context.Background()
	repo, store := newTestRepo()

	now := time.Now().UTC()
	session := &models.Session{UserID: "u1", Authenticated: true, IssuedAt: now, ExpiresAt: now.Add(time.Hour)}
	require.NoError(t, repo.SaveSession(ctx, session))

	_, err := store.Get(ctx, "session:u1")
	require.NoError(t, err)

	found, err := repo.FindSession(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, found.Active(now))

	require.NoError(t, repo.DeleteSession(ctx, "u1"))
	_, err = repo.FindSession(ctx, "u1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRecentSearches(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo()

	terms, err := repo.RecentSearches(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, terms)

	for i := 0; i < 12; i++ {
		_, err := repo.PushRecentSearch(ctx, "u1", fmt.Sprintf("term-%d", i))
		require.NoError(t, err)
	}
	terms, err = repo.PushRecentSearch(ctx, "u1", "term-5")
	require.NoError(t, err)

	require.Len(t, terms, MaxRecentSearches)
	assert.Equal(t, "term-5", terms[0])
	assert.Equal(t, "term-11", terms[1])
	assert.NotContains(t, terms, "term-0")
	assert.NotContains(t, terms, "term-1")

	seen := map[string]bool{}
	for _, term := range terms {
		assert.False(t, seen[term], "duplicate %s", term)
		seen[term] = true
	}

	require.NoError(t, repo.ClearRecentSearches(ctx, "u1"))
	terms, err = repo.RecentSearches(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, terms)
}
