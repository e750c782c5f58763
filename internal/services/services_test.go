package services

import (
	"io"
	"testing"
	"time"

	"netflix-backend/internal/config"
	"netflix-backend/internal/normalizer"
	"netflix-backend/internal/repository"
	"netflix-backend/internal/storage"
	"netflix-backend/internal/validation"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testNormalizer(t *testing.T) *normalizer.Normalizer {
	t.Helper()
	n, err := normalizer.New(normalizer.DefaultPolicy(), testLogger(), normalizer.WithSeed(42))
	require.NoError(t, err)
	return n
}

func testSearchConfig(baseURL string) config.SearchConfig {
	return config.SearchConfig{
		BaseURL:     baseURL,
		APIKey:      "test-key",
		APIKeyParam: "apikey",
		ResultType:  "movie",
		BannerTerm:  "avengers",
	}
}

func testAuthService() (AuthService, repository.AccountRepository, *storage.MemoryStore) {
	store := storage.NewMemoryStore()
	repo := repository.NewAccountRepository(store)
	tokens := TokenService{Secret: []byte("test-secret"), Issuer: "netflix-backend-test", Duration: time.Hour}
	return NewAuthService(repo, tokens, validation.New(), testLogger()), repo, store
}
