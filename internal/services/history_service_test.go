package services

import (
	"context"
	"testing"

	"netflix-backend/internal/apperrors"
	"netflix-backend/internal/repository"
	"netflix-backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryService(t *testing.T) {
	ctx := context.Background()
	history := NewHistoryService(repository.NewAccountRepository(storage.NewMemoryStore()))

	_, err := history.Record(ctx, "u1", "  ")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = history.Record(ctx, "u1", " heat ")
	require.NoError(t, err)
	_, err = history.Record(ctx, "u1", "alien")
	require.NoError(t, err)
	terms, err := history.Record(ctx, "u1", "heat")
	require.NoError(t, err)
	assert.Equal(t, []string{"heat", "alien"}, terms)

	listed, err := history.List(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, terms, listed)

	other, err := history.List(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, other)

	require.NoError(t, history.Clear(ctx, "u1"))
	listed, err = history.List(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, listed)
}
