package storage

import (
	"context"
	"path/filepath"
	"testing"

	"netflix-backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drivers(t *testing.T) map[string]Store {
	t.Helper()

	badgerStore, err := OpenBadger(filepath.Join(t.TempDir(), "badger"), nil)
	require.NoError(t, err)

	sqliteStore, err := OpenSQLite(filepath.Join(t.TempDir(), "kv.db"), nil)
	require.NoError(t, err)

	stores := map[string]Store{
		"memory": NewMemoryStore(),
		"badger": badgerStore,
		"sqlite": sqliteStore,
	}
	t.Cleanup(func() {
		for _, s := range stores {
			_ = s.Close()
		}
	})
	return stores
}

func TestStoreContract(t *testing.T) {
	for name, store := range drivers(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := store.Get(ctx, "account:missing@example.com")
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, store.Set(ctx, "account:b@example.com", []byte(`{"n":2}`)))
			require.NoError(t, store.Set(ctx, "account:a@example.com", []byte(`{"n":1}`)))
			require.NoError(t, store.Set(ctx, "session:u1", []byte(`{}`)))

			got, err := store.Get(ctx, "account:a@example.com")
			require.NoError(t, err)
			assert.Equal(t, `{"n":1}`, string(got))

			require.NoError(t, store.Set(ctx, "account:a@example.com", []byte(`{"n":3}`)))
			got, err = store.Get(ctx, "account:a@example.com")
			require.NoError(t, err)
			assert.Equal(t, `{"n":3}`, string(got))

			entries, err := store.List(ctx, "account:")
			require.NoError(t, err)
			require.Len(t, entries, 2)
			assert.Equal(t, "account:a@example.com", entries[0].Key)
			assert.Equal(t, "account:b@example.com", entries[1].Key)

			require.NoError(t, store.Delete(ctx, "session:u1"))
			require.NoError(t, store.Delete(ctx, "session:u1"))
			_, err = store.Get(ctx, "session:u1")
			assert.ErrorIs(t, err, ErrNotFound)

			assert.NoError(t, store.Ping(ctx))
		})
	}
}

func TestStoreList_PrefixIsLiteral(t *testing.T) {
	ctx := context.Background()
	for name, store := range drivers(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Set(ctx, "a_b:1", []byte("x")))
			require.NoError(t, store.Set(ctx, "axb:1", []byte("y")))

			entries, err := store.List(ctx, "a_b:")
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.Equal(t, "a_b:1", entries[0].Key)
		})
	}
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	value := []byte("abc")
	require.NoError(t, store.Set(ctx, "k", value))
	value[0] = 'z'

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		store, err := Open(ctx, &config.Config{Store: config.StoreConfig{Driver: "memory"}}, nil)
		require.NoError(t, err)
		assert.IsType(t, &MemoryStore{}, store)
	})

	t.Run("sqlite", func(t *testing.T) {
		cfg := &config.Config{Store: config.StoreConfig{Driver: "sqlite", Path: t.TempDir()}}
		store, err := Open(ctx, cfg, nil)
		require.NoError(t, err)
		defer store.Close()
		assert.IsType(t, &SQLiteStore{}, store)
	})

	t.Run("unknown", func(t *testing.T) {
		store, err := Open(ctx, &config.Config{Store: config.StoreConfig{Driver: "etcd"}}, nil)
		assert.Error(t, err)
		assert.Nil(t, store)
	})
}
