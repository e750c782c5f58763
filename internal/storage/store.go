// Package storage provides the key-value blob store that holds accounts,
// sessions and search history. Every driver stores opaque byte values under
// string keys; callers own serialization.
package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"netflix-backend/internal/config"
	"netflix-backend/internal/database"

	"github.com/sirupsen/logrus"
)

var ErrNotFound = errors.New("key not found")

type Entry struct {
	Key   string
	Value []byte
}

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// List returns entries whose key starts with prefix, sorted by key.
	List(ctx context.Context, prefix string) ([]Entry, error)
	// Delete is a no-op for missing keys.
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}

// Open builds the store selected by cfg.Store.Driver.
func Open(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (Store, error) {
	switch cfg.Store.Driver {
	case "", "memory":
		return NewMemoryStore(), nil
	case "badger":
		store, err := OpenBadger(filepath.Join(cfg.Store.Path, "badger"), logger)
		if err != nil {
			return nil, err
		}
		return store, nil
	case "sqlite":
		store, err := OpenSQLite(filepath.Join(cfg.Store.Path, "netflix.db"), logger)
		if err != nil {
			return nil, err
		}
		return store, nil
	case "postgres":
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, err
		}
		return NewPostgresStore(db), nil
	case "minio":
		store, err := NewMinIOStore(ctx, &cfg.MinIO, logger)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
