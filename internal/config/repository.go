package config

import (
	"context"
	"fmt"
	"os"

	"timesheet/internal/repository"
	"timesheet/internal/repository/bolt"
	"timesheet/internal/repository/memory"
)

// CreateRepository opens the storage backend selected by the configuration
func CreateRepository(ctx context.Context, config *Config) (repository.Repository, error) {
	switch config.Storage.Backend {
	case BackendMemory:
		return memory.New(), nil
	case BackendSQLite, BackendBolt:
	default:
		return nil, fmt.Errorf("unknown storage backend %q", config.Storage.Backend)
	}

	if err := os.MkdirAll(config.Storage.Dir, os.FileMode(config.Storage.DirPermissions)); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	dbPath := config.GetDatabasePath()

	if config.Storage.Backend == BackendBolt {
		store, err := bolt.Open(dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return store, nil
	}

	store, err := repository.OpenSQLite(ctx, dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return store, nil
}

// CreateTestRepository creates an in-memory sqlite repository for testing
func CreateTestRepository(ctx context.Context) (repository.Repository, error) {
	store, err := repository.OpenSQLite(ctx, ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test database: %w", err)
	}
	return store, nil
}
