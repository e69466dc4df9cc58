package config

import (
	"context"
	"testing"
	"time"

	"timesheet/internal/domain"
	"timesheet/internal/repository/bolt"
	"timesheet/internal/repository/memory"
)

func TestCreateRepository(t *testing.T) {
	ctx := context.Background()

	for _, backend := range []string{BackendSQLite, BackendBolt} {
		t.Run(backend, func(t *testing.T) {
			t.Setenv("TS_CONFIG", "")
			t.Setenv("TS_DB_DIR", t.TempDir())
			t.Setenv("TS_STORAGE_BACKEND", backend)

			cfg, err := NewLoader().Load()
			if err != nil {
				t.Fatalf("Failed to load configuration: %v", err)
			}

			repo, err := CreateRepository(ctx, cfg)
			if err != nil {
				t.Fatalf("CreateRepository() error = %v", err)
			}
			defer repo.Close()

			end := time.Now().UTC()
			state := domain.State{Entries: []domain.TimeEntry{{
				ID:        "a",
				StartTime: end.Add(-time.Hour),
				EndTime:   &end,
				Type:      domain.EntryTypeWork,
				Pauses:    []domain.Pause{},
			}}}
			if err := repo.Save(ctx, state); err != nil {
				t.Fatalf("Save() error = %v", err)
			}

			loaded, err := repo.Load(ctx)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if len(loaded.Entries) != 1 || loaded.Entries[0].ID != "a" {
				t.Errorf("Load() = %+v, want one entry with id a", loaded.Entries)
			}
		})
	}
}

func TestCreateRepository_Backends(t *testing.T) {
	ctx := context.Background()

	cfg := NewConfig()
	cfg.Storage.Backend = BackendMemory
	repo, err := CreateRepository(ctx, cfg)
	if err != nil {
		t.Fatalf("CreateRepository(memory) error = %v", err)
	}
	if _, ok := repo.(*memory.Store); !ok {
		t.Errorf("CreateRepository(memory) = %T, want *memory.Store", repo)
	}

	cfg = NewConfig()
	cfg.Storage.Backend = BackendBolt
	cfg.Storage.Dir = t.TempDir()
	repo, err = CreateRepository(ctx, cfg)
	if err != nil {
		t.Fatalf("CreateRepository(bolt) error = %v", err)
	}
	defer repo.Close()
	if _, ok := repo.(*bolt.Store); !ok {
		t.Errorf("CreateRepository(bolt) = %T, want *bolt.Store", repo)
	}

	cfg = NewConfig()
	cfg.Storage.Backend = "redis"
	if _, err := CreateRepository(ctx, cfg); err == nil {
		t.Error("CreateRepository(redis) should fail")
	}
}

func TestCreateTestRepository(t *testing.T) {
	repo, err := CreateTestRepository(context.Background())
	if err != nil {
		t.Fatalf("CreateTestRepository() error = %v", err)
	}
	defer repo.Close()

	catalog, err := repo.LoadCatalog(context.Background())
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	if len(catalog) != 0 {
		t.Errorf("LoadCatalog() = %d projects, want 0", len(catalog))
	}
}
