package repository

import (
	"context"

	"timesheet/internal/domain"
	"timesheet/internal/repository/sqlite"
)

// SQLiteStore adapts the row-level sqlite repository to Repository.
type SQLiteStore struct {
	repo   sqlite.Repository
	mapper *domain.Mapper
}

// NewSQLiteStore wraps repo.
func NewSQLiteStore(repo sqlite.Repository) *SQLiteStore {
	return &SQLiteStore{
		repo:   repo,
		mapper: domain.NewMapper(),
	}
}

// OpenSQLite opens the database at path and wraps it.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	repo, err := sqlite.New(ctx, path)
	if err != nil {
		return nil, err
	}
	return NewSQLiteStore(repo), nil
}

func (s *SQLiteStore) Load(ctx context.Context) (domain.State, error) {
	entries, err := s.repo.LoadEntries(ctx)
	if err != nil {
		return domain.State{}, err
	}
	pauses, err := s.repo.LoadPauses(ctx)
	if err != nil {
		return domain.State{}, err
	}
	return s.mapper.TimeEntry.StateFromDatabase(entries, pauses), nil
}

func (s *SQLiteStore) Save(ctx context.Context, state domain.State) error {
	entries, pauses := s.mapper.TimeEntry.StateToDatabase(state)
	return s.repo.ReplaceEntries(ctx, entries, pauses)
}

func (s *SQLiteStore) LoadCatalog(ctx context.Context) ([]domain.ProjectConfig, error) {
	projects, err := s.repo.LoadProjects(ctx)
	if err != nil {
		return nil, err
	}
	activities, err := s.repo.LoadActivities(ctx)
	if err != nil {
		return nil, err
	}
	return s.mapper.Catalog.FromDatabase(projects, activities), nil
}

func (s *SQLiteStore) SaveCatalog(ctx context.Context, projects []domain.ProjectConfig) error {
	dbProjects, dbActivities := s.mapper.Catalog.ToDatabase(projects)
	return s.repo.ReplaceCatalog(ctx, dbProjects, dbActivities)
}

func (s *SQLiteStore) Close() error {
	return s.repo.Close()
}
