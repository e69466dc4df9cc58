package repository

import (
	"context"

	"timesheet/internal/domain"
)

// Repository persists the timesheet state and the activity catalog. Save and
// SaveCatalog replace what was stored before.
type Repository interface {
	Load(ctx context.Context) (domain.State, error)
	Save(ctx context.Context, state domain.State) error
	LoadCatalog(ctx context.Context) ([]domain.ProjectConfig, error)
	SaveCatalog(ctx context.Context, projects []domain.ProjectConfig) error
	Close() error
}
