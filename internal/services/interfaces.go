package services

import (
	"context"
	"time"

	"timesheet/internal/domain"
)

// WeekTotals holds one summed duration per weekday, indexed by domain.Weekday.
type WeekTotals [7]time.Duration

// Day returns the total for one weekday.
func (w WeekTotals) Day(d domain.Weekday) time.Duration {
	return w[d]
}

// Total sums all seven days.
func (w WeekTotals) Total() time.Duration {
	var total time.Duration
	for _, d := range w {
		total += d
	}
	return total
}

// WeekRow is one line of the weekly table
type WeekRow struct {
	EntryID   string
	Type      domain.EntryType
	Activity  string
	ProjectID string
	Category  string
	Comment   string
	Weekday   domain.Weekday
	Date      time.Time
	Duration  time.Duration
}

// EntryLifecycle owns the single current entry and moves it through
// start, pause, resume and stop
type EntryLifecycle interface {
	Start(ctx context.Context, req domain.StartRequest) (domain.TimeEntry, error)
	Pause(ctx context.Context, comment *string) (domain.TimeEntry, error)
	Resume(ctx context.Context) (domain.TimeEntry, error)
	UpdateComment(ctx context.Context, comment string) (domain.TimeEntry, error)
	Stop(ctx context.Context, override *time.Duration) (domain.TimeEntry, error)
	Current() (domain.TimeEntry, bool)
}

// WeeklyAggregator groups completed entries by weekday and edits them
type WeeklyAggregator interface {
	// Aggregation
	DailyTotals(entries []domain.TimeEntry) WeekTotals
	Rows(entries []domain.TimeEntry) []WeekRow
	EntriesInWeek(entries []domain.TimeEntry, anchor time.Time) []domain.TimeEntry
	Entries() []domain.TimeEntry

	// Point edits
	UpdateEntry(ctx context.Context, id string, update domain.EntryUpdate) (domain.TimeEntry, error)
	DeleteEntry(ctx context.Context, id string) error
}

// CatalogService manages the project and activity catalog
type CatalogService interface {
	// Lookup operations
	Projects(ctx context.Context) ([]domain.ProjectConfig, error)
	LookupActivity(ctx context.Context, name string) (domain.ActivityConfig, domain.EntryType, error)
	LookupActivityForType(ctx context.Context, entryType domain.EntryType, name string) (domain.ActivityConfig, error)
	ActivitiesForType(ctx context.Context, entryType domain.EntryType) ([]domain.ActivityConfig, error)

	// Edit operations
	AddProject(ctx context.Context, project domain.ProjectConfig) error
	RemoveProject(ctx context.Context, projectID string) error
	AddActivity(ctx context.Context, projectID string, activity domain.ActivityConfig) error
	RemoveActivity(ctx context.Context, projectID, name string) error
	UpdateActivity(ctx context.Context, projectID, name string, activity domain.ActivityConfig) error
	ReplaceAll(ctx context.Context, projects []domain.ProjectConfig) error
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	Ledger    *Ledger
	Lifecycle EntryLifecycle
	Weekly    WeeklyAggregator
	Catalog   CatalogService
}
