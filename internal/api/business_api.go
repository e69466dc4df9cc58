package api

import (
	"context"
	"strings"
	"time"

	"timesheet/internal/domain"
	"timesheet/internal/errors"
	"timesheet/internal/services"
)

// StartActivityRequest starts an entry for a catalog activity. A nil Type
// searches every project; otherwise only projects serving that type.
type StartActivityRequest struct {
	Activity string
	Type     *domain.EntryType
	Comment  string
}

// EntrySession is the active entry as seen at one instant
type EntrySession struct {
	Entry   domain.TimeEntry
	Elapsed time.Duration // wall clock since start
	Worked  time.Duration // elapsed minus pauses
	Paused  bool
}

// WeekView is the weekly table with its per-day totals
type WeekView struct {
	Start  time.Time // Monday 00:00, zero when all entries are shown
	End    time.Time
	Rows   []services.WeekRow
	Totals services.WeekTotals
	Total  time.Duration
}

// BusinessAPI defines the workflows the CLI runs against the timesheet
type BusinessAPI interface {
	// ========== Entry Lifecycle ==========

	// StartActivity resolves an activity through the catalog and starts it
	StartActivity(ctx context.Context, req StartActivityRequest) (*EntrySession, error)

	// PauseEntry opens a pause on the active entry
	PauseEntry(ctx context.Context, comment *string) (*EntrySession, error)

	// ResumeEntry closes the open pause
	ResumeEntry(ctx context.Context) (*EntrySession, error)

	// CommentEntry replaces the comment of the active entry
	CommentEntry(ctx context.Context, comment string) (*EntrySession, error)

	// StopEntry completes the active entry, optionally overriding its duration
	StopEntry(ctx context.Context, override *time.Duration) (*domain.TimeEntry, error)

	// GetCurrentSession returns the active entry or a NotFound error
	GetCurrentSession(ctx context.Context) (*EntrySession, error)

	// ========== Weekly View ==========

	// GetWeek returns the week containing anchor, or every entry when all is set
	GetWeek(ctx context.Context, anchor time.Time, all bool) (*WeekView, error)

	// ListEntries returns all completed entries in insertion order
	ListEntries(ctx context.Context) ([]domain.TimeEntry, error)

	// UpdateEntry edits the duration or comment of a completed entry
	UpdateEntry(ctx context.Context, id string, update domain.EntryUpdate) (*domain.TimeEntry, error)

	// DeleteEntry removes a completed entry
	DeleteEntry(ctx context.Context, id string) error
}

// businessAPIImpl implements the BusinessAPI interface
type businessAPIImpl struct {
	lifecycle services.EntryLifecycle
	weekly    services.WeeklyAggregator
	catalog   services.CatalogService
	now       func() time.Time
	location  *time.Location
}

// NewBusinessAPI creates a new BusinessAPI over the wired services
func NewBusinessAPI(container *services.ServiceContainer, opts ...Option) BusinessAPI {
	o := newOptions(opts)
	return &businessAPIImpl{
		lifecycle: container.Lifecycle,
		weekly:    container.Weekly,
		catalog:   container.Catalog,
		now:       o.now,
		location:  o.location,
	}
}

// ========== Entry Lifecycle ==========

func (b *businessAPIImpl) StartActivity(ctx context.Context, req StartActivityRequest) (*EntrySession, error) {
	name := strings.TrimSpace(req.Activity)
	if name == "" {
		return nil, errors.NewInvalidArgumentError("activity", req.Activity, "is required")
	}

	// 1. Only one entry may run, whatever the activity
	if _, active := b.lifecycle.Current(); active {
		return nil, errors.NewInvalidStateError("start", "an entry is already active")
	}

	// 2. Resolve the activity in the catalog
	var (
		activity  domain.ActivityConfig
		entryType domain.EntryType
		err       error
	)
	if req.Type != nil {
		entryType = *req.Type
		activity, err = b.catalog.LookupActivityForType(ctx, entryType, name)
	} else {
		activity, entryType, err = b.catalog.LookupActivity(ctx, name)
	}
	if err != nil {
		return nil, err
	}

	// 3. Start the entry; a persistence error still carries the new entry
	entry, err := b.lifecycle.Start(ctx, activity.StartRequest(entryType, req.Comment))
	return b.sessionFor(entry, err)
}

func (b *businessAPIImpl) PauseEntry(ctx context.Context, comment *string) (*EntrySession, error) {
	return b.sessionFor(b.lifecycle.Pause(ctx, comment))
}

func (b *businessAPIImpl) ResumeEntry(ctx context.Context) (*EntrySession, error) {
	return b.sessionFor(b.lifecycle.Resume(ctx))
}

func (b *businessAPIImpl) CommentEntry(ctx context.Context, comment string) (*EntrySession, error) {
	return b.sessionFor(b.lifecycle.UpdateComment(ctx, comment))
}

func (b *businessAPIImpl) StopEntry(ctx context.Context, override *time.Duration) (*domain.TimeEntry, error) {
	entry, err := b.lifecycle.Stop(ctx, override)
	if err != nil && !services.IsPersistenceError(err) {
		return nil, err
	}
	return &entry, err
}

func (b *businessAPIImpl) GetCurrentSession(ctx context.Context) (*EntrySession, error) {
	entry, ok := b.lifecycle.Current()
	if !ok {
		return nil, errors.NewNotFoundError("active entry", "")
	}
	return b.session(entry), nil
}

// sessionFor builds a session from a lifecycle result. Persistence errors
// are returned together with the session since the transition happened.
func (b *businessAPIImpl) sessionFor(entry domain.TimeEntry, err error) (*EntrySession, error) {
	if err != nil && !services.IsPersistenceError(err) {
		return nil, err
	}
	return b.session(entry), err
}

func (b *businessAPIImpl) session(entry domain.TimeEntry) *EntrySession {
	now := b.now()
	return &EntrySession{
		Entry:   entry,
		Elapsed: entry.Elapsed(now),
		Worked:  entry.Worked(now),
		Paused:  entry.IsPaused(),
	}
}

// ========== Weekly View ==========

func (b *businessAPIImpl) GetWeek(ctx context.Context, anchor time.Time, all bool) (*WeekView, error) {
	entries := b.weekly.Entries()

	view := &WeekView{}
	if !all {
		entries = b.weekly.EntriesInWeek(entries, anchor)
		view.Start = domain.StartOfWeek(anchor, b.location)
		view.End = view.Start.AddDate(0, 0, 7)
	}

	view.Rows = b.weekly.Rows(entries)
	view.Totals = b.weekly.DailyTotals(entries)
	view.Total = view.Totals.Total()
	return view, nil
}

func (b *businessAPIImpl) ListEntries(ctx context.Context) ([]domain.TimeEntry, error) {
	return b.weekly.Entries(), nil
}

func (b *businessAPIImpl) UpdateEntry(ctx context.Context, id string, update domain.EntryUpdate) (*domain.TimeEntry, error) {
	if update.IsEmpty() {
		return nil, errors.NewInvalidArgumentError("update", id, "nothing to change")
	}
	entry, err := b.weekly.UpdateEntry(ctx, id, update)
	if err != nil && !services.IsPersistenceError(err) {
		return nil, err
	}
	return &entry, err
}

func (b *businessAPIImpl) DeleteEntry(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return errors.NewInvalidArgumentError("id", id, "is required")
	}
	return b.weekly.DeleteEntry(ctx, id)
}
