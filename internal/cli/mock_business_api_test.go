package cli

import (
	"bytes"
	"context"
	"time"

	"timesheet/internal/api"
	"timesheet/internal/domain"
)

// mockBusinessAPI implements the BusinessAPI interface for error paths. Unset
// functions return zero values.
type mockBusinessAPI struct {
	startActivity func(ctx context.Context, req api.StartActivityRequest) (*api.EntrySession, error)
	stopEntry     func(ctx context.Context, override *time.Duration) (*domain.TimeEntry, error)
	getSession    func(ctx context.Context) (*api.EntrySession, error)
	getWeek       func(ctx context.Context, anchor time.Time, all bool) (*api.WeekView, error)
	listEntries   func(ctx context.Context) ([]domain.TimeEntry, error)
	deleteEntry   func(ctx context.Context, id string) error

	weekAnchor time.Time
}

var _ api.BusinessAPI = (*mockBusinessAPI)(nil)

func (m *mockBusinessAPI) StartActivity(ctx context.Context, req api.StartActivityRequest) (*api.EntrySession, error) {
	if m.startActivity != nil {
		return m.startActivity(ctx, req)
	}
	return &api.EntrySession{}, nil
}

func (m *mockBusinessAPI) PauseEntry(ctx context.Context, comment *string) (*api.EntrySession, error) {
	return &api.EntrySession{Paused: true}, nil
}

func (m *mockBusinessAPI) ResumeEntry(ctx context.Context) (*api.EntrySession, error) {
	return &api.EntrySession{Entry: domain.TimeEntry{Pauses: []domain.Pause{{}}}}, nil
}

func (m *mockBusinessAPI) CommentEntry(ctx context.Context, comment string) (*api.EntrySession, error) {
	return &api.EntrySession{Entry: domain.TimeEntry{Comment: comment}}, nil
}

func (m *mockBusinessAPI) StopEntry(ctx context.Context, override *time.Duration) (*domain.TimeEntry, error) {
	if m.stopEntry != nil {
		return m.stopEntry(ctx, override)
	}
	return &domain.TimeEntry{}, nil
}

func (m *mockBusinessAPI) GetCurrentSession(ctx context.Context) (*api.EntrySession, error) {
	if m.getSession != nil {
		return m.getSession(ctx)
	}
	return &api.EntrySession{}, nil
}

func (m *mockBusinessAPI) GetWeek(ctx context.Context, anchor time.Time, all bool) (*api.WeekView, error) {
	m.weekAnchor = anchor
	if m.getWeek != nil {
		return m.getWeek(ctx, anchor, all)
	}
	return &api.WeekView{}, nil
}

func (m *mockBusinessAPI) ListEntries(ctx context.Context) ([]domain.TimeEntry, error) {
	if m.listEntries != nil {
		return m.listEntries(ctx)
	}
	return nil, nil
}

func (m *mockBusinessAPI) UpdateEntry(ctx context.Context, id string, update domain.EntryUpdate) (*domain.TimeEntry, error) {
	return &domain.TimeEntry{ID: id}, nil
}

func (m *mockBusinessAPI) DeleteEntry(ctx context.Context, id string) error {
	if m.deleteEntry != nil {
		return m.deleteEntry(ctx, id)
	}
	return nil
}

func newMockApp(mock *mockBusinessAPI) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	app := NewApp(mock, nil, nil).WithOutput(out)
	return app, out
}
