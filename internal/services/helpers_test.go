package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"timesheet/internal/domain"
	"timesheet/internal/repository/memory"
)

// 2024-03-04 is a Monday.
var monday = time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(start time.Time) *fakeClock {
	return &fakeClock{now: start}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("entry-%d", n)
	}
}

func setupServices(t *testing.T, repo *memory.Store) (*ServiceContainer, *fakeClock) {
	t.Helper()
	clock := newFakeClock(monday)
	container, err := NewServiceContainer(context.Background(), repo,
		WithClock(clock.Now),
		WithIDGenerator(sequentialIDs()),
		WithLocation(time.UTC),
	)
	require.NoError(t, err)
	return container, clock
}

func workRequest() domain.StartRequest {
	return domain.StartRequest{
		Type:            domain.EntryTypeWork,
		Activity:        "Projektarbeit",
		ProjectID:       "890023",
		Category:        "H03108 - Internal - Career development / mentoring",
		ExternalComment: "Projectarbeit",
	}
}

func ms(n int64) time.Duration {
	return time.Duration(n) * time.Millisecond
}

func durationPtr(d time.Duration) *time.Duration {
	return &d
}

func stringPtr(s string) *string {
	return &s
}

// completedEntry builds a finished entry starting at start with an adjusted duration.
func completedEntry(id string, start time.Time, d *time.Duration) domain.TimeEntry {
	end := start.Add(time.Hour)
	return domain.TimeEntry{
		ID:               id,
		StartTime:        start,
		EndTime:          &end,
		Type:             domain.EntryTypeWork,
		Activity:         "Projektarbeit",
		ProjectID:        "890023",
		Category:         "H03108",
		Pauses:           []domain.Pause{},
		AdjustedDuration: d,
	}
}
