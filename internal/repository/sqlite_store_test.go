package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timesheet/internal/domain"
)

func openTestStore(t *testing.T) (*SQLiteStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "timesheet.db")
	store, err := OpenSQLite(context.Background(), path)
	require.NoError(t, err)
	return store, path
}

func TestSQLiteStore_StateRoundTrip(t *testing.T) {
	store, path := openTestStore(t)
	ctx := context.Background()

	start := time.Date(2024, 3, 4, 9, 0, 0, 123456789, time.UTC)
	end := start.Add(time.Hour)
	pauseEnd := start.Add(20 * time.Minute)
	comment := "standup"
	adjusted := 40*time.Minute + 1*time.Millisecond

	state := domain.State{
		Current: &domain.TimeEntry{
			ID:        "current",
			StartTime: start.Add(3 * time.Hour),
			Type:      domain.EntryTypeWork,
			Activity:  "Interne Meetings",
			ProjectID: "890023",
			Category:  "H03104",
			Pauses:    []domain.Pause{{Start: start.Add(200 * time.Minute), Comment: &comment}},
		},
		Entries: []domain.TimeEntry{
			{
				ID:               "second",
				StartTime:        start.Add(time.Hour),
				EndTime:          &end,
				Type:             domain.EntryTypeWork,
				Pauses:           []domain.Pause{},
				AdjustedDuration: &adjusted,
			},
			{
				ID:               "first",
				StartTime:        start,
				EndTime:          &end,
				Type:             domain.EntryTypeAbsence,
				Pauses:           []domain.Pause{{Start: start.Add(10 * time.Minute), End: &pauseEnd}},
				AdjustedDuration: &adjusted,
			},
		},
	}

	require.NoError(t, store.Save(ctx, state))
	require.NoError(t, store.Close())

	reopened, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	loaded, err := reopened.Load(ctx)
	require.NoError(t, err)

	if diff := cmp.Diff(state, loaded); diff != "" {
		t.Errorf("loaded state mismatch (-want +got):\n%s", diff)
	}
}

func TestSQLiteStore_CatalogRoundTrip(t *testing.T) {
	store, _ := openTestStore(t)
	defer store.Close()
	ctx := context.Background()

	empty, err := store.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	require.NoError(t, store.SaveCatalog(ctx, domain.DefaultCatalog()))

	loaded, err := store.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCatalog(), loaded)
}
