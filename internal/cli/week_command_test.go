package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekCommand_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("current week with totals", func(t *testing.T) {
		ta := setupTestApp(t)
		ta.recordEntry(t, "Projektarbeit", 2*time.Hour)
		ta.clock.Advance(24 * time.Hour)
		ta.recordEntry(t, "Interne Meetings", 59*time.Minute+59*time.Second)
		ta.clock.Advance(7 * 24 * time.Hour)
		ta.recordEntry(t, "Urlaub", 8*time.Hour)
		ta.clock.now = testStart

		require.NoError(t, NewWeekCommand(ta.app).Execute(ctx, nil))

		output := ta.out.String()
		assert.Contains(t, output, "Week 2024-03-04 to 2024-03-10")
		assert.Contains(t, output, "Projektarbeit")
		assert.Contains(t, output, "Interne Meetings")
		assert.NotContains(t, output, "Urlaub")
		assert.Contains(t, output, "00000001")
		assert.Contains(t, output, "2h 0m")
		assert.Contains(t, output, "0h 59m")
		assert.Contains(t, output, "2h 59m")
		assert.Contains(t, output, "Wed")
	})

	t.Run("selected date and german labels", func(t *testing.T) {
		ta := setupTestApp(t)
		ta.app.config.Display.Locale = "de"
		ta.clock.Advance(7 * 24 * time.Hour)
		ta.recordEntry(t, "Urlaub", 8*time.Hour)

		cmd := NewWeekCommand(ta.app)
		cmd.Date = "2024-03-14"
		require.NoError(t, cmd.Execute(ctx, nil))

		output := ta.out.String()
		assert.Contains(t, output, "Week 2024-03-11 to 2024-03-17")
		assert.Contains(t, output, "Urlaub")
		assert.Contains(t, output, "Mi")
		assert.Contains(t, output, "8h 0m")
	})

	t.Run("all entries", func(t *testing.T) {
		ta := setupTestApp(t)
		ta.recordEntry(t, "Projektarbeit", time.Hour)
		ta.clock.Advance(30 * 24 * time.Hour)
		ta.recordEntry(t, "Urlaub", time.Hour)

		cmd := NewWeekCommand(ta.app)
		cmd.All = true
		require.NoError(t, cmd.Execute(ctx, nil))

		output := ta.out.String()
		assert.Contains(t, output, "All entries")
		assert.Contains(t, output, "Projektarbeit")
		assert.Contains(t, output, "Urlaub")
		assert.Contains(t, output, "2h 0m")
	})

	t.Run("empty week", func(t *testing.T) {
		ta := setupTestApp(t)

		require.NoError(t, NewWeekCommand(ta.app).Execute(ctx, nil))

		assert.Contains(t, ta.out.String(), "No entries recorded")
		assert.Contains(t, ta.out.String(), "0h 0m")
	})

	t.Run("malformed date", func(t *testing.T) {
		ta := setupTestApp(t)
		cmd := NewWeekCommand(ta.app)
		cmd.Date = "14.03.2024"

		err := cmd.Execute(ctx, nil)

		assert.Contains(t, err.Error(), "expected format 2006-01-02")
	})

	t.Run("date is parsed in configured zone", func(t *testing.T) {
		mock := &mockBusinessAPI{}
		app, _ := newMockApp(mock)
		app.config.Time.Timezone = "UTC"
		cmd := NewWeekCommand(app)
		cmd.Date = "2024-03-14"

		require.NoError(t, cmd.Execute(ctx, nil))

		assert.Equal(t, time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC), mock.weekAnchor)
	})
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "1a2b3c4d", shortID("1a2b3c4d-0000-4000-8000-000000000000"))
	assert.Equal(t, "abc", shortID("abc"))
}
