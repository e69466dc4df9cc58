package sqlite

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScanner implements the Scanner interface for testing
type TestScanner struct {
	data []interface{}
	err  error
}

func (ts *TestScanner) Scan(dest ...interface{}) error {
	if ts.err != nil {
		return ts.err
	}

	if len(dest) != len(ts.data) {
		return errors.New("mismatch in number of destinations")
	}

	for i, d := range dest {
		switch v := d.(type) {
		case *int:
			*v = ts.data[i].(int)
		case *int64:
			*v = ts.data[i].(int64)
		case *string:
			*v = ts.data[i].(string)
		case *sql.NullString:
			*v = ts.data[i].(sql.NullString)
		case *sql.NullInt64:
			*v = ts.data[i].(sql.NullInt64)
		}
	}

	return nil
}

// TestRows implements the Rows interface over a list of scanners
type TestRows struct {
	rows []*TestScanner
	pos  int
	err  error
}

func (tr *TestRows) Next() bool {
	if tr.pos >= len(tr.rows) {
		return false
	}
	tr.pos++
	return true
}

func (tr *TestRows) Scan(dest ...interface{}) error {
	return tr.rows[tr.pos-1].Scan(dest...)
}

func (tr *TestRows) Err() error {
	return tr.err
}

func entryData(id string, position int, active int64, end sql.NullString, adjusted sql.NullInt64) []interface{} {
	return []interface{}{
		id,
		position,
		active,
		"work",
		"Projektarbeit",
		"890023",
		"H03108",
		"comment",
		"external",
		"2024-01-15T10:00:00.000000001Z",
		end,
		adjusted,
	}
}

func TestScanEntry(t *testing.T) {
	tests := []struct {
		name        string
		scanner     *TestScanner
		expectError bool
		check       func(t *testing.T, e *Entry)
	}{
		{
			name: "Completed entry",
			scanner: &TestScanner{data: entryData("a", 0, 0,
				sql.NullString{String: "2024-01-15T11:00:00Z", Valid: true},
				sql.NullInt64{Int64: 3_600_000, Valid: true})},
			check: func(t *testing.T, e *Entry) {
				assert.Equal(t, "a", e.ID)
				assert.False(t, e.Active)
				assert.Equal(t, 1, e.StartTime.Nanosecond())
				require.NotNil(t, e.EndTime)
				assert.True(t, time.Date(2024, 1, 15, 11, 0, 0, 0, time.UTC).Equal(*e.EndTime))
				require.NotNil(t, e.AdjustedDurationMs)
				assert.Equal(t, int64(3_600_000), *e.AdjustedDurationMs)
			},
		},
		{
			name:    "Active entry without end time",
			scanner: &TestScanner{data: entryData("b", 3, 1, sql.NullString{}, sql.NullInt64{})},
			check: func(t *testing.T, e *Entry) {
				assert.True(t, e.Active)
				assert.Equal(t, 3, e.Position)
				assert.Nil(t, e.EndTime)
				assert.Nil(t, e.AdjustedDurationMs)
			},
		},
		{
			name: "Malformed end time",
			scanner: &TestScanner{data: entryData("c", 0, 0,
				sql.NullString{String: "not a time", Valid: true}, sql.NullInt64{})},
			expectError: true,
		},
		{
			name:        "Scanner error",
			scanner:     &TestScanner{err: sql.ErrNoRows},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ScanEntry(tt.scanner)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			tt.check(t, result)
		})
	}
}

func TestScanPause(t *testing.T) {
	t.Run("Open pause without comment", func(t *testing.T) {
		scanner := &TestScanner{data: []interface{}{"a", 0, "2024-01-15T10:30:00Z", sql.NullString{}, sql.NullString{}}}

		pause, err := ScanPause(scanner)
		require.NoError(t, err)
		assert.Equal(t, "a", pause.EntryID)
		assert.Nil(t, pause.EndTime)
		assert.Nil(t, pause.Comment)
	})

	t.Run("Closed pause with empty comment", func(t *testing.T) {
		scanner := &TestScanner{data: []interface{}{
			"a", 1, "2024-01-15T10:30:00Z",
			sql.NullString{String: "2024-01-15T10:45:00Z", Valid: true},
			sql.NullString{String: "", Valid: true},
		}}

		pause, err := ScanPause(scanner)
		require.NoError(t, err)
		require.NotNil(t, pause.EndTime)
		require.NotNil(t, pause.Comment)
		assert.Equal(t, "", *pause.Comment)
		assert.Equal(t, 15*time.Minute, pause.EndTime.Sub(pause.StartTime))
	})
}

func TestScanEntries(t *testing.T) {
	rows := &TestRows{rows: []*TestScanner{
		{data: entryData("a", 0, 0, sql.NullString{String: "2024-01-15T11:00:00Z", Valid: true}, sql.NullInt64{Int64: 1, Valid: true})},
		{data: entryData("b", 1, 1, sql.NullString{}, sql.NullInt64{})},
	}}

	entries, err := ScanEntries(rows)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].ID)
	assert.Equal(t, "b", entries[1].ID)
}

func TestScanEntries_RowsError(t *testing.T) {
	rows := &TestRows{err: errors.New("cursor closed")}

	entries, err := ScanEntries(rows)
	assert.Error(t, err)
	assert.Nil(t, entries)
}

func TestScanProjectsAndActivities(t *testing.T) {
	projects, err := ScanProjects(&TestRows{rows: []*TestScanner{
		{data: []interface{}{"890023", "Arbeitszeit im Unternehmen", "work", 0}},
	}})
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, Project{ProjectID: "890023", Name: "Arbeitszeit im Unternehmen", EntryType: "work"}, *projects[0])

	activities, err := ScanActivities(&TestRows{rows: []*TestScanner{
		{data: []interface{}{"890023", 0, "Projektarbeit", "H03108", "Projectarbeit"}},
		{err: errors.New("bad row")},
	}})
	assert.Error(t, err)
	assert.Nil(t, activities)
}
