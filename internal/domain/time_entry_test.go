package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timeAt(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func ptrTime(t time.Time) *time.Time {
	return &t
}

func TestParseEntryType(t *testing.T) {
	tests := []struct {
		input    string
		expected EntryType
		wantErr  bool
	}{
		{"work", EntryTypeWork, false},
		{" Absence ", EntryTypeAbsence, false},
		{"holiday", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseEntryType(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestTimeEntry_IsActive(t *testing.T) {
	tests := []struct {
		name     string
		entry    TimeEntry
		expected bool
	}{
		{"running entry", TimeEntry{StartTime: timeAt(0)}, true},
		{"stopped entry", TimeEntry{StartTime: timeAt(0), EndTime: ptrTime(timeAt(1000))}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.entry.IsActive())
		})
	}
}

func TestTimeEntry_OpenPause(t *testing.T) {
	entry := TimeEntry{
		StartTime: timeAt(0),
		Pauses: []Pause{
			{Start: timeAt(100), End: ptrTime(timeAt(200))},
			{Start: timeAt(300)},
		},
	}

	idx, ok := entry.OpenPause()
	assert.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.True(t, entry.IsPaused())

	entry.Pauses[1].End = ptrTime(timeAt(400))
	_, ok = entry.OpenPause()
	assert.False(t, ok)
	assert.False(t, entry.IsPaused())
}

func TestTimeEntry_Worked(t *testing.T) {
	entry := TimeEntry{
		StartTime: timeAt(0),
		Pauses: []Pause{
			{Start: timeAt(1_000), End: ptrTime(timeAt(3_000))},
		},
	}

	assert.Equal(t, 10*time.Second, entry.Elapsed(timeAt(10_000)))
	assert.Equal(t, 2*time.Second, entry.PausedDuration(timeAt(10_000)))
	assert.Equal(t, 8*time.Second, entry.Worked(timeAt(10_000)))

	entry.Pauses = append(entry.Pauses, Pause{Start: timeAt(8_000)})
	assert.Equal(t, 6*time.Second, entry.Worked(timeAt(10_000)))

	entry.EndTime = ptrTime(timeAt(9_000))
	entry.Pauses[1].End = ptrTime(timeAt(9_000))
	assert.Equal(t, 6*time.Second, entry.Worked(timeAt(50_000)))
}

func TestTimeEntry_WorkedNeverNegative(t *testing.T) {
	entry := TimeEntry{
		StartTime: timeAt(5_000),
		Pauses:    []Pause{{Start: timeAt(0), End: ptrTime(timeAt(10_000))}},
	}

	assert.Equal(t, time.Duration(0), entry.Worked(timeAt(6_000)))
	assert.Equal(t, time.Duration(0), entry.Elapsed(timeAt(1_000)))
}

func TestPause_Duration(t *testing.T) {
	assert.Equal(t, time.Duration(0), Pause{Start: timeAt(0)}.Duration())
	assert.Equal(t, time.Second, Pause{Start: timeAt(0), End: ptrTime(timeAt(1_000))}.Duration())
	assert.Equal(t, time.Duration(0), Pause{Start: timeAt(1_000), End: ptrTime(timeAt(0))}.Duration())
}

func TestTimeEntry_Duration(t *testing.T) {
	assert.Equal(t, time.Duration(0), TimeEntry{}.Duration())

	d := 999 * time.Millisecond
	assert.Equal(t, d, TimeEntry{AdjustedDuration: &d}.Duration())
}

func TestTimeEntry_Clone(t *testing.T) {
	d := time.Minute
	comment := "coffee"
	original := TimeEntry{
		ID:               "x",
		StartTime:        timeAt(0),
		EndTime:          ptrTime(timeAt(60_000)),
		Pauses:           []Pause{{Start: timeAt(1_000), End: ptrTime(timeAt(2_000)), Comment: &comment}},
		AdjustedDuration: &d,
	}

	clone := original.Clone()
	assert.Equal(t, original, clone)

	*clone.EndTime = timeAt(1)
	*clone.AdjustedDuration = time.Hour
	*clone.Pauses[0].Comment = "tea"
	clone.Pauses[0].Start = timeAt(5)

	assert.Equal(t, timeAt(60_000), *original.EndTime)
	assert.Equal(t, time.Minute, *original.AdjustedDuration)
	assert.Equal(t, "coffee", *original.Pauses[0].Comment)
	assert.Equal(t, timeAt(1_000), original.Pauses[0].Start)
}

func TestState_CloneAndIndexOf(t *testing.T) {
	state := State{
		Current: &TimeEntry{ID: "c", StartTime: timeAt(0)},
		Entries: []TimeEntry{{ID: "a"}, {ID: "b"}},
	}

	clone := state.Clone()
	clone.Current.ID = "changed"
	clone.Entries[0].ID = "changed"
	assert.Equal(t, "c", state.Current.ID)
	assert.Equal(t, "a", state.Entries[0].ID)

	idx, ok := state.IndexOf("b")
	assert.True(t, ok)
	assert.Equal(t, 1, idx)

	_, ok = state.IndexOf("missing")
	assert.False(t, ok)
}

func TestEntryUpdate_IsEmpty(t *testing.T) {
	assert.True(t, EntryUpdate{}.IsEmpty())

	c := ""
	assert.False(t, EntryUpdate{Comment: &c}.IsEmpty())
}
