package sqlite

import "time"

// Entry is a row of the entries table. Position keeps insertion order and
// Active marks the single in-progress entry.
type Entry struct {
	ID                 string
	Position           int
	Active             bool
	EntryType          string
	Activity           string
	ProjectID          string
	Category           string
	Comment            string
	ExternalComment    string
	StartTime          time.Time
	EndTime            *time.Time // Using pointer to allow NULL values
	AdjustedDurationMs *int64
}

// Pause is a row of the pauses table, ordered by Seq within an entry.
type Pause struct {
	EntryID   string
	Seq       int
	StartTime time.Time
	EndTime   *time.Time
	Comment   *string
}

// Project is a row of the projects table.
type Project struct {
	ProjectID string
	Name      string
	EntryType string
	Position  int
}

// Activity is a row of the activities table.
type Activity struct {
	ProjectID       string
	Position        int
	Activity        string
	Category        string
	ExternalComment string
}
