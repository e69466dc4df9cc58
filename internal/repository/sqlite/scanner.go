package sqlite

import (
	"database/sql"
	"fmt"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// scanAll applies scan to every row.
func scanAll[T any](rows Rows, scan func(Scanner) (*T, error)) ([]*T, error) {
	var results []*T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// ScanEntry scans a single entry from a database row
func ScanEntry(scanner Scanner) (*Entry, error) {
	entry := &Entry{}
	var (
		startTime string
		endTime   sql.NullString
		active    int64
		adjusted  sql.NullInt64
	)

	err := scanner.Scan(
		&entry.ID,
		&entry.Position,
		&active,
		&entry.EntryType,
		&entry.Activity,
		&entry.ProjectID,
		&entry.Category,
		&entry.Comment,
		&entry.ExternalComment,
		&startTime,
		&endTime,
		&adjusted,
	)
	if err != nil {
		return nil, err
	}

	entry.Active = active != 0
	if entry.StartTime, err = ParseTimeFromDB(startTime); err != nil {
		return nil, fmt.Errorf("entry %s: start_time: %w", entry.ID, err)
	}
	if endTime.Valid {
		end, err := ParseTimeFromDB(endTime.String)
		if err != nil {
			return nil, fmt.Errorf("entry %s: end_time: %w", entry.ID, err)
		}
		entry.EndTime = &end
	}
	if adjusted.Valid {
		ms := adjusted.Int64
		entry.AdjustedDurationMs = &ms
	}

	return entry, nil
}

// ScanEntries scans multiple entries from database rows
func ScanEntries(rows Rows) ([]*Entry, error) {
	return scanAll(rows, ScanEntry)
}

// ScanPause scans a single pause from a database row
func ScanPause(scanner Scanner) (*Pause, error) {
	pause := &Pause{}
	var (
		startTime string
		endTime   sql.NullString
		comment   sql.NullString
	)

	if err := scanner.Scan(&pause.EntryID, &pause.Seq, &startTime, &endTime, &comment); err != nil {
		return nil, err
	}

	var err error
	if pause.StartTime, err = ParseTimeFromDB(startTime); err != nil {
		return nil, fmt.Errorf("pause %s/%d: start_time: %w", pause.EntryID, pause.Seq, err)
	}
	if endTime.Valid {
		end, err := ParseTimeFromDB(endTime.String)
		if err != nil {
			return nil, fmt.Errorf("pause %s/%d: end_time: %w", pause.EntryID, pause.Seq, err)
		}
		pause.EndTime = &end
	}
	if comment.Valid {
		c := comment.String
		pause.Comment = &c
	}

	return pause, nil
}

// ScanPauses scans multiple pauses from database rows
func ScanPauses(rows Rows) ([]*Pause, error) {
	return scanAll(rows, ScanPause)
}

// ScanProject scans a single project from a database row
func ScanProject(scanner Scanner) (*Project, error) {
	project := &Project{}
	err := scanner.Scan(&project.ProjectID, &project.Name, &project.EntryType, &project.Position)
	if err != nil {
		return nil, err
	}
	return project, nil
}

// ScanProjects scans multiple projects from database rows
func ScanProjects(rows Rows) ([]*Project, error) {
	return scanAll(rows, ScanProject)
}

// ScanActivity scans a single activity from a database row
func ScanActivity(scanner Scanner) (*Activity, error) {
	activity := &Activity{}
	err := scanner.Scan(
		&activity.ProjectID,
		&activity.Position,
		&activity.Activity,
		&activity.Category,
		&activity.ExternalComment,
	)
	if err != nil {
		return nil, err
	}
	return activity, nil
}

// ScanActivities scans multiple activities from database rows
func ScanActivities(rows Rows) ([]*Activity, error) {
	return scanAll(rows, ScanActivity)
}
