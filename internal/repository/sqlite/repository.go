package sqlite

import (
	"context"
	"database/sql"

	"timesheet/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the row-level operations of the sqlite backend. Writes
// replace a whole table group inside one transaction.
type Repository interface {
	// Entries and their pauses
	LoadEntries(ctx context.Context) ([]*Entry, error)
	LoadPauses(ctx context.Context) ([]*Pause, error)
	ReplaceEntries(ctx context.Context, entries []Entry, pauses []Pause) error

	// Catalog
	LoadProjects(ctx context.Context) ([]*Project, error)
	LoadActivities(ctx context.Context) ([]*Activity, error)
	ReplaceCatalog(ctx context.Context, projects []Project, activities []Activity) error

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New opens the database at dbPath and applies pending migrations.
func New(ctx context.Context, dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, HandleStorageError("open database", err)
	}
	// A single connection keeps ":memory:" databases alive across calls and
	// serialises writers.
	db.SetMaxOpenConns(1)

	if err := migrations.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, HandleStorageError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// NewWithDB wraps an already migrated connection.
func NewWithDB(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

const selectEntries = `
	SELECT id, position, active, entry_type, activity, project_id, category,
	       comment, external_comment, start_time, end_time, adjusted_duration_ms
	FROM entries
	ORDER BY active ASC, position ASC`

// LoadEntries returns completed entries in insertion order followed by the
// active entry, if any.
func (r *SQLiteRepository) LoadEntries(ctx context.Context) ([]*Entry, error) {
	return QueryMultiple(ctx, r.db, selectEntries, ScanEntries, "entries")
}

// LoadPauses returns all pauses ordered by entry and sequence.
func (r *SQLiteRepository) LoadPauses(ctx context.Context) ([]*Pause, error) {
	query := `
	SELECT entry_id, seq, start_time, end_time, comment
	FROM pauses
	ORDER BY entry_id ASC, seq ASC`

	return QueryMultiple(ctx, r.db, query, ScanPauses, "pauses")
}

// ReplaceEntries overwrites all entries and pauses.
func (r *SQLiteRepository) ReplaceEntries(ctx context.Context, entries []Entry, pauses []Pause) error {
	return WithTx(ctx, r.db, func(ctx context.Context, tx DBTX) error {
		if err := Execute(ctx, tx, "clear pauses", `DELETE FROM pauses`); err != nil {
			return err
		}
		if err := Execute(ctx, tx, "clear entries", `DELETE FROM entries`); err != nil {
			return err
		}

		insertEntry := `
		INSERT INTO entries (id, position, active, entry_type, activity, project_id, category,
		                     comment, external_comment, start_time, end_time, adjusted_duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

		for _, e := range entries {
			var adjusted interface{}
			if e.AdjustedDurationMs != nil {
				adjusted = *e.AdjustedDurationMs
			}
			err := Execute(ctx, tx, "insert entry", insertEntry,
				e.ID, e.Position, boolToInt(e.Active), e.EntryType, e.Activity, e.ProjectID, e.Category,
				e.Comment, e.ExternalComment, FormatTimeForDB(e.StartTime), FormatTimePtrForDB(e.EndTime), adjusted)
			if err != nil {
				return err
			}
		}

		insertPause := `
		INSERT INTO pauses (entry_id, seq, start_time, end_time, comment)
		VALUES (?, ?, ?, ?, ?)`

		for _, p := range pauses {
			var comment interface{}
			if p.Comment != nil {
				comment = *p.Comment
			}
			err := Execute(ctx, tx, "insert pause", insertPause,
				p.EntryID, p.Seq, FormatTimeForDB(p.StartTime), FormatTimePtrForDB(p.EndTime), comment)
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// LoadProjects returns the catalog projects in display order.
func (r *SQLiteRepository) LoadProjects(ctx context.Context) ([]*Project, error) {
	query := `SELECT project_id, name, entry_type, position FROM projects ORDER BY position ASC`
	return QueryMultiple(ctx, r.db, query, ScanProjects, "projects")
}

// LoadActivities returns all catalog activities ordered within their project.
func (r *SQLiteRepository) LoadActivities(ctx context.Context) ([]*Activity, error) {
	query := `
	SELECT project_id, position, activity, category, external_comment
	FROM activities
	ORDER BY project_id ASC, position ASC`

	return QueryMultiple(ctx, r.db, query, ScanActivities, "activities")
}

// ReplaceCatalog overwrites all projects and activities.
func (r *SQLiteRepository) ReplaceCatalog(ctx context.Context, projects []Project, activities []Activity) error {
	return WithTx(ctx, r.db, func(ctx context.Context, tx DBTX) error {
		if err := Execute(ctx, tx, "clear activities", `DELETE FROM activities`); err != nil {
			return err
		}
		if err := Execute(ctx, tx, "clear projects", `DELETE FROM projects`); err != nil {
			return err
		}

		for _, p := range projects {
			err := Execute(ctx, tx, "insert project",
				`INSERT INTO projects (project_id, name, entry_type, position) VALUES (?, ?, ?, ?)`,
				p.ProjectID, p.Name, p.EntryType, p.Position)
			if err != nil {
				return err
			}
		}

		for _, a := range activities {
			err := Execute(ctx, tx, "insert activity",
				`INSERT INTO activities (project_id, position, activity, category, external_comment) VALUES (?, ?, ?, ?, ?)`,
				a.ProjectID, a.Position, a.Activity, a.Category, a.ExternalComment)
			if err != nil {
				return err
			}
		}

		return nil
	})
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
