package domain

import (
	"time"

	"timesheet/internal/repository/sqlite"
)

// TimeEntryMapper handles conversion between domain entries and database rows.
type TimeEntryMapper struct{}

// NewTimeEntryMapper creates a new TimeEntryMapper instance.
func NewTimeEntryMapper() *TimeEntryMapper {
	return &TimeEntryMapper{}
}

// ToDatabase converts a domain TimeEntry to its entry row and pause rows.
func (m *TimeEntryMapper) ToDatabase(entry TimeEntry, position int) (sqlite.Entry, []sqlite.Pause) {
	row := sqlite.Entry{
		ID:              entry.ID,
		Position:        position,
		Active:          entry.IsActive(),
		EntryType:       string(entry.Type),
		Activity:        entry.Activity,
		ProjectID:       entry.ProjectID,
		Category:        entry.Category,
		Comment:         entry.Comment,
		ExternalComment: entry.ExternalComment,
		StartTime:       entry.StartTime,
		EndTime:         copyTime(entry.EndTime),
	}
	if entry.AdjustedDuration != nil {
		ms := entry.AdjustedDuration.Milliseconds()
		row.AdjustedDurationMs = &ms
	}

	pauses := make([]sqlite.Pause, len(entry.Pauses))
	for i, p := range entry.Pauses {
		pauses[i] = sqlite.Pause{
			EntryID:   entry.ID,
			Seq:       i,
			StartTime: p.Start,
			EndTime:   copyTime(p.End),
			Comment:   copyString(p.Comment),
		}
	}

	return row, pauses
}

// FromDatabase converts an entry row and its pauses, ordered by Seq, to a
// domain TimeEntry.
func (m *TimeEntryMapper) FromDatabase(row sqlite.Entry, pauses []sqlite.Pause) TimeEntry {
	entry := TimeEntry{
		ID:              row.ID,
		StartTime:       row.StartTime,
		EndTime:         copyTime(row.EndTime),
		Type:            EntryType(row.EntryType),
		Activity:        row.Activity,
		ProjectID:       row.ProjectID,
		Category:        row.Category,
		Comment:         row.Comment,
		ExternalComment: row.ExternalComment,
		Pauses:          []Pause{},
	}
	if row.AdjustedDurationMs != nil {
		d := time.Duration(*row.AdjustedDurationMs) * time.Millisecond
		entry.AdjustedDuration = &d
	}
	for _, p := range pauses {
		entry.Pauses = append(entry.Pauses, Pause{
			Start:   p.StartTime,
			End:     copyTime(p.EndTime),
			Comment: copyString(p.Comment),
		})
	}
	return entry
}

// StateToDatabase flattens a State into rows. Completed entries keep their
// order and the active entry is written last.
func (m *TimeEntryMapper) StateToDatabase(state State) ([]sqlite.Entry, []sqlite.Pause) {
	var rows []sqlite.Entry
	var pauses []sqlite.Pause

	for i, e := range state.Entries {
		row, ps := m.ToDatabase(e, i)
		row.Active = false
		rows = append(rows, row)
		pauses = append(pauses, ps...)
	}
	if state.Current != nil {
		row, ps := m.ToDatabase(*state.Current, len(state.Entries))
		row.Active = true
		rows = append(rows, row)
		pauses = append(pauses, ps...)
	}

	return rows, pauses
}

// StateFromDatabase rebuilds a State from rows loaded by the repository.
func (m *TimeEntryMapper) StateFromDatabase(rows []*sqlite.Entry, pauses []*sqlite.Pause) State {
	byEntry := make(map[string][]sqlite.Pause)
	for _, p := range pauses {
		byEntry[p.EntryID] = append(byEntry[p.EntryID], *p)
	}

	state := State{Entries: []TimeEntry{}}
	for _, row := range rows {
		entry := m.FromDatabase(*row, byEntry[row.ID])
		if row.Active {
			state.Current = &entry
			continue
		}
		state.Entries = append(state.Entries, entry)
	}
	return state
}

// CatalogMapper handles conversion between the catalog and database rows.
type CatalogMapper struct{}

// NewCatalogMapper creates a new CatalogMapper instance.
func NewCatalogMapper() *CatalogMapper {
	return &CatalogMapper{}
}

// ToDatabase flattens projects and their activities into rows.
func (m *CatalogMapper) ToDatabase(projects []ProjectConfig) ([]sqlite.Project, []sqlite.Activity) {
	dbProjects := make([]sqlite.Project, 0, len(projects))
	var dbActivities []sqlite.Activity

	for i, p := range projects {
		dbProjects = append(dbProjects, sqlite.Project{
			ProjectID: p.ProjectID,
			Name:      p.Name,
			EntryType: string(p.Type),
			Position:  i,
		})
		for j, a := range p.Activities {
			dbActivities = append(dbActivities, sqlite.Activity{
				ProjectID:       p.ProjectID,
				Position:        j,
				Activity:        a.Activity,
				Category:        a.Category,
				ExternalComment: a.ExternalComment,
			})
		}
	}

	return dbProjects, dbActivities
}

// FromDatabase rebuilds the catalog. Activities are attached to their project
// in Position order.
func (m *CatalogMapper) FromDatabase(projects []*sqlite.Project, activities []*sqlite.Activity) []ProjectConfig {
	byProject := make(map[string][]ActivityConfig)
	for _, a := range activities {
		byProject[a.ProjectID] = append(byProject[a.ProjectID], ActivityConfig{
			Activity:        a.Activity,
			ProjectID:       a.ProjectID,
			Category:        a.Category,
			ExternalComment: a.ExternalComment,
		})
	}

	result := make([]ProjectConfig, 0, len(projects))
	for _, p := range projects {
		activities := byProject[p.ProjectID]
		if activities == nil {
			activities = []ActivityConfig{}
		}
		result = append(result, ProjectConfig{
			ProjectID:  p.ProjectID,
			Name:       p.Name,
			Type:       EntryType(p.EntryType),
			Activities: activities,
		})
	}
	return result
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	TimeEntry *TimeEntryMapper
	Catalog   *CatalogMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		TimeEntry: NewTimeEntryMapper(),
		Catalog:   NewCatalogMapper(),
	}
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
