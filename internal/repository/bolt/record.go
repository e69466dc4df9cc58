package bolt

import (
	"time"

	"timesheet/internal/domain"
)

type pauseRecord struct {
	Start   time.Time  `json:"start"`
	End     *time.Time `json:"end,omitempty"`
	Comment *string    `json:"comment,omitempty"`
}

type entryRecord struct {
	ID                 string        `json:"id"`
	StartTime          time.Time     `json:"start_time"`
	EndTime            *time.Time    `json:"end_time,omitempty"`
	Type               string        `json:"type"`
	Activity           string        `json:"activity"`
	ProjectID          string        `json:"project_id"`
	Category           string        `json:"category"`
	Comment            string        `json:"comment"`
	ExternalComment    string        `json:"external_comment"`
	Pauses             []pauseRecord `json:"pauses"`
	AdjustedDurationMs *int64        `json:"adjusted_duration_ms,omitempty"`
}

type activityRecord struct {
	Activity        string `json:"activity"`
	ProjectID       string `json:"project_id"`
	Category        string `json:"category"`
	ExternalComment string `json:"external_comment"`
}

type projectRecord struct {
	ProjectID  string           `json:"project_id"`
	Name       string           `json:"name"`
	Type       string           `json:"type"`
	Activities []activityRecord `json:"activities"`
}

func toEntryRecord(e domain.TimeEntry) entryRecord {
	rec := entryRecord{
		ID:              e.ID,
		StartTime:       e.StartTime,
		EndTime:         e.EndTime,
		Type:            string(e.Type),
		Activity:        e.Activity,
		ProjectID:       e.ProjectID,
		Category:        e.Category,
		Comment:         e.Comment,
		ExternalComment: e.ExternalComment,
		Pauses:          make([]pauseRecord, len(e.Pauses)),
	}
	for i, p := range e.Pauses {
		rec.Pauses[i] = pauseRecord{Start: p.Start, End: p.End, Comment: p.Comment}
	}
	if e.AdjustedDuration != nil {
		ms := e.AdjustedDuration.Milliseconds()
		rec.AdjustedDurationMs = &ms
	}
	return rec
}

func (r entryRecord) toDomain() domain.TimeEntry {
	e := domain.TimeEntry{
		ID:              r.ID,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		Type:            domain.EntryType(r.Type),
		Activity:        r.Activity,
		ProjectID:       r.ProjectID,
		Category:        r.Category,
		Comment:         r.Comment,
		ExternalComment: r.ExternalComment,
		Pauses:          make([]domain.Pause, len(r.Pauses)),
	}
	for i, p := range r.Pauses {
		e.Pauses[i] = domain.Pause{Start: p.Start, End: p.End, Comment: p.Comment}
	}
	if r.AdjustedDurationMs != nil {
		d := time.Duration(*r.AdjustedDurationMs) * time.Millisecond
		e.AdjustedDuration = &d
	}
	return e
}

func toProjectRecords(projects []domain.ProjectConfig) []projectRecord {
	out := make([]projectRecord, len(projects))
	for i, p := range projects {
		out[i] = projectRecord{
			ProjectID:  p.ProjectID,
			Name:       p.Name,
			Type:       string(p.Type),
			Activities: make([]activityRecord, len(p.Activities)),
		}
		for j, a := range p.Activities {
			out[i].Activities[j] = activityRecord(a)
		}
	}
	return out
}

func fromProjectRecords(records []projectRecord) []domain.ProjectConfig {
	out := make([]domain.ProjectConfig, len(records))
	for i, r := range records {
		out[i] = domain.ProjectConfig{
			ProjectID:  r.ProjectID,
			Name:       r.Name,
			Type:       domain.EntryType(r.Type),
			Activities: make([]domain.ActivityConfig, len(r.Activities)),
		}
		for j, a := range r.Activities {
			out[i].Activities[j] = domain.ActivityConfig(a)
		}
	}
	return out
}
