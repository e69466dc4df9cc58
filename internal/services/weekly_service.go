package services

import (
	"context"
	"time"

	"timesheet/internal/domain"
	"timesheet/internal/errors"
	"timesheet/internal/validation"
)

// weeklyServiceImpl implements the WeeklyAggregator interface
type weeklyServiceImpl struct {
	ledger    *Ledger
	validator *validation.EntryValidator
	location  *time.Location
}

// NewWeeklyService creates a new WeeklyAggregator over ledger
func NewWeeklyService(ledger *Ledger, opts ...Option) WeeklyAggregator {
	o := newOptions(opts)
	validator := validation.NewEntryValidator()
	if o.config != nil {
		validator = validation.NewEntryValidatorWithConfig(o.config)
	}
	return &weeklyServiceImpl{
		ledger:    ledger,
		validator: validator,
		location:  o.location,
	}
}

// DailyTotals sums adjusted durations per weekday of each entry's start.
// Entries without an adjusted duration contribute nothing.
func (s *weeklyServiceImpl) DailyTotals(entries []domain.TimeEntry) WeekTotals {
	var totals WeekTotals
	for _, e := range entries {
		if e.AdjustedDuration == nil {
			continue
		}
		totals[domain.WeekdayOf(e.StartTime, s.location)] += *e.AdjustedDuration
	}
	return totals
}

// Rows returns one table row per entry, in the given order
func (s *weeklyServiceImpl) Rows(entries []domain.TimeEntry) []WeekRow {
	rows := make([]WeekRow, 0, len(entries))
	for _, e := range entries {
		start := e.StartTime.In(s.location)
		rows = append(rows, WeekRow{
			EntryID:   e.ID,
			Type:      e.Type,
			Activity:  e.Activity,
			ProjectID: e.ProjectID,
			Category:  e.Category,
			Comment:   e.Comment,
			Weekday:   domain.WeekdayOf(start, nil),
			Date:      time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, s.location),
			Duration:  e.Duration(),
		})
	}
	return rows
}

// EntriesInWeek keeps the entries that start in the Monday-based week
// containing anchor
func (s *weeklyServiceImpl) EntriesInWeek(entries []domain.TimeEntry, anchor time.Time) []domain.TimeEntry {
	from := domain.StartOfWeek(anchor, s.location)
	to := from.AddDate(0, 0, 7)

	result := make([]domain.TimeEntry, 0)
	for _, e := range entries {
		if !e.StartTime.Before(from) && e.StartTime.Before(to) {
			result = append(result, e)
		}
	}
	return result
}

// Entries returns all completed entries
func (s *weeklyServiceImpl) Entries() []domain.TimeEntry {
	return s.ledger.Entries()
}

// UpdateEntry applies a partial edit to a completed entry
func (s *weeklyServiceImpl) UpdateEntry(ctx context.Context, id string, update domain.EntryUpdate) (domain.TimeEntry, error) {
	if err := s.validator.ValidateEntryUpdate(update); err != nil {
		return domain.TimeEntry{}, validation.AsInvalidArgument(err)
	}

	var updated domain.TimeEntry
	err := s.ledger.mutate(ctx, "update entry", func(state *domain.State) error {
		idx, ok := state.IndexOf(id)
		if !ok {
			return errors.NewNotFoundError("time entry", id)
		}

		entry := &state.Entries[idx]
		if update.AdjustedDuration != nil {
			d := update.AdjustedDuration.Truncate(time.Millisecond)
			entry.AdjustedDuration = &d
		}
		if update.Comment != nil {
			entry.Comment = *update.Comment
		}
		updated = entry.Clone()
		return nil
	})
	return updated, err
}

// DeleteEntry removes one completed entry and keeps the order of the rest
func (s *weeklyServiceImpl) DeleteEntry(ctx context.Context, id string) error {
	return s.ledger.mutate(ctx, "delete entry", func(state *domain.State) error {
		idx, ok := state.IndexOf(id)
		if !ok {
			return errors.NewNotFoundError("time entry", id)
		}
		state.Entries = append(state.Entries[:idx], state.Entries[idx+1:]...)
		return nil
	})
}
