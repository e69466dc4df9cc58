package services

import (
	"context"
	"strings"
	"time"

	"timesheet/internal/domain"
	"timesheet/internal/errors"
	"timesheet/internal/logging"
	"timesheet/internal/validation"
)

// lifecycleServiceImpl implements the EntryLifecycle interface
type lifecycleServiceImpl struct {
	ledger    *Ledger
	validator *validation.EntryValidator
	now       func() time.Time
	newID     func() string
}

// NewLifecycleService creates a new EntryLifecycle over ledger
func NewLifecycleService(ledger *Ledger, opts ...Option) EntryLifecycle {
	o := newOptions(opts)
	validator := validation.NewEntryValidator()
	if o.config != nil {
		validator = validation.NewEntryValidatorWithConfig(o.config)
	}
	return &lifecycleServiceImpl{
		ledger:    ledger,
		validator: validator,
		now:       o.now,
		newID:     o.newID,
	}
}

// Start opens a new entry. Only one entry can be active at a time.
func (s *lifecycleServiceImpl) Start(ctx context.Context, req domain.StartRequest) (domain.TimeEntry, error) {
	if _, active := s.ledger.Current(); active {
		return domain.TimeEntry{}, errors.NewInvalidStateError("start", "an entry is already active")
	}
	if err := s.validator.ValidateStartRequest(req); err != nil {
		return domain.TimeEntry{}, validation.AsInvalidArgument(err)
	}

	var started domain.TimeEntry
	err := s.ledger.mutate(ctx, "start entry", func(state *domain.State) error {
		if state.Current != nil {
			return errors.NewInvalidStateError("start", "an entry is already active")
		}

		comment := req.Comment
		if comment == "" {
			comment = req.ExternalComment
		}

		entry := domain.TimeEntry{
			ID:              s.newID(),
			StartTime:       s.now(),
			Type:            req.Type,
			Activity:        strings.TrimSpace(req.Activity),
			ProjectID:       strings.TrimSpace(req.ProjectID),
			Category:        strings.TrimSpace(req.Category),
			Comment:         comment,
			ExternalComment: req.ExternalComment,
			Pauses:          []domain.Pause{},
		}
		state.Current = &entry
		started = entry.Clone()
		return nil
	})

	logging.Debugf("start %s (%s): err=%v\n", started.ID, started.Activity, err)
	return started, err
}

// Pause opens a break on the active entry.
func (s *lifecycleServiceImpl) Pause(ctx context.Context, comment *string) (domain.TimeEntry, error) {
	if comment != nil {
		if err := s.validator.ValidateComment(*comment); err != nil {
			return domain.TimeEntry{}, validation.AsInvalidArgument(err)
		}
	}

	var paused domain.TimeEntry
	err := s.ledger.mutate(ctx, "pause entry", func(state *domain.State) error {
		if state.Current == nil {
			return errors.NewInvalidStateError("pause", "no active entry")
		}
		if state.Current.IsPaused() {
			return errors.NewInvalidStateError("pause", "entry is already paused")
		}

		p := domain.Pause{Start: s.now()}
		if comment != nil {
			c := *comment
			p.Comment = &c
		}
		state.Current.Pauses = append(state.Current.Pauses, p)
		paused = state.Current.Clone()
		return nil
	})
	return paused, err
}

// Resume closes the open break.
func (s *lifecycleServiceImpl) Resume(ctx context.Context) (domain.TimeEntry, error) {
	var resumed domain.TimeEntry
	err := s.ledger.mutate(ctx, "resume entry", func(state *domain.State) error {
		if state.Current == nil {
			return errors.NewInvalidStateError("resume", "no active entry")
		}
		idx, ok := state.Current.OpenPause()
		if !ok {
			return errors.NewInvalidStateError("resume", "entry is not paused")
		}

		end := s.now()
		state.Current.Pauses[idx].End = &end
		resumed = state.Current.Clone()
		return nil
	})
	return resumed, err
}

// UpdateComment replaces the comment of the active entry.
func (s *lifecycleServiceImpl) UpdateComment(ctx context.Context, comment string) (domain.TimeEntry, error) {
	if err := s.validator.ValidateComment(comment); err != nil {
		return domain.TimeEntry{}, validation.AsInvalidArgument(err)
	}

	var updated domain.TimeEntry
	err := s.ledger.mutate(ctx, "update comment", func(state *domain.State) error {
		if state.Current == nil {
			return errors.NewInvalidStateError("update comment", "no active entry")
		}
		state.Current.Comment = comment
		updated = state.Current.Clone()
		return nil
	})
	return updated, err
}

// Stop completes the active entry. An open break is closed first. The
// recorded duration is the override when given, otherwise the worked time.
func (s *lifecycleServiceImpl) Stop(ctx context.Context, override *time.Duration) (domain.TimeEntry, error) {
	if override != nil {
		if err := s.validator.ValidateOverride("duration", *override); err != nil {
			return domain.TimeEntry{}, validation.AsInvalidArgument(err)
		}
	}

	var stopped domain.TimeEntry
	err := s.ledger.mutate(ctx, "stop entry", func(state *domain.State) error {
		if state.Current == nil {
			return errors.NewInvalidStateError("stop", "no active entry")
		}

		entry := state.Current.Clone()
		now := s.now()
		if now.Before(entry.StartTime) {
			now = entry.StartTime
		}

		if idx, ok := entry.OpenPause(); ok {
			pauseEnd := now
			entry.Pauses[idx].End = &pauseEnd
		}
		end := now
		entry.EndTime = &end

		duration := entry.Worked(now).Truncate(time.Millisecond)
		if override != nil {
			duration = override.Truncate(time.Millisecond)
		}
		entry.AdjustedDuration = &duration

		state.Entries = append(state.Entries, entry)
		state.Current = nil
		stopped = entry.Clone()
		return nil
	})

	logging.Debugf("stop %s: duration=%s err=%v\n", stopped.ID, domain.FormatDuration(stopped.Duration()), err)
	return stopped, err
}

// Current returns the active entry, if any.
func (s *lifecycleServiceImpl) Current() (domain.TimeEntry, bool) {
	return s.ledger.Current()
}
