package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"timesheet/internal/domain"
	apperrors "timesheet/internal/errors"
	"timesheet/internal/logging"
	"timesheet/internal/repository"
)

// Ledger is the session state shared by the lifecycle and the weekly
// aggregator. Every successful mutation is written through to the repository.
type Ledger struct {
	mu      sync.Mutex
	state   domain.State
	repo    repository.Repository
	logger  *slog.Logger
	timeout time.Duration
}

// NewLedger loads the stored state from repo.
func NewLedger(ctx context.Context, repo repository.Repository, logger *slog.Logger, timeout time.Duration) (*Ledger, error) {
	if logger == nil {
		logger = logging.Discard()
	}

	l := &Ledger{repo: repo, logger: logger, timeout: timeout}

	loadCtx, cancel := l.withTimeout(ctx)
	defer cancel()

	state, err := repo.Load(loadCtx)
	if err != nil {
		return nil, l.storageError("load state", err)
	}
	if state.Entries == nil {
		state.Entries = []domain.TimeEntry{}
	}
	l.state = state

	logging.Debugf("ledger loaded: %d entries, active=%t\n", len(state.Entries), state.Current != nil)
	return l, nil
}

// Snapshot returns a deep copy of the current state.
func (l *Ledger) Snapshot() domain.State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state.Clone()
}

// Current returns a copy of the active entry.
func (l *Ledger) Current() (domain.TimeEntry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state.Current == nil {
		return domain.TimeEntry{}, false
	}
	return l.state.Current.Clone(), true
}

// Entries returns copies of the completed entries in insertion order.
func (l *Ledger) Entries() []domain.TimeEntry {
	return l.Snapshot().Entries
}

// mutate applies fn to a copy of the state. If fn fails nothing changes. If
// fn succeeds the copy becomes the state and is saved; a failed save is
// logged and reported but the in-memory change is kept.
func (l *Ledger) mutate(ctx context.Context, operation string, fn func(state *domain.State) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	next := l.state.Clone()
	if err := fn(&next); err != nil {
		return err
	}
	l.state = next

	saveCtx, cancel := l.withTimeout(ctx)
	defer cancel()

	if err := l.repo.Save(saveCtx, next.Clone()); err != nil {
		err = l.storageError(operation, err)
		l.logger.Warn("persisting state failed, keeping in-memory change",
			"operation", operation, "error", err)
		return err
	}
	return nil
}

func (l *Ledger) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if l.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, l.timeout)
}

func (l *Ledger) storageError(operation string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.NewTimeoutError(operation, l.timeout.String())
	}
	return wrapStorageError(operation, err)
}

func wrapStorageError(operation string, err error) error {
	if apperrors.IsErrorType(err, apperrors.ErrorTypeStorageUnavailable) {
		return err
	}
	return apperrors.NewStorageUnavailableError(operation, err)
}

// IsPersistenceError reports whether err only means that a change could not
// be saved. The change itself was applied.
func IsPersistenceError(err error) bool {
	return apperrors.IsErrorType(err, apperrors.ErrorTypeStorageUnavailable) ||
		apperrors.IsErrorType(err, apperrors.ErrorTypeTimeout)
}
