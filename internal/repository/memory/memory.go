// Package memory provides an in-process Repository used by tests and by the
// "memory" storage backend.
package memory

import (
	"context"
	"sync"

	"timesheet/internal/domain"
	"timesheet/internal/errors"
)

// Store keeps deep copies of everything it is given. Setting SaveErr or
// LoadErr makes the matching operations fail with that error.
type Store struct {
	mu      sync.Mutex
	state   domain.State
	catalog []domain.ProjectConfig
	saves   int
	closed  bool
	SaveErr error
	LoadErr error
}

// New returns an empty store.
func New() *Store {
	return &Store{state: domain.State{Entries: []domain.TimeEntry{}}}
}

// NewWithState returns a store preloaded with state.
func NewWithState(state domain.State) *Store {
	return &Store{state: state.Clone()}
}

func (s *Store) Load(ctx context.Context) (domain.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LoadErr != nil {
		return domain.State{}, errors.NewStorageUnavailableError("load state", s.LoadErr)
	}
	return s.state.Clone(), nil
}

func (s *Store) Save(ctx context.Context, state domain.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return errors.NewStorageUnavailableError("save state", s.SaveErr)
	}
	s.state = state.Clone()
	s.saves++
	return nil
}

func (s *Store) LoadCatalog(ctx context.Context) ([]domain.ProjectConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LoadErr != nil {
		return nil, errors.NewStorageUnavailableError("load catalog", s.LoadErr)
	}
	return domain.CloneProjects(s.catalog), nil
}

func (s *Store) SaveCatalog(ctx context.Context, projects []domain.ProjectConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return errors.NewStorageUnavailableError("save catalog", s.SaveErr)
	}
	s.catalog = domain.CloneProjects(projects)
	s.saves++
	return nil
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Saves returns how many successful writes the store has seen.
func (s *Store) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

// Closed reports whether Close was called.
func (s *Store) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
