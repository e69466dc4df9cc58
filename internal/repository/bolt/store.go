// Package bolt stores the timesheet in a single bbolt file as JSON values.
package bolt

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"time"

	bolt "go.etcd.io/bbolt"

	"timesheet/internal/domain"
	apperrors "timesheet/internal/errors"
)

var (
	stateBucket   = []byte("state")
	catalogBucket = []byte("catalog")

	currentKey  = []byte("current")
	entriesKey  = []byte("entries")
	projectsKey = []byte("projects")
)

var errAlreadyOpen = errors.New(
	"is ts already running? the timesheet database is locked by another process",
)

// Store is a bbolt-backed repository.
type Store struct {
	db *bolt.DB
}

// Open creates or opens the database at path and ensures its buckets exist.
func Open(path string) (*Store, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(path, fileMode, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, apperrors.NewStorageUnavailableError("open database", errAlreadyOpen)
		}
		return nil, apperrors.NewStorageUnavailableError("open database", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(stateBucket); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(catalogBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, apperrors.NewStorageUnavailableError("create buckets", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Load(ctx context.Context) (domain.State, error) {
	if err := ctx.Err(); err != nil {
		return domain.State{}, err
	}

	var current *entryRecord
	var entries []entryRecord

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(stateBucket)
		if v := b.Get(currentKey); len(v) > 0 {
			current = &entryRecord{}
			if err := json.Unmarshal(v, current); err != nil {
				return err
			}
		}
		if v := b.Get(entriesKey); len(v) > 0 {
			return json.Unmarshal(v, &entries)
		}
		return nil
	})
	if err != nil {
		return domain.State{}, apperrors.NewStorageUnavailableError("load state", err)
	}

	state := domain.State{Entries: make([]domain.TimeEntry, 0, len(entries))}
	if current != nil {
		e := current.toDomain()
		state.Current = &e
	}
	for _, r := range entries {
		state.Entries = append(state.Entries, r.toDomain())
	}
	return state, nil
}

func (s *Store) Save(ctx context.Context, state domain.State) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	records := make([]entryRecord, len(state.Entries))
	for i, e := range state.Entries {
		records[i] = toEntryRecord(e)
	}
	entries, err := json.Marshal(records)
	if err != nil {
		return apperrors.NewStorageUnavailableError("encode entries", err)
	}

	var current []byte
	if state.Current != nil {
		current, err = json.Marshal(toEntryRecord(*state.Current))
		if err != nil {
			return apperrors.NewStorageUnavailableError("encode current entry", err)
		}
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(stateBucket)
		if current == nil {
			if err := b.Delete(currentKey); err != nil {
				return err
			}
		} else if err := b.Put(currentKey, current); err != nil {
			return err
		}
		return b.Put(entriesKey, entries)
	})
	if err != nil {
		return apperrors.NewStorageUnavailableError("save state", err)
	}
	return nil
}

func (s *Store) LoadCatalog(ctx context.Context) ([]domain.ProjectConfig, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var records []projectRecord
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(catalogBucket).Get(projectsKey)
		if len(v) == 0 {
			return nil
		}
		return json.Unmarshal(v, &records)
	})
	if err != nil {
		return nil, apperrors.NewStorageUnavailableError("load catalog", err)
	}
	return fromProjectRecords(records), nil
}

func (s *Store) SaveCatalog(ctx context.Context, projects []domain.ProjectConfig) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	value, err := json.Marshal(toProjectRecords(projects))
	if err != nil {
		return apperrors.NewStorageUnavailableError("encode catalog", err)
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(catalogBucket).Put(projectsKey, value)
	})
	if err != nil {
		return apperrors.NewStorageUnavailableError("save catalog", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
