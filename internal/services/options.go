package services

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"timesheet/internal/config"
	"timesheet/internal/logging"
)

const defaultStorageTimeout = 5 * time.Second

type options struct {
	now      func() time.Time
	newID    func() string
	location *time.Location
	logger   *slog.Logger
	config   *config.Config
}

// Option customises the services built by NewServiceContainer.
type Option func(*options)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithIDGenerator replaces the uuid generator for new entries.
func WithIDGenerator(newID func() string) Option {
	return func(o *options) { o.newID = newID }
}

// WithLocation sets the zone used to bucket entries into weekdays.
func WithLocation(loc *time.Location) Option {
	return func(o *options) { o.location = loc }
}

// WithLogger sets the logger used for storage failures.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithConfig applies validation limits and the storage timeout from cfg.
func WithConfig(cfg *config.Config) Option {
	return func(o *options) { o.config = cfg }
}

func newOptions(opts []Option) options {
	o := options{
		now:      time.Now,
		newID:    uuid.NewString,
		location: time.Local,
		logger:   logging.Discard(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
