// Package api is the facade the CLI talks to. It composes the services into
// user-level workflows and keeps presentation concerns out of them.
package api

import (
	"context"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"timesheet/internal/domain"
	"timesheet/internal/errors"
	"timesheet/internal/services"
)

// CatalogAPI defines catalog maintenance operations.
type CatalogAPI interface {
	ListProjects(ctx context.Context) ([]domain.ProjectConfig, error)
	AddProject(ctx context.Context, project domain.ProjectConfig) error
	RemoveProject(ctx context.Context, projectID string) error
	AddActivity(ctx context.Context, projectID string, activity domain.ActivityConfig) error
	RemoveActivity(ctx context.Context, projectID, name string) error
	UpdateActivity(ctx context.Context, projectID, name string, activity domain.ActivityConfig) error

	// ImportCatalog replaces the catalog with a YAML document read from r
	ImportCatalog(ctx context.Context, r io.Reader) (int, error)
	// ExportCatalog writes the catalog to w as YAML
	ExportCatalog(ctx context.Context, w io.Writer) error
}

type options struct {
	now      func() time.Time
	location *time.Location
}

// Option customises the facade.
type Option func(*options)

// WithClock replaces time.Now for elapsed time in sessions.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithLocation sets the zone weeks are computed in.
func WithLocation(loc *time.Location) Option {
	return func(o *options) { o.location = loc }
}

func newOptions(opts []Option) options {
	o := options{now: time.Now, location: time.Local}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

type catalogAPIImpl struct {
	catalog services.CatalogService
}

// NewCatalogAPI creates a new CatalogAPI instance.
func NewCatalogAPI(container *services.ServiceContainer) CatalogAPI {
	return &catalogAPIImpl{catalog: container.Catalog}
}

func (c *catalogAPIImpl) ListProjects(ctx context.Context) ([]domain.ProjectConfig, error) {
	return c.catalog.Projects(ctx)
}

func (c *catalogAPIImpl) AddProject(ctx context.Context, project domain.ProjectConfig) error {
	return c.catalog.AddProject(ctx, project)
}

func (c *catalogAPIImpl) RemoveProject(ctx context.Context, projectID string) error {
	return c.catalog.RemoveProject(ctx, projectID)
}

func (c *catalogAPIImpl) AddActivity(ctx context.Context, projectID string, activity domain.ActivityConfig) error {
	return c.catalog.AddActivity(ctx, projectID, activity)
}

func (c *catalogAPIImpl) RemoveActivity(ctx context.Context, projectID, name string) error {
	return c.catalog.RemoveActivity(ctx, projectID, name)
}

func (c *catalogAPIImpl) UpdateActivity(ctx context.Context, projectID, name string, activity domain.ActivityConfig) error {
	return c.catalog.UpdateActivity(ctx, projectID, name, activity)
}

func (c *catalogAPIImpl) ImportCatalog(ctx context.Context, r io.Reader) (int, error) {
	var doc catalogDocument
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		if err == io.EOF {
			return 0, errors.NewInvalidArgumentError("catalog", "", "document is empty")
		}
		return 0, errors.WrapError(err, errors.ErrorTypeInvalidArgument, "invalid catalog document")
	}

	projects := doc.toDomain()
	if len(projects) == 0 {
		return 0, errors.NewInvalidArgumentError("catalog", "", "no projects defined")
	}
	if err := c.catalog.ReplaceAll(ctx, projects); err != nil {
		return 0, err
	}
	return len(projects), nil
}

func (c *catalogAPIImpl) ExportCatalog(ctx context.Context, w io.Writer) error {
	projects, err := c.catalog.Projects(ctx)
	if err != nil {
		return err
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(newCatalogDocument(projects)); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	return encoder.Close()
}
