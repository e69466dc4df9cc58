package services

import (
	"context"
	"log/slog"
	"sync"

	"timesheet/internal/domain"
	"timesheet/internal/errors"
	"timesheet/internal/repository"
	"timesheet/internal/validation"
)

// catalogServiceImpl implements the CatalogService interface
type catalogServiceImpl struct {
	mu        sync.Mutex
	repo      repository.Repository
	validator *validation.CatalogValidator
	logger    *slog.Logger
	projects  []domain.ProjectConfig
	loaded    bool
}

// NewCatalogService creates a new CatalogService. The catalog is read on
// first use; an empty repository is seeded with domain.DefaultCatalog.
func NewCatalogService(repo repository.Repository, opts ...Option) CatalogService {
	o := newOptions(opts)
	validator := validation.NewCatalogValidator()
	if o.config != nil {
		validator = validation.NewCatalogValidatorWithConfig(o.config)
	}
	return &catalogServiceImpl{
		repo:      repo,
		validator: validator,
		logger:    o.logger,
	}
}

// Projects returns a copy of the catalog in display order
func (s *catalogServiceImpl) Projects(ctx context.Context) ([]domain.ProjectConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return domain.CloneProjects(s.projects), nil
}

// LookupActivity returns the first activity with the given name and the
// entry type of its project
func (s *catalogServiceImpl) LookupActivity(ctx context.Context, name string) (domain.ActivityConfig, domain.EntryType, error) {
	projects, err := s.Projects(ctx)
	if err != nil {
		return domain.ActivityConfig{}, "", err
	}

	for _, p := range projects {
		if a, ok := p.Activity(name); ok {
			return a, p.Type, nil
		}
	}
	return domain.ActivityConfig{}, "", errors.NewNotFoundError("activity", name)
}

// LookupActivityForType searches only projects serving entryType
func (s *catalogServiceImpl) LookupActivityForType(ctx context.Context, entryType domain.EntryType, name string) (domain.ActivityConfig, error) {
	activities, err := s.ActivitiesForType(ctx, entryType)
	if err != nil {
		return domain.ActivityConfig{}, err
	}

	for _, a := range activities {
		if a.Activity == name {
			return a, nil
		}
	}
	return domain.ActivityConfig{}, errors.NewNotFoundError(string(entryType)+" activity", name)
}

// ActivitiesForType lists the activities of all projects serving entryType
func (s *catalogServiceImpl) ActivitiesForType(ctx context.Context, entryType domain.EntryType) ([]domain.ActivityConfig, error) {
	projects, err := s.Projects(ctx)
	if err != nil {
		return nil, err
	}

	activities := make([]domain.ActivityConfig, 0)
	for _, p := range projects {
		if p.Type == entryType {
			activities = append(activities, p.Activities...)
		}
	}
	return activities, nil
}

// AddProject appends a project. Project ids are unique.
func (s *catalogServiceImpl) AddProject(ctx context.Context, project domain.ProjectConfig) error {
	if project.Activities == nil {
		project.Activities = []domain.ActivityConfig{}
	}
	if err := s.validator.ValidateProject(project); err != nil {
		return validation.AsInvalidArgument(err)
	}

	return s.update(ctx, "add project", func(projects []domain.ProjectConfig) ([]domain.ProjectConfig, error) {
		if indexOfProject(projects, project.ProjectID) >= 0 {
			return nil, errors.NewInvalidArgumentError("project_id", project.ProjectID, "project already exists")
		}
		return append(projects, project.Clone()), nil
	})
}

// RemoveProject deletes a project and its activities
func (s *catalogServiceImpl) RemoveProject(ctx context.Context, projectID string) error {
	return s.update(ctx, "remove project", func(projects []domain.ProjectConfig) ([]domain.ProjectConfig, error) {
		idx := indexOfProject(projects, projectID)
		if idx < 0 {
			return nil, errors.NewNotFoundError("project", projectID)
		}
		return append(projects[:idx], projects[idx+1:]...), nil
	})
}

// AddActivity appends an activity to a project. Names are unique per project.
func (s *catalogServiceImpl) AddActivity(ctx context.Context, projectID string, activity domain.ActivityConfig) error {
	activity.ProjectID = projectID
	if err := s.validator.ValidateActivity(activity); err != nil {
		return validation.AsInvalidArgument(err)
	}

	return s.update(ctx, "add activity", func(projects []domain.ProjectConfig) ([]domain.ProjectConfig, error) {
		idx := indexOfProject(projects, projectID)
		if idx < 0 {
			return nil, errors.NewNotFoundError("project", projectID)
		}
		if _, exists := projects[idx].Activity(activity.Activity); exists {
			return nil, errors.NewInvalidArgumentError("activity", activity.Activity, "activity already exists in project "+projectID)
		}
		projects[idx].Activities = append(projects[idx].Activities, activity)
		return projects, nil
	})
}

// RemoveActivity deletes an activity from a project
func (s *catalogServiceImpl) RemoveActivity(ctx context.Context, projectID, name string) error {
	return s.update(ctx, "remove activity", func(projects []domain.ProjectConfig) ([]domain.ProjectConfig, error) {
		pIdx, aIdx, err := findActivity(projects, projectID, name)
		if err != nil {
			return nil, err
		}
		activities := projects[pIdx].Activities
		projects[pIdx].Activities = append(activities[:aIdx], activities[aIdx+1:]...)
		return projects, nil
	})
}

// UpdateActivity replaces the activity matched by name, keeping its position
func (s *catalogServiceImpl) UpdateActivity(ctx context.Context, projectID, name string, activity domain.ActivityConfig) error {
	activity.ProjectID = projectID
	if err := s.validator.ValidateActivity(activity); err != nil {
		return validation.AsInvalidArgument(err)
	}

	return s.update(ctx, "update activity", func(projects []domain.ProjectConfig) ([]domain.ProjectConfig, error) {
		pIdx, aIdx, err := findActivity(projects, projectID, name)
		if err != nil {
			return nil, err
		}
		if activity.Activity != name {
			if _, exists := projects[pIdx].Activity(activity.Activity); exists {
				return nil, errors.NewInvalidArgumentError("activity", activity.Activity, "activity already exists in project "+projectID)
			}
		}
		projects[pIdx].Activities[aIdx] = activity
		return projects, nil
	})
}

// ReplaceAll swaps in a whole catalog, as done by an import
func (s *catalogServiceImpl) ReplaceAll(ctx context.Context, projects []domain.ProjectConfig) error {
	validationError := validation.NewValidationError()
	seen := make(map[string]bool, len(projects))
	for _, p := range projects {
		validationError.Merge(s.validator.ValidateProject(p))
		if seen[p.ProjectID] {
			validationError.AddDuplicateError("project_id", p.ProjectID)
		}
		seen[p.ProjectID] = true
	}
	if err := validationError.ErrorOrNil(); err != nil {
		return validation.AsInvalidArgument(err)
	}

	return s.update(ctx, "replace catalog", func([]domain.ProjectConfig) ([]domain.ProjectConfig, error) {
		return domain.CloneProjects(projects), nil
	})
}

// load reads the catalog once. Callers hold s.mu.
func (s *catalogServiceImpl) load(ctx context.Context) error {
	if s.loaded {
		return nil
	}

	projects, err := s.repo.LoadCatalog(ctx)
	if err != nil {
		return wrapStorageError("load catalog", err)
	}

	if len(projects) == 0 {
		projects = domain.DefaultCatalog()
		if err := s.repo.SaveCatalog(ctx, projects); err != nil {
			s.logger.Warn("seeding default catalog failed", "error", err)
		}
	}

	s.projects = projects
	s.loaded = true
	return nil
}

// update applies fn to a copy of the catalog and saves the result. A failed
// save keeps the in-memory change and reports StorageUnavailable.
func (s *catalogServiceImpl) update(ctx context.Context, operation string, fn func([]domain.ProjectConfig) ([]domain.ProjectConfig, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(ctx); err != nil {
		return err
	}

	next, err := fn(domain.CloneProjects(s.projects))
	if err != nil {
		return err
	}
	s.projects = next

	if err := s.repo.SaveCatalog(ctx, domain.CloneProjects(next)); err != nil {
		s.logger.Warn("persisting catalog failed, keeping in-memory change",
			"operation", operation, "error", err)
		return wrapStorageError(operation, err)
	}
	return nil
}

func indexOfProject(projects []domain.ProjectConfig, projectID string) int {
	for i, p := range projects {
		if p.ProjectID == projectID {
			return i
		}
	}
	return -1
}

func findActivity(projects []domain.ProjectConfig, projectID, name string) (int, int, error) {
	pIdx := indexOfProject(projects, projectID)
	if pIdx < 0 {
		return 0, 0, errors.NewNotFoundError("project", projectID)
	}
	for aIdx, a := range projects[pIdx].Activities {
		if a.Activity == name {
			return pIdx, aIdx, nil
		}
	}
	return 0, 0, errors.NewNotFoundError("activity", name)
}
