package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"timesheet/internal/api"
	"timesheet/internal/domain"
	"timesheet/internal/errors"
)

// CatalogCommand handles the catalog subcommands
type CatalogCommand struct {
	app          *App
	catalogAPI   api.CatalogAPI
	errorHandler *ErrorHandler

	// Activity fields for add-activity and update-activity
	Name            string
	Category        string
	ExternalComment string
	HasExternal     bool
}

// NewCatalogCommand creates a new catalog command handler
func NewCatalogCommand(app *App) *CatalogCommand {
	return &CatalogCommand{
		app:          app,
		catalogAPI:   app.catalogAPI,
		errorHandler: NewErrorHandler(),
	}
}

// List prints every project with its activities
func (c *CatalogCommand) List(ctx context.Context, args []string) error {
	projects, err := c.catalogAPI.ListProjects(ctx)
	if err != nil {
		return c.errorHandler.Handle("list catalog", err)
	}

	data := [][]string{{"Project", "Name", "Type", "Activity", "Category", "External comment"}}
	for _, p := range projects {
		if len(p.Activities) == 0 {
			data = append(data, []string{p.ProjectID, p.Name, p.Type.String(), "", "", ""})
		}
		for _, a := range p.Activities {
			data = append(data, []string{p.ProjectID, p.Name, p.Type.String(), a.Activity, a.Category, a.ExternalComment})
		}
	}
	return printTable(c.app.out, data)
}

// AddProject expects <id> <name> <work|absence>
func (c *CatalogCommand) AddProject(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return errors.NewInvalidArgumentError("project", "", "usage: ts catalog add-project <id> <name> <work|absence>")
	}
	entryType, err := domain.ParseEntryType(args[2])
	if err != nil {
		return errors.NewInvalidArgumentError("type", args[2], err.Error())
	}

	project := domain.ProjectConfig{ProjectID: args[0], Name: args[1], Type: entryType}
	err = c.catalogAPI.AddProject(ctx, project)
	return c.report("add project", err, "Added project %s (%s)\n", project.ProjectID, project.Name)
}

// RemoveProject expects <id>
func (c *CatalogCommand) RemoveProject(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidArgumentError("project", "", "usage: ts catalog remove-project <id>")
	}
	err := c.catalogAPI.RemoveProject(ctx, args[0])
	return c.report("remove project", err, "Removed project %s\n", args[0])
}

// AddActivity expects <project-id> <activity> and the Category field
func (c *CatalogCommand) AddActivity(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.NewInvalidArgumentError("activity", "", "usage: ts catalog add-activity <project-id> <activity> --category <category>")
	}

	activity := domain.ActivityConfig{
		Activity:        args[1],
		Category:        c.Category,
		ExternalComment: c.ExternalComment,
	}
	err := c.catalogAPI.AddActivity(ctx, args[0], activity)
	return c.report("add activity", err, "Added activity %s to project %s\n", activity.Activity, args[0])
}

// RemoveActivity expects <project-id> <activity>
func (c *CatalogCommand) RemoveActivity(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.NewInvalidArgumentError("activity", "", "usage: ts catalog remove-activity <project-id> <activity>")
	}
	err := c.catalogAPI.RemoveActivity(ctx, args[0], args[1])
	return c.report("remove activity", err, "Removed activity %s from project %s\n", args[1], args[0])
}

// UpdateActivity expects <project-id> <activity>; unset fields keep their value
func (c *CatalogCommand) UpdateActivity(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.NewInvalidArgumentError("activity", "", "usage: ts catalog update-activity <project-id> <activity> [--name] [--category] [--external-comment]")
	}

	current, err := c.findActivity(ctx, args[0], args[1])
	if err != nil {
		return c.errorHandler.Handle("update activity", err)
	}

	updated := current
	if c.Name != "" {
		updated.Activity = c.Name
	}
	if c.Category != "" {
		updated.Category = c.Category
	}
	if c.HasExternal {
		updated.ExternalComment = c.ExternalComment
	}

	err = c.catalogAPI.UpdateActivity(ctx, args[0], args[1], updated)
	return c.report("update activity", err, "Updated activity %s in project %s\n", updated.Activity, args[0])
}

// Import replaces the catalog with a YAML file, or stdin for "-"
func (c *CatalogCommand) Import(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidArgumentError("file", "", "usage: ts catalog import <file.yaml|->")
	}

	var r io.Reader = os.Stdin
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open catalog file: %w", err)
		}
		defer f.Close()
		r = f
	}

	count, err := c.catalogAPI.ImportCatalog(ctx, r)
	return c.report("import catalog", err, "Imported %d projects\n", count)
}

// Export writes the catalog as YAML to a file, or to the output when no file is given
func (c *CatalogCommand) Export(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "-" {
		return c.errorHandler.Handle("export catalog", c.catalogAPI.ExportCatalog(ctx, c.app.out))
	}

	f, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("failed to create catalog file: %w", err)
	}
	if err := c.catalogAPI.ExportCatalog(ctx, f); err != nil {
		f.Close()
		return c.errorHandler.Handle("export catalog", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write catalog file: %w", err)
	}
	c.app.printf("Exported catalog to %s\n", args[0])
	return nil
}

func (c *CatalogCommand) findActivity(ctx context.Context, projectID, name string) (domain.ActivityConfig, error) {
	projects, err := c.catalogAPI.ListProjects(ctx)
	if err != nil {
		return domain.ActivityConfig{}, err
	}
	for _, p := range projects {
		if p.ProjectID != projectID {
			continue
		}
		if a, ok := p.Activity(name); ok {
			return a, nil
		}
		return domain.ActivityConfig{}, errors.NewNotFoundError("activity", name)
	}
	return domain.ActivityConfig{}, errors.NewNotFoundError("project", projectID)
}

// report prints the success line unless err is a real failure. A change that
// could not be saved is still reported before the error.
func (c *CatalogCommand) report(operation string, err error, format string, args ...interface{}) error {
	if err != nil && !c.errorHandler.IsPersistenceError(err) {
		return c.errorHandler.Handle(operation, err)
	}
	c.app.printf(format, args...)
	return c.errorHandler.Handle(operation, err)
}
