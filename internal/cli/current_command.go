package cli

import (
	"context"

	"timesheet/internal/api"
	"timesheet/internal/domain"
)

// CurrentCommand handles the current command
type CurrentCommand struct {
	app          *App
	businessAPI  api.BusinessAPI
	errorHandler *ErrorHandler
}

// NewCurrentCommand creates a new current command handler
func NewCurrentCommand(app *App) *CurrentCommand {
	return &CurrentCommand{
		app:          app,
		businessAPI:  app.businessAPI,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the current command
func (c *CurrentCommand) Execute(ctx context.Context, args []string) error {
	session, err := c.businessAPI.GetCurrentSession(ctx)
	if err != nil {
		if c.errorHandler.IsNotFoundError(err) {
			c.app.printf("No entry is currently running\n")
			return nil
		}
		return c.errorHandler.Handle("show current entry", err)
	}

	entry := session.Entry
	status := "running"
	if session.Paused {
		status = "paused"
	}

	c.app.printf("Current entry: %s [%s, project %s] %s\n", entry.Activity, entry.Type, entry.ProjectID, status)
	c.app.printf("  Started: %s\n", entry.StartTime.In(c.app.location()).Format(c.app.config.Time.DisplayFormat))
	c.app.printf("  Elapsed: %s (worked %s)\n", domain.FormatClock(session.Elapsed), domain.FormatClock(session.Worked))
	if entry.Comment != "" {
		c.app.printf("  Comment: %s\n", entry.Comment)
	}
	return nil
}
