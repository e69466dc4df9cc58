package cli

import (
	"context"

	"timesheet/internal/api"
	"timesheet/internal/domain"
)

// PauseCommand handles the pause command
type PauseCommand struct {
	app          *App
	businessAPI  api.BusinessAPI
	errorHandler *ErrorHandler

	// Comment is attached to the pause when HasComment is set
	Comment    string
	HasComment bool
}

// NewPauseCommand creates a new pause command handler
func NewPauseCommand(app *App) *PauseCommand {
	return &PauseCommand{
		app:          app,
		businessAPI:  app.businessAPI,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the pause command
func (c *PauseCommand) Execute(ctx context.Context, args []string) error {
	var comment *string
	if c.HasComment {
		comment = &c.Comment
	}

	session, err := c.businessAPI.PauseEntry(ctx, comment)
	if session != nil {
		c.app.printf("Paused %s after %s worked\n", session.Entry.Activity, domain.FormatClock(session.Worked))
	}
	return c.errorHandler.Handle("pause entry", err)
}
