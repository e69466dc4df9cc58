package cli

import (
	"context"

	"timesheet/internal/api"
	"timesheet/internal/domain"
)

// ResumeCommand handles the resume command
type ResumeCommand struct {
	app          *App
	businessAPI  api.BusinessAPI
	errorHandler *ErrorHandler
}

// NewResumeCommand creates a new resume command handler
func NewResumeCommand(app *App) *ResumeCommand {
	return &ResumeCommand{
		app:          app,
		businessAPI:  app.businessAPI,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the resume command
func (c *ResumeCommand) Execute(ctx context.Context, args []string) error {
	session, err := c.businessAPI.ResumeEntry(ctx)
	if session != nil {
		pauses := session.Entry.Pauses
		last := pauses[len(pauses)-1]
		c.app.printf("Resumed %s after a %s break\n", session.Entry.Activity, domain.FormatClock(last.Duration()))
	}
	return c.errorHandler.Handle("resume entry", err)
}
