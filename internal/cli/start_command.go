package cli

import (
	"context"
	"strings"

	"timesheet/internal/api"
	"timesheet/internal/domain"
	"timesheet/internal/errors"
)

// StartCommand handles the start command
type StartCommand struct {
	app          *App
	businessAPI  api.BusinessAPI
	errorHandler *ErrorHandler

	EntryType string
	Comment   string
}

// NewStartCommand creates a new start command handler
func NewStartCommand(app *App) *StartCommand {
	return &StartCommand{
		app:          app,
		businessAPI:  app.businessAPI,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the start command
func (c *StartCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidArgumentError("activity", "", "usage: ts start <activity>")
	}

	req := api.StartActivityRequest{
		Activity: strings.Join(args, " "),
		Comment:  c.Comment,
	}
	if c.EntryType != "" {
		entryType, err := domain.ParseEntryType(c.EntryType)
		if err != nil {
			return errors.NewInvalidArgumentError("type", c.EntryType, err.Error())
		}
		req.Type = &entryType
	}

	session, err := c.businessAPI.StartActivity(ctx, req)
	if session != nil {
		entry := session.Entry
		c.app.printf("Started %s (%s, project %s) at %s\n",
			entry.Activity, entry.Type, entry.ProjectID, entry.StartTime.In(c.app.location()).Format("15:04"))
	}
	return c.errorHandler.Handle("start entry", err)
}
