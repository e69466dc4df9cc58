package cli

import (
	"context"
	"time"

	"timesheet/internal/api"
	"timesheet/internal/domain"
	"timesheet/internal/errors"
)

// StopCommand handles the stop command
type StopCommand struct {
	app          *App
	businessAPI  api.BusinessAPI
	errorHandler *ErrorHandler

	// Duration overrides the measured time, as HH:MM:SS
	Duration string
}

// NewStopCommand creates a new stop command handler
func NewStopCommand(app *App) *StopCommand {
	return &StopCommand{
		app:          app,
		businessAPI:  app.businessAPI,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the stop command
func (c *StopCommand) Execute(ctx context.Context, args []string) error {
	var override *time.Duration
	if c.Duration != "" {
		d, err := domain.ParseClock(c.Duration)
		if err != nil {
			return errors.NewInvalidArgumentError("duration", c.Duration, err.Error())
		}
		override = &d
	}

	entry, err := c.businessAPI.StopEntry(ctx, override)
	if entry != nil {
		c.app.printf("Stopped %s: %s (id %s)\n", entry.Activity, domain.FormatDuration(entry.Duration()), entry.ID)
	}
	return c.errorHandler.Handle("stop entry", err)
}
