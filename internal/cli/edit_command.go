package cli

import (
	"context"

	"timesheet/internal/api"
	"timesheet/internal/domain"
	"timesheet/internal/errors"
)

// EditCommand handles the edit command
type EditCommand struct {
	app          *App
	businessAPI  api.BusinessAPI
	errorHandler *ErrorHandler

	Duration   string
	Comment    string
	HasComment bool
}

// NewEditCommand creates a new edit command handler
func NewEditCommand(app *App) *EditCommand {
	return &EditCommand{
		app:          app,
		businessAPI:  app.businessAPI,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the edit command
func (c *EditCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidArgumentError("id", "", "usage: ts edit <id> [--duration HH:MM:SS] [--comment text]")
	}

	var update domain.EntryUpdate
	if c.Duration != "" {
		d, err := domain.ParseClock(c.Duration)
		if err != nil {
			return errors.NewInvalidArgumentError("duration", c.Duration, err.Error())
		}
		update.AdjustedDuration = &d
	}
	if c.HasComment {
		update.Comment = &c.Comment
	}

	id, err := resolveEntryID(ctx, c.businessAPI, args[0])
	if err != nil {
		return c.errorHandler.Handle("edit entry", err)
	}

	entry, err := c.businessAPI.UpdateEntry(ctx, id, update)
	if entry != nil {
		c.app.printf("Updated %s: %s", entry.Activity, domain.FormatDuration(entry.Duration()))
		if entry.Comment != "" {
			c.app.printf(" (%s)", entry.Comment)
		}
		c.app.printf("\n")
	}
	return c.errorHandler.Handle("edit entry", err)
}
