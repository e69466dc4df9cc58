package cli

import (
	"context"
	"strings"

	"timesheet/internal/api"
	"timesheet/internal/errors"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	app          *App
	businessAPI  api.BusinessAPI
	errorHandler *ErrorHandler
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{
		app:          app,
		businessAPI:  app.businessAPI,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the delete command
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidArgumentError("id", "", "usage: ts delete <id>")
	}

	id, err := resolveEntryID(ctx, c.businessAPI, args[0])
	if err != nil {
		return c.errorHandler.Handle("delete entry", err)
	}

	err = c.businessAPI.DeleteEntry(ctx, id)
	if err != nil && !c.errorHandler.IsPersistenceError(err) {
		return c.errorHandler.Handle("delete entry", err)
	}
	c.app.printf("Deleted entry %s\n", id)
	return c.errorHandler.Handle("delete entry", err)
}

// resolveEntryID expands an id prefix as printed by the week table. An exact
// match wins; an unknown prefix is returned unchanged.
func resolveEntryID(ctx context.Context, businessAPI api.BusinessAPI, prefix string) (string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return "", errors.NewInvalidArgumentError("id", prefix, "is required")
	}

	entries, err := businessAPI.ListEntries(ctx)
	if err != nil {
		return "", err
	}

	var matches []string
	for _, e := range entries {
		if e.ID == prefix {
			return e.ID, nil
		}
		if strings.HasPrefix(e.ID, prefix) {
			matches = append(matches, e.ID)
		}
	}

	switch len(matches) {
	case 0:
		return prefix, nil
	case 1:
		return matches[0], nil
	default:
		return "", errors.NewInvalidArgumentError("id", prefix, "matches more than one entry")
	}
}
