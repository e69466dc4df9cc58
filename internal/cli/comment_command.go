package cli

import (
	"context"
	"strings"

	"timesheet/internal/api"
	"timesheet/internal/errors"
)

// CommentCommand handles the comment command
type CommentCommand struct {
	app          *App
	businessAPI  api.BusinessAPI
	errorHandler *ErrorHandler
}

// NewCommentCommand creates a new comment command handler
func NewCommentCommand(app *App) *CommentCommand {
	return &CommentCommand{
		app:          app,
		businessAPI:  app.businessAPI,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the comment command
func (c *CommentCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidArgumentError("comment", "", "usage: ts comment <text>")
	}

	session, err := c.businessAPI.CommentEntry(ctx, strings.Join(args, " "))
	if session != nil {
		c.app.printf("Comment on %s: %s\n", session.Entry.Activity, session.Entry.Comment)
	}
	return c.errorHandler.Handle("update comment", err)
}
