package cli

import (
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"timesheet/internal/api"
	"timesheet/internal/domain"
	"timesheet/internal/errors"
)

// OutputCommand handles the output command
type OutputCommand struct {
	app          *App
	businessAPI  api.BusinessAPI
	errorHandler *ErrorHandler

	Format string
}

// NewOutputCommand creates a new output command handler
func NewOutputCommand(app *App) *OutputCommand {
	return &OutputCommand{
		app:          app,
		businessAPI:  app.businessAPI,
		errorHandler: NewErrorHandler(),
		Format:       "csv",
	}
}

// Execute runs the output command
func (c *OutputCommand) Execute(ctx context.Context, args []string) error {
	switch c.Format {
	case "csv":
		return c.outputCSV(ctx)
	default:
		return errors.NewInvalidArgumentError("format", c.Format, "unsupported format, use csv")
	}
}

// outputCSV writes every completed entry with its weekday and duration
func (c *OutputCommand) outputCSV(ctx context.Context) error {
	entries, err := c.businessAPI.ListEntries(ctx)
	if err != nil {
		return c.errorHandler.Handle("export entries", err)
	}

	loc := c.app.location()
	writer := csv.NewWriter(c.app.out)

	header := []string{"id", "date", "weekday", "type", "activity", "project_id", "category",
		"comment", "external_comment", "start", "end", "pauses", "duration", "duration_ms"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, entry := range entries {
		start := entry.StartTime.In(loc)

		var end, durationMS string
		if entry.EndTime != nil {
			end = entry.EndTime.In(loc).Format(time.RFC3339)
		}
		if entry.AdjustedDuration != nil {
			durationMS = strconv.FormatInt(entry.AdjustedDuration.Milliseconds(), 10)
		}

		row := []string{
			entry.ID,
			start.Format(c.app.config.Display.DateFormat),
			domain.WeekdayOf(start, nil).Label(c.app.config.Display.Locale),
			entry.Type.String(),
			entry.Activity,
			entry.ProjectID,
			entry.Category,
			entry.Comment,
			entry.ExternalComment,
			start.Format(time.RFC3339),
			end,
			strconv.Itoa(len(entry.Pauses)),
			domain.FormatDuration(entry.Duration()),
			durationMS,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
