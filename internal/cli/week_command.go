package cli

import (
	"context"
	"time"

	"timesheet/internal/api"
	"timesheet/internal/domain"
	"timesheet/internal/errors"
)

// WeekCommand handles the week command
type WeekCommand struct {
	app          *App
	businessAPI  api.BusinessAPI
	errorHandler *ErrorHandler

	// Date selects the week, formatted with the configured date format
	Date string
	All  bool
}

// NewWeekCommand creates a new week command handler
func NewWeekCommand(app *App) *WeekCommand {
	return &WeekCommand{
		app:          app,
		businessAPI:  app.businessAPI,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the week command
func (c *WeekCommand) Execute(ctx context.Context, args []string) error {
	anchor := timeNow().In(c.app.location())
	if c.Date != "" {
		parsed, err := time.ParseInLocation(c.app.config.Display.DateFormat, c.Date, c.app.location())
		if err != nil {
			return errors.NewInvalidArgumentError("date", c.Date, "expected format "+c.app.config.Display.DateFormat)
		}
		anchor = parsed
	}

	view, err := c.businessAPI.GetWeek(ctx, anchor, c.All)
	if err != nil {
		return c.errorHandler.Handle("show week", err)
	}

	c.printHeading(view)
	if len(view.Rows) == 0 {
		c.app.printf("No entries recorded\n")
	} else if err := printTable(c.app.out, c.entryTable(view)); err != nil {
		return err
	}
	return printTable(c.app.out, c.totalsTable(view))
}

func (c *WeekCommand) printHeading(view *api.WeekView) {
	if view.Start.IsZero() {
		c.app.printf("All entries\n")
		return
	}
	format := c.app.config.Display.DateFormat
	c.app.printf("Week %s to %s\n", view.Start.Format(format), view.End.AddDate(0, 0, -1).Format(format))
}

func (c *WeekCommand) entryTable(view *api.WeekView) [][]string {
	locale := c.app.config.Display.Locale
	data := [][]string{{"ID", "Day", "Date", "Type", "Activity", "Project", "Category", "Comment", "Duration"}}
	for _, row := range view.Rows {
		data = append(data, []string{
			shortID(row.EntryID),
			row.Weekday.Label(locale),
			row.Date.Format(c.app.config.Display.DateFormat),
			row.Type.String(),
			row.Activity,
			row.ProjectID,
			row.Category,
			row.Comment,
			domain.FormatDuration(row.Duration),
		})
	}
	return data
}

func (c *WeekCommand) totalsTable(view *api.WeekView) [][]string {
	locale := c.app.config.Display.Locale
	header := make([]string, 0, 8)
	values := make([]string, 0, 8)
	for _, day := range domain.Weekdays {
		header = append(header, day.Label(locale))
		values = append(values, domain.FormatDuration(view.Totals.Day(day)))
	}
	header = append(header, "Total")
	values = append(values, domain.FormatDuration(view.Total))
	return [][]string{header, values}
}

// shortID keeps the first uuid group, enough to pick an entry for edit and delete
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
