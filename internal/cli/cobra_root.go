package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"timesheet/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	loader  *config.Loader
	factory AppFactory
	config  *config.Config
}

// NewRootCommand creates the root cobra command with global flags. The
// factory is called once per command after configuration is resolved.
func NewRootCommand(loader *config.Loader, factory AppFactory) *RootCommand {
	root := &RootCommand{
		loader:  loader,
		factory: factory,
	}

	root.cmd = &cobra.Command{
		Use:   "ts",
		Short: "A command-line timesheet",
		Long: `Timesheet (ts) records work and absence time against a catalog of
projects and activities, with pauses, weekly totals and CSV export.

EXAMPLES:
  ts start Projektarbeit --comment "API review"   # Start an activity from the catalog
  ts pause --comment lunch                          # Take a break
  ts resume                                         # Continue after the break
  ts stop                                           # Stop and record worked time
  ts stop --duration 01:30:00                       # Stop and record a fixed duration
  ts week --date 2024-03-04                         # Weekly table with daily totals
  ts edit 1a2b3c4d --duration 00:45:00              # Correct a recorded entry
  ts output --format csv > timesheet.csv            # Export all entries
  ts catalog list                                   # Show projects and activities

CONFIGURATION:
  Configuration follows this priority order:
  command-line flags > environment variables > config file > defaults

  Config file: $TS_CONFIG or $XDG_CONFIG_HOME/timesheet/config.yaml

  Storage:
    TS_STORAGE_BACKEND                  sqlite, bolt or memory (default: sqlite)
    TS_DB_DIR                           Storage directory (default: $XDG_DATA_HOME/timesheet)
    TS_DB_FILENAME                      Storage filename (default: timesheet.db)
    TS_DB_TIMEOUT                       Storage operation timeout (default: 5s)

  Display:
    TS_TIMEZONE                         Zone used for weekdays (default: Local)
    TS_LOCALE                           Weekday labels, en or de (default: en)
    TS_DATE_FORMAT                      Date layout (default: 2006-01-02)

  Logging:
    TS_LOG_FILE                         Log file, empty disables logging
    TS_LOG_LEVEL                        debug, info, warn or error (default: info)
    TS_DEBUG                            Print debug traces to stderr`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.loadConfig()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// Command exposes the cobra command, mainly for tests
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("config", "", "Config file (overrides TS_CONFIG)")

	// Storage configuration
	flags.String("backend", "", "Storage backend: sqlite, bolt or memory (overrides TS_STORAGE_BACKEND)")
	flags.String("db-dir", "", "Storage directory (overrides TS_DB_DIR)")
	flags.String("db-filename", "", "Storage filename (overrides TS_DB_FILENAME)")

	// Display configuration
	flags.String("timezone", "", "Time zone for weekly buckets (overrides TS_TIMEZONE)")
	flags.String("locale", "", "Weekday label locale (overrides TS_LOCALE)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Application timeout (overrides TS_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides TS_APP_VERBOSE)")

	// Logging configuration
	flags.String("log-level", "", "Log level (overrides TS_LOG_LEVEL)")
	flags.String("log-file", "", "Log file (overrides TS_LOG_FILE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	start := &cobra.Command{
		Use:   "start <activity>",
		Short: "Start an activity from the catalog",
		Long:  "Start a new entry for a catalog activity. Fails while another entry is active.",
		Args:  cobra.MinimumNArgs(1),
	}
	startType := start.Flags().String("type", "", "Only look up activities of this type (work or absence)")
	startComment := start.Flags().String("comment", "", "Comment, defaults to the activity's external comment")
	start.RunE = r.run(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
		handler := NewStartCommand(app)
		handler.EntryType = *startType
		handler.Comment = *startComment
		return handler.Execute(ctx, args)
	})

	pause := &cobra.Command{
		Use:   "pause",
		Short: "Pause the active entry",
		Args:  cobra.NoArgs,
	}
	pauseComment := pause.Flags().String("comment", "", "Reason for the break")
	pause.RunE = r.run(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
		handler := NewPauseCommand(app)
		handler.Comment = *pauseComment
		handler.HasComment = cmd.Flags().Changed("comment")
		return handler.Execute(ctx, args)
	})

	resume := &cobra.Command{
		Use:   "resume",
		Short: "Resume the paused entry",
		Args:  cobra.NoArgs,
		RunE: r.run(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
			return NewResumeCommand(app).Execute(ctx, args)
		}),
	}

	comment := &cobra.Command{
		Use:   "comment <text>",
		Short: "Replace the comment of the active entry",
		Args:  cobra.MinimumNArgs(1),
		RunE: r.run(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
			return NewCommentCommand(app).Execute(ctx, args)
		}),
	}

	stop := &cobra.Command{
		Use:   "stop",
		Short: "Stop the active entry",
		Long:  "Stop the active entry. An open pause is closed first. --duration records a fixed duration instead of the measured one.",
		Args:  cobra.NoArgs,
	}
	stopDuration := stop.Flags().String("duration", "", "Recorded duration as HH:MM:SS")
	stop.RunE = r.run(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
		handler := NewStopCommand(app)
		handler.Duration = *stopDuration
		return handler.Execute(ctx, args)
	})

	current := &cobra.Command{
		Use:   "current",
		Short: "Show the active entry",
		Args:  cobra.NoArgs,
		RunE: r.run(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
			return NewCurrentCommand(app).Execute(ctx, args)
		}),
	}

	week := &cobra.Command{
		Use:   "week",
		Short: "Show the weekly table with daily totals",
		Args:  cobra.NoArgs,
	}
	weekDate := week.Flags().String("date", "", "Any day of the week to show (default: today)")
	weekAll := week.Flags().Bool("all", false, "Show every recorded entry")
	week.RunE = r.run(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
		handler := NewWeekCommand(app)
		handler.Date = *weekDate
		handler.All = *weekAll
		return handler.Execute(ctx, args)
	})

	edit := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit the duration or comment of a recorded entry",
		Args:  cobra.ExactArgs(1),
	}
	editDuration := edit.Flags().String("duration", "", "New duration as HH:MM:SS")
	editComment := edit.Flags().String("comment", "", "New comment")
	edit.RunE = r.run(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
		handler := NewEditCommand(app)
		handler.Duration = *editDuration
		handler.Comment = *editComment
		handler.HasComment = cmd.Flags().Changed("comment")
		return handler.Execute(ctx, args)
	})

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a recorded entry",
		Args:  cobra.ExactArgs(1),
		RunE: r.run(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
			return NewDeleteCommand(app).Execute(ctx, args)
		}),
	}

	output := &cobra.Command{
		Use:   "output",
		Short: "Export recorded entries",
		Args:  cobra.NoArgs,
	}
	outputFormat := output.Flags().String("format", "csv", "Output format (csv)")
	output.RunE = r.run(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
		handler := NewOutputCommand(app)
		handler.Format = *outputFormat
		return handler.Execute(ctx, args)
	})

	r.cmd.AddCommand(start, pause, resume, comment, stop, current, week, edit, del, output, r.catalogCommand())
}

func (r *RootCommand) catalogCommand() *cobra.Command {
	catalog := &cobra.Command{
		Use:   "catalog",
		Short: "Manage projects and activities",
	}

	var name, category, externalComment string
	withActivityFlags := func(cmd *cobra.Command, withName bool) {
		if withName {
			cmd.Flags().StringVar(&name, "name", "", "New activity name")
		}
		cmd.Flags().StringVar(&category, "category", "", "Booking category")
		cmd.Flags().StringVar(&externalComment, "external-comment", "", "Default comment for new entries")
	}

	sub := func(use, short string, args cobra.PositionalArgs, fn func(*CatalogCommand, context.Context, []string) error) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  args,
			RunE: r.run(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
				handler := NewCatalogCommand(app)
				handler.Name = name
				handler.Category = category
				handler.ExternalComment = externalComment
				handler.HasExternal = cmd.Flags().Changed("external-comment")
				return fn(handler, ctx, args)
			}),
		}
	}

	addActivity := sub("add-activity <project-id> <activity>", "Add an activity to a project", cobra.ExactArgs(2), (*CatalogCommand).AddActivity)
	withActivityFlags(addActivity, false)
	updateActivity := sub("update-activity <project-id> <activity>", "Change an activity", cobra.ExactArgs(2), (*CatalogCommand).UpdateActivity)
	withActivityFlags(updateActivity, true)

	catalog.AddCommand(
		sub("list", "List projects and activities", cobra.NoArgs, (*CatalogCommand).List),
		sub("add-project <id> <name> <work|absence>", "Add a project", cobra.ExactArgs(3), (*CatalogCommand).AddProject),
		sub("remove-project <id>", "Remove a project and its activities", cobra.ExactArgs(1), (*CatalogCommand).RemoveProject),
		addActivity,
		sub("remove-activity <project-id> <activity>", "Remove an activity", cobra.ExactArgs(2), (*CatalogCommand).RemoveActivity),
		updateActivity,
		sub("import <file|->", "Replace the catalog with a YAML file", cobra.ExactArgs(1), (*CatalogCommand).Import),
		sub("export [file]", "Write the catalog as YAML", cobra.MaximumNArgs(1), (*CatalogCommand).Export),
	)
	return catalog
}

type commandFunc func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error

// run opens the app for one command and closes it afterwards
func (r *RootCommand) run(fn commandFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
		defer cancel()

		app, err := r.factory(ctx, r.config)
		if err != nil {
			return err
		}

		runErr := fn(ctx, app, cmd, args)
		if closeErr := app.Close(); closeErr != nil && runErr == nil {
			return fmt.Errorf("failed to close storage: %w", closeErr)
		}
		return runErr
	}
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// loadConfig resolves configuration with values from command-line flags on top
func (r *RootCommand) loadConfig() error {
	cfg, err := r.loader.LoadWithOverrides(r.getOverridesFromFlags())
	if err != nil {
		return err
	}
	r.config = cfg
	return nil
}

// getOverridesFromFlags collects the persistent flags the user actually set
func (r *RootCommand) getOverridesFromFlags() *config.ConfigOverrides {
	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	stringFlag := func(name string) *string {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetString(name)
		return &v
	}

	overrides.ConfigFile = stringFlag("config")
	overrides.Backend = stringFlag("backend")
	overrides.DBDir = stringFlag("db-dir")
	overrides.DBFilename = stringFlag("db-filename")
	overrides.Timezone = stringFlag("timezone")
	overrides.Locale = stringFlag("locale")
	overrides.LogLevel = stringFlag("log-level")
	overrides.LogFile = stringFlag("log-file")

	if flags.Changed("app-timeout") {
		timeout, _ := flags.GetDuration("app-timeout")
		overrides.Timeout = &timeout
	}
	if flags.Changed("verbose") {
		verbose, _ := flags.GetBool("verbose")
		overrides.Verbose = &verbose
	}

	return overrides
}
