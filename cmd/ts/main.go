package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"

	"timesheet/internal/cli"
	"timesheet/internal/config"
	"timesheet/internal/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	if os.Getenv("NO_COLOR") != "" {
		pterm.DisableColor()
	}

	root := cli.NewRootCommand(config.NewLoader(), cli.OpenApp)
	if err := root.Execute(); err != nil {
		logging.Debugf("command failed: %v\n", err)
		fmt.Fprintln(os.Stderr, pterm.Error.Sprint(cli.NewErrorHandler().HandleSimple(err)))
		return 1
	}
	return 0
}
