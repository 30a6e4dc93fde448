// Command numlist inspects and transforms numbers stored as digit lists.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/hashicorp/go-hclog"
	"github.com/mgnsk/numlist"
	"github.com/mgnsk/numlist/internal/command"
	"github.com/mitchellh/cli"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const version = "0.1.0"

func main() {
	os.Exit(realMain())
}

func realMain() int {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "numlist",
		Level:  hclog.LevelFromString(os.Getenv("NUMLIST_LOG")),
		Output: os.Stderr,
	})

	ui := &cli.BasicUi{
		Reader:      os.Stdin,
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}

	config, err := configFromEnv()
	if err != nil {
		ui.Error(err.Error())
		return 1
	}
	logger.Debug("using configuration",
		"primary", config.PrimaryBase,
		"additional", config.AdditionalBase,
		"op", config.Operation,
		"topology", config.Topology,
	)

	meta := &command.Meta{
		Ui:     ui,
		Logger: logger,
		Fs:     afero.NewOsFs(),
		Config: config,
	}

	c := cli.NewCLI("numlist", version)
	c.Args = os.Args[1:]
	c.Commands = command.Commands(meta)

	status, err := c.Run()
	if err != nil {
		ui.Error(fmt.Sprintf("Error executing CLI: %s", err))
		return 1
	}

	return status
}

// configFromEnv derives the configuration from NUMLIST_RECORD,
// falling back to the default record book number.
func configFromEnv() (numlist.Config, error) {
	record := numlist.DefaultRecordBook

	if s := os.Getenv("NUMLIST_RECORD"); s != "" {
		r, err := strconv.Atoi(s)
		if err != nil {
			return numlist.Config{}, errors.Wrapf(err, "invalid NUMLIST_RECORD %q", s)
		}
		record = r
	}

	return numlist.ConfigFor(record), nil
}
