// Package command implements the numlist CLI commands.
package command

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mgnsk/numlist"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
)

// Meta holds the state shared by all commands.
type Meta struct {
	Ui     cli.Ui
	Logger hclog.Logger
	Fs     afero.Fs
	Config numlist.Config
}

// Commands returns the command factories keyed by command name.
func Commands(meta *Meta) map[string]cli.CommandFactory {
	return map[string]cli.CommandFactory{
		"show": func() (cli.Command, error) {
			return &ShowCommand{Meta: meta}, nil
		},
		"scale": func() (cli.Command, error) {
			return &ScaleCommand{Meta: meta}, nil
		},
		"apply": func() (cli.Command, error) {
			return &ApplyCommand{Meta: meta}, nil
		},
		"sort": func() (cli.Command, error) {
			return &SortCommand{Meta: meta}, nil
		},
		"rotate": func() (cli.Command, error) {
			return &RotateCommand{Meta: meta}, nil
		},
		"swap": func() (cli.Command, error) {
			return &SwapCommand{Meta: meta}, nil
		},
		"save": func() (cli.Command, error) {
			return &SaveCommand{Meta: meta}, nil
		},
		"load": func() (cli.Command, error) {
			return &LoadCommand{Meta: meta}, nil
		},
	}
}

func (m *Meta) options() []numlist.Option {
	return []numlist.Option{
		numlist.WithConfig(m.Config),
		numlist.WithLogger(m.Logger),
		numlist.WithFs(m.Fs),
	}
}

func (m *Meta) parse(s string) *numlist.Number {
	return numlist.Parse(s, m.options()...)
}

// flagSet parses args and checks the positional argument count.
// Usage errors are reported to the Ui.
func (m *Meta) flagSet(name string, args []string, nargs int, setup func(*flag.FlagSet)) ([]string, bool) {
	f := flag.NewFlagSet(name, flag.ContinueOnError)
	f.SetOutput(io.Discard)
	if setup != nil {
		setup(f)
	}

	if err := f.Parse(args); err != nil {
		m.Ui.Error(fmt.Sprintf("%s: %s", name, err))
		return nil, false
	}

	if f.NArg() != nargs {
		m.Ui.Error(fmt.Sprintf("%s: expected %d arguments, got %d", name, nargs, f.NArg()))
		return nil, false
	}

	return f.Args(), true
}

func (m *Meta) output(label string, n *numlist.Number) {
	digits := n.String()
	if n.IsEmpty() {
		digits = "(empty)"
	}
	m.Ui.Output(fmt.Sprintf("%s: %s (base %s) = %s", label, digits, n.Base(), n.DecimalString()))
}

func helpText(usage, description string) string {
	return strings.TrimSpace(fmt.Sprintf("Usage: numlist %s\n\n  %s", usage, description))
}
