package command

import (
	"fmt"

	"github.com/mgnsk/numlist"
)

// SaveCommand writes a decimal number to a file.
type SaveCommand struct {
	*Meta
}

func (c *SaveCommand) Run(args []string) int {
	args, ok := c.flagSet("save", args, 2, nil)
	if !ok {
		return 1
	}

	n := c.parse(args[0])
	if err := n.Save(args[1]); err != nil {
		c.Ui.Error(fmt.Sprintf("save: %s", err))
		return 1
	}
	c.output("saved", n)

	return 0
}

func (c *SaveCommand) Help() string {
	return helpText("save <decimal> <file>", "Writes a number to a file in decimal.")
}

func (c *SaveCommand) Synopsis() string {
	return "Save a number to a file"
}

// LoadCommand reads a decimal number from a file.
type LoadCommand struct {
	*Meta
}

func (c *LoadCommand) Run(args []string) int {
	args, ok := c.flagSet("load", args, 1, nil)
	if !ok {
		return 1
	}

	c.output("loaded", numlist.Load(args[0], c.options()...))

	return 0
}

func (c *LoadCommand) Help() string {
	return helpText("load <file>", "Reads a decimal number from a file. A missing or invalid file yields an empty number.")
}

func (c *LoadCommand) Synopsis() string {
	return "Load a number from a file"
}
