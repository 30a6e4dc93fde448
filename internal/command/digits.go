package command

import (
	"flag"
	"fmt"
	"strconv"
)

// SortCommand sorts the digits of a number.
type SortCommand struct {
	*Meta
}

func (c *SortCommand) Run(args []string) int {
	var desc bool

	args, ok := c.flagSet("sort", args, 1, func(f *flag.FlagSet) {
		f.BoolVar(&desc, "desc", false, "sort in descending order")
	})
	if !ok {
		return 1
	}

	n := c.parse(args[0])
	if desc {
		n.SortDescending()
	} else {
		n.SortAscending()
	}
	c.output("sorted", n)

	return 0
}

func (c *SortCommand) Help() string {
	return helpText("sort [-desc] <decimal>", "Sorts the digits of a number in the primary base.")
}

func (c *SortCommand) Synopsis() string {
	return "Sort the digits of a number"
}

// RotateCommand rotates the digits of a number by one position.
type RotateCommand struct {
	*Meta
}

func (c *RotateCommand) Run(args []string) int {
	var right bool

	args, ok := c.flagSet("rotate", args, 1, func(f *flag.FlagSet) {
		f.BoolVar(&right, "right", false, "rotate to the right")
	})
	if !ok {
		return 1
	}

	n := c.parse(args[0])
	if right {
		n.RotateRight()
	} else {
		n.RotateLeft()
	}
	c.output("rotated", n)

	return 0
}

func (c *RotateCommand) Help() string {
	return helpText("rotate [-right] <decimal>", "Rotates the digits of a number in the primary base.")
}

func (c *RotateCommand) Synopsis() string {
	return "Rotate the digits of a number"
}

// SwapCommand swaps two digits of a number.
type SwapCommand struct {
	*Meta
}

func (c *SwapCommand) Run(args []string) int {
	args, ok := c.flagSet("swap", args, 3, nil)
	if !ok {
		return 1
	}

	var indexes [2]int
	for k, s := range args[1:] {
		i, err := strconv.Atoi(s)
		if err != nil {
			c.Ui.Error(fmt.Sprintf("swap: invalid index %q", s))
			return 1
		}
		indexes[k] = i
	}

	n := c.parse(args[0])
	if !n.Swap(indexes[0], indexes[1]) {
		c.Ui.Error(fmt.Sprintf("swap: index out of range for %d digits", n.Len()))
		return 1
	}
	c.output("swapped", n)

	return 0
}

func (c *SwapCommand) Help() string {
	return helpText("swap <decimal> <index> <index>", "Swaps two digits of a number in the primary base.")
}

func (c *SwapCommand) Synopsis() string {
	return "Swap two digits of a number"
}
