package command

// ShowCommand prints the digits of a decimal number in the primary base.
type ShowCommand struct {
	*Meta
}

func (c *ShowCommand) Run(args []string) int {
	args, ok := c.flagSet("show", args, 1, nil)
	if !ok {
		return 1
	}

	c.output("number", c.parse(args[0]))

	return 0
}

func (c *ShowCommand) Help() string {
	return helpText("show <decimal>", "Prints the digits of a number in the primary base.")
}

func (c *ShowCommand) Synopsis() string {
	return "Print a number in the primary base"
}

// ScaleCommand prints a decimal number in the additional base.
type ScaleCommand struct {
	*Meta
}

func (c *ScaleCommand) Run(args []string) int {
	args, ok := c.flagSet("scale", args, 1, nil)
	if !ok {
		return 1
	}

	n := c.parse(args[0])
	c.output("number", n)
	c.output("scaled", n.ChangeScale())

	return 0
}

func (c *ScaleCommand) Help() string {
	return helpText("scale <decimal>", "Prints a number in the primary and the additional base.")
}

func (c *ScaleCommand) Synopsis() string {
	return "Convert a number to the additional base"
}

// ApplyCommand applies the configured operation to two decimal numbers.
type ApplyCommand struct {
	*Meta
}

func (c *ApplyCommand) Run(args []string) int {
	args, ok := c.flagSet("apply", args, 2, nil)
	if !ok {
		return 1
	}

	a := c.parse(args[0])
	b := c.parse(args[1])

	c.Logger.Debug("applying operation", "op", c.Config.Operation, "a", a.DecimalString(), "b", b.DecimalString())
	c.output(c.Config.Operation.String(), a.Apply(b))

	return 0
}

func (c *ApplyCommand) Help() string {
	return helpText("apply <decimal> <decimal>", "Applies the configured operation to two numbers.")
}

func (c *ApplyCommand) Synopsis() string {
	return "Apply the configured operation"
}
