package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/mgnsk/numlist"
)

func main() {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "example",
		Level:  hclog.Debug,
		Output: os.Stderr,
	})

	// Invalid input yields an empty number and a debug log line.
	empty := numlist.Parse("-42", numlist.WithLogger(logger))
	fmt.Println("empty:", empty.IsEmpty())

	n := numlist.Parse("173", numlist.WithLogger(logger))
	fmt.Printf("%s in base %s = %s\n", n, n.Base(), n.DecimalString())

	scaled := n.ChangeScale()
	fmt.Printf("%s in base %s = %s\n", scaled, scaled.Base(), scaled.DecimalString())

	result := n.Apply(numlist.Parse("5"))
	fmt.Printf("%s %s 5 = %s\n", n.DecimalString(), n.Config().Operation, result.DecimalString())

	n.SortDescending()
	n.RotateLeft()
	fmt.Println("sorted and rotated:", n)
}
