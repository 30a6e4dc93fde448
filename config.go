package numlist

import (
	"github.com/hashicorp/go-multierror"
	"github.com/mgnsk/numlist/list"
	"github.com/pkg/errors"
)

// DefaultRecordBook is the record book number DefaultConfig is derived from.
const DefaultRecordBook = 3517

// DefaultConfig is the configuration used unless WithConfig overrides it.
var DefaultConfig = ConfigFor(DefaultRecordBook)

// Config fixes the bases, the additional operation and the list topology of numbers.
type Config struct {
	// PrimaryBase is the base numbers are constructed in.
	PrimaryBase Base
	// AdditionalBase is the base ChangeScale converts to.
	AdditionalBase Base
	// Operation is the binary operation applied by Apply.
	Operation Operation
	// Topology is the digit list topology.
	Topology list.Topology
}

// topologies is indexed by the record book number mod 3.
var topologies = [...]list.Topology{
	list.LinearDoubly,
	list.CircularSingly,
	list.CircularDoubly,
}

// ConfigFor derives a configuration from a record book number.
//
// The number mod 3 selects the topology, mod 5 selects the primary base
// with the next catalog entry as the additional base and mod 7 selects
// the operation.
func ConfigFor(record int) Config {
	if record < 0 {
		record = -record
	}

	c5 := record % len(Bases)

	return Config{
		PrimaryBase:    Bases[c5],
		AdditionalBase: Bases[(c5+1)%len(Bases)],
		Operation:      Operation(record % len(operationNames)),
		Topology:       topologies[record%len(topologies)],
	}
}

// Validate reports every invalid field of c.
func (c Config) Validate() error {
	var result *multierror.Error

	if !c.PrimaryBase.Valid() {
		result = multierror.Append(result, errors.Wrapf(ErrInvalidBase, "primary base %d", c.PrimaryBase))
	}

	if !c.AdditionalBase.Valid() {
		result = multierror.Append(result, errors.Wrapf(ErrInvalidBase, "additional base %d", c.AdditionalBase))
	}

	if !c.Operation.Valid() {
		result = multierror.Append(result, errors.Wrapf(ErrInvalidOperation, "operation %d", c.Operation))
	}

	if !c.Topology.Valid() {
		result = multierror.Append(result, errors.Wrapf(ErrInvalidTopology, "topology %d", c.Topology))
	}

	return result.ErrorOrNil()
}
