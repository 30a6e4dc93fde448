package numlist

import (
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Load creates a number in the primary base from a file holding a decimal string.
//
// A missing or unreadable file, or invalid content, yields an empty number.
func Load(path string, opts ...Option) *Number {
	o := buildOptions(opts)

	data, err := afero.ReadFile(o.fs, path)
	if err != nil {
		o.logger.Debug("cannot read number, number is empty", "path", path, "error", err)
		return newNumber(o.config, o.config.PrimaryBase, o.logger, o.fs)
	}

	return Parse(string(data), opts...)
}

// Save writes the value in decimal to path, creating parent directories as needed.
//
// Callers that want a best effort save may ignore the error.
func (n *Number) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := n.fs.MkdirAll(dir, 0o755); err != nil {
			n.logger.Warn("cannot create directory", "path", dir, "error", err)
			return errors.Wrapf(err, "create %s", dir)
		}
	}

	if err := afero.WriteFile(n.fs, path, []byte(n.DecimalString()), 0o644); err != nil {
		n.logger.Warn("cannot save number", "path", path, "error", err)
		return errors.Wrapf(err, "save %s", path)
	}

	return nil
}
