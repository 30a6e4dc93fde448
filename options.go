package numlist

import (
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
)

// Option is a number configuration option.
type Option interface {
	apply(*numberOptions)
}

type numberOptions struct {
	config Config
	logger hclog.Logger
	fs     afero.Fs
}

func newDefaultNumberOptions() numberOptions {
	return numberOptions{
		config: DefaultConfig,
		logger: hclog.NewNullLogger(),
		fs:     afero.NewOsFs(),
	}
}

func buildOptions(opts []Option) numberOptions {
	o := newDefaultNumberOptions()
	for _, opt := range opts {
		opt.apply(&o)
	}
	return o
}

// WithConfig option configures the number with bases, operation and topology.
//
// It panics if the configuration is invalid.
func WithConfig(config Config) Option {
	if err := config.Validate(); err != nil {
		panic("numlist: " + err.Error())
	}

	return funcOption(func(opts *numberOptions) {
		opts.config = config
	})
}

// WithLogger option configures the logger soft failures are reported to.
//
// The nil value configures a null logger.
func WithLogger(logger hclog.Logger) Option {
	return funcOption(func(opts *numberOptions) {
		if logger == nil {
			logger = hclog.NewNullLogger()
		}
		opts.logger = logger
	})
}

// WithFs option configures the filesystem used by Load and Save.
//
// The nil value configures the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return funcOption(func(opts *numberOptions) {
		if fs == nil {
			fs = afero.NewOsFs()
		}
		opts.fs = fs
	})
}

type funcOption func(*numberOptions)

func (o funcOption) apply(opts *numberOptions) {
	o(opts)
}
