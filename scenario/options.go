package scenario

import (
	"github.com/rs/zerolog"

	"github.com/ttn-nguyen42/linkedlist/util"
)

type Options struct {
	StopOnFailure bool
	Logger        *zerolog.Logger
	RunID         string
}

func defaultOptions() *Options {
	nop := zerolog.Nop()
	return &Options{
		StopOnFailure: false,
		Logger:        &nop,
		RunID:         util.NewRunID(),
	}
}

type Option func(o *Options)

// WithStopOnFailure ends a scenario at its first failing step.
func WithStopOnFailure() Option {
	return func(o *Options) {
		o.StopOnFailure = true
	}
}

func WithLogger(logger *zerolog.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

func WithRunID(id string) Option {
	return func(o *Options) {
		if len(id) > 0 {
			o.RunID = id
		}
	}
}
