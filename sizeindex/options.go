package sizeindex

import "github.com/datatrails/go-datatrails-common/logger"

type Options struct {
	log logger.Logger
}

type Option func(*Options)

// WithLogger has the index log reconfiguration, cache growth and resets at
// debug level. Without it the index is silent.
func WithLogger(log logger.Logger) Option {
	return func(opts *Options) {
		opts.log = log
	}
}
