package split

import "github.com/rs/zerolog"

// Reporter receives user-facing progress events during a run.
// Implementations must be safe to call from a single goroutine only.
type Reporter interface {
	// Created is called after each output file is fully written.
	Created(path string)
}

// Option configures optional behavior of a Splitter.
type Option func(*options)

type options struct {
	logger   zerolog.Logger
	reporter Reporter
}

func defaultOptions() options {
	return options{
		logger:   zerolog.Nop(),
		reporter: noopReporter{},
	}
}

// WithLogger sets the logger for diagnostic output. Without it, logging
// is disabled.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithReporter sets the progress reporter. Without it, progress events
// are dropped.
func WithReporter(r Reporter) Option {
	return func(o *options) {
		if r != nil {
			o.reporter = r
		}
	}
}

type noopReporter struct{}

func (noopReporter) Created(string) {}
