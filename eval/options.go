// SPDX-License-Identifier: MIT

package eval

import "github.com/sirupsen/logrus"

const (
	panicNilLogger = "eval: WithLogger: logger must not be nil"
	panicNilStats  = "eval: WithStats: stats must not be nil"
)

// Option configures Evaluate.
type Option func(*Options)

// Options holds the effective evaluator configuration.
type Options struct {
	optimize bool
	logger   logrus.FieldLogger
	stats    *Stats
}

// WithoutOptimization evaluates the tree as grouped, skipping chain regrouping.
func WithoutOptimization() Option {
	return func(o *Options) { o.optimize = false }
}

// WithLogger routes debug tracing of the evaluator and the optimizer to l.
// Panics on a nil logger.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic(panicNilLogger)
	}
	return func(o *Options) { o.logger = l }
}

// WithStats records the work performed by Evaluate into s.
// s is reset at the start of every call. Panics on nil.
func WithStats(s *Stats) Option {
	if s == nil {
		panic(panicNilStats)
	}
	return func(o *Options) { o.stats = s }
}

func defaultOptions() Options {
	return Options{
		optimize: true,
		logger:   logrus.StandardLogger(),
	}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
