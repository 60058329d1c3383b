// SPDX-License-Identifier: MIT

package chain

import "github.com/sirupsen/logrus"

const panicNilLogger = "chain: WithLogger: logger must not be nil"

// Option configures Optimize and OptimizeChain.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	logger logrus.FieldLogger
}

// WithLogger routes the optimizer's debug tracing to l.
// Panics on a nil logger (programmer error).
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic(panicNilLogger)
	}
	return func(o *Options) { o.logger = l }
}

func defaultOptions() Options {
	return Options{logger: logrus.StandardLogger()}
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
