package distance

import (
	"runtime"

	"github.com/sirupsen/logrus"
)

// DefaultNSmallest is the number of lowest-weight outgoing edges relaxed
// per popped node.
const DefaultNSmallest = 5

type config struct {
	workers   int
	nSmallest int
	logger    *logrus.Logger
}

// Option configures Build.
type Option func(*config)

// WithWorkers overrides the worker-pool size (default runtime.NumCPU()).
// Values less than 1 are treated as 1.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n < 1 {
			n = 1
		}
		c.workers = n
	}
}

// WithNSmallest overrides the per-node relaxation pruning width (default
// DefaultNSmallest). Values less than 1 are treated as 1.
func WithNSmallest(n int) Option {
	return func(c *config) {
		if n < 1 {
			n = 1
		}
		c.nSmallest = n
	}
}

// WithLogger injects a logger for the debug message Build emits once the
// table is complete.
func WithLogger(l *logrus.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func newConfig(opts ...Option) *config {
	c := &config{
		workers:   runtime.NumCPU(),
		nSmallest: DefaultNSmallest,
		logger:    logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}
