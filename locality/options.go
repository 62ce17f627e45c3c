package locality

import "runtime"

// Option customizes an Analyzer or a Sweep.
type Option func(*config)

type config struct {
	cyclic  bool
	workers int
}

func newConfig(opts ...Option) config {
	cfg := config{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithCyclicDistance measures the stretch of a closed curve along the shorter
// way round the loop: min(d, 4^n - d). It has no effect on open curves.
func WithCyclicDistance() Option {
	return func(c *config) {
		c.cyclic = true
	}
}

// WithWorkers bounds how many (curve, order) pairs Sweep computes at once.
// Panics on n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("locality: WithWorkers(n < 1)")
	}
	return func(c *config) {
		c.workers = n
	}
}
