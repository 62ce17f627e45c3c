package lsystem

// DefaultMaxSymbols bounds an expansion to 64 Mi symbols.
const DefaultMaxSymbols uint64 = 1 << 26

// Option customizes an Engine at construction.
type Option func(*config)

type config struct {
	maxSymbols uint64
}

func newConfig(opts ...Option) config {
	cfg := config{maxSymbols: DefaultMaxSymbols}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithMaxSymbols sets the largest expansion the engine will materialize.
// Panics on 0: an engine that can produce nothing is a programming error.
func WithMaxSymbols(n uint64) Option {
	if n == 0 {
		panic("lsystem: WithMaxSymbols(0)")
	}
	return func(c *config) {
		c.maxSymbols = n
	}
}
