package fastecs

import "go.uber.org/zap"

// config holds construction-time settings for a store.
type config struct {
	threading Threading
	logger    *zap.Logger
}

func defaultConfig() config {
	return config{
		threading: Multi,
		logger:    zap.NewNop(),
	}
}

// Option configures a store at construction time.
type Option func(*config)

// WithThreading sets the store's threading mode. The default is Multi.
func WithThreading(t Threading) Option {
	return func(c *config) { c.threading = t }
}

// WithLogger attaches a logger to the store. System runs and joins are
// reported at debug level. The default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) { c.logger = l }
}
