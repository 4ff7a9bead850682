package medium

// Config holds the plain settings of a channel.
// It can be populated from the environment with the config package.
type Config struct {
	// Name identifies the channel in logs, errors and metrics.
	// Default: "medium".
	Name string
	// Recover converts listener panics into a RecoveryError returned by Send.
	Recover bool
	// DisableLogging silences the channel regardless of the configured logger.
	DisableLogging bool
}

// Option configures behavior of a Channel.
type Option func(*config)

type config struct {
	name             string
	recover          bool
	logger           Logger
	disableLogging   bool
	metricsCollector []MetricsCollector
}

func parseConfig(opts []Option) config {
	c := config{
		name: "medium",
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.logger == nil {
		c.logger = logger
	}
	if c.disableLogging {
		c.logger = nopLogger{}
	}
	return c
}

// WithName sets the channel name used in logs, errors and metrics.
func WithName(name string) Option {
	return func(cfg *config) {
		if name != "" {
			cfg.name = name
		}
	}
}

// WithLogger overrides the default logger for the channel.
func WithLogger(l Logger) Option {
	return func(cfg *config) {
		cfg.logger = l
	}
}

// WithRecover enables recovery from listener panics.
func WithRecover(enabled bool) Option {
	return func(cfg *config) {
		cfg.recover = enabled
	}
}

// WithMetricsCollector adds a metrics collector invoked after every Send.
// Can be used multiple times to add multiple collectors.
func WithMetricsCollector(collector MetricsCollector) Option {
	return func(cfg *config) {
		cfg.metricsCollector = append(cfg.metricsCollector, collector)
	}
}

// WithConfig applies all settings from c.
func WithConfig(c Config) Option {
	return func(cfg *config) {
		if c.Name != "" {
			cfg.name = c.Name
		}
		cfg.recover = c.Recover
		cfg.disableLogging = c.DisableLogging
	}
}
