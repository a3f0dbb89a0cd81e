package collection

import "log/slog"

type Config struct {
	// Config values
	// The number of slots an array-backed collection starts with.
	InitialCapacity int

	// Dependencies
	// The logger used to report backing array growth. It defaults to a logger that discards everything.
	Logger *slog.Logger
}

// DefaultConfig specifies the default config values for array-backed collections.
var DefaultConfig = Config{
	InitialCapacity: 9,
	Logger:          slog.New(slog.DiscardHandler),
}

// CombineWith takes the values from the other config and combines them with the values from the current config.
// Specifically, it fills the gaps on the current config (unset values) with the corresponding values from the other config (if it has them).
func (cfg Config) CombineWith(other Config) Config {
	if cfg.InitialCapacity == 0 {
		cfg.InitialCapacity = other.InitialCapacity
	}
	if cfg.Logger == nil {
		cfg.Logger = other.Logger
	}
	return cfg
}
