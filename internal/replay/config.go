package replay

import "github.com/hastyy/collections/internal/collection"

type Config struct {
	// Config values
	// The collection the script drives. It defaults to KindArrayQueue.
	Kind Kind

	// The config passed to array-backed collections. Linked kinds ignore it.
	Collection collection.Config

	// The longest script line, in bytes, the Runner decodes. It defaults to 64 KiB.
	MaxLineLength int
}

// DefaultConfig specifies the default config values for a replay.
var DefaultConfig = Config{
	Kind:          KindArrayQueue,
	Collection:    collection.DefaultConfig,
	MaxLineLength: 64 * 1024,
}

// CombineWith takes the values from the other config and combines them with the values from the current config.
// Specifically, it fills the gaps on the current config (unset values) with the corresponding values from the other config (if it has them).
func (cfg Config) CombineWith(other Config) Config {
	if cfg.Kind == "" {
		cfg.Kind = other.Kind
	}
	cfg.Collection = cfg.Collection.CombineWith(other.Collection)
	if cfg.MaxLineLength == 0 {
		cfg.MaxLineLength = other.MaxLineLength
	}
	return cfg
}
