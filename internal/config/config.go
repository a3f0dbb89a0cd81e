package config

import (
	"log/slog"

	"github.com/hastyy/collections/internal/replay"
)

type Config struct {
	Replay replay.Config

	// The minimum level the replay tool logs at. The zero value is slog.LevelInfo.
	LogLevel slog.Level
}

var DefaultConfig = Config{
	Replay: replay.DefaultConfig,
}

func (cfg Config) CombineWith(other Config) Config {
	cfg.Replay = cfg.Replay.CombineWith(other.Replay)
	return cfg
}
