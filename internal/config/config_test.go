package config

import (
	"log/slog"
	"testing"

	"github.com/hastyy/collections/internal/collection"
	"github.com/hastyy/collections/internal/replay"
	"github.com/stretchr/testify/require"
)

func TestCombineWith(t *testing.T) {
	require := require.New(t)

	cfg := Config{
		Replay:   replay.Config{Kind: replay.KindList},
		LogLevel: slog.LevelDebug,
	}.CombineWith(DefaultConfig)

	require.Equal(replay.KindList, cfg.Replay.Kind)
	require.Equal(collection.DefaultConfig.InitialCapacity, cfg.Replay.Collection.InitialCapacity)
	require.NotNil(cfg.Replay.Collection.Logger)
	require.Equal(slog.LevelDebug, cfg.LogLevel)
}

func TestCombineWith_EmptyTakesDefaults(t *testing.T) {
	require := require.New(t)

	cfg := Config{}.CombineWith(DefaultConfig)
	require.Equal(DefaultConfig.Replay.Kind, cfg.Replay.Kind)
	require.Equal(DefaultConfig.Replay.Collection.InitialCapacity, cfg.Replay.Collection.InitialCapacity)
	require.Equal(slog.LevelInfo, cfg.LogLevel)
}
