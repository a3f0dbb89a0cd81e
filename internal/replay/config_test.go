package replay

import (
	"log/slog"
	"testing"

	"github.com/hastyy/collections/internal/collection"
	"github.com/stretchr/testify/require"
)

func TestConfig_CombineWith(t *testing.T) {
	require := require.New(t)

	cfg := Config{Collection: collection.Config{InitialCapacity: 4}}.CombineWith(DefaultConfig)
	require.Equal(KindArrayQueue, cfg.Kind)
	require.Equal(4, cfg.Collection.InitialCapacity)
	require.Same(DefaultConfig.Collection.Logger, cfg.Collection.Logger)
	require.Equal(64*1024, cfg.MaxLineLength)

	logger := slog.New(slog.DiscardHandler)
	cfg = Config{Kind: KindBST, Collection: collection.Config{Logger: logger}, MaxLineLength: 80}.CombineWith(DefaultConfig)
	require.Equal(80, cfg.MaxLineLength)
	require.Equal(KindBST, cfg.Kind)
	require.Equal(collection.DefaultConfig.InitialCapacity, cfg.Collection.InitialCapacity)
	require.Same(logger, cfg.Collection.Logger)
}
