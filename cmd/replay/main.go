package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hastyy/collections/internal/collection"
	"github.com/hastyy/collections/internal/config"
	"github.com/hastyy/collections/internal/replay"
)

func main() {
	// Replies go to stdout, so logs go to stderr
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := parseConfig(logger)
	level.Set(cfg.LogLevel)

	// Component initialization
	cfg.Replay.Collection.Logger = logger.With("component", "collection")
	executor, err := replay.NewExecutor(cfg.Replay)
	if err != nil {
		logger.Error("unable to create executor", "error", err)
		os.Exit(1)
	}
	handler := replay.LoggedHandler(logger.With("component", "replay"), executor)
	runner := replay.NewRunner(cfg.Replay, replay.NewDecoder(executor.Kind()), handler)

	// When this context is cancelled the runner stops before the next line
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer cancel()

	if err := runner.Run(ctx, os.Stdin, os.Stdout); err != nil {
		logger.Error("replay stopped", "error", err)
		cancel()
		os.Exit(1)
	}
	logger.Debug("replay finished", "kind", executor.Kind())
}

func parseConfig(logger *slog.Logger) config.Config {
	var kind string
	flag.StringVar(&kind, "kind", string(replay.DefaultConfig.Kind), "collection to drive: arrayqueue, linkedqueue, arraystack, linkedstack, list or bst")

	var initialCapacity int
	flag.IntVar(&initialCapacity, "initialCapacity", collection.DefaultConfig.InitialCapacity, "initial backing array capacity of array-backed collections")

	var logLevel string
	flag.StringVar(&logLevel, "log.level", "info", "minimum log level: debug, info, warn or error")

	flag.Parse()

	k, err := replay.ParseKind(kind)
	if err != nil {
		logger.Error("unable to parse kind", "error", err)
		os.Exit(1)
	}

	if initialCapacity <= 0 {
		logger.Error("initialCapacity must be positive", "initialCapacity", initialCapacity)
		os.Exit(1)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		logger.Error("unable to parse log level", "error", err)
		os.Exit(1)
	}

	cfg := config.Config{
		Replay: replay.Config{
			Kind: k,
			Collection: collection.Config{
				InitialCapacity: initialCapacity,
			},
		},
		LogLevel: level,
	}

	return cfg.CombineWith(config.DefaultConfig)
}
