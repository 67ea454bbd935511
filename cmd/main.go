// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Command splay is a load and profiling driver for the splay trees.
// It builds a cohort of random monsters, links them into a by-name
// and a by-health tree and runs lookups against both.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.App{
		Name:  "splay",
		Usage: "load driver for intrusive splay trees",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "count",
				Usage: "number of monsters in the cohort",
				Value: 10_000,
			},
			&cli.IntFlag{
				Name:  "lookups",
				Usage: "number of lookups per tree",
				Value: 1_000_000,
			},
			&cli.Uint64Flag{
				Name:  "seed",
				Usage: "seed for the random generator, 0 means time based",
			},
			&cli.IntFlag{
				Name:  "chunk",
				Usage: "arena chunk size in elements",
				Value: 1024,
			},
			&cli.BoolFlag{
				Name:  "print",
				Usage: "print the by-health tree after the run",
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "log at debug level",
				EnvVars: []string{"SPLAY_DEBUG"},
			},
		},
		Action: run,
	}
	app.RunAndExitOnError()
}

func run(cctx *cli.Context) error {
	level := slog.LevelInfo
	if cctx.Bool("debug") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	count := cctx.Int("count")
	if count < 1 {
		return fmt.Errorf("invalid --count %d, must be positive", count)
	}
	lookups := cctx.Int("lookups")
	if lookups < 0 {
		return fmt.Errorf("invalid --lookups %d, must not be negative", lookups)
	}

	seed := cctx.Uint64("seed")
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	start := time.Now()
	h := newHorde(seed, cctx.Int("chunk"))
	h.spawn(count)
	logger.Info("cohort built",
		"monsters", h.names.Len(),
		"chunks", h.region.Chunks(),
		"seed", seed,
		"elapsed", time.Since(start),
	)
	logger.Debug("tree heights", "byName", h.names.Height(), "byHealth", h.healths.Height())

	start = time.Now()
	hits, misses := h.hunt(lookups)
	logger.Info("lookups done",
		"hits", hits,
		"misses", misses,
		"elapsed", time.Since(start),
	)
	logger.Debug("tree heights", "byName", h.names.Height(), "byHealth", h.healths.Height())

	if m, ok := h.strongest(); ok {
		logger.Info("strongest monster", "name", m.name, "health", m.health)
	}

	if cctx.Bool("print") {
		if err := h.healths.Fprint(os.Stdout); err != nil {
			return fmt.Errorf("printing tree: %w", err)
		}
	}

	start = time.Now()
	h.disband()
	logger.Info("cohort released", "elapsed", time.Since(start))

	return nil
}
