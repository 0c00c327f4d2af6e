package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/zeusync/arena/internal/config"
	"github.com/zeusync/arena/internal/core/events"
	"github.com/zeusync/arena/internal/core/events/bus"
	"github.com/zeusync/arena/internal/core/observability/log"
	"github.com/zeusync/arena/internal/injector"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, "arena:", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}

	app, err := injector.InitializeApp(cfg)
	if err != nil {
		return err
	}
	logger := app.Logger
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, err = app.World.Bus().Subscribe(events.TypeHit, func(e bus.Event) error {
		hit := e.Data().(events.Hit)
		logger.Info("tank destroyed",
			log.Uint64("tick", hit.Tick),
			log.Uint64("tank", uint64(hit.Tank)),
			log.Int("deaths", hit.Deaths),
		)
		return nil
	})
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		interval := cfg.Arena.TickInterval()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		logger.Info("simulation started",
			log.Int("tick_rate", cfg.Arena.TickRate),
			log.Duration("interval", interval),
		)
		for {
			select {
			case <-ctx.Done():
				logger.Info("simulation stopped", log.Uint64("ticks", app.World.FrameCount()))
				return nil
			case <-ticker.C:
				if err := app.World.Tick(interval.Seconds()); err != nil {
					return err
				}
				if cfg.Debug.Enabled {
					app.Debug.Broadcast(app.World.Snapshot())
				}
			}
		}
	})

	if cfg.Debug.Enabled {
		g.Go(func() error { return app.Debug.Run(ctx) })
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("arena stopped with error", log.Error(err))
		return err
	}
	return nil
}
