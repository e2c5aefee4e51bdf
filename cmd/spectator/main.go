// cmd/spectator/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"battle-of-bastions/internal/app"
	"battle-of-bastions/internal/defs"
	"battle-of-bastions/internal/logger"
	"battle-of-bastions/internal/spectator"

	"golang.org/x/sync/errgroup"
)

func main() {
	addr := flag.String("addr", "localhost:8080", "listen address")
	tick := flag.Duration("tick", time.Second/60, "simulation tick")
	seed := flag.Int64("seed", 0, "rng seed, 0 = time based")
	defsPath := flag.String("defs", "", "optional JSON stat overrides")
	flag.Parse()

	log := logger.Init()
	if *defsPath != "" {
		if err := defs.LoadDefinitions(*defsPath); err != nil {
			log.Error("load definitions", "err", err)
			os.Exit(1)
		}
	}
	if *tick <= 0 {
		log.Error("tick must be positive", "tick", *tick)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, log, *addr, *tick, *seed); err != nil {
		log.Error("spectator server stopped", "err", err)
		os.Exit(1)
	}
	log.Info("spectator server shutdown complete")
}

func run(ctx context.Context, log *slog.Logger, addr string, tick time.Duration, seed int64) error {
	game := app.NewGame(app.Options{Seed: seed, Logger: log})
	bot := app.NewAutopilot(game)
	hub := spectator.NewHub(log)

	srv := &http.Server{
		Addr:              addr,
		Handler:           spectator.NewMux(hub, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		log.InfoContext(ctx, "server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		log.InfoContext(ctx, "shutdown initiated")
		hub.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	eg.Go(func() error {
		ticker := time.NewTicker(tick)
		defer ticker.Stop()
		dt := float64(tick) / float64(time.Millisecond)
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				bot.Update(dt)
				game.Update(dt)
				snap := game.Snapshot()
				if err := hub.Broadcast(&snap); err != nil {
					return err
				}
			}
		}
	})
	return eg.Wait()
}
