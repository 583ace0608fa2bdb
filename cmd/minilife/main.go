// Command minilife runs the life-simulation HTTP server.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/talgya/mini-life/internal/api"
	"github.com/talgya/mini-life/internal/config"
	"github.com/talgya/mini-life/internal/economy"
	"github.com/talgya/mini-life/internal/entropy"
	"github.com/talgya/mini-life/internal/life"
	"github.com/talgya/mini-life/internal/persistence"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	slog.Info("mini-life starting", "port", cfg.Port, "db", cfg.DBPath)

	// ── Database ──────────────────────────────────────────────────────
	os.MkdirAll(filepath.Dir(cfg.DBPath), 0755)
	db, err := persistence.Open(cfg.DBPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("database opened", "path", cfg.DBPath)

	// ── Entropy ───────────────────────────────────────────────────────
	var src entropy.Source
	switch {
	case os.Getenv("RANDOM_ORG_KEY") != "":
		src = entropy.NewClient(os.Getenv("RANDOM_ORG_KEY"))
		slog.Info("entropy source: random.org")
	case cfg.Seed != 0:
		src = entropy.NewSeeded(cfg.Seed)
		slog.Info("entropy source: seeded", "seed", cfg.Seed)
	default:
		src = entropy.Crypto{}
		slog.Info("entropy source: crypto")
	}

	// ── Simulation ────────────────────────────────────────────────────
	sim := life.NewSim(life.Options{
		Source:   src,
		Market:   economy.NewMarket(cfg.Seed),
		Logger:   logger,
		BaseYear: cfg.BaseYear,
	})

	// ── HTTP API ──────────────────────────────────────────────────────
	server := api.NewServer(sim, db, cfg.Port)
	server.Start()

	fmt.Printf("mini-life is up: http://localhost:%d/api/v1/lives\n", cfg.Port)
	fmt.Println("Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	slog.Info("received signal, shutting down", "signal", sig)
}
