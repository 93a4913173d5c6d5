package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gyaneshwarpardhi/payhook/internal/action"
	"github.com/gyaneshwarpardhi/payhook/internal/action/builtin"
	"github.com/gyaneshwarpardhi/payhook/internal/api"
	"github.com/gyaneshwarpardhi/payhook/internal/config"
	"github.com/gyaneshwarpardhi/payhook/internal/deadletter"
	"github.com/gyaneshwarpardhi/payhook/internal/engine"
	"github.com/gyaneshwarpardhi/payhook/internal/router"
	"github.com/gyaneshwarpardhi/payhook/pkg/event"
)

func main() {
	addr := flag.String("addr", ":8080", "HTTP listen address")
	cfgPath := flag.String("config", "configs/routes.yaml", "Path to routes YAML config")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// ── Load config ──────────────────────────────────────────────────────────
	loader, err := config.NewLoader(*cfgPath)
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	cfg := loader.Config()
	if err := config.Validate(cfg); err != nil {
		slog.Error("config validation failed", "err", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ── Dead-letter sink ─────────────────────────────────────────────────────
	sink, err := deadletter.Open(ctx, cfg.DeadLetter)
	if err != nil {
		slog.Error("failed to open dead letter sink", "driver", cfg.DeadLetter.Driver, "err", err)
		os.Exit(1)
	}
	defer sink.Close()

	// ── Action registry ───────────────────────────────────────────────────────
	reg := action.NewRegistry(
		builtin.NewLog(logger),
		builtin.NewCount(),
		builtin.NewDeadLetter(sink),
	)

	// ── Build initial routes ─────────────────────────────────────────────────
	rt, err := router.Build(cfg, reg)
	if err != nil {
		slog.Error("failed to build routes", "err", err)
		os.Exit(1)
	}
	slog.Info("routes built",
		"routes", len(rt.Routes()),
		"event_types", len(event.KnownTypes()),
		"families", event.Families(),
		"strict", cfg.Receiver.Strict,
	)

	// ── Engine ────────────────────────────────────────────────────────────────
	eng := engine.New(ctx, rt, reg, cfg.Receiver)

	// ── Hot-reload watcher ────────────────────────────────────────────────────
	eng.Follow(loader)
	stopWatch, err := loader.Watch()
	if err != nil {
		slog.Warn("config watcher unavailable (hot-reload disabled)", "err", err)
	} else {
		defer stopWatch()
	}

	// ── HTTP server ───────────────────────────────────────────────────────────
	handler := api.New(eng, loader, sink, logger)
	srv := &http.Server{
		Addr:         *addr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", *addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	// ── Graceful shutdown ─────────────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down…")

	shutCtx, shutCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutCancel()
	_ = srv.Shutdown(shutCtx)
	eng.Shutdown()
	cancel()
	slog.Info("goodbye")
}
