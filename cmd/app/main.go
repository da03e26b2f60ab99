package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/BrandishRPG_Go/internal/bootstrap"
	"github.com/osse101/BrandishRPG_Go/internal/config"
	"github.com/osse101/BrandishRPG_Go/internal/database"
	"github.com/osse101/BrandishRPG_Go/internal/server"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Failed to load configuration: %v", err)
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Printf("Failed to set up logging: %v", err)
		return err
	}
	defer logFile.Close()

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		slog.Warn("Configuration warning", "warning", w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}
	if err := database.Migrate(ctx, dbPool); err != nil {
		dbPool.Close()
		return err
	}

	tables, err := bootstrap.LoadSetTables(cfg.SetTablesPath)
	if err != nil {
		dbPool.Close()
		return err
	}

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		dbPool.Close()
		return err
	}

	stores := bootstrap.InitializeStores(dbPool, cfg)
	services := bootstrap.InitializeServices(stores, tables, cfg, publisher)
	if err := bootstrap.RegisterEventHandlers(bus, services.Events); err != nil {
		dbPool.Close()
		return err
	}
	jobs := bootstrap.StartBackgroundJobs(cfg, services.Arena, publisher, services.Events)

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		ServiceName:    cfg.ServiceName,
		Version:        cfg.Version,
	}, services.Services)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		Jobs:               jobs,
		ResilientPublisher: publisher,
		DBPool:             dbPool,
	})

	return err
}
