// Command reset drops and recreates the configured database, then applies
// the embedded migrations. Every character and item is lost.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"

	"github.com/osse101/BrandishRPG_Go/internal/database"
)

const resetTimeout = 2 * time.Minute

const terminateBackends = `
	SELECT pg_terminate_backend(pid)
	FROM pg_stat_activity
	WHERE datname = $1 AND pid <> pg_backend_pid()`

func main() {
	force := flag.Bool("force", false, "skip the confirmation guard")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	dbName := os.Getenv("DB_NAME")
	if !*force && os.Getenv("ENVIRONMENT") == "prod" {
		slog.Error("Refusing to reset a prod database without -force", "database", dbName)
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), resetTimeout)
	defer cancel()

	if err := run(ctx, dbName); err != nil {
		slog.Error("Reset failed", "database", dbName, "error", err)
		os.Exit(1)
	}
	slog.Info("Database reset complete", "database", dbName)
}

func run(ctx context.Context, dbName string) error {
	if dbName == "" {
		return fmt.Errorf("DB_NAME must be set")
	}
	if err := recreate(ctx, dbName); err != nil {
		return err
	}

	pool, err := database.NewPool(database.EnvConnString(dbName), 2, 30*time.Minute, time.Hour)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", dbName, err)
	}
	defer pool.Close()
	return database.Migrate(ctx, pool)
}

// recreate drops dbName, closing other sessions first, and creates it empty
func recreate(ctx context.Context, dbName string) error {
	conn, err := pgx.Connect(ctx, database.EnvConnString(database.MaintenanceDB))
	if err != nil {
		return fmt.Errorf("connect to maintenance database: %w", err)
	}
	defer func() { _ = conn.Close(context.Background()) }()

	if _, err := conn.Exec(ctx, terminateBackends, dbName); err != nil {
		slog.Warn("Could not terminate open sessions", "database", dbName, "error", err)
	}

	ident := pgx.Identifier{dbName}.Sanitize()
	for _, stmt := range []string{"DROP DATABASE IF EXISTS " + ident, "CREATE DATABASE " + ident} {
		slog.Info("Executing", "statement", stmt)
		if _, err := conn.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("%s: %w", stmt, err)
		}
	}
	return nil
}
