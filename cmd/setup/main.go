// Command setup creates the configured database when missing and applies
// the embedded migrations.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"

	"github.com/osse101/BrandishRPG_Go/internal/database"
)

const setupTimeout = 2 * time.Minute

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	ctx, cancel := context.WithTimeout(context.Background(), setupTimeout)
	defer cancel()

	if err := run(ctx, os.Getenv("DB_NAME")); err != nil {
		slog.Error("Setup failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, dbName string) error {
	if dbName == "" {
		return fmt.Errorf("DB_NAME must be set")
	}

	created, err := ensureDatabase(ctx, dbName)
	if err != nil {
		return err
	}
	slog.Info("Database ready", "database", dbName, "created", created)

	pool, err := database.NewPool(database.EnvConnString(dbName), 2, 30*time.Minute, time.Hour)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", dbName, err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		return fmt.Errorf("migrate %s: %w", dbName, err)
	}
	slog.Info("Migrations applied", "database", dbName)
	return nil
}

// ensureDatabase creates dbName from the maintenance database when absent
func ensureDatabase(ctx context.Context, dbName string) (bool, error) {
	conn, err := pgx.Connect(ctx, database.EnvConnString(database.MaintenanceDB))
	if err != nil {
		return false, fmt.Errorf("connect to maintenance database: %w", err)
	}
	defer func() { _ = conn.Close(context.Background()) }()

	var exists bool
	if err := conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", dbName).Scan(&exists); err != nil {
		return false, fmt.Errorf("look up database %s: %w", dbName, err)
	}
	if exists {
		return false, nil
	}

	if _, err := conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{dbName}.Sanitize()); err != nil {
		return false, fmt.Errorf("create database %s: %w", dbName, err)
	}
	return true, nil
}
