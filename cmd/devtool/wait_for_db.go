package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

type WaitForDBCommand struct{}

func (c *WaitForDBCommand) Name() string {
	return "wait-for-db"
}

func (c *WaitForDBCommand) Description() string {
	return "Wait for the database to accept connections"
}

func (c *WaitForDBCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	attempts := fs.Int("retries", 30, "connection attempts before giving up")
	interval := fs.Duration("interval", 2*time.Second, "delay between attempts")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *attempts < 1 {
		return fmt.Errorf("-retries must be at least 1")
	}

	PrintHeader("Waiting for database...")
	dbURL := databaseURL()
	PrintInfo("Target: %s", redactPassword(dbURL))

	err := retry(*attempts, *interval, func(int) error {
		ctx, cancel := context.WithTimeout(context.Background(), *interval)
		defer cancel()
		conn, err := pgx.Connect(ctx, dbURL)
		if err != nil {
			return err
		}
		defer conn.Close(ctx)
		return conn.Ping(ctx)
	})
	if err != nil {
		return fmt.Errorf("database not ready after %d attempts: %w", *attempts, err)
	}

	PrintSuccess("Database is ready")
	return nil
}
