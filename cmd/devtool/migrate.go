package main

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/BrandishRPG_Go/internal/database"
)

const migrationsDir = "internal/database/migrations"

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Manage database migrations (up, down, status, create)"
}

func (c *MigrateCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: up, down, status, create")
	}
	subcmd := args[0]

	gooseArgs := []string{"run", "github.com/pressly/goose/v3/cmd/goose", "-dir", migrationsDir}

	switch subcmd {
	case "create":
		if len(args) < 2 {
			return fmt.Errorf("migration name required for create")
		}
		migrationType := "sql"
		if len(args) > 2 {
			migrationType = args[2]
		}
		gooseArgs = append(gooseArgs, "create", args[1], migrationType)
		return runCommandVerbose("go", gooseArgs...)

	case "up":
		// Same embedded migrations the server applies on startup
		return c.up()
	}

	gooseArgs = append(gooseArgs, "postgres", databaseURL(), subcmd)
	if len(args) > 1 {
		gooseArgs = append(gooseArgs, args[1:]...)
	}
	return runCommandVerbose("go", gooseArgs...)
}

func (c *MigrateCommand) up() error {
	dbURL := databaseURL()
	PrintInfo("Applying migrations to %s", redactPassword(dbURL))

	pool, err := database.NewPool(dbURL, 2, time.Minute, 5*time.Minute)
	if err != nil {
		return err
	}
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	if err := database.Migrate(ctx, pool); err != nil {
		return err
	}
	PrintSuccess("Migrations applied")
	return nil
}
