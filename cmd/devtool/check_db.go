package main

import (
	"fmt"
	"strings"
	"time"
)

const (
	composeDBService = "db"
	dbReadyAttempts  = 30
)

type CheckDBCommand struct{}

func (c *CheckDBCommand) Name() string {
	return "check-db"
}

func (c *CheckDBCommand) Description() string {
	return "Start the compose database if needed and wait until it is ready"
}

func (c *CheckDBCommand) Run(args []string) error {
	PrintHeader("Checking Docker database status...")

	if err := runCommand("docker", "compose", "version"); err != nil {
		return fmt.Errorf("docker compose not found: %w", err)
	}

	status, _ := getCommandOutput("docker", "compose", "ps", composeDBService)
	status = strings.ToLower(status)
	if strings.Contains(status, "up") || strings.Contains(status, "running") {
		PrintSuccess("Database is already running")
		return nil
	}

	PrintInfo("Starting database...")
	if err := runCommandVerbose("docker", "compose", "up", "-d", composeDBService); err != nil {
		return fmt.Errorf("error starting database: %w", err)
	}

	user := getEnv("DB_USER", "postgres")
	name := getEnv("DB_NAME", appName)
	err := retry(dbReadyAttempts, time.Second, func(int) error {
		return runCommand("docker", "compose", "exec", "-T", composeDBService, "pg_isready", "-U", user, "-d", name)
	})
	if err != nil {
		PrintError("Database not ready after %d attempts", dbReadyAttempts)
		_ = runCommandVerbose("docker", "compose", "logs", composeDBService)
		return fmt.Errorf("database failed to start: %w", err)
	}

	PrintSuccess("Database is ready")
	return nil
}
