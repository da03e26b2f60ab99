// Package pgtest starts a throwaway Postgres container for integration tests.
package pgtest

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	Image          = "postgres:15-alpine"
	Database       = "brandishrpg_test"
	startupTimeout = 30 * time.Second
)

// Container is a running Postgres instance
type Container struct {
	ConnString string
	container  *postgres.PostgresContainer
}

// Start runs a container. testcontainers panics when Docker is missing; that
// is reported as an error so callers can skip instead of crash.
func Start(ctx context.Context) (c *Container, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("docker unavailable: %v", r)
		}
	}()

	pg, err := postgres.Run(ctx, Image,
		postgres.WithDatabase(Database),
		postgres.WithUsername("rpg"),
		postgres.WithPassword("rpg"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(startupTimeout)),
	)
	if err != nil {
		return nil, fmt.Errorf("start %s: %w", Image, err)
	}

	conn, err := pg.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = pg.Terminate(ctx)
		return nil, fmt.Errorf("connection string: %w", err)
	}
	return &Container{ConnString: conn, container: pg}, nil
}

// Terminate stops the container. It is safe on a nil Container.
func (c *Container) Terminate() {
	if c == nil {
		return
	}
	if err := c.container.Terminate(context.Background()); err != nil {
		log.Printf("terminate postgres container: %v", err)
	}
}

// StartOrLog is Start for TestMain: failures are logged and yield nil
func StartOrLog(ctx context.Context) *Container {
	c, err := Start(ctx)
	if err != nil {
		log.Printf("postgres integration tests will be skipped: %v", err)
		return nil
	}
	return c
}
