package main

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"slices"
	"time"

	"github.com/osse101/BrandishRPG_Go/internal/handler"
)

const (
	healthTimeout      = 5 * time.Second
	slowResponseWarnAt = time.Second
)

type HealthCheckCommand struct{}

func (c *HealthCheckCommand) Name() string {
	return "health-check"
}

func (c *HealthCheckCommand) Description() string {
	return "Probe /healthz and /readyz of a running server (staging, production)"
}

func (c *HealthCheckCommand) Run(args []string) error {
	env := envProduction
	if len(args) > 0 {
		env = args[0]
	}
	base, err := serverURL(env)
	if err != nil {
		return err
	}
	PrintHeader(fmt.Sprintf("Health Check (%s, %s)", env, base))

	ctx, cancel := context.WithTimeout(context.Background(), healthTimeout)
	defer cancel()

	for _, path := range []string{"/healthz", "/readyz"} {
		start := time.Now()
		health, code, err := probe(ctx, base+path)
		elapsed := time.Since(start).Round(time.Millisecond)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		for _, name := range slices.Sorted(maps.Keys(health.Checks)) {
			PrintInfo("  %s: %s", name, health.Checks[name])
		}
		switch {
		case code != http.StatusOK:
			return fmt.Errorf("%s answered %d (%s)", path, code, health.Status)
		case elapsed > slowResponseWarnAt:
			PrintWarning("%s ok but slow (%v)", path, elapsed)
		default:
			PrintSuccess("%s ok (%v)", path, elapsed)
		}
	}
	return nil
}

func serverURL(env string) (string, error) {
	switch env {
	case envProduction:
		return "http://127.0.0.1:" + getEnv("PORT", "8080"), nil
	case envStaging:
		return "http://127.0.0.1:" + getEnv("STAGING_PORT", "8081"), nil
	}
	return "", fmt.Errorf("unknown environment %q", env)
}

func probe(ctx context.Context, url string) (handler.HealthResponse, int, error) {
	var health handler.HealthResponse
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return health, 0, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return health, 0, err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return health, resp.StatusCode, fmt.Errorf("decode body: %w", err)
	}
	return health, resp.StatusCode, nil
}
