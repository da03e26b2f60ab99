package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/BrandishRPG_Go/internal/logger"
)

const readinessTimeout = 2 * time.Second

const (
	statusOK          = "ok"
	statusUnavailable = "unavailable"
)

// HealthResponse lists the outcome of each readiness check by name
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Pinger is implemented by the game store
type Pinger interface {
	Ping(ctx context.Context) error
}

// ReadinessCheck names a dependency the server cannot serve without
type ReadinessCheck struct {
	Name   string
	Pinger Pinger
}

// HandleHealthz answers while the process is up
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: statusOK})
	}
}

// HandleReadyz pings every dependency under one shared deadline and reports
// 503 when any of them fails
func HandleReadyz(checks ...ReadinessCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		resp := HealthResponse{Status: statusOK, Checks: make(map[string]string, len(checks))}
		code := http.StatusOK
		for _, c := range checks {
			if err := c.Pinger.Ping(ctx); err != nil {
				logger.FromContext(ctx).Error("Readiness check failed", "check", c.Name, "error", err)
				resp.Checks[c.Name] = statusUnavailable
				resp.Status = statusUnavailable
				code = http.StatusServiceUnavailable
				continue
			}
			resp.Checks[c.Name] = statusOK
		}
		respondJSON(w, code, resp)
	}
}
