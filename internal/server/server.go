package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/BrandishRPG_Go/internal/adventure"
	"github.com/osse101/BrandishRPG_Go/internal/character"
	"github.com/osse101/BrandishRPG_Go/internal/duel"
	"github.com/osse101/BrandishRPG_Go/internal/equipment"
	"github.com/osse101/BrandishRPG_Go/internal/eventlog"
	"github.com/osse101/BrandishRPG_Go/internal/handler"
	"github.com/osse101/BrandishRPG_Go/internal/metrics"
)

// Options carries the HTTP settings of the server
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	ServiceName    string
	Version        string
}

// Services are the game services exposed over HTTP
type Services struct {
	Store      handler.Pinger
	Characters character.Service
	Equipment  equipment.Service
	Duels      duel.Service
	Adventures adventure.Service
	Events     eventlog.Service
}

type Server struct {
	httpServer *http.Server
	router     chi.Router
}

// NewServer creates a new Server instance
func NewServer(opts Options, svc Services) *Server {
	r := chi.NewRouter()

	// Outermost first
	detector := NewSuspiciousActivityDetector()

	r.Use(middleware.Recoverer)
	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Unversioned operational routes
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(handler.ReadinessCheck{Name: "database", Pinger: svc.Store}))
	r.Get("/version", handler.HandleVersion(opts.ServiceName, opts.Version))
	r.Handle("/metrics", promhttp.Handler())

	characterHandler := handler.NewCharacterHandler(svc.Characters)
	equipmentHandler := handler.NewEquipmentHandler(svc.Equipment)
	duelHandler := handler.NewDuelHandler(svc.Duels)
	adventureHandler := handler.NewAdventureHandler(svc.Adventures)
	eventLogHandler := handler.NewEventLogHandler(svc.Events)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/characters", func(r chi.Router) {
			r.Post("/", characterHandler.HandleCreate)

			r.Route("/{characterID}", func(r chi.Router) {
				r.Get("/", characterHandler.HandleGet)
				r.Get("/profile", characterHandler.HandleProfile)
				r.Post("/migrate-buffs", characterHandler.HandleMigrateBuffs)

				r.Post("/items", equipmentHandler.HandleGenerateFor)
				r.Post("/enhance", equipmentHandler.HandleEnhance)
				r.Post("/equip", equipmentHandler.HandleEquip)
				r.Post("/unequip", equipmentHandler.HandleUnequip)

				r.Post("/adventure", adventureHandler.HandleAdventure)
				r.Post("/raid", adventureHandler.HandleRaid)
				r.Get("/events", eventLogHandler.HandleHistory)
			})
		})

		r.Route("/items", func(r chi.Router) {
			r.Post("/", equipmentHandler.HandleGenerate)
			r.Get("/{itemID}", equipmentHandler.HandleGetItem)
		})

		r.Route("/duels", func(r chi.Router) {
			r.Post("/", duelHandler.HandleChallenge)
			r.Get("/pending", duelHandler.HandleGetPending)
			r.Post("/{id}/accept", duelHandler.HandleAccept)
			r.Post("/{id}/decline", duelHandler.HandleDecline)
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		router: r,
	}
}

// Handler returns the fully wrapped router
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
