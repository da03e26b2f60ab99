package bootstrap

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/BrandishRPG_Go/internal/event"
	"github.com/osse101/BrandishRPG_Go/internal/server"
)

// ShutdownComponents holds what GracefulShutdown stops. Nil fields are skipped.
type ShutdownComponents struct {
	Server             *server.Server
	Jobs               *BackgroundJobs
	ResilientPublisher *event.ResilientPublisher
	DBPool             *pgxpool.Pool
}

type shutdownStep struct {
	msg    string
	errMsg string
	skip   bool
	stop   func(context.Context) error
}

// GracefulShutdown stops intake first and storage last, so jobs and queued
// events still have a database while they drain. A failing step is logged
// and the rest still run.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	steps := []shutdownStep{
		{
			msg:    LogMsgShuttingDownServer,
			errMsg: LogMsgServerForcedShutdown,
			skip:   c.Server == nil,
			stop:   func(ctx context.Context) error { return c.Server.Stop(ctx) },
		},
		{
			msg:  LogMsgStoppingBackgroundJobs,
			skip: c.Jobs == nil,
			stop: func(context.Context) error { c.Jobs.Stop(); return nil },
		},
		{
			msg:    LogMsgShuttingDownEventPublisher,
			errMsg: LogMsgResilientPublisherFailed,
			skip:   c.ResilientPublisher == nil,
			stop:   func(ctx context.Context) error { return c.ResilientPublisher.Shutdown(ctx) },
		},
		{
			msg:  LogMsgClosingDatabase,
			skip: c.DBPool == nil,
			stop: func(context.Context) error { c.DBPool.Close(); return nil },
		},
	}

	for _, s := range steps {
		if s.skip {
			continue
		}
		slog.Info(s.msg)
		if err := s.stop(ctx); err != nil {
			slog.Error(s.errMsg, "error", err)
		}
	}
	slog.Info(LogMsgServerStopped)
}

