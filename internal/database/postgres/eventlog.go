package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/BrandishRPG_Go/internal/eventlog"
)

// EventLogRepository implements eventlog.Repository for PostgreSQL
type EventLogRepository struct {
	db *pgxpool.Pool
}

var _ eventlog.Repository = (*EventLogRepository)(nil)

// NewEventLogRepository creates a new EventLogRepository
func NewEventLogRepository(db *pgxpool.Pool) *EventLogRepository {
	return &EventLogRepository{db: db}
}

func (r *EventLogRepository) LogEvent(ctx context.Context, eventType string, characterIDs []string, payload []byte) error {
	if characterIDs == nil {
		characterIDs = []string{}
	}
	if _, err := r.db.Exec(ctx, queryInsertEvent, eventType, characterIDs, payload); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToLogEvent, err)
	}
	return nil
}

func (r *EventLogRepository) GetEventsByCharacter(ctx context.Context, characterID string, limit int) ([]eventlog.Entry, error) {
	rows, err := r.db.Query(ctx, queryEventsByCharacter, characterID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryEvents, err)
	}
	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (eventlog.Entry, error) {
		var e eventlog.Entry
		var payload []byte
		err := row.Scan(&e.ID, &e.EventType, &e.CharacterIDs, &payload, &e.CreatedAt)
		e.Payload = payload
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryEvents, err)
	}
	return entries, nil
}

func (r *EventLogRepository) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	tag, err := r.db.Exec(ctx, queryCleanupEvents, retentionDays)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCleanupEvents, err)
	}
	return tag.RowsAffected(), nil
}
