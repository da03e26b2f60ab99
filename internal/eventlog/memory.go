package eventlog

import (
	"context"
	"slices"
	"sync"
	"time"
)

// MemoryRepository keeps events in process memory. It backs tests and
// deployments that run without a database.
type MemoryRepository struct {
	mu      sync.Mutex
	entries []Entry
	nextID  int64

	// Now defaults to time.Now
	Now func() time.Time
}

var _ Repository = (*MemoryRepository)(nil)

// NewMemoryRepository creates an empty MemoryRepository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

func (r *MemoryRepository) LogEvent(_ context.Context, eventType string, characterIDs []string, payload []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	r.entries = append(r.entries, Entry{
		ID:           r.nextID,
		EventType:    eventType,
		CharacterIDs: slices.Clone(characterIDs),
		Payload:      slices.Clone(payload),
		CreatedAt:    r.now(),
	})
	return nil
}

func (r *MemoryRepository) GetEventsByCharacter(_ context.Context, characterID string, limit int) ([]Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []Entry{}
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		if slices.Contains(r.entries[i].CharacterIDs, characterID) {
			out = append(out, r.entries[i])
		}
	}
	return out, nil
}

func (r *MemoryRepository) CleanupOldEvents(_ context.Context, retentionDays int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cutoff := r.now().AddDate(0, 0, -retentionDays)
	kept := r.entries[:0]
	var deleted int64
	for _, e := range r.entries {
		if e.CreatedAt.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, e)
	}
	r.entries = kept
	return deleted, nil
}
