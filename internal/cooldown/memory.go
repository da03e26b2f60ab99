package cooldown

import (
	"context"
	"sync"
	"time"
)

// memoryBackend implements Service in process memory. Enforcement is
// serialized per character and action.
type memoryBackend struct {
	config Config

	mu       sync.Mutex
	lastUsed map[string]time.Time
	locks    map[string]*sync.Mutex
}

// NewMemoryService creates a cooldown service that keeps state in memory
func NewMemoryService(config Config) Service {
	return &memoryBackend{
		config:   config,
		lastUsed: make(map[string]time.Time),
		locks:    make(map[string]*sync.Mutex),
	}
}

func key(characterID, action string) string {
	return characterID + keySeparator + action
}

func (b *memoryBackend) CheckCooldown(_ context.Context, characterID, action string, reduction float64) (bool, time.Duration, error) {
	if b.config.DevMode {
		return false, 0, nil
	}
	onCooldown, remaining := remainingAfter(b.config.now(), b.get(key(characterID, action)), b.config.effective(action, reduction))
	return onCooldown, remaining, nil
}

func (b *memoryBackend) EnforceCooldown(ctx context.Context, characterID, action string, reduction float64, fn func() error) error {
	k := key(characterID, action)
	lock := b.lockFor(k)
	lock.Lock()
	defer lock.Unlock()

	onCooldown, remaining, _ := b.CheckCooldown(ctx, characterID, action, reduction)
	if onCooldown {
		return ErrOnCooldown{Action: action, Remaining: remaining}
	}

	if err := fn(); err != nil {
		return err
	}

	b.mu.Lock()
	b.lastUsed[k] = b.config.now()
	b.mu.Unlock()
	return nil
}

func (b *memoryBackend) ResetCooldown(_ context.Context, characterID, action string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.lastUsed, key(characterID, action))
	return nil
}

func (b *memoryBackend) GetLastUsed(_ context.Context, characterID, action string) (*time.Time, error) {
	return b.get(key(characterID, action)), nil
}

func (b *memoryBackend) get(k string) *time.Time {
	b.mu.Lock()
	defer b.mu.Unlock()
	t, ok := b.lastUsed[k]
	if !ok {
		return nil
	}
	return &t
}

func (b *memoryBackend) lockFor(k string) *sync.Mutex {
	b.mu.Lock()
	defer b.mu.Unlock()
	l, ok := b.locks[k]
	if !ok {
		l = &sync.Mutex{}
		b.locks[k] = l
	}
	return l
}
