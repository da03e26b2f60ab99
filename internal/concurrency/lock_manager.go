package concurrency

import (
	"slices"
	"sync"
)

// LockManager handles named locks
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns a mutex for the given key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// LockAll acquires the locks for every distinct key in sorted order and
// returns a function that releases them. Callers that always go through
// LockAll for multi-key work cannot deadlock against each other.
func (lm *LockManager) LockAll(keys ...string) func() {
	keys = slices.Compact(slices.Sorted(slices.Values(keys)))

	held := make([]*sync.Mutex, len(keys))
	for i, k := range keys {
		held[i] = lm.GetLock(k)
		held[i].Lock()
	}

	return func() {
		for _, m := range slices.Backward(held) {
			m.Unlock()
		}
	}
}
