package concurrency

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetLock_SameKeySameMutex(t *testing.T) {
	lm := NewLockManager()
	assert.Same(t, lm.GetLock("a"), lm.GetLock("a"))
	assert.NotSame(t, lm.GetLock("a"), lm.GetLock("b"))
}

func TestLockAll_OppositeOrderNoDeadlock(t *testing.T) {
	lm := NewLockManager()
	var wg sync.WaitGroup
	counter := 0

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			unlock := lm.LockAll("alice", "bob")
			counter++
			unlock()
		}()
		go func() {
			defer wg.Done()
			unlock := lm.LockAll("bob", "alice")
			counter++
			unlock()
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("LockAll deadlocked")
	}
	assert.Equal(t, 100, counter)
}

func TestLockAll_DuplicateKeys(t *testing.T) {
	lm := NewLockManager()
	unlock := lm.LockAll("same", "same")
	unlock()

	// must be released
	m := lm.GetLock("same")
	assert.True(t, m.TryLock())
	m.Unlock()
}
