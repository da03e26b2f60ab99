package leaktest

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckNoGoroutineLeak_JoinedWorkers(t *testing.T) {
	CheckNoGoroutineLeak(t, func() {
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() { defer wg.Done() }()
		}
		wg.Wait()
	})
}

func TestGoroutineChecker_Tolerance(t *testing.T) {
	checker := NewGoroutineChecker(t)

	done := make(chan struct{})
	go func() { <-done }()
	defer close(done)

	checker.Check(1)
}

func TestSettle_ReportsStragglers(t *testing.T) {
	done := make(chan struct{})
	go func() { <-done }()
	defer close(done)

	n, ok := settle(0, 3*pollInterval)
	assert.False(t, ok)
	assert.Positive(t, n)
}
