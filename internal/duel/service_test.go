package duel

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BrandishRPG_Go/internal/buffs"
	"github.com/osse101/BrandishRPG_Go/internal/concurrency"
	"github.com/osse101/BrandishRPG_Go/internal/domain"
	"github.com/osse101/BrandishRPG_Go/internal/event"
	"github.com/osse101/BrandishRPG_Go/internal/rng"
	"github.com/osse101/BrandishRPG_Go/internal/testing/fakestore"
)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishWithRetry(ctx context.Context, evt event.Event) {
	m.Called(ctx, evt)
}

func ofType(t event.Type) interface{} {
	return mock.MatchedBy(func(e event.Event) bool { return e.Type == t })
}

type fixture struct {
	store *fakestore.Store
	arena *Arena
	pub   *MockPublisher
	svc   *service
}

// newFixture seeds a level 50 veteran and a level 1 rookie. The veteran
// cannot lose to the rookie.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := fakestore.New()

	vet := domain.NewCharacter("vet", "Veteran", 1000)
	vet.Level = 50
	store.PutCharacter(vet)
	store.PutCharacter(domain.NewCharacter("rookie", "Rookie", 300))
	store.PutCharacter(domain.NewCharacter("broke", "Broke", 0))

	arena := NewArena(time.Minute)
	pub := &MockPublisher{}
	svc := NewService(store, arena, buffs.NewCalculator(store), concurrency.NewLockManager(), pub, rng.New(7)).(*service)
	svc.now = func() time.Time { return t0 }
	return &fixture{store: store, arena: arena, pub: pub, svc: svc}
}

func TestService_Challenge(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c, err := f.svc.Challenge(ctx, "vet", "rookie", 200)
	require.NoError(t, err)
	assert.Equal(t, "vet", c.ChallengerID)
	assert.Equal(t, int64(200), c.Wager)
	assert.Equal(t, t0.Add(time.Minute), c.ExpiresAt)

	_, err = f.svc.Challenge(ctx, "vet", "rookie", 10)
	assert.ErrorIs(t, err, domain.ErrChallengeExists)
}

func TestService_ChallengeErrors(t *testing.T) {
	tests := []struct {
		name       string
		challenger string
		opponent   string
		wager      int64
		wantErr    error
	}{
		{"unknown challenger", "ghost", "rookie", 0, domain.ErrCharacterNotFound},
		{"unknown opponent", "vet", "ghost", 0, domain.ErrCharacterNotFound},
		{"wager above balance", "rookie", "vet", 301, domain.ErrInsufficientFunds},
		{"self", "vet", "vet", 0, domain.ErrSelfChallenge},
		{"negative wager", "vet", "rookie", -5, domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.svc.Challenge(context.Background(), tt.challenger, tt.opponent, tt.wager)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, f.arena.Len())
		})
	}
}

func TestService_Accept(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.pub.On("PublishWithRetry", mock.Anything, ofType(event.DuelCompleted)).Return().Once()

	c, err := f.svc.Challenge(ctx, "vet", "rookie", 200)
	require.NoError(t, err)

	res, err := f.svc.Accept(ctx, "rookie", c.ID)
	require.NoError(t, err)

	assert.Equal(t, c.ID, res.ChallengeID)
	assert.Equal(t, "vet", res.WinnerID)
	assert.Equal(t, "rookie", res.LoserID)
	require.NotNil(t, res.Combat)
	assert.Equal(t, domain.ModeDuel, res.Combat.Mode)
	assert.Equal(t, "vet", res.Combat.WinnerID)

	vet, rookie := f.store.Character("vet"), f.store.Character("rookie")
	assert.Equal(t, int64(1200), vet.Balance)
	assert.Equal(t, int64(100), rookie.Balance)
	assert.Equal(t, 1, vet.Wins)
	assert.Equal(t, 1, rookie.Losses)
	assert.Equal(t, 1, f.store.Commits)
	assert.Zero(t, f.arena.Len())
	f.pub.AssertExpectations(t)

	_, err = f.svc.Accept(ctx, "rookie", c.ID)
	assert.ErrorIs(t, err, domain.ErrChallengeNotFound)
}

func TestService_AcceptWrongOpponent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c, err := f.svc.Challenge(ctx, "vet", "rookie", 0)
	require.NoError(t, err)

	_, err = f.svc.Accept(ctx, "broke", c.ID)
	assert.ErrorIs(t, err, domain.ErrNotChallenged)
	assert.Equal(t, 1, f.arena.Len())
	f.pub.AssertNotCalled(t, "PublishWithRetry", mock.Anything, mock.Anything)
}

func TestService_AcceptKeepsChallengeWhenUnaffordable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c, err := f.svc.Challenge(ctx, "vet", "broke", 100)
	require.NoError(t, err)

	_, err = f.svc.Accept(ctx, "broke", c.ID)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, 1, f.arena.Len())
	assert.Zero(t, f.store.Commits)
	assert.Equal(t, int64(1000), f.store.Character("vet").Balance)
}

func TestService_AcceptExpired(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c, err := f.svc.Challenge(ctx, "vet", "rookie", 0)
	require.NoError(t, err)

	f.svc.now = func() time.Time { return t0.Add(2 * time.Minute) }
	_, err = f.svc.Accept(ctx, "rookie", c.ID)
	assert.ErrorIs(t, err, domain.ErrChallengeExpired)
}

func TestService_ConcurrentAcceptSettlesOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.pub.On("PublishWithRetry", mock.Anything, ofType(event.DuelCompleted)).Return().Once()

	c, err := f.svc.Challenge(ctx, "vet", "rookie", 50)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make(chan error, 5)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.Accept(ctx, "rookie", c.ID)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, domain.ErrChallengeNotFound)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, int64(1050), f.store.Character("vet").Balance)
	f.pub.AssertExpectations(t)
}

func TestService_DeclineAndPending(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c, err := f.svc.Challenge(ctx, "vet", "rookie", 0)
	require.NoError(t, err)

	pending, err := f.svc.Pending(ctx, "rookie")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, c.ID, pending[0].ID)

	assert.ErrorIs(t, f.svc.Decline(ctx, "broke", c.ID), domain.ErrNotChallenged)
	require.NoError(t, f.svc.Decline(ctx, "rookie", c.ID))
	assert.ErrorIs(t, f.svc.Decline(ctx, "rookie", c.ID), domain.ErrChallengeNotFound)

	pending, err = f.svc.Pending(ctx, "rookie")
	require.NoError(t, err)
	assert.Empty(t, pending)

	_, err = f.svc.Pending(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrCharacterNotFound)

	_, err = f.svc.Accept(ctx, "rookie", uuid.New())
	assert.ErrorIs(t, err, domain.ErrChallengeNotFound)
}
