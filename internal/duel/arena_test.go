package duel

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BrandishRPG_Go/internal/domain"
)

var t0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func TestArena_Issue(t *testing.T) {
	a := NewArena(time.Minute)

	c, err := a.Issue("alice", "bob", 50, t0)
	require.NoError(t, err)
	assert.Equal(t, domain.ChallengeStatePending, c.State)
	assert.Equal(t, t0.Add(time.Minute), c.ExpiresAt)
	assert.Equal(t, "alice:bob", c.PairKey())

	_, err = a.Issue("alice", "bob", 10, t0.Add(time.Second))
	assert.ErrorIs(t, err, domain.ErrChallengeExists)

	// the reverse direction is a different pair
	_, err = a.Issue("bob", "alice", 10, t0)
	assert.NoError(t, err)
	assert.Equal(t, 2, a.Len())
}

func TestArena_IssueRejectsInvalid(t *testing.T) {
	a := NewArena(time.Minute)

	_, err := a.Issue("alice", "alice", 0, t0)
	assert.ErrorIs(t, err, domain.ErrSelfChallenge)

	_, err = a.Issue("alice", "bob", -1, t0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, a.Len())
}

func TestArena_IssueReplacesExpired(t *testing.T) {
	a := NewArena(time.Minute)
	old, err := a.Issue("alice", "bob", 50, t0)
	require.NoError(t, err)

	fresh, err := a.Issue("alice", "bob", 75, t0.Add(time.Minute))
	require.NoError(t, err)
	assert.NotEqual(t, old.ID, fresh.ID)
	assert.Equal(t, 1, a.Len())

	_, err = a.Get(old.ID, t0)
	assert.ErrorIs(t, err, domain.ErrChallengeNotFound)
}

func TestArena_Accept(t *testing.T) {
	a := NewArena(time.Minute)
	c, err := a.Issue("alice", "bob", 50, t0)
	require.NoError(t, err)

	_, err = a.Accept(c.ID, "carol", t0)
	assert.ErrorIs(t, err, domain.ErrNotChallenged)

	got, err := a.Accept(c.ID, "bob", t0.Add(30*time.Second))
	require.NoError(t, err)
	assert.Equal(t, domain.ChallengeStateAccepted, got.State)
	assert.Zero(t, a.Len())

	_, err = a.Accept(c.ID, "bob", t0)
	assert.ErrorIs(t, err, domain.ErrChallengeNotFound)

	// pair is free again
	_, err = a.Issue("alice", "bob", 50, t0)
	assert.NoError(t, err)
}

func TestArena_AcceptExpired(t *testing.T) {
	a := NewArena(time.Minute)
	c, err := a.Issue("alice", "bob", 50, t0)
	require.NoError(t, err)

	// expiry is inclusive
	_, err = a.Accept(c.ID, "bob", t0.Add(time.Minute))
	assert.ErrorIs(t, err, domain.ErrChallengeExpired)
	assert.Zero(t, a.Len())
}

func TestArena_Decline(t *testing.T) {
	tests := []struct {
		name    string
		by      string
		wantErr error
	}{
		{"opponent declines", "bob", nil},
		{"challenger withdraws", "alice", nil},
		{"stranger", "carol", domain.ErrNotChallenged},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewArena(time.Minute)
			c, err := a.Issue("alice", "bob", 50, t0)
			require.NoError(t, err)

			got, err := a.Decline(c.ID, tt.by)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 1, a.Len())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.ChallengeStateDeclined, got.State)
			assert.Zero(t, a.Len())
		})
	}

	_, err := NewArena(time.Minute).Decline(uuid.New(), "bob")
	assert.ErrorIs(t, err, domain.ErrChallengeNotFound)
}

func TestArena_PendingAndSweep(t *testing.T) {
	a := NewArena(time.Minute)
	first, _ := a.Issue("alice", "bob", 10, t0)
	second, _ := a.Issue("carol", "alice", 20, t0.Add(40*time.Second))
	_, _ = a.Issue("carol", "bob", 30, t0)

	pending := a.Pending("alice", t0.Add(50*time.Second))
	require.Len(t, pending, 2)
	assert.Equal(t, first.ID, pending[0].ID)
	assert.Equal(t, second.ID, pending[1].ID)

	swept := a.Sweep(t0.Add(time.Minute))
	require.Len(t, swept, 2)
	for _, c := range swept {
		assert.Equal(t, domain.ChallengeStateExpired, c.State)
		assert.NotEqual(t, second.ID, c.ID)
	}
	assert.Equal(t, 1, a.Len())

	pending = a.Pending("alice", t0.Add(time.Minute))
	require.Len(t, pending, 1)
	assert.Equal(t, second.ID, pending[0].ID)
}

func TestArena_DefaultTTL(t *testing.T) {
	assert.Equal(t, DefaultChallengeTTL, NewArena(0).TTL())
}
