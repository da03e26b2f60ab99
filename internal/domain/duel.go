package domain

import (
	"time"

	"github.com/google/uuid"
)

// ChallengeState represents the lifecycle state of a PvP challenge
type ChallengeState string

const (
	ChallengeStatePending  ChallengeState = "pending"
	ChallengeStateAccepted ChallengeState = "accepted"
	ChallengeStateDeclined ChallengeState = "declined"
	ChallengeStateExpired  ChallengeState = "expired"
)

// Challenge is an outstanding duel offer from one character to another
type Challenge struct {
	ID           uuid.UUID      `json:"id"`
	ChallengerID string         `json:"challenger_id"`
	OpponentID   string         `json:"opponent_id"`
	Wager        int64          `json:"wager"`
	State        ChallengeState `json:"state"`
	CreatedAt    time.Time      `json:"created_at"`
	ExpiresAt    time.Time      `json:"expires_at"`
}

// IsExpired reports whether the challenge can no longer be accepted at now
func (c *Challenge) IsExpired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

// PairKey is the composite key used to allow one outstanding challenge per pair
func (c *Challenge) PairKey() string {
	return c.ChallengerID + ":" + c.OpponentID
}

// DuelResult is the outcome of an accepted challenge
type DuelResult struct {
	ChallengeID uuid.UUID     `json:"challenge_id"`
	WinnerID    string        `json:"winner_id"`
	LoserID     string        `json:"loser_id"`
	Wager       int64         `json:"wager"`
	Combat      *CombatResult `json:"combat"`
}
