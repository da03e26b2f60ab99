package duel

import "time"

// DefaultChallengeTTL is how long a challenge stays open when no expiry is configured
const DefaultChallengeTTL = 5 * time.Minute

// Error message format strings
const (
	ErrMsgGetCharacterFailed  = "failed to get character: %w"
	ErrMsgSaveCharacterFailed = "failed to save character: %w"
	ErrMsgCalculateFailed     = "failed to calculate buffs: %w"
	ErrMsgBeginTxFailed       = "failed to begin transaction: %w"
	ErrMsgCommitTxFailed      = "failed to commit transaction: %w"
	ErrMsgNegativeWagerFmt    = "wager %d is negative"
	ErrMsgWagerFmt            = "%s needs %d, has %d"
)

// Log messages
const (
	LogMsgChallengesExpired = "Expired duel challenges swept"
)
