package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Character errors
	ErrMsgCharacterNotFound = "character not found"
	ErrMsgCharacterExists   = "character already exists"

	// Item errors
	ErrMsgItemNotFound  = "item not found"
	ErrMsgItemNotOwned  = "item not owned"
	ErrMsgInvalidSlot   = "invalid slot"
	ErrMsgInvalidRarity = "invalid rarity"
	ErrMsgUnknownSet    = "unknown set"
	ErrMsgMaxLevel      = "item is at max level"
	ErrMsgSlotEmpty     = "slot is empty"
	ErrMsgInvalidStat   = "invalid stat"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Duel errors
	ErrMsgChallengeNotFound = "challenge not found"
	ErrMsgChallengeExpired  = "challenge expired"
	ErrMsgChallengeExists   = "challenge already pending"
	ErrMsgSelfChallenge     = "cannot challenge yourself"
	ErrMsgNotChallenged     = "challenge is addressed to another character"

	// Rate limiting
	ErrMsgOnCooldown = "action on cooldown"

	// Database/System errors
	ErrMsgDatabaseError = "database error"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Character errors
	ErrCharacterNotFound = errors.New(ErrMsgCharacterNotFound)
	ErrCharacterExists   = errors.New(ErrMsgCharacterExists)

	// Item errors
	ErrItemNotFound  = errors.New(ErrMsgItemNotFound)
	ErrItemNotOwned  = errors.New(ErrMsgItemNotOwned)
	ErrInvalidSlot   = errors.New(ErrMsgInvalidSlot)
	ErrInvalidRarity = errors.New(ErrMsgInvalidRarity)
	ErrUnknownSet    = errors.New(ErrMsgUnknownSet)
	ErrMaxLevel      = errors.New(ErrMsgMaxLevel)
	ErrSlotEmpty     = errors.New(ErrMsgSlotEmpty)
	ErrInvalidStat   = errors.New(ErrMsgInvalidStat)

	// Economy errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	// Duel errors
	ErrChallengeNotFound = errors.New(ErrMsgChallengeNotFound)
	ErrChallengeExpired  = errors.New(ErrMsgChallengeExpired)
	ErrChallengeExists   = errors.New(ErrMsgChallengeExists)
	ErrSelfChallenge     = errors.New(ErrMsgSelfChallenge)
	ErrNotChallenged     = errors.New(ErrMsgNotChallenged)

	// Rate limiting
	ErrOnCooldown = errors.New(ErrMsgOnCooldown)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
