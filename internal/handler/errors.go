package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Path and query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgMissingPathParam  = "Missing %s"
	ErrMsgInvalidChallenge  = "Invalid challenge ID"
	ErrMsgInvalidLimit      = "limit must be a positive integer"

	// Operation failure prefixes used in logs
	ErrMsgCreateCharacterFailed = "Failed to create character"
	ErrMsgGetCharacterFailed    = "Failed to get character"
	ErrMsgGetProfileFailed      = "Failed to get profile"
	ErrMsgMigrateBuffsFailed    = "Failed to migrate buffs"
	ErrMsgGenerateItemFailed    = "Failed to generate item"
	ErrMsgGetItemFailed         = "Failed to get item"
	ErrMsgEnhanceItemFailed     = "Failed to enhance item"
	ErrMsgEquipItemFailed       = "Failed to equip item"
	ErrMsgUnequipItemFailed     = "Failed to unequip item"
	ErrMsgChallengeFailed       = "Failed to issue challenge"
	ErrMsgAcceptFailed          = "Failed to accept challenge"
	ErrMsgDeclineFailed         = "Failed to decline challenge"
	ErrMsgPendingFailed         = "Failed to list challenges"
	ErrMsgAdventureFailed       = "Failed to run adventure"
	ErrMsgRaidFailed            = "Failed to run raid"
	ErrMsgHistoryFailed         = "Failed to load event history"
)

// Success messages for API responses
const (
	MsgCharacterCreated   = "Character created"
	MsgItemGenerated      = "Item generated"
	MsgEnhanceSucceeded   = "Enhancement succeeded"
	MsgEnhanceFailed      = "Enhancement failed, gold was spent"
	MsgItemEquipped       = "Item equipped"
	MsgItemUnequipped     = "Item unequipped"
	MsgChallengeIssued    = "Challenge issued"
	MsgDuelCompleted      = "Duel completed"
	MsgChallengeDeclined  = "Challenge declined"
	MsgBuffsMigrated      = "Buffs migrated"
	MsgCampaignCompleted  = "Campaign completed"
	MsgCampaignEndedEarly = "Campaign ended early"
)
