package adventure

// Campaign lengths
const (
	AdventureStages = 50
	RaidStages      = 50
)

// Error message format strings
const (
	ErrMsgGetCharacterFailed  = "failed to get character: %w"
	ErrMsgSaveCharacterFailed = "failed to save character: %w"
	ErrMsgCalculateFailed     = "failed to calculate buffs: %w"
	ErrMsgBeginTxFailed       = "failed to begin transaction: %w"
	ErrMsgCommitTxFailed      = "failed to commit transaction: %w"
)
