package character

// Name limits
const (
	MinNameLength = 2
	MaxNameLength = 32
)

// DefaultStartingBalance is the gold a new character starts with
const DefaultStartingBalance = 500

// Error message format strings
const (
	ErrMsgGetCharacterFailed    = "failed to get character: %w"
	ErrMsgCreateCharacterFailed = "failed to create character: %w"
	ErrMsgSaveCharacterFailed   = "failed to save character: %w"
	ErrMsgCalculateFailed       = "failed to calculate buffs: %w"
	ErrMsgNameLengthFmt         = "name must be %d-%d characters"
)
