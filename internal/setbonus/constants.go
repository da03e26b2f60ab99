package setbonus

// Piece-count thresholds that unlock set tiers
const (
	TierTwoPiece   = 2
	TierThreePiece = 3
	TierSixPiece   = 6
)

// ReactionCount is the number of unordered element pairs (6 choose 2)
const ReactionCount = 15

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgParseTablesFailed   = "failed to parse set bonus tables: %w"
	ErrMsgReadTablesFailed    = "failed to read set bonus tables %s: %w"
	ErrMsgNoSets              = "no sets defined"
	ErrMsgUnknownElement      = "set %q has unknown element %q"
	ErrMsgInvalidTier         = "set %q has invalid tier %d"
	ErrMsgUnknownBonusStat    = "%s has unknown bonus stat %q"
	ErrMsgResonanceElement    = "resonance for unknown element %q"
	ErrMsgMissingResonance    = "no resonance for element %q"
	ErrMsgReactionCount       = "expected %d reactions, found %d"
	ErrMsgReactionKey         = "reaction %q does not match its elements %v"
	ErrMsgReactionElements    = "reaction %q must name two distinct known elements"
	ErrMsgReactionNoName      = "reaction %q has no name"
	ErrMsgReactionBuffStat    = "reaction %q buffs unknown stat %q"
	ErrMsgNegativeProbability = "reaction %q has a chance outside [0,1]"
)
