package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "item.enhanced")
const (
	// EventTypeCombatResolved is published after an adventure or raid campaign is applied
	EventTypeCombatResolved = "combat.resolved"

	// EventTypeItemEnhanced is published after every enhancement attempt that cost currency
	EventTypeItemEnhanced = "item.enhanced"

	// EventTypeItemGenerated is published when a new item is rolled and stored
	EventTypeItemGenerated = "item.generated"

	// EventTypeDuelCompleted is published when an accepted challenge has been fought
	EventTypeDuelCompleted = "duel.completed"

	// EventTypeChallengeExpired is published for each challenge removed by the sweeper
	EventTypeChallengeExpired = "duel.challenge_expired"
)
