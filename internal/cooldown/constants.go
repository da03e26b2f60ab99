package cooldown

import "time"

// DefaultCooldownDuration applies to actions with no configured duration
const DefaultCooldownDuration = 5 * time.Minute

// keySeparator joins character and action into one lock or map key
const keySeparator = ":"

// Advisory locks are keyed by a 64-bit hash Postgres computes itself, so
// every process agrees on the key for a character and action.
const (
	sqlAdvisoryLock = `SELECT pg_advisory_xact_lock(hashtextextended($1 || ':' || $2, 0))`

	sqlSelectLastUsed = `
		SELECT last_used_at FROM character_cooldowns
		WHERE character_id = $1 AND action_name = $2`

	sqlDeleteCooldown = `
		DELETE FROM character_cooldowns
		WHERE character_id = $1 AND action_name = $2`

	sqlUpsertCooldown = `
		INSERT INTO character_cooldowns (character_id, action_name, last_used_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (character_id, action_name) DO UPDATE
		SET last_used_at = EXCLUDED.last_used_at`
)

const (
	LogMsgDevModeBypass   = "Cooldown bypassed in dev mode"
	LogMsgLostRace        = "Cooldown started by a concurrent request"
	LogMsgCooldownStarted = "Cooldown started"
)

// ErrOnCooldown messages
const (
	ErrFmtCooldownWithMinutes = "You can %s again in %dm %ds"
	ErrFmtCooldownSecondsOnly = "You can %s again in %ds"
)
