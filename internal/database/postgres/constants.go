package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Store Operations
const (
	ErrMsgFailedToBeginTransaction = "failed to begin transaction"
	ErrMsgFailedToGetCharacter     = "failed to get character"
	ErrMsgFailedToInsertCharacter  = "failed to insert character"
	ErrMsgFailedToUpdateCharacter  = "failed to update character"
	ErrMsgFailedToGetItem          = "failed to get item"
	ErrMsgFailedToInsertItem       = "failed to insert item"
	ErrMsgFailedToUpdateItemLevel  = "failed to update item level"
	ErrMsgFailedToMarshal          = "failed to marshal %s"
	ErrMsgFailedToUnmarshal        = "failed to unmarshal %s"
)

const (
	characterColumns = `character_id, name, level, xp, balance, wins, losses, buffs, equipment, inventory, created_at, updated_at`
	itemColumns      = `item_id, name, slot, rarity, set_name, element, level, price, main_stat, sub_stats, buffs`
)

const (
	queryGetCharacter          = `SELECT ` + characterColumns + ` FROM characters WHERE character_id = $1`
	queryGetCharacterForUpdate = queryGetCharacter + ` FOR UPDATE`

	queryInsertCharacter = `
		INSERT INTO characters (` + characterColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	queryUpdateCharacter = `
		UPDATE characters
		SET name = $2, level = $3, xp = $4, balance = $5, wins = $6, losses = $7,
		    buffs = $8, equipment = $9, inventory = $10, updated_at = NOW()
		WHERE character_id = $1`

	queryGetItem          = `SELECT ` + itemColumns + ` FROM items WHERE item_id = $1`
	queryGetItemForUpdate = queryGetItem + ` FOR UPDATE`

	queryUpsertItem = `
		INSERT INTO items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (item_id) DO UPDATE
		SET name = EXCLUDED.name, slot = EXCLUDED.slot, rarity = EXCLUDED.rarity,
		    set_name = EXCLUDED.set_name, element = EXCLUDED.element, level = EXCLUDED.level,
		    price = EXCLUDED.price, main_stat = EXCLUDED.main_stat,
		    sub_stats = EXCLUDED.sub_stats, buffs = EXCLUDED.buffs`

	queryUpdateItemLevel = `UPDATE items SET level = $2 WHERE item_id = $1`
)

// Event log
const (
	ErrMsgFailedToLogEvent      = "failed to log event"
	ErrMsgFailedToQueryEvents   = "failed to query events"
	ErrMsgFailedToCleanupEvents = "failed to clean up events"

	queryInsertEvent = `
		INSERT INTO event_log (event_type, character_ids, payload)
		VALUES ($1, $2, $3)`

	queryEventsByCharacter = `
		SELECT event_id, event_type, character_ids, payload, created_at
		FROM event_log
		WHERE character_ids @> ARRAY[$1::text]
		ORDER BY created_at DESC, event_id DESC
		LIMIT $2`

	queryCleanupEvents = `DELETE FROM event_log WHERE created_at < NOW() - make_interval(days => $1)`
)
