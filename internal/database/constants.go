package database

import "time"

const (
	// DefaultMinConnections is kept warm so the first requests after idle skip the dial
	DefaultMinConnections int32 = 2

	DefaultHealthCheckPeriod = 30 * time.Second
	ConnectTimeout           = 10 * time.Second

	// ApplicationName shows up in pg_stat_activity unless the URL sets one
	ApplicationName = "brandishrpg"
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString   = "failed to parse connection string"
	ErrMsgFailedToCreatePool        = "failed to create connection pool"
	ErrMsgFailedToPingDatabase      = "failed to ping database"
	ErrMsgFailedToOpenMigrationConn = "failed to open migration connection"
	ErrMsgFailedToSetDialect        = "failed to set goose dialect"
	ErrMsgFailedToRunMigrations     = "failed to run migrations"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgMigrationsApplied               = "Database migrations applied"
)

// Connection defaults for the maintenance tools
const (
	DefaultUser     = "postgres"
	DefaultPassword = "postgres"
	DefaultHost     = "localhost"
	DefaultPort     = "5432"

	// MaintenanceDB is the database CREATE and DROP DATABASE run from
	MaintenanceDB = "postgres"
)
