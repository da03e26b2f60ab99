package logger

// LogLevelWarningAlias is accepted alongside slog's own level names
const LogLevelWarningAlias = "warning"

const LogFormatJSON = "json"

const (
	EnvironmentDev         = "dev"
	EnvironmentDevelopment = "development"
)

// Attribute keys
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)

// SensitiveAttrKeys are matched as substrings of lowercased attribute keys
var SensitiveAttrKeys = []string{"password", "api_key", "apikey", "secret", "token"}

const RedactedValue = "[REDACTED]"
