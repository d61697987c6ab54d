package logger

// Log level names accepted by Config.Level
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Output formats
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

const (
	DefaultServiceName = "owo-slots"
	DefaultVersion     = "dev"
)

// Environment names
const (
	EnvironmentDev        = "dev"
	EnvironmentProduction = "prod"
	EnvironmentCLI        = "cli"
)

// Record attribute keys
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)
