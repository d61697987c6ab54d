package config

// Environment names
const (
	EnvironmentDev        = "dev"
	EnvironmentStaging    = "staging"
	EnvironmentProduction = "production"
)

// Known example values that must never reach production
const (
	ExampleAPIKey  = "generate_with_openssl_rand_hex_32"
	WildcardOrigin = "*"
)

// Error messages
const (
	ErrMsgLoadDotenv    = "failed to load .env file"
	ErrMsgParseEnv      = "failed to parse environment"
	ErrMsgInvalidConfig = "invalid configuration"
)

// Warning messages returned by Warnings
const (
	WarnMsgExampleAPIKey   = "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32"
	WarnMsgNoAPIKey        = "API_KEY is not set - the API is open to anyone who can reach it"
	WarnMsgWildcardOrigins = "CORS_ALLOWED_ORIGINS is '*' in production - list the UI origins explicitly"
	WarnMsgFixedSeed       = "RNG_SEED is set in production - every session will replay the same spins"
)
