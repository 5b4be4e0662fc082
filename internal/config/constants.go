package config

// Environment variable names
const (
	EnvLogLevel    = "LOG_LEVEL"
	EnvLogFormat   = "LOG_FORMAT"
	EnvEnvironment = "ENVIRONMENT"
	EnvVersion     = "APP_VERSION"
)

// Defaults keep the report on stdout free of log noise
const (
	DefaultLogLevel    = "warn"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
	DefaultVersion     = "dev"
	ServiceName        = "pizzavalue"
)
