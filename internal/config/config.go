package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the pinggye
// application. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: session lifetime, the weekly
	// usage warning threshold, and the application version.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Storage selects and configures the persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// OpenAI configures the remote text-generation service. An empty API
	// key switches the generator into fallback-only mode.
	OpenAI OpenAI `envPrefix:"OPENAI_"`

	// Client holds settings used only by the terminal client binary.
	Client Client `envPrefix:"CLIENT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// SessionTTL is how long a login session stays valid.
	// Env: APP_SESSION_TTL. Default: 24h.
	SessionTTL time.Duration `env:"SESSION_TTL"`

	// UsageWarnLimit is the weekly generation count at which the
	// current-week endpoint starts returning warning=true.
	// Env: APP_USAGE_WARN_LIMIT. Default: 3.
	UsageWarnLimit int `env:"USAGE_WARN_LIMIT"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound HTTP layer.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on, in
	// "host:port" format. Env: SERVER_ADDRESS. Default: ":8080".
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT. Default: 30s.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups persistence backend settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB selects the storage driver and its connection string.
type DB struct {
	// Driver is one of "memory", "postgres", "sqlite". Empty selects the
	// in-memory store. Env: STORAGE_DB_DRIVER.
	Driver string `env:"DRIVER"`

	// DSN is the connection string for the SQL drivers: a PostgreSQL URI
	// or an SQLite file path. Ignored by the memory driver.
	// Env: STORAGE_DB_DATABASE_URI.
	DSN string `env:"DATABASE_URI"`
}

// OpenAI holds settings for the chat-completions API used for generation.
type OpenAI struct {
	// APIKey authenticates against the API. Empty (or the placeholder
	// "default_key") disables remote generation entirely.
	// Env: OPENAI_API_KEY.
	APIKey string `env:"API_KEY"`

	// BaseURL is the API root. Env: OPENAI_BASE_URL.
	// Default: https://api.openai.com.
	BaseURL string `env:"BASE_URL"`

	// Model names the chat model. Env: OPENAI_MODEL. Default: gpt-4o.
	Model string `env:"MODEL"`

	// RequestTimeout bounds a single generation call; on expiry the
	// generator falls back to static content.
	// Env: OPENAI_REQUEST_TIMEOUT. Default: 15s.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Client holds settings for the terminal client binary.
type Client struct {
	// ServerURL is the base URL of the pinggye server.
	// Env: CLIENT_SERVER_URL. Default: http://localhost:8080.
	ServerURL string `env:"SERVER_URL"`

	// RequestTimeout bounds outbound API calls made by the client.
	// Env: CLIENT_REQUEST_TIMEOUT. Default: 30s.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
