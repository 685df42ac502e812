package config

import "time"

// Storage driver names accepted by [StructuredConfig.validate].
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// setDefaults fills zero-valued fields with their documented defaults after
// all sources have been merged. Defaults live here, not in the sources, so
// that an explicitly configured zero never wins over a real value during the
// merge.
func (cfg *StructuredConfig) setDefaults() {
	if cfg.App.SessionTTL == 0 {
		cfg.App.SessionTTL = 24 * time.Hour
	}
	if cfg.App.UsageWarnLimit == 0 {
		cfg.App.UsageWarnLimit = 3
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = ":8080"
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = 30 * time.Second
	}
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DriverMemory
	}
	if cfg.OpenAI.BaseURL == "" {
		cfg.OpenAI.BaseURL = "https://api.openai.com"
	}
	if cfg.OpenAI.Model == "" {
		cfg.OpenAI.Model = "gpt-4o"
	}
	if cfg.OpenAI.RequestTimeout == 0 {
		cfg.OpenAI.RequestTimeout = 15 * time.Second
	}
	if cfg.Client.ServerURL == "" {
		cfg.Client.ServerURL = "http://localhost:8080"
	}
	if cfg.Client.RequestTimeout == 0 {
		cfg.Client.RequestTimeout = 30 * time.Second
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case DriverMemory:
	case DriverPostgres, DriverSQLite:
		if cfg.Storage.DB.DSN == "" {
			return ErrInvalidStorageConfigs
		}
	default:
		return ErrInvalidStorageConfigs
	}

	if cfg.App.SessionTTL < 0 || cfg.App.UsageWarnLimit < 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.ServerURL == "" || cfg.RequestTimeout == 0 {
		return ErrInvalidClientConfigs
	}

	return nil
}
