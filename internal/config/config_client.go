package config

import (
	"fmt"
	"time"
)

// ClientConfig is the view of the merged configuration used by the terminal
// client binary.
type ClientConfig struct {
	// ServerURL is the base URL of the pinggye server.
	ServerURL string
	// RequestTimeout is the default timeout for outbound API requests.
	RequestTimeout time.Duration
	// Version is the application version stamped into the binary config.
	Version string
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		ServerURL:      cfg.Client.ServerURL,
		RequestTimeout: cfg.Client.RequestTimeout,
		Version:        cfg.App.Version,
	}

	return clientCfg, clientCfg.validate()
}
