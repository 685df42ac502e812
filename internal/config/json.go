package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON files, using the
// [Duration] wrapper so durations can be written as "24h" / "30s" strings.
type StructuredJSONConfig struct {
	App struct {
		SessionTTL     Duration `json:"session_ttl"`
		UsageWarnLimit int      `json:"usage_warn_limit"`
		Version        string   `json:"version"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	OpenAI struct {
		APIKey         string   `json:"api_key"`
		BaseURL        string   `json:"base_url"`
		Model          string   `json:"model"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"openai,omitempty"`

	Client struct {
		ServerURL      string   `json:"server_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"client,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			SessionTTL:     time.Duration(jsonCfg.App.SessionTTL),
			UsageWarnLimit: jsonCfg.App.UsageWarnLimit,
			Version:        jsonCfg.App.Version,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
		},
		OpenAI: OpenAI{
			APIKey:         jsonCfg.OpenAI.APIKey,
			BaseURL:        jsonCfg.OpenAI.BaseURL,
			Model:          jsonCfg.OpenAI.Model,
			RequestTimeout: time.Duration(jsonCfg.OpenAI.RequestTimeout),
		},
		Client: Client{
			ServerURL:      jsonCfg.Client.ServerURL,
			RequestTimeout: time.Duration(jsonCfg.Client.RequestTimeout),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
