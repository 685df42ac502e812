package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN (postgres URI or sqlite file path)
//	-driver storage driver: memory, postgres or sqlite
//	-c/-config json file path with configs
//	-openai-key API key for the text-generation service
//	-openai-model chat model name
//	-session-ttl login session lifetime (e.g., "24h")
//	-request-timeout inbound request timeout (e.g., "30s")
//	-usage-warn-limit weekly count that triggers the usage warning
//	-server-url base URL of the server (client binary only)
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var storageDriver string
	var jsonConfigPath string
	var openAIKey string
	var openAIModel string
	var sessionTTL time.Duration
	var requestTimeout time.Duration
	var usageWarnLimit int
	var clientServerURL string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&storageDriver, "driver", "", "Storage driver (memory, postgres, sqlite)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&openAIKey, "openai-key", "", "OpenAI API key")
	flag.StringVar(&openAIModel, "openai-model", "", "OpenAI chat model")
	flag.DurationVar(&sessionTTL, "session-ttl", 0, "Session lifetime (e.g., 24h)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s)")
	flag.IntVar(&usageWarnLimit, "usage-warn-limit", 0, "Weekly usage warning threshold")
	flag.StringVar(&clientServerURL, "server-url", "", "Server base URL (client)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			SessionTTL:     sessionTTL,
			UsageWarnLimit: usageWarnLimit,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				Driver: storageDriver,
				DSN:    databaseDSN,
			},
		},
		OpenAI: OpenAI{
			APIKey: openAIKey,
			Model:  openAIModel,
		},
		Client: Client{
			ServerURL: clientServerURL,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so the value
// does not shadow other config sources during the merge.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error otherwise.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
